package screens

import (
	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/components"
)

// Checklist renders the pre-mission checks for the connected robot
func Checklist(m components.Marker, robot fleet.Robot, items []telemetry.CheckItem, width int) string {
	m = mark(m)

	rows := []string{
		components.TitleStyle.Render("Connected to: " + robot.Name),
		"",
	}

	for _, item := range items {
		rows = append(rows, spread(
			components.LabelStyle.Render(item.Label),
			components.ValueStyle.Render(item.Value),
			width,
		))
	}

	if len(items) == 0 {
		rows = append(rows, components.EmptyStateStyle.Render("No checks reported"))
	}

	rows = append(rows, "", m(ZoneStart, components.RenderButton("Start Mission", true, true)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
