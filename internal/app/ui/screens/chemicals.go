package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/components"
)

const minStatusBar = 4

// Chemicals renders one card per gas reading with a status bar and its live graph
func Chemicals(readings []telemetry.ChemicalReading, width int) string {
	inner := width - components.CardPadding
	blocks := make([]string, 0, len(readings)+1)

	for _, r := range readings {
		color := components.SafetyColor(r.Status)
		colored := lipgloss.NewStyle().Foreground(color)

		label := colored.Bold(true).Render(r.Status.String())
		prefix := components.LabelStyle.Render("Status: ")

		barWidth := inner - lipgloss.Width(prefix) - lipgloss.Width(label) - 1
		if barWidth < minStatusBar {
			barWidth = minStatusBar
		}

		card := lipgloss.JoinVertical(lipgloss.Left,
			spread(components.ValueStyle.Render(r.Name), components.ValueStyle.Render(r.Reading), inner),
			prefix+colored.Render(strings.Repeat("█", barWidth))+" "+label,
			components.LabelStyle.Render("Live Graph:"),
			components.RenderGraph(r.History, inner, components.GraphHeight, color),
		)

		blocks = append(blocks, components.CardStyle.Width(width-2).Render(card))
	}

	if len(readings) == 0 {
		blocks = append(blocks, components.EmptyStateStyle.Render("No chemical readings"))
	}

	blocks = append(blocks, "", unavailable("Export Chemical Data"))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
