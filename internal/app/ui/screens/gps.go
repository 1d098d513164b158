package screens

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/components"
)

const mapHeight = 9

// GPS renders the map placeholder with the robot's coordinates and internal path
func GPS(position telemetry.Position, width int) string {
	pin := lipgloss.JoinVertical(lipgloss.Center,
		components.IconPin,
		components.ValueStyle.Render(fmt.Sprintf("Lat: %.4f, Lon: %.4f", position.Lat, position.Lon)),
	)

	mapBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(components.FgBorder).
		Width(width-2).
		Height(mapHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(pin)

	path := lipgloss.NewStyle().
		Foreground(components.FgSafe).
		Render(components.Wrap("Internal Path: "+position.Path, width))

	return lipgloss.JoinVertical(lipgloss.Left,
		mapBox,
		path,
		"",
		unavailable("Share Live Location"),
	)
}
