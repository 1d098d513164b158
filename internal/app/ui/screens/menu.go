package screens

import (
	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/ui/components"
)

// Menu renders the overflow menu opened from the robot list
func Menu(m components.Marker, width int) string {
	m = mark(m)

	item := components.IndicatorSelected + "Past Missions"
	menu := components.MenuStyle.Render(m(ZonePastMissions, item))

	return lipgloss.PlaceHorizontal(width, lipgloss.Right, menu)
}
