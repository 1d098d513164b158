// Package screens renders the body of each console screen from plain data.
// Every function is pure: it takes the data, a selection cursor and a width
// and returns the rendered string with clickable regions wrapped by a Marker.
package screens

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/ui/components"
)

// Zone ids shared with the console's mouse handling
const (
	ZoneBack         = "back"
	ZoneMenu         = "menu"
	ZonePastMissions = "menu:past_missions"
	ZoneStart        = "start"
	ZoneVideo        = "video"
	ZoneTicker       = "ticker"

	robotZonePrefix   = "robot:"
	missionZonePrefix = "mission:"
)

// ZoneRobot returns the zone id of the Connect button of the i-th robot
func ZoneRobot(i int) string {
	return robotZonePrefix + strconv.Itoa(i)
}

// ZoneMission returns the zone id of the i-th mission row
func ZoneMission(i int) string {
	return missionZonePrefix + strconv.Itoa(i)
}

// placeholder draws an empty box standing in for a camera or map view
func placeholder(label string, width, height int, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(components.FgMuted).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

// spread places left and right on one line of the given width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}

func unavailable(label string) string {
	return components.RenderButton(label, false, false) + " " + components.LabelStyle.Render("(unavailable)")
}

func section(title string) string {
	return components.SectionTitleStyle.Render(title)
}

func mark(m components.Marker) components.Marker {
	if m == nil {
		return components.NoMark
	}

	return m
}
