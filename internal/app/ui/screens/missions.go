package screens

import (
	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/ui/components"
)

const detailsBoxHeight = 5

// MissionList renders one selectable row per past mission
func MissionList(m components.Marker, missions []archive.Mission, cursor, width int) string {
	if len(missions) == 0 {
		return components.EmptyStateStyle.Render("No past missions")
	}

	m = mark(m)
	rows := make([]string, 0, len(missions))

	for i, mission := range missions {
		indicator := components.IndicatorEmpty
		style := components.CardStyle

		if i == cursor {
			indicator = components.IndicatorSelected
			style = components.SelectedCardStyle
		}

		text := indicator + components.Truncate("Mission: "+mission.Date, width-components.CardPadding-lipgloss.Width(indicator))
		rows = append(rows, m(ZoneMission(i), style.Width(width-2).Render(text)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// MissionDetails renders the summary, recording placeholders and log lines of a mission
func MissionDetails(mission archive.Mission, logs []string, width int) string {
	rows := []string{
		section("Summary"),
		spread(
			components.LabelStyle.Render("Duration: ")+components.ValueStyle.Render(mission.Duration),
			components.LabelStyle.Render("Distance: ")+components.ValueStyle.Render(mission.Distance),
			width,
		),
		"",
		section("Map"),
		placeholder("", width, detailsBoxHeight, components.BgSelection),
		"",
		section("Video Recording"),
		placeholder("", width, detailsBoxHeight, components.BgVideo),
		"",
		section("Logs"),
	}

	for _, line := range logs {
		rows = append(rows, components.Wrap(line, width))
	}

	if len(logs) == 0 {
		rows = append(rows, components.LabelStyle.Render("No log entries"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
