package screens

import (
	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/ui/components"
)

// RobotList renders one card per robot with its status and a Connect button.
// pulse is drawn after the status of robots that are still connecting.
func RobotList(m components.Marker, robots []fleet.Robot, cursor int, pulse string, width int) string {
	if len(robots) == 0 {
		return components.EmptyStateStyle.Render("No robots available")
	}

	m = mark(m)
	inner := width - components.CardPadding
	cards := make([]string, 0, len(robots))

	for i, robot := range robots {
		selected := i == cursor

		status := lipgloss.NewStyle().Foreground(components.RobotColor(robot.Status)).Render(robot.Status.String())
		if robot.Status == fleet.Connecting && pulse != "" {
			status += " " + pulse
		}
		button := m(ZoneRobot(i), components.RenderButton("Connect", robot.Connectable(), selected))

		info := lipgloss.JoinVertical(lipgloss.Left,
			components.ValueStyle.Render(components.Truncate(robot.Name, inner-lipgloss.Width(button)-1)),
			components.LabelStyle.Render("Status: ")+status,
		)

		style := components.CardStyle
		if selected {
			style = components.SelectedCardStyle
		}

		cards = append(cards, style.Width(width-2).Render(spread(info, button, inner)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
