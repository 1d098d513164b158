package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/components"
)

const (
	tickerWidth       = 32
	minVideoHeight    = 7
	controlHubHeight  = 7
	stackedBelowWidth = 64
)

// DashboardData is everything the mission dashboard shows
type DashboardData struct {
	HUD      telemetry.HUD
	Frame    *telemetry.Frame
	Readings []telemetry.ChemicalReading
	Alerts   []telemetry.Alert
	// Rec is the current frame of the recording indicator
	Rec string
}

// Dashboard renders the video feed with its HUD, the control hub and the data ticker
func Dashboard(m components.Marker, data DashboardData, width, height int) string {
	m = mark(m)

	leftWidth := width - tickerWidth - 1
	stacked := width < stackedBelowWidth
	if stacked {
		leftWidth = width
	}

	videoHeight := leftWidth / components.VideoAspectDivisor
	if avail := height - controlHubHeight; videoHeight > avail {
		videoHeight = avail
	}

	if videoHeight < minVideoHeight {
		videoHeight = minVideoHeight
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m(ZoneVideo, video(data, leftWidth, videoHeight)),
		controlHub(leftWidth),
	)

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", ticker(m, data, width))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", ticker(m, data, tickerWidth))
}

func video(data DashboardData, width, height int) string {
	hud := data.HUD
	line := lipgloss.NewStyle().Background(components.BgVideo).Foreground(lipgloss.Color("15")).Width(width)

	rec := ""
	if hud.Recording {
		rec = components.RecStyle.Render("REC " + data.Rec)
	}

	feed := "Waiting for Robot Connection..."
	if data.Frame != nil {
		feed = fmt.Sprintf("Live feed %dx%d", data.Frame.Width, data.Frame.Height)
		if data.Frame.Source != "" {
			feed += " from " + data.Frame.Source
		}
	}

	breadcrumb := lipgloss.NewStyle().
		Background(components.BgVideo).
		Foreground(components.FgSafe).
		Width(width).
		Align(lipgloss.Center).
		Render(hud.Breadcrumb)

	return lipgloss.JoinVertical(lipgloss.Left,
		line.Render(spread(" GPS: "+hud.GPS, "Time: "+hud.Elapsed+" ", width)),
		line.Render(spread(" Battery: "+hud.Battery, rec+" ", width)),
		placeholder(components.Truncate(feed, width), width, height-3, components.BgVideo),
		breadcrumb,
	)
}

func joystick(title string) string {
	pad := lipgloss.NewStyle().Width(components.JoystickWidth - 4).Align(lipgloss.Center)

	return components.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		pad.Render(components.Truncate(title, components.JoystickWidth-4)),
		pad.Render("▲"),
		pad.Render("◀ ● ▶"),
		pad.Render("▼"),
	))
}

func controlHub(width int) string {
	clean := lipgloss.NewStyle().
		Foreground(components.FgInverse).
		Background(components.FgCaution).
		Bold(true).
		Padding(0, 1).
		Render("CLEAN BLOCKAGE")

	center := lipgloss.JoinVertical(lipgloss.Center,
		clean,
		"",
		components.ButtonStyle.Render("Light")+" "+components.ButtonStyle.Render("Snapshot"),
	)

	if width < 2*components.JoystickWidth+lipgloss.Width(center)+2 {
		return lipgloss.JoinVertical(lipgloss.Left, center, "")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Center,
		joystick("Movement"),
		" ",
		center,
		" ",
		joystick("Camera/Tools"),
	))
}

// tickerLabel is the short classification shown in the dashboard ticker
func tickerLabel(status telemetry.SafetyStatus) string {
	switch status {
	case telemetry.Danger:
		return "Danger"
	case telemetry.Caution:
		return "Warning"
	default:
		return "OK"
	}
}

func ticker(m components.Marker, data DashboardData, width int) string {
	chemicals := []string{section("CHEMICALS")}
	for _, r := range data.Readings {
		text := fmt.Sprintf("%s: %s (%s)", r.Name, r.Reading, tickerLabel(r.Status))
		chemicals = append(chemicals, lipgloss.NewStyle().
			Foreground(components.SafetyColor(r.Status)).
			Render(components.Wrap(text, width)))
	}

	if len(data.Readings) == 0 {
		chemicals = append(chemicals, components.LabelStyle.Render("No readings"))
	}

	alerts := []string{section("AI ALERTS")}
	for _, a := range data.Alerts {
		alerts = append(alerts, components.Wrap(fmt.Sprintf("[%s] Alert: %s", a.Time, a.Message), width))
	}

	if len(data.Alerts) == 0 {
		alerts = append(alerts, components.LabelStyle.Render("No alerts"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m(ZoneTicker, strings.Join(chemicals, "\n")),
		"",
		strings.Join(alerts, "\n"),
	)
}
