package console

import (
	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/monitor"
	"sewerlink/internal/app/ui/components"
	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/app/ui/screens"
)

// Approximate rendered heights used to keep the list cursor in view
const (
	robotCardHeight  = 4
	missionRowHeight = 3
)

// View renders the UI
func (m Model) View() string {
	if !m.state.ready {
		return "Initializing…"
	}

	parts := []string{m.renderHeader(), components.RenderContent(m.ui.viewport.View())}

	if m.state.err != "" {
		parts = append(parts, components.ErrorStyle.Render(components.Truncate("  ! "+m.state.err, m.ui.width)))
	}

	parts = append(parts, m.renderFooter())

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// layout sizes the viewport to the space between header and footer and fills it with the body
func (m *Model) layout() {
	if !m.state.ready {
		return
	}

	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter()) + 1
	if m.state.err != "" {
		chrome++
	}

	height := m.ui.height - chrome
	if height < 1 {
		height = 1
	}

	m.ui.viewport.Width = m.bodyWidth()
	m.ui.viewport.Height = height
	m.ui.viewport.SetContent(m.renderBody())
}

func (m Model) bodyWidth() int {
	return components.ContentWidth(m.ui.width)
}

func (m Model) renderHeader() string {
	return components.RenderHeader(m.ui.width, components.Header{
		Title:       m.controller.Title(),
		BackVisible: m.controller.BackVisible(),
		MenuVisible: m.controller.MenuVisible(),
		BackZone:    screens.ZoneBack,
		MenuZone:    screens.ZoneMenu,
		Mark:        m.zones.Mark,
	})
}

func (m Model) renderFooter() string {
	stats := ""
	if m.state.stats != (monitor.Stats{}) {
		stats = m.state.stats.String()
	}

	return components.RenderFooter(m.ui.width, components.Footer{
		Help:  m.ui.help.View(m.ui.keys),
		Tip:   m.renderTip(),
		Stats: stats,
	})
}

// renderTip returns the current rotating tip or empty string if tips are disabled
func (m Model) renderTip() string {
	if !m.ui.showTips {
		return ""
	}

	rotation := m.ui.tickCounter / components.TipRotationTicks
	tipIndex := (m.ui.tipOffset + rotation) % len(components.Tips)

	return components.Tips[tipIndex]
}

// renderBody renders the current screen from the last fetched data
func (m Model) renderBody() string {
	st := m.controller.State()
	data := m.state.data
	width := m.bodyWidth()
	mark := m.zones.Mark

	if m.state.loadKey != loadKey(st) {
		return components.EmptyStateStyle.Render("Loading…")
	}

	var body string

	switch st.Screen {
	case navigation.RobotList:
		body = screens.RobotList(mark, data.robots, m.state.robotCursor, m.ui.pulse.Frame(), width)
		if m.state.menuOpen {
			body = lipgloss.JoinVertical(lipgloss.Left, screens.Menu(mark, width), body)
		}

	case navigation.PreMissionChecklist:
		if st.Robot != nil {
			body = screens.Checklist(mark, *st.Robot, data.checklist, width)
		}

	case navigation.Dashboard:
		body = screens.Dashboard(mark, screens.DashboardData{
			HUD:      data.hud,
			Frame:    data.frame,
			Readings: data.readings,
			Alerts:   data.alerts,
			Rec:      m.ui.rec.Frame(),
		}, width, m.ui.viewport.Height)

	case navigation.ChemicalAnalysis:
		body = screens.Chemicals(data.readings, width)

	case navigation.GPSMapping:
		body = screens.GPS(data.position, width)

	case navigation.MissionLog:
		if st.Mission != nil {
			body = screens.MissionDetails(*st.Mission, data.logs, width)
		} else {
			body = screens.MissionList(mark, data.missions, m.state.missionCursor, width)
		}
	}

	return body
}

// scrollTo moves the viewport just enough to show line
func (m *Model) scrollTo(line int) {
	vp := &m.ui.viewport

	switch {
	case line < vp.YOffset:
		vp.SetYOffset(line)
	case vp.Height > 0 && line >= vp.YOffset+vp.Height:
		vp.SetYOffset(line - vp.Height + robotCardHeight)
	}
}

func animate(b *components.Blink, on bool) {
	switch {
	case on:
		if !b.IsActive() {
			b.Start()
		}

		b.Update()
	case b.IsActive():
		b.Stop()
	}
}
