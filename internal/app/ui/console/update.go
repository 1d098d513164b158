package console

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/app/ui/screens"
)

const tickCounterMaximum = 1000000

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.layout()

	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.state.ready = true

		return m, nil

	case tickMsg:
		m.ui.tickCounter++
		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.updateBlinks()

		return m, tickCmd(m.cfg.Console.Tick)

	case statsMsg:
		if msg.err != nil {
			m.log.Debug().Err(msg.err).Msg("Failed to sample console stats")
		} else {
			m.state.stats = msg.stats
		}

		return m, statsCmd(m.ctx, m.monitor)

	case loadedMsg:
		return m.applyLoaded(msg), nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("Event channel closed, quitting")
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.ForceQuit):
		m.log.Warn().Msg("Force quit requested, exiting immediately")
		return m, tea.Quit

	case key.Matches(msg, keys.Quit):
		m.log.Info().Msg("Quit requested")
		return m, tea.Quit

	case key.Matches(msg, keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips
		return m, nil
	}

	if m.state.menuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Back):
		return m.back()

	case key.Matches(msg, keys.Up):
		return m.moveCursor(-1), nil

	case key.Matches(msg, keys.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, keys.Enter):
		return m.activate()

	case key.Matches(msg, keys.Chemicals):
		return m.navigate(m.controller.OpenChemicals(m.ctx))

	case key.Matches(msg, keys.GPS):
		return m.navigate(m.controller.OpenGPS(m.ctx))

	case key.Matches(msg, keys.Menu):
		if m.controller.MenuVisible() {
			m.state.menuOpen = true
		}

		return m, nil

	case key.Matches(msg, keys.PastMissions):
		if !m.controller.MenuVisible() {
			return m, nil
		}

		return m.navigate(m.controller.OpenMissionLog(m.ctx))
	}

	switch msg.String() {
	case "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd

		m.ui.viewport, cmd = m.ui.viewport.Update(msg)

		return m, cmd
	}

	return m, nil
}

// handleMenuKey processes input while the overflow menu is open
func (m Model) handleMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Menu):
		m.state.menuOpen = false
		return m, nil

	case key.Matches(msg, keys.Enter), key.Matches(msg, keys.PastMissions):
		m.state.menuOpen = false
		return m.navigate(m.controller.OpenMissionLog(m.ctx))
	}

	return m, nil
}

// handleMouse resolves a left click against the zones of the last render
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ui.viewport.LineUp(1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.ui.viewport.LineDown(1)
		return m, nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	in := func(id string) bool { return m.zones.Get(id).InBounds(msg) }

	if m.state.menuOpen {
		m.state.menuOpen = false

		if in(screens.ZonePastMissions) {
			return m.navigate(m.controller.OpenMissionLog(m.ctx))
		}

		return m, nil
	}

	switch {
	case m.controller.BackVisible() && in(screens.ZoneBack):
		return m.back()
	case m.controller.MenuVisible() && in(screens.ZoneMenu):
		m.state.menuOpen = true
		return m, nil
	}

	st := m.controller.State()

	switch st.Screen {
	case navigation.RobotList:
		for i := range m.state.data.robots {
			if in(screens.ZoneRobot(i)) {
				m.state.robotCursor = i
				return m.connect(i)
			}
		}

	case navigation.PreMissionChecklist:
		if in(screens.ZoneStart) {
			return m.navigate(m.controller.StartMission(m.ctx))
		}

	case navigation.Dashboard:
		if in(screens.ZoneVideo) {
			return m.navigate(m.controller.OpenGPS(m.ctx))
		}

		if in(screens.ZoneTicker) {
			return m.navigate(m.controller.OpenChemicals(m.ctx))
		}

	case navigation.MissionLog:
		if st.Mission != nil {
			break
		}

		for i := range m.state.data.missions {
			if in(screens.ZoneMission(i)) {
				m.state.missionCursor = i
				return m.openMission(i)
			}
		}
	}

	return m, nil
}

// activate performs the focused action of the current screen
func (m Model) activate() (Model, tea.Cmd) {
	st := m.controller.State()

	switch st.Screen {
	case navigation.RobotList:
		return m.connect(m.state.robotCursor)
	case navigation.PreMissionChecklist:
		return m.navigate(m.controller.StartMission(m.ctx))
	case navigation.MissionLog:
		if st.Mission == nil {
			return m.openMission(m.state.missionCursor)
		}
	}

	return m, nil
}

// connect opens the checklist for the i-th robot if it accepts connections
func (m Model) connect(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.state.data.robots) {
		return m, nil
	}

	robot := m.state.data.robots[i]
	if !robot.Connectable() {
		m.state.err = fmt.Sprintf("%s: %s is %s", errors.ErrRobotUnavailable, robot.Name, robot.Status)
		m.log.Debug().Msgf("Refused to connect to %s (%s)", robot.Name, robot.Status)

		return m, nil
	}

	m.controller.SelectRobot(m.ctx, robot)

	return m.navigate(nil)
}

// openMission drills into the i-th mission
func (m Model) openMission(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.state.data.missions) {
		return m, nil
	}

	return m.navigate(m.controller.SelectMission(m.state.data.missions[i]))
}

// back closes the menu or steps the controller back
func (m Model) back() (Model, tea.Cmd) {
	if m.state.menuOpen {
		m.state.menuOpen = false
		return m, nil
	}

	return m.navigate(m.controller.Back(m.ctx))
}

// navigate refreshes the screen after a controller operation; rejected operations leave the screen as is
func (m Model) navigate(err error) (Model, tea.Cmd) {
	if err != nil {
		m.log.Debug().Err(err).Msg("Navigation rejected")
		return m, nil
	}

	m.state.err = ""
	m.ui.viewport.GotoTop()

	return m, m.reload()
}

// reload fetches the data of the current screen
func (m Model) reload() tea.Cmd {
	st := m.controller.State()
	return loadCmd(m.ctx, m.providers, m.filter, st)
}

// applyLoaded stores fetched data if it still matches the current screen
func (m Model) applyLoaded(msg loadedMsg) Model {
	if msg.key != loadKey(m.controller.State()) {
		return m
	}

	m.state.loadKey = msg.key
	m.state.data = msg.data

	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("Failed to load screen data")
		m.state.err = msg.err.Error()
	} else {
		m.state.err = ""
	}

	m.state.robotCursor = clamp(m.state.robotCursor, len(msg.data.robots))
	m.state.missionCursor = clamp(m.state.missionCursor, len(msg.data.missions))

	return m
}

// moveCursor moves the list cursor of the current screen, or scrolls other screens
func (m Model) moveCursor(delta int) Model {
	st := m.controller.State()

	switch {
	case st.Screen == navigation.RobotList:
		m.state.robotCursor = clamp(m.state.robotCursor+delta, len(m.state.data.robots))
		m.scrollTo(m.state.robotCursor * robotCardHeight)
	case st.Screen == navigation.MissionLog && st.Mission == nil:
		m.state.missionCursor = clamp(m.state.missionCursor+delta, len(m.state.data.missions))
		m.scrollTo(m.state.missionCursor * missionRowHeight)
	case delta < 0:
		m.ui.viewport.LineUp(-delta)
	default:
		m.ui.viewport.LineDown(delta)
	}

	return m
}

// handleMessage reacts to bus messages
func (m Model) handleMessage(msg bus.Message) (Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventFixturesReloaded:
		m.log.Info().Msg("Fixtures reloaded, refreshing screen")
		return m, tea.Batch(m.reload(), waitForMsgCmd(m.msgChan))

	case bus.EventFixturesFailed:
		if data, ok := msg.Data.(bus.FixturesFailed); ok && data.Error != nil {
			m.state.err = data.Error.Error()
		}

	case bus.EventScreenChanged:
		if data, ok := msg.Data.(bus.ScreenChanged); ok {
			m.log.Debug().Msgf("Screen changed %s → %s", data.From, data.To)
		}

	case bus.EventSignal:
		return m, tea.Quit
	}

	return m, waitForMsgCmd(m.msgChan)
}

// updateBlinks drives the REC and connecting indicators on the screens that show them
func (m *Model) updateBlinks() {
	screen := m.controller.Screen()

	animate(m.ui.rec, screen == navigation.Dashboard && m.state.data.hud.Recording)
	animate(m.ui.pulse, screen == navigation.RobotList && m.hasConnecting())
}

func (m *Model) hasConnecting() bool {
	for _, r := range m.state.data.robots {
		if r.Status == fleet.Connecting {
			return true
		}
	}

	return false
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}

	if i < 0 {
		return 0
	}

	return i
}
