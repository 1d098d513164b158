package console

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/app/ui/screens"
)

func Test_View_NotReady(t *testing.T) {
	m := newTestModel(t)
	m.state.ready = false

	assert.Equal(t, "Initializing…", m.View())
}

func Test_View_Screens(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		contains []string
		excludes []string
	}{
		{
			name:     "robot list",
			contains: []string{"AI Robotic Sewage Cleaner", "RC-Unit-01", "Status: Online", "[ Connect ]", "⋮"},
			excludes: []string{"←"},
		},
		{
			name:     "menu",
			keys:     []tea.KeyMsg{runes("m")},
			contains: []string{"Past Missions"},
		},
		{
			name:     "checklist",
			keys:     []tea.KeyMsg{keyEnter},
			contains: []string{"Pre-Mission Checklist", "Connected to: RC-Unit-01", "Robot Battery", "[ Start Mission ]", "←"},
			excludes: []string{"⋮"},
		},
		{
			name:     "dashboard",
			keys:     []tea.KeyMsg{keyEnter, keyEnter},
			contains: []string{"Mission Control", "GPS: Live", "Battery: 98%", "Waiting for Robot Connection...", "CHEMICALS", "AI ALERTS"},
		},
		{
			name:     "chemicals",
			keys:     []tea.KeyMsg{keyEnter, keyEnter, runes("c")},
			contains: []string{"Live Chemical Analysis", "Methane", "Hydrogen Sulfide", "Ammonia", "Export Chemical Data"},
		},
		{
			name:     "gps",
			keys:     []tea.KeyMsg{keyEnter, keyEnter, runes("g")},
			contains: []string{"GPS & Mapping", "Lat: 34.0522, Lon: -118.2437", "Share Live Location"},
		},
		{
			name:     "mission log",
			keys:     []tea.KeyMsg{runes("p")},
			contains: []string{"Past Mission Reports", "Mission: 10 Nov 2025 - 10:30 AM", "Mission: 09 Nov 2025 - 02:15 PM"},
		},
		{
			name:     "mission details",
			keys:     []tea.KeyMsg{runes("p"), keyEnter},
			contains: []string{"Mission Details", "Duration: 45 minutes", "Distance: 150 meters", "Video Recording", "Logs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)

			for _, k := range tt.keys {
				m = press(t, m, k)
			}

			view := m.View()

			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}

			for _, s := range tt.excludes {
				assert.NotContains(t, view, s)
			}
		})
	}
}

func Test_View_TipsToggle(t *testing.T) {
	m := newTestModel(t)
	m.ui.showTips = true
	tip := m.renderTip()
	assert.NotEmpty(t, tip)

	m.ui.showTips = false
	assert.Empty(t, m.renderTip())
}

func Test_View_LoadingUntilDataArrives(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyEnter)
	m = next.(Model)

	assert.Contains(t, m.renderBody(), "Loading…")
}

// click renders the view so the zone manager learns the layout, then clicks the zone
func click(t *testing.T, m Model, id string) Model {
	t.Helper()

	m.View()

	require.Eventually(t, func() bool {
		return m.zones.Get(id) != nil && !m.zones.Get(id).IsZero()
	}, time.Second, 10*time.Millisecond, "zone %s never registered", id)

	z := m.zones.Get(id)

	next, cmd := m.Update(tea.MouseMsg{
		X:      z.StartX,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})

	return settle(t, next.(Model), cmd)
}

func Test_Mouse(t *testing.T) {
	t.Run("connect button opens the checklist", func(t *testing.T) {
		m := newTestModel(t)

		m = click(t, m, screens.ZoneRobot(0))
		assert.Equal(t, navigation.PreMissionChecklist, m.controller.Screen())
	})

	t.Run("offline connect button is refused", func(t *testing.T) {
		m := newTestModel(t)

		m = click(t, m, screens.ZoneRobot(1))
		assert.Equal(t, navigation.RobotList, m.controller.Screen())
		assert.Equal(t, 1, m.state.robotCursor)
		assert.NotEmpty(t, m.state.err)
	})

	t.Run("dashboard video opens gps and ticker opens chemicals", func(t *testing.T) {
		m := newTestModel(t)

		m = click(t, m, screens.ZoneRobot(0))
		m = click(t, m, screens.ZoneStart)
		assert.Equal(t, navigation.Dashboard, m.controller.Screen())

		m = click(t, m, screens.ZoneVideo)
		assert.Equal(t, navigation.GPSMapping, m.controller.Screen())

		m = click(t, m, screens.ZoneBack)
		m = click(t, m, screens.ZoneTicker)
		assert.Equal(t, navigation.ChemicalAnalysis, m.controller.Screen())
	})

	t.Run("menu opens past missions", func(t *testing.T) {
		m := newTestModel(t)

		m = click(t, m, screens.ZoneMenu)
		assert.True(t, m.state.menuOpen)

		m = click(t, m, screens.ZonePastMissions)
		assert.Equal(t, navigation.MissionLog, m.controller.Screen())

		m = click(t, m, screens.ZoneMission(1))
		assert.Equal(t, "2", m.controller.State().Mission.ID)
	})

	t.Run("motion is ignored", func(t *testing.T) {
		m := newTestModel(t)

		m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
		assert.Equal(t, navigation.RobotList, m.controller.Screen())
	})
}
