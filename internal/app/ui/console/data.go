package console

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/monitor"
	"sewerlink/internal/app/ui/components"
	"sewerlink/internal/app/ui/navigation"
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// channelClosedMsg signals the bus channel has closed
type channelClosedMsg struct{}

// statsMsg carries the console's own resource usage
type statsMsg struct {
	stats monitor.Stats
	err   error
}

// loadedMsg carries freshly fetched data for the screen identified by key
type loadedMsg struct {
	key  string
	data screenData
	err  error
}

// loadKey identifies what a fetch was made for so stale results can be dropped
func loadKey(st navigation.State) string {
	key := string(st.Screen)
	if st.Robot != nil {
		key += "@" + st.Robot.Name
	}

	if st.Mission != nil {
		key += "#" + st.Mission.ID
	}

	return key
}

// fetch reads what the given screen shows from the providers
func fetch(ctx context.Context, p Providers, filter fleet.Filter, st navigation.State) (screenData, error) {
	var (
		data screenData
		err  error
	)

	switch st.Screen {
	case navigation.RobotList:
		data.robots, err = p.Fleet.Robots(ctx)
		if err == nil && filter != nil {
			data.robots = filter.Apply(data.robots)
		}

	case navigation.PreMissionChecklist:
		if st.Robot != nil {
			data.checklist, err = p.Telemetry.Checklist(ctx, *st.Robot)
		}

	case navigation.Dashboard:
		if data.hud, err = p.Telemetry.HUD(ctx); err != nil {
			break
		}

		if data.frame, err = p.Telemetry.Frame(ctx); err != nil {
			break
		}

		if data.readings, err = p.Telemetry.Readings(ctx); err != nil {
			break
		}

		data.alerts, err = p.Telemetry.Alerts(ctx)

	case navigation.ChemicalAnalysis:
		data.readings, err = p.Telemetry.Readings(ctx)

	case navigation.GPSMapping:
		data.position, err = p.Telemetry.Position(ctx)

	case navigation.MissionLog:
		if data.missions, err = p.Archive.Missions(ctx); err != nil {
			break
		}

		if st.Mission != nil {
			data.logs, err = p.Archive.Logs(ctx, st.Mission.ID)
		}
	}

	if err != nil {
		return data, fmt.Errorf("failed to load %s: %w", st.Screen.Title(), err)
	}

	return data, nil
}

// loadCmd fetches the data for st off the UI loop
func loadCmd(ctx context.Context, p Providers, filter fleet.Filter, st navigation.State) tea.Cmd {
	return func() tea.Msg {
		data, err := fetch(ctx, p, filter, st)
		return loadedMsg{key: loadKey(st), data: data, err: err}
	}
}

// waitForMsgCmd waits for the next bus message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = components.UITickInterval
	}

	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd schedules a single sample of the console's own usage
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	if mon == nil {
		return nil
	}

	return tea.Tick(components.StatsPollingInterval, func(time.Time) tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, components.StatsCallTimeout)
		defer cancel()

		stats, err := mon.Self(callCtx)

		return statsMsg{stats: stats, err: err}
	})
}
