package console

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/fixtures"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

const (
	testWidth  = 110
	testHeight = 60
)

// newTestModel builds a console over the built-in fixtures, sized and loaded on the robot list
func newTestModel(t *testing.T) Model {
	t.Helper()

	store, err := fixtures.NewStore("")
	require.NoError(t, err)

	return newTestModelWith(t, Providers{
		Fleet:     fixtures.NewFleet(store),
		Telemetry: fixtures.NewTelemetry(store),
		Archive:   fixtures.NewArchive(store),
	}, nil)
}

func newTestModelWith(t *testing.T, providers Providers, filter fleet.Filter) Model {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.DefaultConfig()
	log := logger.NewLoggerWithOutput(cfg, io.Discard)
	b := bus.NoOp()

	zones := zone.New()
	t.Cleanup(zones.Close)

	m := NewModel(ctx, Deps{
		Config:     cfg,
		Bus:        b,
		Controller: navigation.NewController(b, log),
		Providers:  providers,
		Filter:     filter,
		Zones:      zones,
		Logger:     log,
	})

	m = send(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	return settle(t, m, m.reload())
}

// send runs msg through Update
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)

	model, ok := next.(Model)
	require.True(t, ok)

	return model
}

// press sends a key and applies the screen reload it triggers
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()

	next, cmd := m.Update(msg)

	model, ok := next.(Model)
	require.True(t, ok)

	return settle(t, model, cmd)
}

// settle applies the result of a load command; other commands are ignored
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	if cmd == nil {
		return m
	}

	if msg, ok := cmd().(loadedMsg); ok {
		return send(t, m, msg)
	}

	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)
