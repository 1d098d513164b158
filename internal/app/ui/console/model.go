package console

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/monitor"
	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/components"
	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// Providers groups the data sources the console reads from
type Providers struct {
	Fleet     fleet.Source
	Telemetry telemetry.Source
	Archive   archive.Archive
}

// Deps holds everything a Model needs besides its context
type Deps struct {
	Config     *config.Config
	Bus        bus.Bus
	Controller navigation.Controller
	Providers  Providers
	Filter     fleet.Filter
	Monitor    monitor.Monitor
	Zones      *zone.Manager
	Logger     logger.Logger
}

// screenData is what the current screen was last fetched with
type screenData struct {
	robots    []fleet.Robot
	checklist []telemetry.CheckItem
	hud       telemetry.HUD
	frame     *telemetry.Frame
	readings  []telemetry.ChemicalReading
	alerts    []telemetry.Alert
	position  telemetry.Position
	missions  []archive.Mission
	logs      []string
}

// Model is the Bubble Tea model for the teleoperation console
type Model struct {
	ctx        context.Context
	cfg        *config.Config
	controller navigation.Controller
	providers  Providers
	filter     fleet.Filter
	monitor    monitor.Monitor
	zones      *zone.Manager
	msgChan    <-chan bus.Message

	state struct {
		data          screenData
		loadKey       string
		err           string
		stats         monitor.Stats
		robotCursor   int
		missionCursor int
		menuOpen      bool
		ready         bool
	}

	ui struct {
		width       int
		height      int
		keys        components.KeyMap
		help        help.Model
		viewport    viewport.Model
		tickCounter int
		showTips    bool
		tipOffset   int
		rec         *components.Blink
		pulse       *components.Blink
	}

	log logger.Logger
}

// NewModel creates the console model positioned on the robot list
func NewModel(ctx context.Context, deps Deps) Model {
	log := deps.Logger.WithComponent("UI")
	msgChan := deps.Bus.Subscribe(ctx)

	zones := deps.Zones
	if zones == nil {
		zones = zone.New()
	}

	m := Model{
		ctx:        ctx,
		cfg:        deps.Config,
		controller: deps.Controller,
		providers:  deps.Providers,
		filter:     deps.Filter,
		monitor:    deps.Monitor,
		zones:      zones,
		msgChan:    msgChan,
		log:        log,
	}

	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)
	m.ui.showTips = deps.Config.Console.Tips
	m.ui.tipOffset = rand.IntN(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.rec = components.NewBlink(components.Recording)
	m.ui.pulse = components.NewBlink(components.Heartbeat)

	log.Debug().Msg("Created model and subscribed to events")

	return m
}

// Init starts the tick loop, the stats poller, the bus listener and the first fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForMsgCmd(m.msgChan),
		tickCmd(m.cfg.Console.Tick),
		statsCmd(m.ctx, m.monitor),
		loadCmd(m.ctx, m.providers, m.filter, m.controller.State()),
	)
}
