package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/fx"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/monitor"
	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/console"
	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// UI creates a Bubble Tea program for the console
type UI func(ctx context.Context) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	navigation.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config     *config.Config
	Bus        bus.Bus
	Controller navigation.Controller
	Fleet      fleet.Source
	Filter     fleet.Filter
	Telemetry  telemetry.Source
	Archive    archive.Archive
	Monitor    monitor.Monitor
	Logger     logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		zones := zone.New()
		zones.SetEnabled(params.Config.Console.Mouse)

		go func() {
			<-ctx.Done()
			zones.Close()
		}()

		model := console.NewModel(ctx, console.Deps{
			Config:     params.Config,
			Bus:        params.Bus,
			Controller: params.Controller,
			Providers: console.Providers{
				Fleet:     params.Fleet,
				Telemetry: params.Telemetry,
				Archive:   params.Archive,
			},
			Filter:  params.Filter,
			Monitor: params.Monitor,
			Zones:   zones,
			Logger:  params.Logger,
		})

		opts := []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		}

		if params.Config.Console.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		p := tea.NewProgram(model, opts...)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
