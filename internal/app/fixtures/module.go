package fixtures

import (
	"context"

	"go.uber.org/fx"

	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// Module provides the fixture store, its watcher and the provider adapters
var Module = fx.Module("fixtures",
	fx.Provide(
		func(cfg *config.Config) (Store, error) {
			return NewStore(cfg.Fixtures.File)
		},
		NewWatcher,
		NewFleet,
		NewTelemetry,
		NewArchive,
	),
	fx.Invoke(registerWatcher),
)

func registerWatcher(lc fx.Lifecycle, w Watcher, log logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := w.Start(ctx); err != nil {
				log.Warn().Err(err).Msg("Fixture hot-reload disabled")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			w.Close()

			return nil
		},
	})
}
