package bus

import (
	"context"

	"go.uber.org/fx"

	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) Bus {
		b := New(cfg, log.WithComponent("BUS"))

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				b.Close()
				return nil
			},
		})

		return b
	}),
)
