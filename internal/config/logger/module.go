package logger

import (
	"context"

	"go.uber.org/fx"

	"sewerlink/internal/config"
)

// Module registers Sentry flushing on shutdown; the Logger itself is supplied by main
var Module = fx.Options(
	fx.Invoke(registerSentry),
)

func registerSentry(lc fx.Lifecycle, cfg *config.Config, log Logger) {
	flush, err := InitSentry(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialise Sentry, error reporting disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			flush()
			return nil
		},
	})
}
