package fleet

import (
	"go.uber.org/fx"

	"sewerlink/internal/config"
)

// Module provides the configured robot name filter
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) (Filter, error) {
		return NewFilter(cfg.Fleet.Filter)
	}),
)
