package app

import (
	"go.uber.org/fx"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/cli"
	"sewerlink/internal/app/fixtures"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/generator"
	"sewerlink/internal/app/monitor"
	"sewerlink/internal/app/ui/wire"
	"sewerlink/internal/config/logger"
)

// Module wires every component; config, parsed options and the logger are supplied by main
var Module = fx.Options(
	logger.Module,
	bus.Module,
	fixtures.Module,
	fleet.Module,
	monitor.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
