package navigation

import "go.uber.org/fx"

// Module provides the navigation controller
var Module = fx.Options(
	fx.Provide(NewController),
)
