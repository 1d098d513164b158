package config

import "time"

// app constants
const (
	AppName        = "sewerlink"
	AppDescription = "teleoperation console for sewage-inspection robots"
	Version        = "0.3.0"

	ConfigFile = "sewerlink.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "SEWERLINK"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// console constants
const (
	DefaultTick = 100 * time.Millisecond
)

// fixtures constants
const (
	DefaultFixturesFile = "fixtures.yaml"
	DefaultDebounce     = 300 * time.Millisecond
)

// bus constants
const (
	DefaultBusBuffer = 100
)

// lifecycle constants
const (
	ShutdownTimeout = 5 * time.Second
)
