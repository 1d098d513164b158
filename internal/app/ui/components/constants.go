package components

import (
	"time"

	"sewerlink/internal/config"
)

// UI timing constants
const (
	// UITickInterval is the base animation tick and must match console.tick's default
	UITickInterval = config.DefaultTick

	// UITicksPerSecond drives the spring FPS
	UITicksPerSecond = int(time.Second / UITickInterval)

	// TipRotationTicks is how long a footer tip stays up
	TipRotationTicks = 80

	// StatsPollingInterval is how often the footer cpu/mem is refreshed
	StatsPollingInterval = 2 * time.Second
	StatsCallTimeout     = 500 * time.Millisecond
)

// Layout constants
const (
	DefaultWidth       = 80
	MinContentWidth    = 24
	HeaderFixedChars   = 6
	FooterFixedChars   = 5
	MinSeparatorWidth  = 3
	CardPadding        = 4
	GraphHeight        = 6
	VideoAspectDivisor = 3
	JoystickWidth      = 17
)

// Header icons
const (
	IconBack = "←"
	IconMenu = "⋮"
	IconPin  = "📍"
	IconRec  = "●"
)

// Selection indicators
const (
	IndicatorEmpty    = "  "
	IndicatorSelected = "▸ "
)
