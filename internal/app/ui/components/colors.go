package components

import (
	"github.com/charmbracelet/lipgloss"

	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/telemetry"
)

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#2DD4BF") // Teal - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text
	FgInverse = lipgloss.Color("0")       // Black - text on filled buttons

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - selected background
	BgVideo     = lipgloss.Color("233") // Near black - video placeholder

	// Status colors - safety and robot states
	FgSafe     = lipgloss.Color("10") // Green - safe / online
	FgCaution  = lipgloss.Color("11") // Yellow - caution / connecting
	FgDanger   = lipgloss.Color("9")  // Red - danger / recording
	FgDisabled = lipgloss.Color("8")  // Gray - offline / unavailable
)

// SafetyColor returns the color for a chemical safety status
func SafetyColor(status telemetry.SafetyStatus) lipgloss.Color {
	switch status {
	case telemetry.Danger:
		return FgDanger
	case telemetry.Caution:
		return FgCaution
	default:
		return FgSafe
	}
}

// RobotColor returns the color for a robot connection status
func RobotColor(status fleet.Status) lipgloss.Color {
	switch status {
	case fleet.Online:
		return FgSafe
	case fleet.Connecting:
		return FgCaution
	default:
		return FgDisabled
	}
}
