package colors

import (
	"sewerlink/internal/app/fleet"
)

// ANSI color codes for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Magenta = "\033[35m"
	White   = "\033[37m"
	Gray    = "\033[90m"
)

// Color functions for semantic styling
func Primary(text string) string {
	return Magenta + text + Reset
}

func Success(text string) string {
	return Green + text + Reset
}

func Warning(text string) string {
	return Yellow + text + Reset
}

func Error(text string) string {
	return Red + text + Reset
}

func Muted(text string) string {
	return Gray + text + Reset
}

func Title(text string) string {
	return Bold + White + text + Reset
}

func Subtitle(text string) string {
	return Bold + text + Reset
}

// UI symbols for plain listings
const (
	StatusOnline     = "●"
	StatusOffline    = "○"
	StatusConnecting = "◐"

	TreeBranch = "├─"
	TreeLast   = "└─"
)

// RobotSymbol returns the colored marker for a robot status
func RobotSymbol(status fleet.Status) string {
	switch status {
	case fleet.Online:
		return Success(StatusOnline)
	case fleet.Connecting:
		return Warning(StatusConnecting)
	default:
		return Muted(StatusOffline)
	}
}

// RobotStatus colors the status label the same way as its marker
func RobotStatus(status fleet.Status) string {
	switch status {
	case fleet.Online:
		return Success(status.String())
	case fleet.Connecting:
		return Warning(status.String())
	default:
		return Muted(status.String())
	}
}

// Branch returns the tree connector for item i of n
func Branch(i, n int) string {
	if i == n-1 {
		return TreeLast
	}

	return TreeBranch
}
