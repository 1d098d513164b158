package fleet

//go:generate mockgen -source=fleet.go -destination=fleet_mock.go -package=fleet

import (
	"context"
	"strings"

	"sewerlink/internal/app/errors"
)

// Status is the connection state reported by a robot
type Status int

// Robot statuses
const (
	Offline Status = iota
	Online
	Connecting
)

// String returns the operator-facing label
func (s Status) String() string {
	switch s {
	case Online:
		return "Online"
	case Connecting:
		return "Connecting..."
	default:
		return "Offline"
	}
}

// ParseStatus converts a fixture label into a Status
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return Online, nil
	case "offline":
		return Offline, nil
	case "connecting", "connecting...":
		return Connecting, nil
	default:
		return Offline, errors.ErrInvalidRobotStatus
	}
}

// Robot is a unit the operator can connect to, identified by name
type Robot struct {
	Name   string
	Status Status
}

// Connectable reports whether a session may be started with the robot
func (r Robot) Connectable() bool {
	return r.Status == Online
}

// Source lists the robots known to the console
type Source interface {
	Robots(ctx context.Context) ([]Robot, error)
}
