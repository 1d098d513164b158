package telemetry

//go:generate mockgen -source=telemetry.go -destination=telemetry_mock.go -package=telemetry

import (
	"context"
	"strings"

	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
)

// SafetyStatus classifies a chemical reading
type SafetyStatus int

// Safety statuses
const (
	Safe SafetyStatus = iota
	Caution
	Danger
)

// String returns the label shown next to the status bar
func (s SafetyStatus) String() string {
	switch s {
	case Caution:
		return "Caution"
	case Danger:
		return "Danger"
	default:
		return "Safe"
	}
}

// ParseSafetyStatus converts a fixture label into a SafetyStatus
func ParseSafetyStatus(s string) (SafetyStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "safe", "ok":
		return Safe, nil
	case "caution", "warning":
		return Caution, nil
	case "danger":
		return Danger, nil
	default:
		return Safe, errors.ErrInvalidSafetyStatus
	}
}

// ChemicalReading is one gas sensor value with its classification
type ChemicalReading struct {
	Name    string
	Reading string
	Status  SafetyStatus
	History []float64
}

// CheckItem is a single pre-mission checklist row
type CheckItem struct {
	Label string
	Value string
}

// HUD holds the values overlaid on the video feed
type HUD struct {
	GPS        string
	Battery    string
	Elapsed    string
	Recording  bool
	Breadcrumb string
}

// Alert is a timestamped detection raised by the onboard vision model
type Alert struct {
	Time    string
	Message string
}

// Position is the robot's last known location
type Position struct {
	Lat  float64
	Lon  float64
	Path string
}

// Frame describes the current video frame; a nil Frame means no feed yet
type Frame struct {
	Width  int
	Height int
	Source string
}

// Source provides observed robot data to the console
type Source interface {
	Checklist(ctx context.Context, robot fleet.Robot) ([]CheckItem, error)
	Readings(ctx context.Context) ([]ChemicalReading, error)
	HUD(ctx context.Context) (HUD, error)
	Alerts(ctx context.Context) ([]Alert, error)
	Position(ctx context.Context) (Position, error)
	Frame(ctx context.Context) (*Frame, error)
}
