package fixtures

import (
	"context"
	"fmt"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/telemetry"
)

type fleetSource struct {
	store Store
}

// NewFleet exposes the fixture robots as a fleet.Source
func NewFleet(store Store) fleet.Source {
	return &fleetSource{store: store}
}

func (s *fleetSource) Robots(ctx context.Context) ([]fleet.Robot, error) {
	set := s.store.Current()
	robots := make([]fleet.Robot, 0, len(set.Robots))

	for _, r := range set.Robots {
		robot, err := r.toRobot()
		if err != nil {
			return nil, err
		}

		robots = append(robots, robot)
	}

	return robots, nil
}

type telemetrySource struct {
	store Store
}

// NewTelemetry exposes the fixture readings as a telemetry.Source
func NewTelemetry(store Store) telemetry.Source {
	return &telemetrySource{store: store}
}

// Checklist returns the same rows for every robot
func (s *telemetrySource) Checklist(ctx context.Context, robot fleet.Robot) ([]telemetry.CheckItem, error) {
	set := s.store.Current()
	items := make([]telemetry.CheckItem, 0, len(set.Checklist))

	for _, c := range set.Checklist {
		items = append(items, telemetry.CheckItem{Label: c.Label, Value: c.Value})
	}

	return items, nil
}

func (s *telemetrySource) Readings(ctx context.Context) ([]telemetry.ChemicalReading, error) {
	set := s.store.Current()
	readings := make([]telemetry.ChemicalReading, 0, len(set.Chemicals))

	for _, c := range set.Chemicals {
		reading, err := c.toReading()
		if err != nil {
			return nil, err
		}

		readings = append(readings, reading)
	}

	return readings, nil
}

func (s *telemetrySource) HUD(ctx context.Context) (telemetry.HUD, error) {
	hud := s.store.Current().HUD

	return telemetry.HUD{
		GPS:        hud.GPS,
		Battery:    hud.Battery,
		Elapsed:    hud.Elapsed,
		Recording:  hud.Recording,
		Breadcrumb: hud.Breadcrumb,
	}, nil
}

func (s *telemetrySource) Alerts(ctx context.Context) ([]telemetry.Alert, error) {
	set := s.store.Current()
	alerts := make([]telemetry.Alert, 0, len(set.Alerts))

	for _, a := range set.Alerts {
		alerts = append(alerts, telemetry.Alert{Time: a.Time, Message: a.Message})
	}

	return alerts, nil
}

func (s *telemetrySource) Position(ctx context.Context) (telemetry.Position, error) {
	pos := s.store.Current().Position

	return telemetry.Position{Lat: pos.Lat, Lon: pos.Lon, Path: pos.Path}, nil
}

func (s *telemetrySource) Frame(ctx context.Context) (*telemetry.Frame, error) {
	video := s.store.Current().Video
	if video == nil {
		return nil, nil
	}

	return &telemetry.Frame{Width: video.Width, Height: video.Height, Source: video.Source}, nil
}

type archiveSource struct {
	store Store
}

// NewArchive exposes the fixture missions as an archive.Archive
func NewArchive(store Store) archive.Archive {
	return &archiveSource{store: store}
}

func (s *archiveSource) Missions(ctx context.Context) ([]archive.Mission, error) {
	set := s.store.Current()
	missions := make([]archive.Mission, 0, len(set.Missions))

	for _, m := range set.Missions {
		missions = append(missions, m.toMission())
	}

	return missions, nil
}

func (s *archiveSource) Logs(ctx context.Context, id string) ([]string, error) {
	for _, m := range s.store.Current().Missions {
		if m.ID == id {
			logs := make([]string, len(m.Logs))
			copy(logs, m.Logs)

			return logs, nil
		}
	}

	return nil, fmt.Errorf("%w: '%s'", errors.ErrMissionNotFound, id)
}
