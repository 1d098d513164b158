package fixtures

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/telemetry"
)

// Set is the placeholder data shown by the console, as stored in fixtures.yaml
type Set struct {
	Robots    []Robot    `yaml:"robots"`
	Missions  []Mission  `yaml:"missions"`
	Chemicals []Chemical `yaml:"chemicals"`
	Checklist []Check    `yaml:"checklist"`
	HUD       HUD        `yaml:"hud"`
	Alerts    []Alert    `yaml:"alerts"`
	Position  Position   `yaml:"position"`
	Video     *Video     `yaml:"video,omitempty"`
}

// Robot is a fleet entry; status is one of online, offline, connecting
type Robot struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

// Mission is an archived run with its log lines
type Mission struct {
	ID       string   `yaml:"id"`
	Date     string   `yaml:"date"`
	Duration string   `yaml:"duration"`
	Distance string   `yaml:"distance"`
	Logs     []string `yaml:"logs"`
}

// Chemical is a sensor reading; status is one of safe, caution, danger
type Chemical struct {
	Name    string    `yaml:"name"`
	Reading string    `yaml:"reading"`
	Status  string    `yaml:"status"`
	History []float64 `yaml:"history"`
}

// Check is a pre-mission checklist row
type Check struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// HUD holds the video overlay values
type HUD struct {
	GPS        string `yaml:"gps"`
	Battery    string `yaml:"battery"`
	Elapsed    string `yaml:"elapsed"`
	Recording  bool   `yaml:"recording"`
	Breadcrumb string `yaml:"breadcrumb"`
}

// Alert is an AI detection line
type Alert struct {
	Time    string `yaml:"time"`
	Message string `yaml:"message"`
}

// Position is the robot location shown on the map screen
type Position struct {
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Path string  `yaml:"path"`
}

// Video describes a frame; omit it to show the waiting placeholder
type Video struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Source string `yaml:"source"`
}

// Default returns the built-in fixture set
func Default() *Set {
	logs := []string{
		"Chemical Warning: Methane level high at 10:35 AM",
		"AI Alert: Crack detected at 10:40 AM",
	}

	return &Set{
		Robots: []Robot{
			{Name: "RC-Unit-01", Status: "Online"},
			{Name: "RC-Unit-02", Status: "Offline"},
			{Name: "RC-Unit-03", Status: "Connecting..."},
		},
		Missions: []Mission{
			{ID: "1", Date: "10 Nov 2025 - 10:30 AM", Duration: "45 minutes", Distance: "150 meters", Logs: logs},
			{ID: "2", Date: "09 Nov 2025 - 02:15 PM", Duration: "30 minutes", Distance: "100 meters", Logs: logs},
		},
		Chemicals: []Chemical{
			{Name: "Methane", Reading: "5% LEL", Status: "Danger", History: []float64{2.1, 2.8, 3.4, 4.1, 4.6, 5.2, 4.9, 5.0}},
			{Name: "Hydrogen Sulfide", Reading: "15 ppm", Status: "Caution", History: []float64{9, 11, 12.5, 14, 16, 15.2, 14.8, 15}},
			{Name: "Ammonia", Reading: "3 ppm", Status: "Safe", History: []float64{2.6, 2.9, 3.2, 3.1, 2.8, 3.0, 3.1, 3.0}},
		},
		Checklist: []Check{
			{Label: "Robot Battery", Value: "100%"},
			{Label: "App/Robot Link", Value: "Strong"},
			{Label: "GPS Status", Value: "Locked (Acquiring...)"},
			{Label: "Sensor Status", Value: "All Green (Chemical, Camera, GPS)"},
		},
		HUD: HUD{
			GPS:        "Live",
			Battery:    "98%",
			Elapsed:    "00:15:32",
			Recording:  true,
			Breadcrumb: "--- Path Breadcrumb ---",
		},
		Alerts: []Alert{
			{Time: "10:32 AM", Message: "Suspicious Object Detected."},
			{Time: "10:31 AM", Message: "Potential crack in pipe wall."},
		},
		Position: Position{
			Lat:  34.0522,
			Lon:  -118.2437,
			Path: "25 meters North-East from entry point",
		},
	}
}

// Load reads the fixture file; a missing file or empty path yields Default
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadFixtures, err)
	}

	return Parse(data)
}

// Parse decodes and validates fixture YAML
func Parse(data []byte) (*Set, error) {
	set := &Set{}

	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseFixtures, err)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks names, identifiers and enum labels
func (s *Set) Validate() error {
	robots := make(map[string]struct{}, len(s.Robots))

	for _, r := range s.Robots {
		if r.Name == "" {
			return fmt.Errorf("%w: robot without name", errors.ErrInvalidFixture)
		}

		if _, exists := robots[r.Name]; exists {
			return fmt.Errorf("%w: duplicate robot '%s'", errors.ErrInvalidFixture, r.Name)
		}

		robots[r.Name] = struct{}{}

		if _, err := r.toRobot(); err != nil {
			return err
		}
	}

	missions := make(map[string]struct{}, len(s.Missions))

	for _, m := range s.Missions {
		if m.ID == "" {
			return fmt.Errorf("%w: mission without id", errors.ErrInvalidFixture)
		}

		if _, exists := missions[m.ID]; exists {
			return fmt.Errorf("%w: duplicate mission '%s'", errors.ErrInvalidFixture, m.ID)
		}

		missions[m.ID] = struct{}{}
	}

	for _, c := range s.Chemicals {
		if _, err := c.toReading(); err != nil {
			return err
		}
	}

	if s.Video != nil && (s.Video.Width < 0 || s.Video.Height < 0) {
		return fmt.Errorf("%w: negative video size", errors.ErrInvalidFixture)
	}

	return nil
}

// Marshal encodes the set as YAML
func (s *Set) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (r Robot) toRobot() (fleet.Robot, error) {
	status, err := fleet.ParseStatus(r.Status)
	if err != nil {
		return fleet.Robot{}, fmt.Errorf("%w: robot '%s': %w", errors.ErrInvalidFixture, r.Name, err)
	}

	return fleet.Robot{Name: r.Name, Status: status}, nil
}

func (m Mission) toMission() archive.Mission {
	return archive.Mission{
		ID:       m.ID,
		Date:     m.Date,
		Duration: m.Duration,
		Distance: m.Distance,
	}
}

func (c Chemical) toReading() (telemetry.ChemicalReading, error) {
	status, err := telemetry.ParseSafetyStatus(c.Status)
	if err != nil {
		return telemetry.ChemicalReading{}, fmt.Errorf("%w: chemical '%s': %w", errors.ErrInvalidFixture, c.Name, err)
	}

	history := make([]float64, len(c.History))
	copy(history, c.History)

	return telemetry.ChemicalReading{
		Name:    c.Name,
		Reading: c.Reading,
		Status:  status,
		History: history,
	}, nil
}
