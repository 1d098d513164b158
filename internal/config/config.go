package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"sewerlink/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging  Logging  `yaml:"logging"`
	Console  Console  `yaml:"console"`
	Fixtures Fixtures `yaml:"fixtures"`
	Fleet    Fleet    `yaml:"fleet"`
	Bus      Bus      `yaml:"bus"`
	Sentry   Sentry   `yaml:"sentry"`
	Version  int      `yaml:"version"`
}

// Logging controls log level, format and an optional file sink
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Console holds TUI settings
type Console struct {
	Tick  time.Duration `yaml:"tick"`
	Tips  bool          `yaml:"tips"`
	Mouse bool          `yaml:"mouse"`
}

// Fixtures points at the placeholder data set and its hot-reload settings
type Fixtures struct {
	File     string        `yaml:"file"`
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce"`
}

// Fleet restricts which robots are listed
type Fleet struct {
	Filter []string `yaml:"filter"`
}

// Bus sizes subscriber channels
type Bus struct {
	Buffer int `yaml:"buffer"`
}

// Sentry enables error reporting when DSN is set
type Sentry struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.Console.Tick = DefaultTick
	cfg.Console.Tips = true
	cfg.Console.Mouse = true
	cfg.Fixtures.File = DefaultFixturesFile
	cfg.Fixtures.Watch = false
	cfg.Fixtures.Debounce = DefaultDebounce
	cfg.Fleet.Filter = []string{}
	cfg.Bus.Buffer = DefaultBusBuffer

	return cfg
}

// Load loads the configuration from sewerlink.yaml, .env and SEWERLINK_* variables
func Load() (*Config, error) {
	return LoadFile(ConfigFile)
}

// LoadFile loads the configuration from the given path; a missing file yields defaults
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every key so environment overrides are picked up by Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("console.tick", cfg.Console.Tick)
	v.SetDefault("console.tips", cfg.Console.Tips)
	v.SetDefault("console.mouse", cfg.Console.Mouse)
	v.SetDefault("fixtures.file", cfg.Fixtures.File)
	v.SetDefault("fixtures.watch", cfg.Fixtures.Watch)
	v.SetDefault("fixtures.debounce", cfg.Fixtures.Debounce)
	v.SetDefault("fleet.filter", cfg.Fleet.Filter)
	v.SetDefault("bus.buffer", cfg.Bus.Buffer)
	v.SetDefault("sentry.dsn", cfg.Sentry.DSN)
	v.SetDefault("sentry.environment", cfg.Sentry.Environment)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Console.Tick <= 0 {
		return errors.ErrInvalidTick
	}

	if c.Bus.Buffer <= 0 {
		return errors.ErrInvalidBusBuffer
	}

	if c.Fixtures.Debounce <= 0 {
		return errors.ErrInvalidDebounce
	}

	if c.Fixtures.Watch && c.Fixtures.File == "" {
		return errors.ErrFixturesPathNeeded
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: '%s' (must be 'console' or 'json')", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	for _, pattern := range c.Fleet.Filter {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidFilterGlob, pattern)
		}
	}

	return nil
}

// normalize trims and lowercases free-form values
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	filters := make([]string, 0, len(c.Fleet.Filter))
	for _, pattern := range c.Fleet.Filter {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			filters = append(filters, pattern)
		}
	}

	c.Fleet.Filter = filters
}
