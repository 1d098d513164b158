package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"sewerlink/internal/app"
	"sewerlink/internal/app/cli"
	"sewerlink/internal/app/colors"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:], os.Stderr))
}

// runApp parses args, builds the fx graph and blocks until the command finishes
func runApp(args []string, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		return fail(stderr, err)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return fail(stderr, err)
	}

	logOutput, closeLog, err := openLogOutput(cfg, opts)
	if err != nil {
		return fail(stderr, err)
	}
	defer closeLog()

	application := createApp(cfg, opts, logOutput)
	if err := application.Err(); err != nil {
		return fail(stderr, err)
	}

	application.Run()

	return 0
}

// fail prints err the way the cli does and returns the failure exit code
func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "%s %v\n", colors.Error("Error:"), err)
	return 1
}

// loadConfig wraps config.Load and applies command-line overrides
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	applyOverrides(cfg, opts)

	return cfg, nil
}

// applyOverrides lets --fixtures replace the configured fixture file
func applyOverrides(cfg *config.Config, opts *cli.Options) {
	if opts.Fixtures != "" {
		cfg.Fixtures.File = opts.Fixtures
	}
}

// openLogOutput discards logs while the console owns the terminal unless logging.file is set
func openLogOutput(cfg *config.Config, opts *cli.Options) (io.Writer, func(), error) {
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		return f, func() { _ = f.Close() }, nil
	}

	if opts.Type == cli.CommandRun {
		return io.Discard, func() {}, nil
	}

	return nil, func() {}, nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options, logOutput io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, logOutput)),
		fx.Supply(cfg, opts),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, out io.Writer) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level != logger.DebugLevel || out == io.Discard {
			return fxevent.NopLogger
		}

		if out == nil {
			out = os.Stdout
		}

		return &fxevent.ConsoleLogger{W: out}
	}
}
