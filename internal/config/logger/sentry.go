package logger

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"sewerlink/internal/config"
)

const sentryFlushTimeout = 2 * time.Second

// sentryHook forwards error-level log messages to Sentry
type sentryHook struct{}

// Run implements zerolog.Hook
func (sentryHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if level < zerolog.ErrorLevel || msg == "" {
		return
	}

	sentry.CaptureMessage(msg)
}

// InitSentry configures the Sentry client when a DSN is present and returns a flush func
func InitSentry(cfg *config.Config) (func(), error) {
	if cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
	if err != nil {
		return func() {}, err
	}

	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}
