package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/errors"
)

// handleRun opens the console and blocks until the operator quits
func (c *cli) handleRun(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go c.relaySignals(ctx, sigChan)

	program, err := c.ui(ctx)
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	c.log.Info().Msg("Console started")

	if _, err := program.Run(); err != nil && !isCleanExit(err) {
		return fmt.Errorf("console stopped: %w", err)
	}

	c.log.Info().Msg("Console stopped")

	return nil
}

// relaySignals forwards OS signals to the bus so the console can quit itself
func (c *cli) relaySignals(ctx context.Context, sigChan <-chan os.Signal) {
	select {
	case sig := <-sigChan:
		c.log.Info().Msgf("Received signal %s, closing console", sig)
		c.bus.Publish(bus.Message{
			Type:     bus.EventSignal,
			Data:     bus.Signal{Name: sig.String()},
			Critical: true,
		})
	case <-ctx.Done():
	}
}

// isCleanExit reports whether the program ended because it was interrupted or cancelled
func isCleanExit(err error) bool {
	return errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled)
}
