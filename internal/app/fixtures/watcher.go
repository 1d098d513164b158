package fixtures

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// Watcher reloads the fixture store when its file changes on disk
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

type watcher struct {
	cfg       *config.Config
	store     Store
	bus       bus.Bus
	log       logger.Logger
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	file      string
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a Watcher; nothing is watched until Start
func NewWatcher(cfg *config.Config, store Store, b bus.Bus, log logger.Logger) Watcher {
	return &watcher{
		cfg:   cfg,
		store: store,
		bus:   b,
		log:   log.WithComponent("FIXTURES"),
	}
}

// Start watches the fixture file's directory when fixtures.watch is enabled
func (w *watcher) Start(ctx context.Context) error {
	if !w.cfg.Fixtures.Watch || w.store.Path() == "" {
		return nil
	}

	absPath, err := filepath.Abs(w.store.Path())
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Editors replace files by rename, so the directory is watched instead of the file
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return err
	}

	w.mu.Lock()
	w.file = absPath
	w.fsWatcher = fsw
	w.debouncer = NewDebouncer(w.cfg.Fixtures.Debounce, func(files []string) {
		w.reload()
	})
	w.mu.Unlock()

	w.log.Info().Msgf("Watching fixtures in %s", absPath)

	go w.processEvents(ctx)

	return nil
}

// Close stops watching and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.debouncer != nil {
		w.debouncer.Stop()
	}

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
}

func (w *watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Fixture watcher error")
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if filepath.Clean(event.Name) != w.file {
		return
	}

	w.debouncer.Trigger(event.Name)
}

// reload swaps in the new set or keeps the previous one on failure
func (w *watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}

	if err := w.store.Reload(); err != nil {
		w.log.Warn().Err(err).Msgf("Keeping previous fixtures, reload of %s failed", w.file)

		w.bus.Publish(bus.Message{
			Type: bus.EventFixturesFailed,
			Data: bus.FixturesFailed{Path: w.file, Error: err},
		})

		return
	}

	w.log.Info().Msgf("Reloaded fixtures from %s", w.file)

	w.bus.Publish(bus.Message{
		Type:     bus.EventFixturesReloaded,
		Data:     bus.FixturesReloaded{Path: w.file},
		Critical: true,
	})
}

func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
