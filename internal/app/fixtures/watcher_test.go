package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sewerlink/internal/app/bus"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) logger.Logger {
	mockLog := logger.NewMockLogger(ctrl)
	componentLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(componentLog).AnyTimes()
	componentLog.EXPECT().Debug().Return(nil).AnyTimes()
	componentLog.EXPECT().Info().Return(nil).AnyTimes()
	componentLog.EXPECT().Warn().Return(nil).AnyTimes()
	componentLog.EXPECT().Error().Return(nil).AnyTimes()

	return mockLog
}

func watchConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Fixtures.Watch = true
	cfg.Fixtures.Debounce = 20 * time.Millisecond

	return cfg
}

func waitForEvent(t *testing.T, ch <-chan bus.Message, eventType bus.MessageType) bus.Message {
	t.Helper()

	timeout := time.After(2 * time.Second)

	for {
		select {
		case msg := <-ch:
			if msg.Type == eventType {
				return msg
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", eventType)
			return bus.Message{}
		}
	}
}

func Test_Watcher_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	cfg.Fixtures.Watch = false

	store := NewMockStore(ctrl)

	w := NewWatcher(cfg, store, bus.NoOp(), newTestLogger(ctrl))

	assert.NoError(t, w.Start(context.Background()))

	w.Close()
	w.Close()
}

func Test_Watcher_EmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().Path().Return("")

	w := NewWatcher(watchConfig(), store, bus.NoOp(), newTestLogger(ctrl))
	defer w.Close()

	assert.NoError(t, w.Start(context.Background()))
}

func Test_Watcher_MissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().Path().Return(filepath.Join(t.TempDir(), "missing", "fixtures.yaml")).AnyTimes()

	w := NewWatcher(watchConfig(), store, bus.NoOp(), newTestLogger(ctrl))
	defer w.Close()

	assert.Error(t, w.Start(context.Background()))
}

func Test_Watcher_ReloadsOnWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := writeFile(t, dir, "robots:\n  - name: A\n    status: online\n")

	store, err := NewStore(path)
	require.NoError(t, err)

	cfg := watchConfig()
	b := bus.New(cfg, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := b.Subscribe(ctx)

	w := NewWatcher(cfg, store, b, newTestLogger(ctrl))
	defer w.Close()

	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("robots:\n  - name: B\n    status: offline\n"), 0644))

	msg := waitForEvent(t, events, bus.EventFixturesReloaded)

	data, ok := msg.Data.(bus.FixturesReloaded)
	require.True(t, ok)
	assert.Equal(t, filepath.Base(path), filepath.Base(data.Path))
	assert.Equal(t, "B", store.Current().Robots[0].Name)
}

func Test_Watcher_KeepsPreviousOnInvalidWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := writeFile(t, dir, "robots:\n  - name: A\n    status: online\n")

	store, err := NewStore(path)
	require.NoError(t, err)

	cfg := watchConfig()
	b := bus.New(cfg, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := b.Subscribe(ctx)

	w := NewWatcher(cfg, store, b, newTestLogger(ctrl))
	defer w.Close()

	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("robots: ["), 0644))

	msg := waitForEvent(t, events, bus.EventFixturesFailed)

	data, ok := msg.Data.(bus.FixturesFailed)
	require.True(t, ok)
	assert.Error(t, data.Error)
	assert.Equal(t, "A", store.Current().Robots[0].Name)
}

func Test_Watcher_IgnoresOtherFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := writeFile(t, dir, "robots: []\n")

	store := NewMockStore(ctrl)
	store.EXPECT().Path().Return(path).AnyTimes()
	store.EXPECT().Reload().Times(0)

	w := NewWatcher(watchConfig(), store, bus.NoOp(), newTestLogger(ctrl))
	defer w.Close()

	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))

	time.Sleep(100 * time.Millisecond)
}
