package bus

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Bus.Buffer = 10

	return cfg
}

func Test_New(t *testing.T) {
	b := New(testConfig(), nil)

	assert.NotNil(t, b)
}

func Test_Bus_PublishSubscribe(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{
		Type: EventRobotSelected,
		Data: RobotSelected{Robot: "RC-Unit-01"},
	})

	select {
	case msg := <-ch:
		assert.Equal(t, EventRobotSelected, msg.Type)
		assert.NotEmpty(t, msg.ID)
		assert.False(t, msg.Timestamp.IsZero())

		data, ok := msg.Data.(RobotSelected)
		assert.True(t, ok)
		assert.Equal(t, "RC-Unit-01", data.Robot)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected message")
	}
}

func Test_Bus_UniqueIDs(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventScreenChanged})
	b.Publish(Message{Type: EventScreenChanged})

	first := <-ch
	second := <-ch

	assert.NotEqual(t, first.ID, second.ID)
}

func Test_Bus_MultipleSubscribers(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)

	b.Publish(Message{Type: EventScreenChanged, Data: ScreenChanged{From: "robot_list", To: "pre_mission_checklist"}})

	for _, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, EventScreenChanged, msg.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Expected message on subscriber")
		}
	}
}

func Test_Bus_Unsubscribe_OnContextCancel(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	cancel()
	time.Sleep(10 * time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed after context cancel")
}

func Test_Bus_Close(t *testing.T) {
	b := New(testConfig(), nil)

	ch := b.Subscribe(context.Background())

	b.Close()

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed")

	b.Publish(Message{Type: EventScreenChanged})
}

func Test_Bus_Subscribe_AfterClose(t *testing.T) {
	b := New(testConfig(), nil)
	b.Close()

	ch := b.Subscribe(context.Background())

	_, ok := <-ch
	assert.False(t, ok)
}

func Test_Bus_Close_AlreadyClosed(t *testing.T) {
	b := New(testConfig(), nil)

	b.Close()
	b.Close()
}

func Test_Bus_CriticalMessage_BlockingSubscriber(t *testing.T) {
	cfg := testConfig()
	cfg.Bus.Buffer = 1

	b := New(cfg, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventScreenChanged, Critical: false})
	b.Publish(Message{Type: EventFixturesReloaded, Critical: true})

	received := 0
	timeout := time.After(100 * time.Millisecond)

loop:
	for {
		select {
		case <-ch:
			received++
			if received >= 2 {
				break loop
			}
		case <-timeout:
			break loop
		}
	}

	assert.Equal(t, 2, received)
}

func Test_Bus_Publish_WithLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig()
	cfg.Logging.Level = logger.DebugLevel
	cfg.Logging.Format = logger.JSONFormat

	b := New(cfg, logger.NewLoggerWithOutput(cfg, &buf))
	defer b.Close()

	b.Publish(Message{Type: EventMissionSelected, Data: MissionSelected{ID: "1"}})

	assert.Contains(t, buf.String(), "mission_selected {mission: 1}")
}

func Test_NoOp(t *testing.T) {
	b := NoOp()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventScreenChanged})

	select {
	case <-ch:
		t.Fatal("NoOp should not deliver messages")
	case <-time.After(10 * time.Millisecond):
	}

	cancel()
	time.Sleep(10 * time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok)

	b.Close()
}

func Test_FormatData(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		contains string
	}{
		{name: "ScreenChanged", data: ScreenChanged{From: "dashboard", To: "gps_mapping", Trigger: "open_gps"}, contains: "dashboard → gps_mapping"},
		{name: "RobotSelected", data: RobotSelected{Robot: "RC-Unit-01"}, contains: "RC-Unit-01"},
		{name: "MissionSelected", data: MissionSelected{ID: "2"}, contains: "mission: 2"},
		{name: "FixturesReloaded", data: FixturesReloaded{Path: "fixtures.yaml"}, contains: "fixtures.yaml"},
		{name: "FixturesFailed", data: FixturesFailed{Path: "fixtures.yaml", Error: errors.New("bad yaml")}, contains: "bad yaml"},
		{name: "Signal", data: Signal{Name: "SIGTERM"}, contains: "SIGTERM"},
		{name: "Nil", data: nil, contains: "{}"},
		{name: "Unknown", data: struct{ Foo string }{Foo: "bar"}, contains: "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, formatData(tt.data), tt.contains)
		})
	}
}
