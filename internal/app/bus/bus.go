package bus

//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventScreenChanged    MessageType = "screen_changed"
	EventRobotSelected    MessageType = "robot_selected"
	EventMissionSelected  MessageType = "mission_selected"
	EventMissionCleared   MessageType = "mission_cleared"
	EventFixturesReloaded MessageType = "fixtures_reloaded"
	EventFixturesFailed   MessageType = "fixtures_failed"
	EventSignal           MessageType = "signal"
)

// Message represents a bus message
type Message struct {
	ID        string
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// ScreenChanged indicates a navigation transition
type ScreenChanged struct {
	From    string
	To      string
	Trigger string
}

// RobotSelected indicates the operator picked a robot to connect to
type RobotSelected struct {
	Robot string
}

// MissionSelected indicates the operator drilled into a past mission
type MissionSelected struct {
	ID string
}

// FixturesReloaded indicates the fixture file changed and was reloaded
type FixturesReloaded struct {
	Path string
}

// FixturesFailed indicates a fixture reload was rejected
type FixturesFailed struct {
	Path  string
	Error error
}

// Signal contains information about a received OS signal
type Signal struct {
	Name string
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Bus.Buffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Str("id", msg.ID).Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { _ = recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case ScreenChanged:
		return fmt.Sprintf("{%s → %s, trigger: %s}", d.From, d.To, d.Trigger)
	case RobotSelected:
		return fmt.Sprintf("{robot: %s}", d.Robot)
	case MissionSelected:
		return fmt.Sprintf("{mission: %s}", d.ID)
	case FixturesReloaded:
		return fmt.Sprintf("{path: %s}", d.Path)
	case FixturesFailed:
		return fmt.Sprintf("{path: %s, error: %v}", d.Path, d.Error)
	case Signal:
		return fmt.Sprintf("{signal: %s}", d.Name)
	case nil:
		return "{}"
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
