package events

import (
	"sync"
	"time"

	"github.com/alimgiray/contributor-registry/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// EventAdminChanged is emitted after an admin transfer commits.
	EventAdminChanged = "admin_changed"
	// EventUpgraded is emitted after a code upgrade request is recorded.
	EventUpgraded = "upgraded"
)

// Event is a structured notification for external observers. Delivery is
// fire-and-forget; registry state never depends on it.
type Event struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	At     time.Time              `json:"at"`
	Fields map[string]interface{} `json:"fields"`
}

// New builds an event with a fresh ID and the current time.
func New(name string, fields map[string]interface{}) Event {
	return Event{
		ID:     uuid.New().String(),
		Name:   name,
		At:     time.Now(),
		Fields: fields,
	}
}

// Sink accepts events for delivery.
type Sink interface {
	Publish(event Event)
}

// LogSink writes events to the structured log.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Publish(event Event) {
	entry := logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_name": event.Name,
	})
	for key, value := range event.Fields {
		entry = entry.WithField(key, value)
	}
	entry.Info("registry event")
}

// Memory records published events in order. Test use.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *Memory {
	return &Memory{}
}

func (m *Memory) Publish(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]Event, len(m.events))
	copy(copied, m.events)
	return copied
}
