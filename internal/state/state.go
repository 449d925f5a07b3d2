// Package state provides thread-safe state management for the application.
package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/plot"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventStarAdded   EventType = "STAR_ADDED"
	EventStarRemoved EventType = "STAR_REMOVED"
	EventListCleared EventType = "LIST_CLEARED"
	EventAxesChanged EventType = "AXES_CHANGED"
)

// ErrNoSuchEntry is returned when an index does not name an entry.
var ErrNoSuchEntry = errors.New("no such entry")

// Event represents a change to the star list or diagram settings.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Star      string    `json:"star,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// Snapshot is a consistent copy of the state at one instant.
type Snapshot struct {
	Entries   []catalog.Entry
	Axes      plot.Axes
	Events    []Event
	UpdatedAt time.Time
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	entries   []catalog.Entry
	axes      plot.Axes
	updatedAt time.Time

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	now func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	Axes      plot.Axes
	MaxEvents int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Axes:      plot.DefaultAxes(),
		MaxEvents: 50,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		axes:      cfg.Axes,
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
		now:       time.Now,
	}
}

// Add appends an entry to the end of the list.
func (m *Manager) Add(e catalog.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, e)
	m.touch(Event{Type: EventStarAdded, Star: e.Star.Name, Count: len(m.entries)})
}

// AddAll appends several entries as one change.
func (m *Manager) AddAll(entries []catalog.Entry) {
	if len(entries) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entries...)
	for _, e := range entries {
		m.touch(Event{Type: EventStarAdded, Star: e.Star.Name, Count: len(m.entries)})
	}
}

// Remove deletes the entry at index i.
func (m *Manager) Remove(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.entries) {
		return fmt.Errorf("remove %d: %w", i, ErrNoSuchEntry)
	}
	name := m.entries[i].Star.Name
	m.entries = append(m.entries[:i:i], m.entries[i+1:]...)
	m.touch(Event{Type: EventStarRemoved, Star: name, Count: len(m.entries)})
	return nil
}

// Clear empties the list and starts a new one.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = nil
	m.touch(Event{Type: EventListCleared})
}

// Len returns the number of entries.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Axes returns the current diagram axes.
func (m *Manager) Axes() plot.Axes {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.axes
}

// SetAxes replaces the diagram axes if they are valid.
func (m *Manager) SetAxes(a plot.Axes) error {
	if err := a.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if a == m.axes {
		return nil
	}
	m.axes = a
	m.touch(Event{Type: EventAxesChanged})
	return nil
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]catalog.Entry, len(m.entries))
	copy(entries, m.entries)

	return Snapshot{
		Entries:   entries,
		Axes:      m.axes,
		Events:    m.getEventsOrdered(),
		UpdatedAt: m.updatedAt,
	}
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := m.getEventsOrdered()
	if n >= len(events) {
		return events
	}
	return events[len(events)-n:]
}

// touch stamps the change and logs e. Caller must hold the write lock.
func (m *Manager) touch(e Event) {
	m.updatedAt = m.now()
	e.Timestamp = m.updatedAt
	m.addEvent(e)
}

func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	result := make([]Event, len(m.events))
	if len(m.events) < m.maxEvents {
		copy(result, m.events)
		return result
	}

	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}
