package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/stellar"
)

func mustEntry(t *testing.T, name string, temp int, lum float64) catalog.Entry {
	t.Helper()
	e, err := catalog.NewEntry(stellar.Star{Name: name, TemperatureK: temp, Luminosity: lum})
	if err != nil {
		t.Fatalf("NewEntry(%s): %v", name, err)
	}
	return e
}

func TestNewManager(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg)

	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.Axes() != cfg.Axes {
		t.Errorf("Axes = %+v, want %+v", m.Axes(), cfg.Axes)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

func TestManager_AddRemoveClear(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.Add(mustEntry(t, "Sun", 5800, 1))
	m.Add(mustEntry(t, "Vega", 9600, 40))
	m.Add(mustEntry(t, "Rigel", 12100, 120000))

	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}

	if err := m.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	snap := m.Snapshot()
	if len(snap.Entries) != 2 || snap.Entries[0].Star.Name != "Sun" || snap.Entries[1].Star.Name != "Rigel" {
		t.Errorf("entries after remove = %+v", snap.Entries)
	}

	if err := m.Remove(5); !errors.Is(err, ErrNoSuchEntry) {
		t.Errorf("Remove(5) err = %v, want ErrNoSuchEntry", err)
	}
	if err := m.Remove(-1); !errors.Is(err, ErrNoSuchEntry) {
		t.Errorf("Remove(-1) err = %v, want ErrNoSuchEntry", err)
	}

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", m.Len())
	}
}

func TestManager_RemoveDoesNotAliasSnapshot(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Add(mustEntry(t, "A", 5000, 1))
	m.Add(mustEntry(t, "B", 6000, 1))
	m.Add(mustEntry(t, "C", 7000, 1))

	before := m.Snapshot()
	if err := m.Remove(0); err != nil {
		t.Fatalf("Remove(0): %v", err)
	}
	if before.Entries[0].Star.Name != "A" || before.Entries[2].Star.Name != "C" {
		t.Errorf("earlier snapshot changed: %+v", before.Entries)
	}
}

func TestManager_SetAxes(t *testing.T) {
	m := NewManager(DefaultConfig())

	a := plot.DefaultAxes()
	a.TempMax = 40000
	if err := m.SetAxes(a); err != nil {
		t.Fatalf("SetAxes: %v", err)
	}
	if m.Axes().TempMax != 40000 {
		t.Errorf("TempMax = %d, want 40000", m.Axes().TempMax)
	}

	bad := a
	bad.TempMin = 50000
	if err := m.SetAxes(bad); !errors.Is(err, plot.ErrInvalidAxes) {
		t.Errorf("SetAxes(bad) err = %v, want ErrInvalidAxes", err)
	}
	if m.Axes().TempMin == 50000 {
		t.Error("invalid axes were stored")
	}

	events := m.RecentEvents(10)
	if len(events) != 1 || events[0].Type != EventAxesChanged {
		t.Errorf("events = %+v, want one AXES_CHANGED", events)
	}

	// Setting identical axes is not a change.
	if err := m.SetAxes(a); err != nil {
		t.Fatalf("SetAxes(same): %v", err)
	}
	if len(m.RecentEvents(10)) != 1 {
		t.Error("identical axes produced an event")
	}
}

func TestManager_Events(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.AddAll([]catalog.Entry{mustEntry(t, "Sun", 5800, 1), mustEntry(t, "Vega", 9600, 40)})
	_ = m.Remove(0)
	m.Clear()

	events := m.Snapshot().Events
	want := []EventType{EventStarAdded, EventStarAdded, EventStarRemoved, EventListCleared}
	if len(events) != len(want) {
		t.Fatalf("events = %+v, want %d", events, len(want))
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("event %d = %s, want %s", i, events[i].Type, typ)
		}
	}
	if events[2].Star != "Sun" {
		t.Errorf("removed star = %q, want Sun", events[2].Star)
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	m := NewManager(Config{Axes: plot.DefaultAxes(), MaxEvents: 3})

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		m.Add(mustEntry(t, name, 5000, 1))
	}

	events := m.Snapshot().Events
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	for i, name := range []string{"C", "D", "E"} {
		if events[i].Star != name {
			t.Errorf("event %d star = %s, want %s", i, events[i].Star, name)
		}
	}

	recent := m.RecentEvents(2)
	if len(recent) != 2 || recent[0].Star != "D" || recent[1].Star != "E" {
		t.Errorf("RecentEvents(2) = %+v", recent)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())
	entry := mustEntry(t, "Sun", 5800, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				m.Add(entry)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = m.Snapshot()
				_ = m.Axes()
			}
		}()
	}
	wg.Wait()

	if m.Len() != 500 {
		t.Errorf("Len = %d, want 500", m.Len())
	}
}
