package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/state"
	"github.com/litescript/ls-stargraph/internal/stellar"
)

func TestFormatRow(t *testing.T) {
	e, err := catalog.NewEntry(stellar.Star{Name: "Rigel", TemperatureK: 12100, Luminosity: 120000})
	if err != nil {
		t.Fatal(err)
	}
	r := FormatRow(e)

	if r.Temperature != "12,100 K" {
		t.Errorf("Temperature = %q, want 12,100 K", r.Temperature)
	}
	if r.Luminosity != "120,000.00" {
		t.Errorf("Luminosity = %q, want 120,000.00", r.Luminosity)
	}
	if r.Class != "B9" {
		t.Errorf("Class = %q, want B9", r.Class)
	}
	if !strings.HasPrefix(r.Magnitude, "-") {
		t.Errorf("Magnitude = %q, want negative", r.Magnitude)
	}
}

func TestFormatRow_OutOfTableMarkers(t *testing.T) {
	hot, _ := catalog.NewEntry(stellar.Star{Name: "Hot", TemperatureK: 80000, Luminosity: 1})
	if got := FormatRow(hot).Class; got != ">O0" {
		t.Errorf("hot class = %q, want >O0", got)
	}
	cool, _ := catalog.NewEntry(stellar.Star{Name: "Cool", TemperatureK: 2000, Luminosity: 1})
	if got := FormatRow(cool).Class; got != "<M9" {
		t.Errorf("cool class = %q, want <M9", got)
	}
}

func TestFormatRow_TypedO0HasNoMarker(t *testing.T) {
	e, err := catalog.Derive(catalog.Input{
		Name:         "Hottest",
		Temperature:  "o0",
		Luminosity:   "1000",
		SpectralMode: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatRow(e).Class; got != "O0" {
		t.Errorf("class = %q, want O0", got)
	}
}

func TestFormatLuminosity(t *testing.T) {
	tests := []struct {
		lum  float64
		want string
	}{
		{1, "1.00"},
		{25.4, "25.40"},
		{196000, "196,000.00"},
		{0.0017, "1.70e-03"},
		{1e8, "1.00e+08"},
	}
	for _, tt := range tests {
		if got := FormatLuminosity(tt.lum); got != tt.want {
			t.Errorf("FormatLuminosity(%v) = %q, want %q", tt.lum, got, tt.want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, catalog.DefaultEntries())

	out := buf.String()
	for _, want := range []string{"Star List", "Sun", "5,800 K", "G2", "+4.83", "Total: "} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, nil)

	if !strings.Contains(buf.String(), "No stars") {
		t.Errorf("empty table = %q", buf.String())
	}
}

func TestWriteDiagram(t *testing.T) {
	a := plot.DefaultAxes()
	a.ShowNames = true

	var buf bytes.Buffer
	if err := WriteDiagram(&buf, catalog.DefaultEntries(), a, 80, 30); err != nil {
		t.Fatalf("WriteDiagram: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "\n"); got != 30 {
		t.Errorf("diagram has %d lines, want 30", got)
	}
	for _, want := range []string{"Sun", "Temperature", "25,000 K", "✶"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDiagram_TooSmall(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDiagram(&buf, nil, plot.DefaultAxes(), 10, 2)
	if !errors.Is(err, plot.ErrInvalidAxes) {
		t.Errorf("WriteDiagram(10x2) err = %v, want ErrInvalidAxes", err)
	}
}

func TestFormatEvent(t *testing.T) {
	ts := time.Date(2024, 3, 1, 21, 4, 5, 0, time.UTC)
	tests := []struct {
		event state.Event
		want  string
	}{
		{state.Event{Type: state.EventStarAdded, Timestamp: ts, Star: "Vega", Count: 3}, "21:04:05  added Vega (3 stars)"},
		{state.Event{Type: state.EventStarRemoved, Timestamp: ts, Star: "Vega", Count: 2}, "21:04:05  removed Vega (2 stars)"},
		{state.Event{Type: state.EventListCleared, Timestamp: ts}, "21:04:05  list cleared"},
		{state.Event{Type: state.EventAxesChanged, Timestamp: ts}, "21:04:05  axes changed"},
		{state.Event{Type: "OTHER", Timestamp: ts}, "21:04:05  OTHER"},
	}
	for _, tt := range tests {
		if got := FormatEvent(tt.event); got != tt.want {
			t.Errorf("FormatEvent(%s) = %q, want %q", tt.event.Type, got, tt.want)
		}
	}
}

func TestWriteEvents(t *testing.T) {
	m := state.NewManager(state.DefaultConfig())
	m.AddAll(catalog.DefaultEntries()[:2])
	if err := m.Remove(0); err != nil {
		t.Fatal(err)
	}
	snap := m.Snapshot()

	var buf bytes.Buffer
	WriteEvents(&buf, m.RecentEvents(10), snap.UpdatedAt)

	out := buf.String()
	for _, want := range []string{"Events", "added Deneb", "added Rigel", "removed Deneb (1 stars)", "Last change: "} {
		if !strings.Contains(out, want) {
			t.Errorf("event log missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "added Deneb") > strings.Index(out, "removed Deneb") {
		t.Error("events should be oldest first")
	}
}

func TestWriteEvents_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteEvents(&buf, nil, time.Time{})
	if !strings.Contains(buf.String(), "No events") {
		t.Errorf("empty log = %q", buf.String())
	}
}
