// Package report writes the star list and diagram as plain text.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/diagram"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/state"
	"github.com/litescript/ls-stargraph/internal/stellar"
)

const tableWidth = 68

// Row is one formatted line of the star table.
type Row struct {
	Name        string
	Temperature string
	Luminosity  string
	Class       string
	Magnitude   string
}

// FormatRow formats the columns of e for display.
func FormatRow(e catalog.Entry) Row {
	p := message.NewPrinter(language.English)

	class := e.Class.String()
	switch e.Bound {
	case stellar.BelowTable:
		class = "<" + class
	case stellar.AboveTable:
		class = ">" + class
	}

	return Row{
		Name:        e.Star.Name,
		Temperature: p.Sprintf("%d K", e.Star.TemperatureK),
		Luminosity:  FormatLuminosity(e.Star.Luminosity),
		Class:       class,
		Magnitude:   fmt.Sprintf("%+.2f", e.AbsoluteMagnitude),
	}
}

// FormatLuminosity prints luminosities with grouping in the everyday range
// and in exponent form outside it.
func FormatLuminosity(lum float64) string {
	if lum >= 0.01 && lum < 1e7 {
		return message.NewPrinter(language.English).Sprintf("%.2f", lum)
	}
	return fmt.Sprintf("%.2e", lum)
}

// WriteTable writes the star list as a text table.
func WriteTable(w io.Writer, entries []catalog.Entry) {
	fmt.Fprintln(w, "Star List")
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	if len(entries) == 0 {
		fmt.Fprintln(w, "No stars")
		return
	}

	fmt.Fprintf(w, "%s %10s %14s %6s %8s\n",
		runewidth.FillRight("Name", catalog.MaxNameLength), "Temp", "Luminosity", "Class", "Abs Mag")
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	for _, e := range entries {
		r := FormatRow(e)
		fmt.Fprintf(w, "%s %10s %14s %6s %8s\n",
			runewidth.FillRight(runewidth.Truncate(r.Name, catalog.MaxNameLength, ".."), catalog.MaxNameLength),
			r.Temperature,
			r.Luminosity,
			r.Class,
			r.Magnitude,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d stars\n", len(entries))
}

// WriteDiagram writes the HR diagram as text on a cols x rows grid.
func WriteDiagram(w io.Writer, entries []catalog.Entry, a plot.Axes, cols, rows int) error {
	fitted := diagram.Fit(a, cols, rows)
	if err := fitted.Validate(); err != nil {
		return fmt.Errorf("diagram %dx%d: %w", cols, rows, err)
	}
	c := diagram.Render(entries, fitted, diagram.Options{Selected: diagram.NoSelection})
	_, err := fmt.Fprintln(w, c.String())
	return err
}

// FormatEvent formats one state change as a single line.
func FormatEvent(e state.Event) string {
	ts := e.Timestamp.Format("15:04:05")
	switch e.Type {
	case state.EventStarAdded:
		return fmt.Sprintf("%s  added %s (%d stars)", ts, e.Star, e.Count)
	case state.EventStarRemoved:
		return fmt.Sprintf("%s  removed %s (%d stars)", ts, e.Star, e.Count)
	case state.EventListCleared:
		return fmt.Sprintf("%s  list cleared", ts)
	case state.EventAxesChanged:
		return fmt.Sprintf("%s  axes changed", ts)
	}
	return fmt.Sprintf("%s  %s", ts, e.Type)
}

// WriteEvents writes the event log, oldest first.
func WriteEvents(w io.Writer, events []state.Event, updatedAt time.Time) {
	fmt.Fprintln(w, "Events")
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	if len(events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}
	for _, e := range events {
		fmt.Fprintln(w, FormatEvent(e))
	}
	fmt.Fprintf(w, "\nLast change: %s\n", updatedAt.Format("15:04:05"))
}
