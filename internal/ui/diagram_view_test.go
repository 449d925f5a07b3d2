package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/diagram"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/state"
)

func testDiagram() DiagramModel {
	snap := state.Snapshot{Entries: catalog.DefaultEntries(), Axes: plot.DefaultAxes()}
	return NewDiagramModel().SetSize(100, 30).UpdateData(snap)
}

// axesFrom runs the command returned for a key and unwraps the axes.
func axesFrom(t *testing.T, cmd tea.Cmd) plot.Axes {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a SetAxesMsg command")
	}
	msg, ok := cmd().(SetAxesMsg)
	if !ok {
		t.Fatalf("command returned %T, want SetAxesMsg", cmd())
	}
	return msg.Axes
}

func TestDiagramModel_AxisKeys(t *testing.T) {
	m := testDiagram()

	tests := []struct {
		key   string
		check func(plot.Axes) bool
	}{
		{"[", func(a plot.Axes) bool { return a.TempMin == 2500 }},
		{"]", func(a plot.Axes) bool { return a.TempMin == 3500 }},
		{"{", func(a plot.Axes) bool { return a.TempMax == 24500 }},
		{"}", func(a plot.Axes) bool { return a.TempMax == 25500 }},
		{"-", func(a plot.Axes) bool { return a.LumMin == -7 }},
		{"=", func(a plot.Axes) bool { return a.LumMin == -5 }},
		{"_", func(a plot.Axes) bool { return a.LumMax == 5 }},
		{"+", func(a plot.Axes) bool { return a.LumMax == 7 }},
		{"n", func(a plot.Axes) bool { return a.ShowNames }},
		{"v", func(a plot.Axes) bool { return !a.ShowVLines }},
		{"h", func(a plot.Axes) bool { return a.ShowHLines }},
		{"o", func(a plot.Axes) bool { return a.LineOpacity == 50 }},
	}

	for _, tt := range tests {
		_, cmd := m.Update(runes(tt.key))
		if a := axesFrom(t, cmd); !tt.check(a) {
			t.Errorf("key %q produced %+v", tt.key, a)
		}
	}
}

func TestDiagramModel_TempMinFloor(t *testing.T) {
	m := testDiagram()
	m.axes.TempMin = tempStep

	_, cmd := m.Update(runes("["))
	if a := axesFrom(t, cmd); a.TempMin != tempStep {
		t.Errorf("TempMin = %d, want floor %d", a.TempMin, tempStep)
	}
}

func TestDiagramModel_OpacityCycle(t *testing.T) {
	m := testDiagram()
	want := []int{50, 75, 100, 0, 25}
	for _, w := range want {
		_, cmd := m.Update(runes("o"))
		m.axes = axesFrom(t, cmd)
		if m.axes.LineOpacity != w {
			t.Fatalf("LineOpacity = %d, want %d", m.axes.LineOpacity, w)
		}
	}
}

func TestDiagramModel_FocusWraps(t *testing.T) {
	m := testDiagram()
	n := len(m.entries)

	m, _ = m.Update(runes("k"))
	if m.Selected() != n-1 {
		t.Errorf("k from none = %d, want %d", m.Selected(), n-1)
	}
	m, _ = m.Update(runes("j"))
	if m.Selected() != 0 {
		t.Errorf("j should wrap to 0, got %d", m.Selected())
	}
	m, _ = m.Update(key(tea.KeyEsc))
	if m.Selected() != diagram.NoSelection {
		t.Errorf("esc should clear selection, got %d", m.Selected())
	}
}

func TestDiagramModel_SelectionClampedOnShrink(t *testing.T) {
	m := testDiagram().Select(5)
	m = m.UpdateData(state.Snapshot{Entries: catalog.DefaultEntries()[:2], Axes: plot.DefaultAxes()})
	if m.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", m.Selected())
	}
	if got := m.Select(10).Selected(); got != diagram.NoSelection {
		t.Errorf("Select(10) = %d, want NoSelection", got)
	}
}

func TestDiagramModel_View(t *testing.T) {
	m := testDiagram().Select(0)
	out := m.View()

	for _, want := range []string{"HR Diagram", "┌", "◆", "Deneb"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 29 {
		t.Errorf("View() has %d newlines, want 29", got)
	}
}

func TestDiagramModel_ViewTooSmall(t *testing.T) {
	m := testDiagram().SetSize(8, 3)
	if !strings.Contains(m.View(), "too small") {
		t.Error("tiny window should report that it is too small")
	}
}

func TestRenderCanvas_KeepsText(t *testing.T) {
	c := diagram.NewCanvas(6, 2)
	c.Text(0, 0, "ab", "#ff0000")
	c.Text(2, 0, "cd", "")
	c.Text(0, 1, "星", "")

	out := renderCanvas(c)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "星") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
