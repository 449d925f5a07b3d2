package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/state"
)

func testList(height int) ListModel {
	snap := state.Snapshot{Entries: catalog.DefaultEntries()}
	return NewListModel().SetSize(100, height).UpdateData(snap)
}

func TestListModel_CursorBounds(t *testing.T) {
	m := testList(40)
	n := len(m.entries)

	m, _ = m.Update(runes("k"))
	if m.Cursor() != 0 {
		t.Errorf("k at top: cursor = %d, want 0", m.Cursor())
	}
	m, _ = m.Update(runes("G"))
	if m.Cursor() != n-1 {
		t.Errorf("G: cursor = %d, want %d", m.Cursor(), n-1)
	}
	m, _ = m.Update(runes("j"))
	if m.Cursor() != n-1 {
		t.Errorf("j at bottom: cursor = %d, want %d", m.Cursor(), n-1)
	}
	m, _ = m.Update(runes("g"))
	if m.Cursor() != 0 {
		t.Errorf("g: cursor = %d, want 0", m.Cursor())
	}
}

func TestListModel_Scrolls(t *testing.T) {
	m := testList(8) // five visible rows
	for i := 0; i < 7; i++ {
		m, _ = m.Update(key(tea.KeyDown))
	}
	if m.offset != 3 {
		t.Errorf("offset = %d, want 3", m.offset)
	}

	out := m.View()
	if strings.Contains(out, "Deneb") {
		t.Error("first row should have scrolled out of view")
	}
	selected := m.entries[7].Star.Name
	if !strings.Contains(out, "▶ "+selected) {
		t.Errorf("cursor row %q not marked:\n%s", selected, out)
	}
}

func TestListModel_Commands(t *testing.T) {
	m := testList(40)
	m, _ = m.Update(runes("j"))

	_, cmd := m.Update(runes("x"))
	if msg, ok := cmd().(RemoveEntryMsg); !ok || msg.Index != 1 {
		t.Errorf("x produced %#v, want RemoveEntryMsg{1}", cmd())
	}

	_, cmd = m.Update(key(tea.KeyEnter))
	if msg, ok := cmd().(FocusStarMsg); !ok || msg.Index != 1 {
		t.Errorf("enter produced %#v, want FocusStarMsg{1}", cmd())
	}

	_, cmd = m.Update(runes("C"))
	if _, ok := cmd().(ClearListMsg); !ok {
		t.Errorf("C produced %#v, want ClearListMsg", cmd())
	}
}

func TestListModel_Empty(t *testing.T) {
	m := NewListModel().SetSize(80, 20)

	for _, k := range []string{"x", "C"} {
		if _, cmd := m.Update(runes(k)); cmd != nil {
			t.Errorf("%s on empty list should do nothing", k)
		}
	}
	if _, cmd := m.Update(key(tea.KeyEnter)); cmd != nil {
		t.Error("enter on empty list should do nothing")
	}
	if !strings.Contains(m.View(), "No stars") {
		t.Errorf("View() = %q, want No stars", m.View())
	}
}

func TestListModel_CursorClampedOnShrink(t *testing.T) {
	m := testList(40)
	m, _ = m.Update(runes("G"))
	m = m.UpdateData(state.Snapshot{Entries: catalog.DefaultEntries()[:3]})
	if m.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", m.Cursor())
	}
}

func TestListModel_ShowsLastEvent(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	mgr.AddAll(catalog.DefaultEntries()[:3])
	if err := mgr.Remove(1); err != nil {
		t.Fatal(err)
	}

	m := NewListModel().SetSize(120, 20).UpdateData(mgr.Snapshot())
	if !strings.Contains(m.View(), "last: ") || !strings.Contains(m.View(), "removed Rigel (2 stars)") {
		t.Errorf("View() should show the latest change:\n%s", m.View())
	}

	m = m.UpdateData(state.Snapshot{Entries: catalog.DefaultEntries()})
	if strings.Contains(m.View(), "last: ") {
		t.Error("no events should hide the last change line")
	}
}
