package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/report"
	"github.com/litescript/ls-stargraph/internal/state"
)

// Title, column header and rule above the rows.
const listChromeRows = 3

// ListModel shows the star list as a scrollable table.
type ListModel struct {
	width   int
	height  int
	entries []catalog.Entry
	cursor  int
	offset  int

	lastEvent string
}

// NewListModel creates an empty list view.
func NewListModel() ListModel {
	return ListModel{}
}

// SetSize sets the view dimensions.
func (m ListModel) SetSize(width, height int) ListModel {
	m.width = width
	m.height = height
	return m.clampCursor()
}

// UpdateData updates the view with a new snapshot.
func (m ListModel) UpdateData(snapshot state.Snapshot) ListModel {
	m.entries = snapshot.Entries
	m.lastEvent = ""
	if n := len(snapshot.Events); n > 0 {
		m.lastEvent = report.FormatEvent(snapshot.Events[n-1])
	}
	return m.clampCursor()
}

// Cursor returns the index of the highlighted row.
func (m ListModel) Cursor() int {
	return m.cursor
}

// Update handles navigation and edit keys.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		m.cursor++
	case "k", "up":
		m.cursor--
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.entries) - 1
	case "enter":
		if len(m.entries) > 0 {
			i := m.cursor
			return m, func() tea.Msg { return FocusStarMsg{Index: i} }
		}
	case "x", "delete":
		if len(m.entries) > 0 {
			i := m.cursor
			return m, func() tea.Msg { return RemoveEntryMsg{Index: i} }
		}
	case "C":
		if len(m.entries) > 0 {
			return m, func() tea.Msg { return ClearListMsg{} }
		}
	}
	return m.clampCursor(), nil
}

func (m ListModel) visibleRows() int {
	return max(m.height-listChromeRows, 1)
}

// clampCursor keeps the cursor on a row and scrolls it into view.
func (m ListModel) clampCursor() ListModel {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	return m
}

// View renders the list view.
func (m ListModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("183")).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Star List") + dimStyle.Render(fmt.Sprintf("  %d stars", len(m.entries))))
	if m.lastEvent != "" {
		b.WriteString(dimStyle.Render("  last: " + m.lastEvent))
	}
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  No stars. Press 3 to add one."))
		return b.String()
	}

	b.WriteString(headerStyle.Render(formatListLine("", report.Row{
		Name:        "Name",
		Temperature: "Temp",
		Luminosity:  "Luminosity",
		Class:       "Class",
		Magnitude:   "Abs Mag",
	})))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" " + strings.Repeat("─", max(min(m.width-2, 70), 0))))

	end := min(m.offset+m.visibleRows(), len(m.entries))
	for i := m.offset; i < end; i++ {
		b.WriteString("\n")
		r := report.FormatRow(m.entries[i])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(formatListLine("▶", r)))
		} else {
			b.WriteString(formatListLine(" ", r))
		}
	}
	return b.String()
}

func formatListLine(marker string, r report.Row) string {
	name := runewidth.FillRight(runewidth.Truncate(r.Name, catalog.MaxNameLength, "…"), catalog.MaxNameLength)
	return fmt.Sprintf(" %1s %s %10s %14s %6s %8s", marker, name, r.Temperature, r.Luminosity, r.Class, r.Magnitude)
}
