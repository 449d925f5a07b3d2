// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/logging"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/state"
	"github.com/litescript/ls-stargraph/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDiagram ViewMode = iota
	ViewList
	ViewEntry

	viewCount
)

// Header and footer rows around the active view.
const chromeRows = 4

// Msg types for Bubble Tea
type (
	// AddEntryMsg asks the root model to append a star.
	AddEntryMsg struct {
		Entry catalog.Entry
	}

	// RemoveEntryMsg asks the root model to delete the star at Index.
	RemoveEntryMsg struct {
		Index int
	}

	// ClearListMsg asks the root model to delete every star.
	ClearListMsg struct{}

	// SetAxesMsg asks the root model to replace the diagram axes.
	SetAxesMsg struct {
		Axes plot.Axes
	}

	// FocusStarMsg opens the diagram with the star at Index highlighted.
	FocusStarMsg struct {
		Index int
	}

	// EntryRejectedMsg reports input the entry form could not accept.
	EntryRejectedMsg struct {
		Err error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state  *state.Manager
	logger *logging.Logger

	// Axes restored by the reset key
	initialAxes plot.Axes

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	statusErr bool

	// Sub-models
	diagram DiagramModel
	list    ListModel
	entry   EntryModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		state:       stateMgr,
		logger:      logger.With("ui"),
		initialAxes: stateMgr.Axes(),
		viewMode:    ViewDiagram,
		diagram:     NewDiagramModel(),
		list:        NewListModel(),
		entry:       NewEntryModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.handleGlobalKey(msg) {
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := msg.Height - chromeRows
		m.diagram = m.diagram.SetSize(msg.Width, contentHeight)
		m.list = m.list.SetSize(msg.Width, contentHeight)
		m.entry = m.entry.SetSize(msg.Width, contentHeight)

	case AddEntryMsg:
		m.state.Add(msg.Entry)
		m.logger.Info("added %s: %d K, %g L, class %s", msg.Entry.Star.Name,
			msg.Entry.Star.TemperatureK, msg.Entry.Star.Luminosity, msg.Entry.Class)
		m.setStatus(fmt.Sprintf("Added %s (%s)", msg.Entry.Star.Name, msg.Entry.Class), false)
		m.refresh()

	case RemoveEntryMsg:
		if err := m.state.Remove(msg.Index); err != nil {
			m.logger.Warn("remove %d: %v", msg.Index, err)
			m.setStatus(err.Error(), true)
			break
		}
		m.logger.Info("removed entry %d", msg.Index)
		m.setStatus("Star removed", false)
		m.refresh()

	case ClearListMsg:
		m.state.Clear()
		m.logger.Info("list cleared")
		m.setStatus("List cleared", false)
		m.refresh()

	case SetAxesMsg:
		if err := m.state.SetAxes(msg.Axes); err != nil {
			m.logger.Warn("rejected axes: %v", err)
			m.setStatus(err.Error(), true)
			break
		}
		m.logger.Info("axes: %d..%d K, 10^%d..10^%d L, names %t, grid v=%t h=%t %d%%",
			msg.Axes.TempMin, msg.Axes.TempMax, msg.Axes.LumMin, msg.Axes.LumMax,
			msg.Axes.ShowNames, msg.Axes.ShowVLines, msg.Axes.ShowHLines, msg.Axes.LineOpacity)
		m.statusMsg = ""
		m.refresh()

	case EntryRejectedMsg:
		m.logger.Info("entry rejected: %v", msg.Err)

	case FocusStarMsg:
		m.diagram = m.diagram.Select(msg.Index)
		m.viewMode = ViewDiagram

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKey applies view switching and quit keys. It reports whether
// the key was consumed. The entry form keeps printable keys for typing.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) bool {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return true
	case "tab":
		m.viewMode = (m.viewMode + 1) % viewCount
		return true
	case "shift+tab":
		m.viewMode = (m.viewMode + viewCount - 1) % viewCount
		return true
	}

	if m.viewMode == ViewEntry {
		return false
	}

	switch key {
	case "q":
		return true
	case "1":
		m.viewMode = ViewDiagram
	case "2":
		m.viewMode = ViewList
	case "3", "a":
		m.viewMode = ViewEntry
	case "R":
		m.viewMode = ViewDiagram
		if err := m.state.SetAxes(m.initialAxes); err == nil {
			m.logger.Info("axes reset")
			m.setStatus("Axes reset", false)
			m.refresh()
		}
	default:
		return false
	}
	return true
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDiagram:
		m.diagram, cmd = m.diagram.Update(msg)
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewEntry:
		m.entry, cmd = m.entry.Update(msg)
	}
	return cmd
}

// refresh takes a new snapshot and pushes it to the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.diagram = m.diagram.UpdateData(m.snapshot)
	m.list = m.list.UpdateData(m.snapshot)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg = s
	m.statusErr = isErr
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.viewMode {
	case ViewDiagram:
		b.WriteString(m.diagram.View())
	case ViewList:
		b.WriteString(m.list.View())
	case ViewEntry:
		b.WriteString(m.entry.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("✶ ls-stargraph") + dimStyle.Render(" v"+version.Version)
	count := dimStyle.Render(fmt.Sprintf("  %d stars", len(m.snapshot.Entries)))
	return " " + title + count
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Diagram", "[2] List", "[3] Add star"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	var help string
	switch m.viewMode {
	case ViewDiagram:
		help = "[ ] min T  { } max T  - = min L  _ + max L  n names  v/h grid  o opacity  j/k star  R reset"
	case ViewList:
		help = "j/k move  enter show  x delete  C clear"
	case ViewEntry:
		help = "↑/↓ field  ctrl+t spectral  ctrl+g magnitude  enter add  esc clear"
	}
	help += "  tab view"
	if m.viewMode != ViewEntry {
		help += "  q quit"
	}

	line := dimStyle.Render(" " + help)
	if m.statusMsg != "" {
		style := okStyle
		if m.statusErr {
			style = errorStyle
		}
		line = style.Render(" "+m.statusMsg) + "\n" + line
	}
	return line
}
