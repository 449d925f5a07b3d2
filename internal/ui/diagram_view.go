package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/diagram"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/report"
	"github.com/litescript/ls-stargraph/internal/state"
)

// Axis adjustment steps.
const (
	tempStep    = 500 // Kelvin per key press
	opacityStep = 25  // Grid brightness per key press
)

// Rows used by the diagram header and selection readout.
const diagramChromeRows = 2

// DiagramModel shows the HR diagram for the current star list.
type DiagramModel struct {
	width    int
	height   int
	entries  []catalog.Entry
	axes     plot.Axes
	selected int
}

// NewDiagramModel creates an empty diagram view.
func NewDiagramModel() DiagramModel {
	return DiagramModel{
		axes:     plot.DefaultAxes(),
		selected: diagram.NoSelection,
	}
}

// SetSize sets the view dimensions.
func (m DiagramModel) SetSize(width, height int) DiagramModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the view with a new snapshot.
func (m DiagramModel) UpdateData(snapshot state.Snapshot) DiagramModel {
	m.entries = snapshot.Entries
	m.axes = snapshot.Axes
	if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}
	return m
}

// Select highlights the entry at index i, or clears the highlight when i is
// out of range.
func (m DiagramModel) Select(i int) DiagramModel {
	if i < 0 || i >= len(m.entries) {
		i = diagram.NoSelection
	}
	m.selected = i
	return m
}

// Selected returns the highlighted entry index or diagram.NoSelection.
func (m DiagramModel) Selected() int {
	return m.selected
}

// Update handles axis and selection keys. Axis changes are returned as a
// SetAxesMsg so the root model can validate and store them.
func (m DiagramModel) Update(msg tea.Msg) (DiagramModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	a := m.axes
	switch key.String() {
	case "[":
		a.TempMin = max(a.TempMin-tempStep, tempStep)
	case "]":
		a.TempMin += tempStep
	case "{":
		a.TempMax -= tempStep
	case "}":
		a.TempMax += tempStep
	case "-":
		a.LumMin--
	case "=":
		a.LumMin++
	case "_":
		a.LumMax--
	case "+":
		a.LumMax++
	case "n":
		a.ShowNames = !a.ShowNames
	case "v":
		a.ShowVLines = !a.ShowVLines
	case "h":
		a.ShowHLines = !a.ShowHLines
	case "o":
		a.LineOpacity = (a.LineOpacity + opacityStep) % (100 + opacityStep)
	case "j", "down":
		return m.focusNext(1), nil
	case "k", "up":
		return m.focusNext(-1), nil
	case "esc":
		m.selected = diagram.NoSelection
		return m, nil
	default:
		return m, nil
	}

	return m, func() tea.Msg { return SetAxesMsg{Axes: a} }
}

// focusNext moves the highlight by delta, wrapping around the list.
func (m DiagramModel) focusNext(delta int) DiagramModel {
	n := len(m.entries)
	if n == 0 {
		m.selected = diagram.NoSelection
		return m
	}
	if m.selected == diagram.NoSelection {
		if delta > 0 {
			m.selected = 0
		} else {
			m.selected = n - 1
		}
		return m
	}
	m.selected = ((m.selected+delta)%n + n) % n
	return m
}

// View renders the diagram view.
func (m DiagramModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	rows := m.height - diagramChromeRows
	fitted := diagram.Fit(m.axes, m.width, rows)
	if err := fitted.Validate(); err != nil {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
		b.WriteString(dimStyle.Render("  Window too small for the diagram"))
	} else {
		c := diagram.Render(m.entries, fitted, diagram.Options{Selected: m.selected})
		b.WriteString(renderCanvas(c))
	}

	b.WriteString("\n")
	b.WriteString(m.renderSelection())
	return b.String()
}

func (m DiagramModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("183"))

	onOff := func(label string, on bool) string {
		if on {
			return accentStyle.Render(label + ": on")
		}
		return dimStyle.Render(label + ": off")
	}

	parts := []string{
		titleStyle.Render("HR Diagram"),
		dimStyle.Render(fmt.Sprintf("%s..%s",
			diagram.TemperatureLabel(m.axes.TempMin), diagram.TemperatureLabel(m.axes.TempMax))),
		dimStyle.Render(fmt.Sprintf("10^%d..10^%d L☉", m.axes.LumMin, m.axes.LumMax)),
		onOff("Names", m.axes.ShowNames),
		onOff("V grid", m.axes.ShowVLines),
		onOff("H grid", m.axes.ShowHLines),
		dimStyle.Render(fmt.Sprintf("Grid %d%%", m.axes.LineOpacity)),
	}
	return " " + strings.Join(parts, "  ")
}

func (m DiagramModel) renderSelection() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	if m.selected == diagram.NoSelection || m.selected >= len(m.entries) {
		return dimStyle.Render(" No star selected")
	}

	e := m.entries[m.selected]
	r := report.FormatRow(e)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	line := fmt.Sprintf(" ◆ %s  %s  %s  %s L☉  M %s", r.Name, r.Class, r.Temperature, r.Luminosity, r.Magnitude)

	if p, err := m.axes.Project(e.Star); err == nil && !m.axes.Contains(p) {
		return accentStyle.Render(line) + dimStyle.Render("  (off the axes)")
	}
	return accentStyle.Render(line)
}

// renderCanvas styles each run of same-coloured cells with lipgloss.
func renderCanvas(c *diagram.Canvas) string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		var run strings.Builder
		var cur diagram.Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Bold(cur.Bold)
			if cur.Color != "" {
				style = style.Foreground(lipgloss.Color(cur.Color))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for _, cell := range c.Row(y) {
			if cell.Rune == 0 {
				continue
			}
			if cell.Color != cur.Color || cell.Bold != cur.Bold {
				flush()
				cur = cell
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		if y < c.Height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
