package ui

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stargraph/internal/catalog"
)

// Entry form fields.
const (
	fieldName = iota
	fieldTemperature
	fieldLuminosity

	fieldCount
)

// Field lengths, in runes, for each input mode.
const (
	maxTemperatureLen = 6
	maxSpectralLen    = 2
	maxLuminosityLen  = 8
	maxMagnitudeLen   = 5
)

// EntryModel is the form for adding a star.
type EntryModel struct {
	width  int
	height int

	values        [fieldCount]string
	focus         int
	spectralMode  bool
	magnitudeMode bool
	err           error
}

// NewEntryModel creates an empty form.
func NewEntryModel() EntryModel {
	return EntryModel{}
}

// SetSize sets the view dimensions.
func (m EntryModel) SetSize(width, height int) EntryModel {
	m.width = width
	m.height = height
	return m
}

// Err returns the error from the last submit, if any.
func (m EntryModel) Err() error {
	return m.err
}

// Update handles typing, mode toggles and submit.
func (m EntryModel) Update(msg tea.Msg) (EntryModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.insert(key.Runes)
		return m, nil
	case tea.KeyBackspace:
		v := m.values[m.focus]
		if v != "" {
			_, size := utf8.DecodeLastRuneInString(v)
			m.values[m.focus] = v[:len(v)-size]
		}
		return m, nil
	}

	switch key.String() {
	case "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "down":
		m.focus = (m.focus + 1) % fieldCount
	case "ctrl+t":
		m.spectralMode = !m.spectralMode
		m.values[fieldTemperature] = ""
	case "ctrl+g":
		m.magnitudeMode = !m.magnitudeMode
		m.values[fieldLuminosity] = ""
	case "esc":
		m.values = [fieldCount]string{}
		m.focus = fieldName
		m.err = nil
	case "enter":
		return m.submit()
	}
	return m, nil
}

func (m *EntryModel) insert(runes []rune) {
	limit := m.maxLen(m.focus)
	v := m.values[m.focus]
	for _, r := range runes {
		if utf8.RuneCountInString(v) >= limit {
			break
		}
		if m.focus == fieldTemperature && m.spectralMode {
			r = unicode.ToUpper(r)
		}
		v += string(r)
	}
	m.values[m.focus] = v
}

func (m EntryModel) maxLen(field int) int {
	switch field {
	case fieldTemperature:
		if m.spectralMode {
			return maxSpectralLen
		}
		return maxTemperatureLen
	case fieldLuminosity:
		if m.magnitudeMode {
			return maxMagnitudeLen
		}
		return maxLuminosityLen
	}
	return catalog.MaxNameLength
}

// submit derives the entry. On success the form clears and an AddEntryMsg
// is returned; on failure the error stays on screen and an
// EntryRejectedMsg is returned.
func (m EntryModel) submit() (EntryModel, tea.Cmd) {
	e, err := catalog.Derive(catalog.Input{
		Name:          m.values[fieldName],
		Temperature:   m.values[fieldTemperature],
		Luminosity:    m.values[fieldLuminosity],
		SpectralMode:  m.spectralMode,
		MagnitudeMode: m.magnitudeMode,
	})
	if err != nil {
		m.err = err
		return m, func() tea.Msg { return EntryRejectedMsg{Err: err} }
	}

	m.err = nil
	m.values = [fieldCount]string{}
	m.focus = fieldName
	return m, func() tea.Msg { return AddEntryMsg{Entry: e} }
}

func (m EntryModel) label(field int) string {
	switch field {
	case fieldTemperature:
		if m.spectralMode {
			return "Star spectral class:"
		}
		return "Star temperature:"
	case fieldLuminosity:
		if m.magnitudeMode {
			return "Star absolute magnitude:"
		}
		return "Star relative luminosity:"
	}
	return "Star name:"
}

func (m EntryModel) unit(field int) string {
	switch {
	case field == fieldTemperature && !m.spectralMode:
		return "K"
	case field == fieldLuminosity && !m.magnitudeMode:
		return "L☉"
	}
	return ""
}

// View renders the form.
func (m EntryModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("183")).Width(26)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	inputStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).Underline(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Add Star"))
	b.WriteString("\n\n")

	for f := 0; f < fieldCount; f++ {
		marker := "  "
		style := inputStyle
		value := m.values[f]
		if f == m.focus {
			marker = "▶ "
			style = focusStyle
			value += "_"
		}
		b.WriteString(" " + marker + labelStyle.Render(m.label(f)) + style.Render(value))
		if u := m.unit(f); u != "" {
			b.WriteString(" " + dimStyle.Render(u))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("   " + checkbox(m.spectralMode) + dimStyle.Render(" Spectral type (ctrl+t)"))
	b.WriteString("\n")
	b.WriteString("   " + checkbox(m.magnitudeMode) + dimStyle.Render(" Absolute magnitude (ctrl+g)"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString("   " + errorStyle.Render(errorText(m.err)))
	}
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// errorText turns a derive error into a form message.
func errorText(err error) string {
	switch {
	case errors.Is(err, catalog.ErrMissingField):
		return "All the fields must be filled"
	case errors.Is(err, catalog.ErrNameTooLong):
		return "Name is too long"
	}
	s := err.Error()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
