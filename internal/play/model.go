// Package play implements the interactive textx playground.
package play

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/textx"
)

// Field identifies one of the playground inputs
type Field int

const (
	FieldSource Field = iota
	FieldPattern
	FieldStart
	FieldLength
	fieldCount
)

var fieldLabels = [fieldCount]string{"Source", "Pattern", "Start", "Length"}

// Result is one evaluated operation
type Result struct {
	Name  string
	Value string
	Err   bool
}

// ComparisonMsg switches the comparison mode from outside the program,
// for example after the configuration file changed.
type ComparisonMsg textx.Comparison

// Model is the playground state
type Model struct {
	inputs     [fieldCount]textinput.Model
	focus      Field
	cmp        textx.Comparison
	nullSource bool
	width      int
	logger     *log.Logger
}

// NewModel creates a playground starting in the given comparison mode
func NewModel(cmp textx.Comparison, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Discard()
	}

	m := Model{cmp: cmp, logger: logger.WithName("play")}
	placeholders := [fieldCount]string{"Text eingeben...", "Suchwert...", "0", "leer = bis zum Ende"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 4000
		if Field(i) == FieldStart || Field(i) == FieldLength {
			ti.CharLimit = 9
		}
		m.inputs[i] = ti
	}
	m.inputs[FieldSource].Focus()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)

		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

		case "ctrl+o":
			if m.cmp == textx.Ordinal {
				m.cmp = textx.IgnoreCase
			} else {
				m.cmp = textx.Ordinal
			}
			m.logger.Debug("comparison toggled", log.Field("comparison", m.cmp.String()))
			return m, nil

		case "ctrl+n":
			m.nullSource = !m.nullSource
			m.logger.Debug("null source toggled", log.Field("null", m.nullSource))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ComparisonMsg:
		m.cmp = textx.Comparison(msg)
		m.logger.Debug("comparison reloaded", log.Field("comparison", m.cmp.String()))
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}

// Focus returns the focused input
func (m Model) Focus() Field {
	return m.focus
}

// Comparison returns the active comparison mode
func (m Model) Comparison() textx.Comparison {
	return m.cmp
}

// SetValue replaces the content of an input
func (m *Model) SetValue(f Field, value string) {
	m.inputs[f].SetValue(value)
}

func (m Model) source() *string {
	if m.nullSource {
		return nil
	}
	return textx.Of(m.inputs[FieldSource].Value())
}

// Results evaluates every operation against the current inputs
func (m Model) Results() []Result {
	source := m.source()
	pattern := textx.Of(m.inputs[FieldPattern].Value())

	results := []Result{
		boolResult("has", textx.HasValue(source, pattern, m.cmp)),
		boolResult("equal", textx.EqualsIgnoreCase(source, pattern)),
	}
	results = append(results, m.substrResult(source))

	trimmed := textx.SafeTrim(source)
	if trimmed == nil {
		results = append(results, Result{Name: "trim", Value: "<null>"})
	} else {
		results = append(results, Result{Name: "trim", Value: strconv.Quote(*trimmed)})
	}

	results = append(results,
		textResult("after", textx.SubstringAfterValue(source, pattern, m.cmp)),
		textResult("before", textx.SubstringBeforeValue(source, pattern, m.cmp)),
	)

	if r, size := utf8.DecodeRuneInString(*pattern); size > 0 && size == len(*pattern) {
		results = append(results,
			textResult("after'", textx.SubstringAfterRune(source, r, m.cmp)),
			textResult("before'", textx.SubstringBeforeRune(source, r, m.cmp)),
		)
	}

	return append(results, boolResult("base64", textx.IsBase64(source)))
}

func (m Model) substrResult(source *string) Result {
	start, err := parseOffset(m.inputs[FieldStart].Value(), 0)
	if err != nil {
		return Result{Name: "substr", Value: "Start: " + err.Error(), Err: true}
	}

	raw := strings.TrimSpace(m.inputs[FieldLength].Value())
	if raw == "" {
		return textResult("substr", textx.SubstringOrEmpty(source, start))
	}
	length, err := parseOffset(raw, 0)
	if err != nil {
		return Result{Name: "substr", Value: "Length: " + err.Error(), Err: true}
	}
	return textResult("substr", textx.SubstringOrEmptyLen(source, start, length))
}

func parseOffset(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q ist keine Zahl", s)
	}
	return n, nil
}

func boolResult(name string, v bool) Result {
	return Result{Name: name, Value: strconv.FormatBool(v)}
}

func textResult(name, v string) Result {
	return Result{Name: name, Value: strconv.Quote(v)}
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(RenderTitle("textx Spielplatz"))
	s.WriteString("\n")

	var inputs strings.Builder
	for i := range m.inputs {
		label := LabelStyle.Render(fieldLabels[i])
		if Field(i) == m.focus {
			label = FocusedLabelStyle.Render(fieldLabels[i])
		}
		view := m.inputs[i].View()
		if Field(i) == FieldSource && m.nullSource {
			view = FalseStyle.Render("<null>")
		}
		inputs.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, view))
		inputs.WriteString("\n")
	}
	s.WriteString(BoxStyle.Render(strings.TrimRight(inputs.String(), "\n")))
	s.WriteString("\n")

	var results strings.Builder
	for _, r := range m.Results() {
		results.WriteString(LabelStyle.Render(r.Name))
		switch {
		case r.Err:
			results.WriteString(RenderError(r.Value))
		case r.Value == "true":
			results.WriteString(TrueStyle.Render(r.Value))
		case r.Value == "false":
			results.WriteString(FalseStyle.Render(r.Value))
		default:
			results.WriteString(ValueStyle.Render(r.Value))
		}
		results.WriteString("\n")
	}
	s.WriteString(BoxStyle.Render(strings.TrimRight(results.String(), "\n")))
	s.WriteString("\n")

	s.WriteString(RenderHelp(fmt.Sprintf(
		"Tab: Feld wechseln • Ctrl+O: Vergleich (%s) • Ctrl+N: Source null • Esc: Beenden",
		m.cmp,
	)))
	return s.String()
}
