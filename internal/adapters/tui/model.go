// Package tui provides the interactive string explorer.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/core/domain"
)

const (
	defaultUnitWindow = 16
	minUnitWindow     = 4
	// unitCellWidth is one hex unit plus its separator.
	unitCellWidth = 5
)

// Model is the explorer state: a text input and the UTF-16 view of its value.
type Model struct {
	Input      textinput.Model
	UnitWindow int
	Quitting   bool
}

// NewModel creates a focused explorer model holding initial.
func NewModel(initial string) Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "type some text"
	input.SetValue(initial)
	input.Focus()

	return Model{
		Input:      input,
		UnitWindow: defaultUnitWindow,
	}
}

// Init starts the cursor blinking.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and resize messages and forwards the rest to the input.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.UnitWindow = max((msg.Width-keyWidth)/unitCellWidth, minUnitWindow)
		m.Input.Width = max(msg.Width-len(m.Input.Prompt)-1, 0)
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// Text returns the current input as a string16.String.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Text() string16.String {
	return string16.FromString(m.Input.Value())
}

// Inspection describes the current input.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Inspection() domain.Inspection {
	return domain.NewInspection("input", m.Text())
}
