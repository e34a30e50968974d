package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/string16/internal/adapters/tui"
)

func update(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModel(t *testing.T) {
	m := tui.NewModel("hé")

	assert.Equal(t, "hé", m.Input.Value())
	assert.True(t, m.Input.Focused())
	assert.Equal(t, 2, m.Text().Len())
	assert.Equal(t, "input", m.Inspection().Source)
	assert.NotNil(t, m.Init())
}

func TestModel_Typing(t *testing.T) {
	m := tui.NewModel("")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a😀")})
	assert.Equal(t, "a😀", m.Input.Value())
	assert.Equal(t, []uint16{0x61, 0xD83D, 0xDE00}, m.Text().Characters16())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "a", m.Input.Value())
	assert.Equal(t, 1, m.Text().Len())
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := update(t, tui.NewModel("x"), tt.msg)
			assert.True(t, m.Quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, cmd := update(t, tui.NewModel(""), tea.WindowSizeMsg{Width: 64, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 10, m.UnitWindow)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 20})
	assert.Equal(t, 4, m.UnitWindow)
}
