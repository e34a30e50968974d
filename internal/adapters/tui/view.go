package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/string16/internal/core/domain"
)

// View renders the input followed by the length, units and hashes of its value.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	insp := m.Inspection()
	rows := []string{
		row("length", fmt.Sprintf("%d", insp.Len())),
		row("units", domain.FormatUnits(insp.Text.Characters16(), m.UnitWindow)),
		row("hash", fmt.Sprintf("0x%016x", insp.Hash())),
		row("fingerprint", fmt.Sprintf("0x%016x", insp.Fingerprint())),
	}
	if n := surrogates(insp.Text.Characters16()); n > 0 {
		rows = append(rows, keyStyle.Render("surrogates")+surrogateStyle.Render(fmt.Sprintf("%d", n)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("string16 explore"),
		"",
		m.Input.View(),
		"",
		strings.Join(rows, "\n"),
		"",
		helpStyle.Render("esc to quit"),
	) + "\n"
}

func row(key, value string) string {
	return keyStyle.Render(key) + valueStyle.Render(value)
}

func surrogates(units []uint16) int {
	n := 0
	for _, u := range units {
		if u >= 0xD800 && u <= 0xDFFF {
			n++
		}
	}
	return n
}
