package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/string16/internal/ui/style"
)

const keyWidth = 14

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(lipgloss.Color("#FFFFFF"))

	keyStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(keyWidth)

	valueStyle = lipgloss.NewStyle()

	surrogateStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	helpStyle = style.Muted
)
