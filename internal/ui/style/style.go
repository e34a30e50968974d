// Package style holds the CLI's colors, icons and lipgloss styles.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Text styles for key/value reports.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Key   = lipgloss.NewStyle().Foreground(Slate).Width(12)
	Value = lipgloss.NewStyle()
	Muted = lipgloss.NewStyle().Foreground(Slate).Italic(true)
	Bad   = lipgloss.NewStyle().Foreground(Red)
)
