package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/string16/internal/core/domain"
	)

// Run starts the explorer with initial as the input and blocks until the
// user quits or ctx is done. It returns the final input text.
func Run(ctx context.Context, initial string, opts ...tea.ProgramOption) (string, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(NewModel(initial), opts...)

	final, err := program.Run()
	if err != nil {
		return "", errors.Join(domain.ErrExploreFailed, err)
	}
	if m, ok := final.(Model); ok {
		return m.Input.Value(), nil
	}
	return initial, nil
}
