package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/string16/internal/adapters/tui"
	"go.trai.ch/string16/internal/core/domain"
)

func TestRun_TypesAndQuits(t *testing.T) {
	got, err := tui.Run(context.Background(), "x",
		tea.WithInput(strings.NewReader("ab\x03")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, err)
	assert.Equal(t, "xab", got)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tui.Run(ctx, "",
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExploreFailed)
}
