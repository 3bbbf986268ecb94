package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/kandula/kancli/pkg/types"
)

func TestStateStyle(t *testing.T) {
	tests := []struct {
		state types.State
		color lipgloss.TerminalColor
		blink bool
	}{
		{types.StatePending, lipgloss.Color(ColorGreen), true},
		{types.StateRunning, lipgloss.Color(ColorGreen), false},
		{types.StateShuttingDown, lipgloss.Color(ColorRed), true},
		{types.StateTerminated, lipgloss.Color(ColorRed), false},
		{types.StateStopping, lipgloss.NoColor{}, true},
		{types.StateStopped, lipgloss.NoColor{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			style := StateStyle(tt.state)
			assert.Equal(t, tt.color, style.GetForeground())
			assert.Equal(t, tt.blink, style.GetBlink())
		})
	}
}

func TestStateStyle_CoversEveryState(t *testing.T) {
	for _, s := range types.States {
		_, ok := stateLooks[s]
		assert.True(t, ok, s)
	}
}
