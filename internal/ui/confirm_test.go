package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m ConfirmModel, msg tea.KeyMsg) (ConfirmModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(ConfirmModel)
	require.True(t, ok)
	return cm, cmd
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		confirmed bool
	}{
		{"yes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{"upper yes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{"no", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{"enter defaults to no", tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"ctrl-c", tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(t, NewConfirmModel("Stop 2 instances?"), tt.key)
			assert.NotNil(t, cmd)
			assert.True(t, m.done)
			assert.Equal(t, tt.confirmed, m.Confirmed())
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m, cmd := press(t, NewConfirmModel("Continue?"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.False(t, m.done)
	assert.Contains(t, m.View(), "[y/N]")
}

func TestConfirmModel_View(t *testing.T) {
	m, _ := press(t, NewConfirmModel("Continue?"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Contains(t, m.View(), "Continue? ")
	assert.Contains(t, m.View(), "yes")
}
