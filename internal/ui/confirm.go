package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no prompt. Anything but an explicit yes declines.
type ConfirmModel struct {
	prompt    string
	confirmed bool
	done      bool
}

// NewConfirmModel creates a prompt asking the given question
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{prompt: prompt}
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m ConfirmModel) View() string {
	if m.done {
		answer := "no"
		if m.confirmed {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", m.prompt, MutedStyle.Render(answer))
	}
	return fmt.Sprintf("%s %s ", m.prompt, MutedStyle.Render("[y/N]"))
}

// Confirmed returns true if the user answered yes
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Confirm runs the prompt on the given terminal streams
func Confirm(prompt string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(prompt), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	m, ok := final.(ConfirmModel)
	return ok && m.Confirmed(), nil
}
