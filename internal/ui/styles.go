package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kandula/kancli/pkg/types"
)

// Color palette
const (
	ColorGreen = "2"
	ColorRed   = "1"
	ColorLabel = "245"
	ColorMuted = "240"
)

// Shared styles
var (
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLabel))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HeaderStyle = lipgloss.NewStyle().Bold(true)
)

// stateLook is the emphasis applied to a lifecycle state
type stateLook struct {
	color string
	blink bool
}

// Transitional states blink; the color tells where the instance is heading.
var stateLooks = map[types.State]stateLook{
	types.StatePending:      {color: ColorGreen, blink: true},
	types.StateRunning:      {color: ColorGreen},
	types.StateShuttingDown: {color: ColorRed, blink: true},
	types.StateTerminated:   {color: ColorRed},
	types.StateStopping:     {blink: true},
	types.StateStopped:      {},
}

// StateStyle returns the style used to render text for an instance state
func StateStyle(state types.State) lipgloss.Style {
	look := stateLooks[state]

	style := lipgloss.NewStyle().Blink(look.blink)
	if look.color != "" {
		style = style.Foreground(lipgloss.Color(look.color))
	}
	return style
}
