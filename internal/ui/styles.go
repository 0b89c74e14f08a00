package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("241")
)

// Styles used by the confirmation screen.
type Styles struct {
	Question lipgloss.Style
	Help     lipgloss.Style
	Answer   lipgloss.Style
}

// DefaultStyles returns the coloured styles, or plain ones when noColor is set.
func DefaultStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{Question: plain, Help: plain, Answer: plain}
	}
	return Styles{
		Question: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(ColorMuted).Faint(true),
		Answer:   lipgloss.NewStyle().Bold(true),
	}
}
