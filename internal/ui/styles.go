package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles the shell renders with. Output is kept
// deliberately plain: a handful of colors for outcomes, bold for structure,
// nothing that would distract from the scrollback transcript.
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Header  lipgloss.Style
	Divider lipgloss.Style
	Done    lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Prompt:  lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Bold(true),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
