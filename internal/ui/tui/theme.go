package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Spinner lipgloss.Style
	Help    lipgloss.Style
	Body    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Help:    lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Body: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
