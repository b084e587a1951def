package tui

import "github.com/charmbracelet/lipgloss"

// Theme collects the styles used by the preview view.
type Theme struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Dim    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
