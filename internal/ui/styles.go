package ui

import "github.com/charmbracelet/lipgloss"

// Centralized lipgloss styles for the sweep progress TUI.

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Bold(true).
			Padding(0, 1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")) // Magenta

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
)
