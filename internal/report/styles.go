package report

import "github.com/charmbracelet/lipgloss"

// Centralized lipgloss styles for tables and plots.

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")). // Light Gray
			Bold(true)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dim gray

	cleanPointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan

	gcPointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)
