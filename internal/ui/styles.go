package ui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"})
)

// scoreWidth matches the fixed score column of the web row.
const scoreWidth = 8
