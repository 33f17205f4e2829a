package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#333333"})

	statusDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}).
			Background(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#333333"})

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	scrollbarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"})

	thumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
)
