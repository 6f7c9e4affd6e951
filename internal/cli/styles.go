package cli

import "github.com/charmbracelet/lipgloss"

// Style definitions shared across commands.
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51")).
			Padding(0, 1)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
