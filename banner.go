package main

import (
	"serversentry/views/components"
	"serversentry/web/api"

	"github.com/charmbracelet/lipgloss"
)

var (
	wordmarkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#1f6f5c")).
			Padding(0, 2)

	versionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a8a8a")).
			PaddingLeft(1)
)

// banner renders the wordmark for the terminal
func banner(address string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		wordmarkStyle.Render(components.LogoText),
		versionStyle.Render(api.Version+" on "+address),
	)
}
