package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Neon palette
	neonCyan    = lipgloss.Color("#00FFFF")
	neonMagenta = lipgloss.Color("#FF00FF")
	neonGreen   = lipgloss.Color("#39FF14")
	neonYellow  = lipgloss.Color("#FFFF00")
	dimWhite    = lipgloss.Color("#B0B0B0")

	// Header styles
	titleStyle = lipgloss.NewStyle().
			Background(neonMagenta).
			Foreground(lipgloss.Color("#0A0E27")).
			Bold(true).
			Padding(0, 1)

	headerSpinnerStyle = lipgloss.NewStyle().
				Foreground(neonCyan)

	// Row styles
	cursorStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true)

	selectedNameStyle = lipgloss.NewStyle().
				Foreground(neonGreen).
				Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(dimWhite)

	aboutStyle = lipgloss.NewStyle().
			Foreground(dimWhite).
			Faint(true)

	countStyle = lipgloss.NewStyle().
			Foreground(neonYellow)

	// Help style
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0, 0, 2)
)
