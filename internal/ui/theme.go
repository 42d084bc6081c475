package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorLow    = lipgloss.Color("#22c55e") // green
	colorMedium = lipgloss.Color("#eab308") // yellow
	colorHigh   = lipgloss.Color("#ef4444") // red
	colorMuted  = lipgloss.Color("#6b7280") // gray
	colorWhite  = lipgloss.Color("#f9fafb")
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleLabel  = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleError  = lipgloss.NewStyle().Foreground(colorHigh)
	styleNote   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// tierStyle returns the render style for a risk tier label.
func tierStyle(tier string) lipgloss.Style {
	switch tier {
	case "LOW":
		return lipgloss.NewStyle().Bold(true).Foreground(colorLow)
	case "MEDIUM":
		return lipgloss.NewStyle().Bold(true).Foreground(colorMedium)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorHigh)
	}
}

// isTTY reports whether stdout is a terminal.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
