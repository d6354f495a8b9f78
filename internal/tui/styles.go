package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color Palette
	// Primary: Cyan - borders and titles
	// Accent: Amber - selection
	// Success: Green - popup chrome
	// Text: White/Gray hierarchy

	primary    = lipgloss.Color("#00d4ff") // Cyan
	accent     = lipgloss.Color("#ffb627") // Amber
	success    = lipgloss.Color("#00ff87") // Green
	textNormal = lipgloss.Color("#e4e4e4") // Light gray
	textMuted  = lipgloss.Color("#6c757d") // Gray

	// List box
	borderStyle = lipgloss.NewStyle().
			Foreground(primary)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(textNormal)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(textMuted)

	// Popup
	popupBorderStyle = lipgloss.NewStyle().
				Foreground(success)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	inputStyle = lipgloss.NewStyle().
			Foreground(textNormal)

	// Simulated text cursor inside the popup
	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
)
