package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

const logo = `
 __      _____  / _(_) | ___  ___
 \ \ /\ / / _ \| |_| | |/ _ \/ __|
  \ V  V / (_) |  _| | |  __/\__ \
   \_/\_/ \___/|_| |_|_|\___||___/
`

func primaryText(s string) string {
	return primaryStyle.Render(s)
}

func errorText(s string) string {
	return errorStyle.Render(s)
}

func dirText(s string) string {
	return dirStyle.Render(s)
}

func mutedText(s string) string {
	return mutedStyle.Render(s)
}
