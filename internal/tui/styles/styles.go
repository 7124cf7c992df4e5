// Package styles holds the lipgloss styles of the terminal explorer. The
// defaults can be recoloured from a theme's palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"wofiles/internal/theme"
)

// Styles defines the core UI styles
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Hidden    lipgloss.Style
	Cursor    lipgloss.Style
	Marked    lipgloss.Style
	Input     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

const (
	defaultAccent     = "#7B61FF"
	defaultForeground = "#CCCCCC"
	defaultMuted      = "#666666"
)

// Default returns the built-in look.
func Default() Styles {
	return build(lipgloss.Color(defaultAccent), lipgloss.Color(defaultForeground), nil)
}

// FromPalette recolours the defaults with whatever p provides.
func FromPalette(p theme.Palette) Styles {
	accent := lipgloss.Color(defaultAccent)
	if p.Accent != nil {
		accent = lipgloss.Color(theme.Hex(p.Accent))
	}
	fg := lipgloss.Color(defaultForeground)
	if p.Foreground != nil {
		fg = lipgloss.Color(theme.Hex(p.Foreground))
	}
	var bg lipgloss.TerminalColor
	if p.Background != nil {
		bg = lipgloss.Color(theme.Hex(p.Background))
	}
	return build(accent, fg, bg)
}

func build(accent, fg lipgloss.Color, bg lipgloss.TerminalColor) Styles {
	app := lipgloss.NewStyle().Padding(0, 1)
	if bg != nil {
		app = app.Background(bg)
	}

	return Styles{
		App: app,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1),
		Directory: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		File: lipgloss.NewStyle().
			Foreground(fg),
		Hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color(defaultMuted)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent),
		Marked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73F59F")).
			Bold(true),
		Input: lipgloss.NewStyle().
			Foreground(fg),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(defaultMuted)),
	}
}
