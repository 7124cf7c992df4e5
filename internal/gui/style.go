//go:build !nogui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"wofiles/internal/log"
	wotheme "wofiles/internal/theme"
)

// styleTheme recolours the default fyne theme with the colours found in a
// theme's style payload.
type styleTheme struct {
	fyne.Theme
	palette wotheme.Palette
}

func newStyleTheme(style string) *styleTheme {
	return &styleTheme{
		Theme:   theme.DefaultTheme(),
		palette: wotheme.ExtractPalette(style),
	}
}

func (t *styleTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	var c color.Color
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		c = t.palette.Background
	case theme.ColorNameForeground:
		c = t.palette.Foreground
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		c = t.palette.Accent
	}
	if c != nil {
		return c
	}
	return t.Theme.Color(name, variant)
}

// applyTheme activates a builtin or saved theme by name. A theme that
// cannot be resolved leaves the current look in place.
func (a *App) applyTheme(name string) {
	style, err := a.session.ApplyTheme(name)
	if err != nil {
		log.LogWithError(err).Warnf("Theme %q not applied", name)
		return
	}
	a.setStyle(style)
	a.syncThemeSelect()
}

// importTheme stores a .wo file and switches to it.
func (a *App) importTheme(path string) {
	def, err := a.session.ImportTheme(path)
	if err != nil {
		a.ShowError("Theme import failed", err)
		return
	}
	a.setStyle(def.Style)
	a.syncThemeSelect()
	a.showNotification("Theme imported", def.Name)
}

func (a *App) setStyle(style string) {
	a.fyneApp.Settings().SetTheme(newStyleTheme(style))
}

// syncThemeSelect reloads the selector options and shows the active theme
// without re-applying it.
func (a *App) syncThemeSelect() {
	if a.themeSelect == nil {
		return
	}
	a.syncingTheme = true
	defer func() { a.syncingTheme = false }()

	a.themeSelect.Options = a.session.ThemeNames()
	a.themeSelect.Refresh()
	a.themeSelect.SetSelected(a.session.ActiveTheme())
}
