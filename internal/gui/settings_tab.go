//go:build !nogui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	wotheme "wofiles/internal/theme"
)

// createSettingsTab creates the settings tab
func (a *App) createSettingsTab() fyne.CanvasObject {
	// --- Themes ---
	a.themeSelect = widget.NewSelect(a.session.ThemeNames(), func(name string) {
		if !a.syncingTheme {
			a.applyTheme(name)
		}
	})
	a.themeSelect.PlaceHolder = "Select Theme"

	importButton := widget.NewButton("Import Theme...", func() {
		open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			a.importTheme(reader.URI().Path())
		}, a.mainWindow)
		open.SetFilter(storage.NewExtensionFileFilter([]string{wotheme.Extension}))
		open.Show()
	})

	themeCard := widget.NewCard("Theme", "Drop a .wo file on the window to import it", container.NewVBox(
		a.themeSelect,
		importButton,
	))

	// --- View ---
	excludeEntry := widget.NewMultiLineEntry()
	excludeEntry.SetPlaceHolder("One glob pattern per line")
	excludeEntry.SetText(joinLines(a.session.Exclude()))
	applyExclude := widget.NewButton("Apply", func() {
		if err := a.session.SetExclude(splitLines(excludeEntry.Text)); err != nil {
			a.ShowError("Invalid exclude pattern", err)
			return
		}
		a.refresh()
	})

	guardCheck := widget.NewCheck("Skip directories already visited during deep search", nil)
	guardCheck.SetChecked(a.session.Options().GuardCycles)
	guardCheck.OnChanged = func(on bool) {
		if err := a.session.SetGuardCycles(on); err != nil {
			a.ShowError("Failed to save configuration", err)
		}
	}

	viewCard := widget.NewCard("View", "", container.NewVBox(
		widget.NewLabel("Hidden from listings:"),
		excludeEntry,
		applyExclude,
		guardCheck,
	))

	return container.NewVScroll(container.NewVBox(themeCard, viewCard))
}
