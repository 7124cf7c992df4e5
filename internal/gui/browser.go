//go:build !nogui

package gui

import (
	"net/url"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"wofiles/internal/log"
	"wofiles/pkg/types"
)

// createBrowserTab builds the toolbar, shortcut sidebar, icon grid and
// status line
func (a *App) createBrowserTab() fyne.CanvasObject {
	a.backButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.goBack)
	a.forwardButton = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.goForward)
	upButton := widget.NewButtonWithIcon("", theme.MoveUpIcon(), a.goUp)
	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.refresh)
	pasteButton := widget.NewButtonWithIcon("", theme.ContentPasteIcon(), a.paste)

	a.pathEntry = widget.NewEntry()
	a.pathEntry.OnSubmitted = func(path string) {
		a.open(path)
	}

	a.searchEntry = widget.NewEntry()
	a.searchEntry.SetPlaceHolder("Search")
	a.searchEntry.OnChanged = a.search

	a.privileged = widget.NewCheck("Privileged", nil)
	a.privileged.SetChecked(a.session.Privileged())
	a.privileged.OnChanged = func(on bool) {
		a.session.SetPrivileged(on)
		a.refresh()
	}

	nav := container.NewHBox(a.backButton, a.forwardButton, upButton, refreshButton, pasteButton)
	right := container.NewHBox(container.NewGridWrap(fyne.NewSize(200, a.searchEntry.MinSize().Height), a.searchEntry), a.privileged)
	toolbar := container.NewBorder(nil, nil, nav, right, a.pathEntry)

	a.grid = widget.NewGridWrap(
		a.entryCount,
		func() fyne.CanvasObject { return newEntryItem(a) },
		func(id widget.GridWrapItemID, o fyne.CanvasObject) {
			if e, ok := a.entryAt(id); ok {
				o.(*entryItem).set(e)
			}
		},
	)

	a.statusLabel = widget.NewLabel("")

	split := container.NewHSplit(a.createSidebar(), a.grid)
	split.Offset = 0.2

	return container.NewBorder(toolbar, a.statusLabel, nil, nil, split)
}

// createSidebar lists the shortcuts with a button bookmarking the current
// directory
func (a *App) createSidebar() fyne.CanvasObject {
	a.shortcuts = a.session.Shortcuts()
	a.sidebar = widget.NewList(
		func() int { return len(a.shortcuts) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel("Template"))
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*fyne.Container).Objects[1].(*widget.Label).SetText(a.shortcuts[id].Label)
		},
	)
	a.sidebar.OnSelected = func(id widget.ListItemID) {
		a.sidebar.UnselectAll()
		if id < len(a.shortcuts) {
			a.open(a.shortcuts[id].Path)
		}
	}

	addButton := widget.NewButtonWithIcon("Add shortcut", theme.ContentAddIcon(), a.addShortcut)
	return container.NewBorder(nil, addButton, nil, nil, a.sidebar)
}

// setupShortcuts binds the navigation keys
func (a *App) setupShortcuts() {
	c := a.mainWindow.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { a.goBack() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyRight, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { a.goForward() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyUp, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { a.goUp() })

	c.SetOnTypedKey(func(ke *fyne.KeyEvent) {
		switch ke.Name {
		case fyne.KeyF5:
			a.refresh()
		case fyne.KeyBackspace:
			a.goUp()
		case fyne.KeyDelete:
			if path := a.selectedPath(); path != "" {
				a.confirmDelete(path)
			}
		}
	})
}

// entryItem is one cell of the icon grid
type entryItem struct {
	widget.BaseWidget
	app   *App
	entry types.Entry
	icon  *canvas.Image
	label *widget.Label
}

func newEntryItem(a *App) *entryItem {
	size := float32(a.session.Icons().Size())

	item := &entryItem{
		app:   a,
		icon:  canvas.NewImageFromImage(nil),
		label: widget.NewLabel(""),
	}
	item.icon.FillMode = canvas.ImageFillContain
	item.icon.SetMinSize(fyne.NewSize(size, size))
	item.label.Alignment = fyne.TextAlignCenter
	item.label.Truncation = fyne.TextTruncateEllipsis
	item.ExtendBaseWidget(item)
	return item
}

func (i *entryItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(i.icon, i.label))
}

func (i *entryItem) set(e types.Entry) {
	i.entry = e
	i.icon.Image = i.app.session.Icon(e)
	i.icon.Refresh()
	i.label.SetText(e.Name)
}

func (i *entryItem) Tapped(*fyne.PointEvent) {
	i.app.selectEntry(i.entry)
}

func (i *entryItem) DoubleTapped(*fyne.PointEvent) {
	i.app.activate(i.entry)
}

func (i *entryItem) TappedSecondary(ev *fyne.PointEvent) {
	i.app.selectEntry(i.entry)
	i.app.showEntryMenu(i.entry, ev.AbsolutePosition)
}

// refresh repeats the last listing or search
func (a *App) refresh() {
	entries, err := a.session.Refresh()
	if err != nil {
		log.LogWithError(err).Warn("Listing failed")
	}
	a.setEntries(entries)
}

func (a *App) search(query string) {
	entries, err := a.session.Search(query)
	if err != nil {
		log.LogWithError(err).Warn("Search failed")
	}
	a.setEntries(entries)
}

// setEntries replaces the grid contents and syncs the toolbar with the
// session
func (a *App) setEntries(entries []types.Entry) {
	a.mu.Lock()
	a.entries = entries
	a.selected = ""
	a.mu.Unlock()

	current := a.session.Current()
	title := "wofiles - " + current
	if a.session.DryRun() {
		title += " (dry run)"
	}
	a.mainWindow.SetTitle(title)
	if a.pathEntry.Text != current {
		a.pathEntry.SetText(current)
	}
	if a.searchEntry.Text != a.session.Query() {
		a.searchEntry.OnChanged = nil
		a.searchEntry.SetText(a.session.Query())
		a.searchEntry.OnChanged = a.search
	}
	setEnabled(a.backButton, a.session.CanGoBack())
	setEnabled(a.forwardButton, a.session.CanGoForward())

	a.grid.Refresh()
	a.statusLabel.SetText(a.session.Status(""))
}

func (a *App) selectEntry(e types.Entry) {
	a.mu.Lock()
	a.selected = e.Path
	a.mu.Unlock()
	a.statusLabel.SetText(a.session.Status(e.Path))
}

func (a *App) entryCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

func (a *App) entryAt(id int) (types.Entry, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if id < 0 || id >= len(a.entries) {
		return types.Entry{}, false
	}
	return a.entries[id], true
}

// visibleEntries returns a copy of what the grid shows.
func (a *App) visibleEntries() []types.Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]types.Entry(nil), a.entries...)
}

func (a *App) selectedPath() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.selected
}

// activate opens a directory in place and hands files to the desktop
func (a *App) activate(e types.Entry) {
	if e.IsDir {
		a.open(e.Path)
		return
	}

	u, err := url.Parse(storage.NewFileURI(e.Path).String())
	if err != nil {
		a.ShowError("Cannot open "+e.Name, err)
		return
	}
	if err := a.fyneApp.OpenURL(u); err != nil {
		a.ShowError("Cannot open "+e.Name, err)
	}
}

func (a *App) open(path string) {
	if err := a.session.Open(path); err != nil {
		a.ShowError("Cannot open directory", err)
		a.pathEntry.SetText(a.session.Current())
		return
	}
	a.refresh()
}

func (a *App) goBack() {
	if _, ok := a.session.Back(); ok {
		a.refresh()
	}
}

func (a *App) goForward() {
	if _, ok := a.session.Forward(); ok {
		a.refresh()
	}
}

func (a *App) goUp() {
	if _, ok := a.session.Up(); ok {
		a.refresh()
	}
}

// showEntryMenu pops up the clipboard and edit actions for e
func (a *App) showEntryMenu(e types.Entry, pos fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Copy", func() {
			if err := a.session.CopyToClipboard(e.Path); err != nil {
				a.ShowError("Copy failed", err)
			}
		}),
		fyne.NewMenuItem("Cut", func() {
			if err := a.session.CutToClipboard(e.Path); err != nil {
				a.ShowError("Cut failed", err)
			}
		}),
		fyne.NewMenuItem("Paste", a.paste),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rename", func() { a.showRename(e) }),
		fyne.NewMenuItem("Delete", func() { a.confirmDelete(e.Path) }),
	)
	widget.ShowPopUpMenuAtPosition(menu, a.mainWindow.Canvas(), pos)
}

func (a *App) paste() {
	if _, err := a.session.Paste(); err != nil {
		a.ShowError("Paste failed", err)
	}
	a.refresh()
}

func (a *App) showRename(e types.Entry) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(e.Name)

	dialog.ShowForm("Rename", "Rename", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", nameEntry)},
		func(ok bool) {
			if ok {
				a.rename(e.Path, nameEntry.Text)
			}
		}, a.mainWindow)
}

func (a *App) rename(path, newName string) {
	if _, err := a.session.Rename(path, newName); err != nil {
		a.ShowError("Rename failed", err)
	}
	a.refresh()
}

func (a *App) confirmDelete(path string) {
	dialog.ShowConfirm("Delete", "Delete "+filepath.Base(path)+" and everything in it?", func(ok bool) {
		if ok {
			a.delete(path)
		}
	}, a.mainWindow)
}

func (a *App) delete(path string) {
	if err := a.session.Delete(path); err != nil {
		a.ShowError("Delete failed", err)
	}
	a.refresh()
}

func (a *App) addShortcut() {
	if _, err := a.session.AddShortcut(a.session.Current()); err != nil {
		a.ShowError("Cannot add shortcut", err)
		return
	}
	a.shortcuts = a.session.Shortcuts()
	a.sidebar.Refresh()
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
