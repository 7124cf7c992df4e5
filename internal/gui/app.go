//go:build !nogui

package gui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"wofiles/internal/log"
	"wofiles/internal/session"
	"wofiles/internal/watch"
	"wofiles/pkg/types"
)

// AppID identifies the application to fyne's preference storage.
const AppID = "io.github.wofiles"

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	session    *session.Session
	watcher    *watch.Watcher

	// What the grid shows and the path last tapped. The watcher goroutine
	// replaces them while the render thread reads them.
	mu       sync.RWMutex
	entries  []types.Entry
	selected string

	grid          *widget.GridWrap
	pathEntry     *widget.Entry
	searchEntry   *widget.Entry
	statusLabel   *widget.Label
	privileged    *widget.Check
	themeSelect   *widget.Select
	backButton    *widget.Button
	forwardButton *widget.Button
	sidebar       *widget.List
	shortcuts     []types.Shortcut

	// Set while the UI itself updates the theme selector
	syncingTheme bool
}

var _ Interface = (*App)(nil)

// StartGUI opens the explorer window on sess and blocks until it closes.
func StartGUI(sess *session.Session, w *watch.Watcher) error {
	NewApp(sess, w).Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// NewApp creates the GUI application on the desktop driver.
func NewApp(sess *session.Session, w *watch.Watcher) *App {
	return New(app.NewWithID(AppID), sess, w)
}

// New builds the explorer window on fyneApp. w may be nil, in which case
// the view only refreshes on request.
func New(fyneApp fyne.App, sess *session.Session, w *watch.Watcher) *App {
	a := &App{
		fyneApp: fyneApp,
		session: sess,
		watcher: w,
	}

	a.mainWindow = a.fyneApp.NewWindow("wofiles")
	a.setupMainWindow()
	a.applyTheme(sess.ActiveTheme())
	a.refresh()

	return a
}

// Run starts the GUI application
func (a *App) Run() {
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			log.LogWithError(err).Warn("Auto-refresh disabled")
		} else {
			go a.followChanges(a.watcher.Changes())
		}
		defer a.watcher.Stop()
	}

	a.mainWindow.ShowAndRun()
}

// GetMainWindow returns the main window for testing purposes
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// setupMainWindow lays out the browser and settings tabs
func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(900, 640))

	header := canvas.NewText("wofiles", color.NRGBA{R: 255, G: 165, B: 0, A: 255})
	header.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	header.TextSize = 18

	tabs := container.NewAppTabs(
		container.NewTabItem("Browse", a.createBrowserTab()),
		container.NewTabItem("Settings", a.createSettingsTab()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	a.mainWindow.SetContent(container.NewBorder(header, nil, nil, nil, tabs))

	a.mainWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		a.HandleDrop(uris)
	})
	a.setupShortcuts()
}

// followChanges refreshes the grid whenever the watched directory changes
func (a *App) followChanges(changes <-chan watch.Change) {
	for change := range changes {
		if change.Dir != a.session.Current() {
			continue
		}
		log.LogWithFields(log.F("directory", change.Dir), log.F("path", change.Path)).Debug("Directory changed, refreshing")
		a.refresh()
	}
}

// ShowError displays an error message
func (a *App) ShowError(message string, err error) {
	log.Errorf("%s: %v", message, err)
	dialog.ShowError(fmt.Errorf("%s: %w", message, err), a.mainWindow)
}

// ShowInfo displays an information message
func (a *App) ShowInfo(message string) {
	log.Info(message)
	dialog.ShowInformation("Info", message, a.mainWindow)
}

// showNotification shows a notification
func (a *App) showNotification(title, message string) {
	if a.fyneApp != nil {
		a.fyneApp.SendNotification(fyne.NewNotification(title, message))
	}
}
