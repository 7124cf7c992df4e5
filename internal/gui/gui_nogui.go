//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"wofiles/internal/session"
	"wofiles/internal/watch"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(_ *session.Session, _ *watch.Watcher) error {
	fmt.Println("GUI is disabled in this build. Please use the TUI or CLI interface.")
	return fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
