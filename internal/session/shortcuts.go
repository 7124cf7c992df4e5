package session

import (
	"os"
	"path/filepath"

	"wofiles/internal/log"
	"wofiles/pkg/types"
)

const (
	maxLabelLen  = 14
	keptLabelLen = 12
)

// DefaultShortcuts returns Home, Desktop and Downloads under home, then
// Root.
func DefaultShortcuts(home string) []types.Shortcut {
	return []types.Shortcut{
		{Label: "Home", Path: home},
		{Label: "Desktop", Path: filepath.Join(home, "Desktop")},
		{Label: "Downloads", Path: filepath.Join(home, "Downloads")},
		{Label: "Root", Path: "/"},
	}
}

// ShortcutLabel shortens a directory name for the sidebar: names longer
// than 14 characters keep their first 12 and gain an ellipsis.
func ShortcutLabel(name string) string {
	runes := []rune(name)
	if len(runes) <= maxLabelLen {
		return name
	}
	return string(runes[:keptLabelLen]) + "…"
}

// Shortcuts returns the default shortcuts followed by the user's.
func (s *Session) Shortcuts() []types.Shortcut {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/"
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(DefaultShortcuts(home), s.cfg.Shortcuts...)
}

// AddShortcut bookmarks the directory at path, labelled with its base
// name, and saves the configuration when a config path was given.
func (s *Session) AddShortcut(path string) (types.Shortcut, error) {
	dir, err := checkDir(path)
	if err != nil {
		return types.Shortcut{}, err
	}
	shortcut := types.Shortcut{Label: ShortcutLabel(filepath.Base(dir)), Path: dir}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.cfg.Shortcuts {
		if existing.Path == dir {
			return existing, nil
		}
	}
	s.cfg.Shortcuts = append(s.cfg.Shortcuts, shortcut)

	if err := s.saveLocked(); err != nil {
		return shortcut, err
	}
	log.LogWithFields(log.F("path", dir), log.F("label", shortcut.Label)).Info("Shortcut added")
	return shortcut, nil
}
