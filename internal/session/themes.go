package session

import (
	"wofiles/internal/log"
	"wofiles/internal/theme"
)

// Themes returns the managed theme store.
func (s *Session) Themes() *theme.Store {
	return s.themes
}

// ThemeNames lists the selector entries: builtins, then saved themes.
func (s *Session) ThemeNames() []string {
	return s.themes.Names()
}

// ActiveTheme returns the name of the theme last applied.
func (s *Session) ActiveTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTheme
}

// ApplyTheme resolves name to its style text and makes it the active theme.
func (s *Session) ApplyTheme(name string) (string, error) {
	style, err := s.themes.Style(name)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.activeTheme = name
	s.mu.Unlock()
	return style, nil
}

// ImportTheme stores the theme file at path and makes it the active theme.
// On failure the active theme is unchanged.
func (s *Session) ImportTheme(path string) (*theme.Definition, error) {
	def, stored, err := s.themes.Import(path)
	if err != nil {
		log.LogWithError(err).Warn("Theme import failed")
		return nil, err
	}

	s.mu.Lock()
	s.activeTheme = def.Name
	s.mu.Unlock()

	log.LogWithFields(log.F("theme", def.Name), log.F("stored", stored)).Info("Theme imported")
	return def, nil
}
