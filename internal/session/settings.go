package session

import (
	"fmt"

	"github.com/gobwas/glob"

	"wofiles/internal/config"
	"wofiles/internal/errors"
	"wofiles/internal/log"
)

// Exclude returns the glob patterns hidden from every listing.
func (s *Session) Exclude() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cfg.View.Exclude...)
}

// SetExclude replaces the exclude patterns. Every pattern must compile;
// on error nothing changes.
func (s *Session) SetExclude(patterns []string) error {
	for i, pattern := range patterns {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError(fmt.Sprintf("exclude pattern %d is invalid", i), "view.exclude", errors.InvalidConfig, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.View.Exclude = append([]string(nil), patterns...)
	log.LogWithFields(log.F("patterns", patterns)).Debug("Exclude patterns updated")
	return s.saveLocked()
}

// SetGuardCycles turns the deep search cycle guard on or off.
func (s *Session) SetGuardCycles(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Search.GuardCycles = on
	return s.saveLocked()
}

// saveLocked writes the configuration when the session was given a path.
func (s *Session) saveLocked() error {
	if s.configPath == "" {
		return nil
	}
	if err := config.SaveConfig(s.cfg, s.configPath); err != nil {
		return errors.NewConfigError("failed to save configuration", s.configPath, errors.InvalidConfig, err)
	}
	return nil
}
