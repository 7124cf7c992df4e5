package session

import (
	"wofiles/internal/fsview"
	"wofiles/pkg/types"
)

// SetSearchFunc replaces the directory search used by s.
func SetSearchFunc(s *Session, fn func(dir, query string, opts fsview.Options) ([]types.Entry, error)) {
	s.search = fn
}
