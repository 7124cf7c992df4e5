// Package session holds the state of one explorer window: where it is,
// what it shows, and what is waiting on the clipboard. Front-ends own a
// Session and drive every core operation through it.
package session

import (
	"image"
	"os"
	"path/filepath"
	"sync"

	"wofiles/internal/config"
	"wofiles/internal/errors"
	"wofiles/internal/fileops"
	"wofiles/internal/fsview"
	"wofiles/internal/history"
	"wofiles/internal/icons"
	"wofiles/internal/log"
	"wofiles/internal/status"
	"wofiles/internal/theme"
	"wofiles/pkg/types"
)

// DirWatcher is told about every directory the session moves to.
type DirWatcher interface {
	Watch(dir string) error
}

// Option configures a Session.
type Option func(*Session)

// WithOperator replaces the file operation engine.
func WithOperator(ops fileops.Operator) Option {
	return func(s *Session) { s.ops = ops }
}

// WithWatcher retargets w on every navigation.
func WithWatcher(w DirWatcher) Option {
	return func(s *Session) { s.watcher = w }
}

// WithConfigPath makes AddShortcut save the configuration to path.
func WithConfigPath(path string) Option {
	return func(s *Session) { s.configPath = path }
}

// WithDryRun makes file operations log what they would do without touching
// the disk. Operators that cannot dry run are left as they are.
func WithDryRun() Option {
	return func(s *Session) { s.dryRun = true }
}

// WithStartDir opens dir instead of the configured start directory. The
// configuration itself is left alone.
func WithStartDir(dir string) Option {
	return func(s *Session) { s.current = dir }
}

// Session is safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	cfg        *config.Config
	configPath string

	current    string
	query      string
	shown      int
	privileged bool
	clipboard  types.Clipboard
	history    *history.History

	icons   *icons.Resolver
	themes  *theme.Store
	ops     fileops.Operator
	watcher DirWatcher
	dryRun  bool
	search  func(dir, query string, opts fsview.Options) ([]types.Entry, error)

	activeTheme string
}

// New creates a session positioned at the configured start directory.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.New()
	}

	s := &Session{
		cfg:         cfg,
		privileged:  cfg.View.ShowHidden,
		history:     history.New(),
		icons:       icons.NewResolver(cfg.Directories.Assets, cfg.View.IconSize),
		themes:      theme.NewStoreFromConfig(cfg),
		ops:         fileops.New(),
		search:      fsview.Search,
		activeTheme: cfg.Theme.Default,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.dryRun {
		if d, ok := s.ops.(fileops.DryRunner); ok {
			d.SetDryRun(true)
		} else {
			log.Warn("File operations cannot dry run, they will touch the disk")
		}
	}

	if s.current == "" {
		s.current = cfg.StartDir()
	}
	start, err := checkDir(s.current)
	if err != nil {
		return nil, err
	}
	s.current = start
	s.retarget(start)

	log.LogWithFields(log.F("directory", start)).Debug("Session started")
	return s, nil
}

// Current returns the directory being shown.
func (s *Session) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Query returns the active search query, empty when the plain listing is
// shown.
func (s *Session) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Privileged reports whether dotfiles are shown.
func (s *Session) Privileged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.privileged
}

// SetPrivileged toggles the privileged view. It only changes what later
// listings include.
func (s *Session) SetPrivileged(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.privileged = on
}

// Options returns the listing options in effect.
func (s *Session) Options() fsview.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.optionsLocked()
}

func (s *Session) optionsLocked() fsview.Options {
	return fsview.Options{
		ShowHidden:  s.privileged,
		Exclude:     s.cfg.View.Exclude,
		GuardCycles: s.cfg.Search.GuardCycles,
	}
}

// Open navigates to path as a user action: the current directory goes onto
// the back stack and forward history is dropped. Opening the current
// directory again leaves history alone.
func (s *Session) Open(path string) error {
	dir, err := checkDir(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir != s.current {
		s.current = s.history.Navigate(s.current, dir)
		s.retarget(dir)
	}
	s.query = ""
	return nil
}

// Up opens the parent directory. It does nothing at the root.
func (s *Session) Up() (string, bool) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == "/" {
		return current, false
	}
	parent := filepath.Dir(current)
	if err := s.Open(parent); err != nil {
		log.LogWithError(err).Warn("Cannot go up")
		return current, false
	}
	return parent, true
}

// Back returns to the previous directory. It reports false when there is
// no history.
func (s *Session) Back() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.history.Back(s.current)
	if !ok {
		return s.current, false
	}
	s.current = prev
	s.query = ""
	s.retarget(prev)
	return prev, true
}

// Forward undoes the last Back.
func (s *Session) Forward() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.history.Forward(s.current)
	if !ok {
		return s.current, false
	}
	s.current = next
	s.query = ""
	s.retarget(next)
	return next, true
}

// DryRun reports whether file operations only log what they would do.
func (s *Session) DryRun() bool {
	d, ok := s.ops.(fileops.DryRunner)
	return ok && d.IsDryRun()
}

// CanGoBack reports whether Back has somewhere to go.
func (s *Session) CanGoBack() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.BackLen() > 0
}

// CanGoForward reports whether Forward has somewhere to go.
func (s *Session) CanGoForward() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.ForwardLen() > 0
}

// BackStack and ForwardStack expose copies of the history.
func (s *Session) BackStack() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.BackStack()
}

func (s *Session) ForwardStack() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.ForwardStack()
}

// Entries lists the current directory and clears any search. A directory
// that cannot be read lists as empty, with the error returned alongside.
func (s *Session) Entries() ([]types.Entry, error) {
	return s.Search("")
}

// Search filters the current directory, or walks it for queries of two
// bytes or more. An empty query restores the plain listing.
//
// The walk runs without holding the session lock, so other goroutines can
// read the session while a deep search is in progress. A search that
// finishes after the session has moved elsewhere does not touch the
// session's query or item count.
func (s *Session) Search(query string) ([]types.Entry, error) {
	s.mu.Lock()
	dir, opts := s.current, s.optionsLocked()
	s.query = query
	s.mu.Unlock()

	entries, err := s.search(dir, query, opts)

	s.mu.Lock()
	if s.current == dir && s.query == query {
		s.shown = len(entries)
	}
	s.mu.Unlock()
	return entries, err
}

// Refresh repeats the last listing or search.
func (s *Session) Refresh() ([]types.Entry, error) {
	return s.Search(s.Query())
}

// Icon returns the icon for an entry.
func (s *Session) Icon(e types.Entry) image.Image {
	return s.icons.Resolve(e.Name, e.IsDir)
}

// Icons returns the session's icon resolver.
func (s *Session) Icons() *icons.Resolver {
	return s.icons
}

// Config returns the configuration the session was built from.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Status returns the status bar text for the last listing, with details of
// selected when it is not empty.
func (s *Session) Status(selected string) string {
	s.mu.RLock()
	dir, shown := s.current, s.shown
	s.mu.RUnlock()
	return status.Line(dir, shown, selected)
}

func (s *Session) retarget(dir string) {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Watch(dir); err != nil {
		log.LogWithFields(log.F("directory", dir)).Warnf("cannot watch directory: %v", err)
	}
}

// checkDir cleans path and makes sure it names a directory.
func checkDir(path string) (string, error) {
	if path == "" {
		return "", errors.NewFileError("empty path", path, errors.InvalidPath, nil)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.NewFileError("invalid path", path, errors.InvalidPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.NewFileError("cannot open directory", abs, errors.NotFound, err)
	}
	if !info.IsDir() {
		return "", errors.NewFileError("not a directory", abs, errors.InvalidPath, nil)
	}
	return abs, nil
}
