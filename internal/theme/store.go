package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"

	"wofiles/internal/config"
	"wofiles/internal/errors"
	"wofiles/internal/log"
)

// Store is the managed theme directory: imported .wo files plus the
// stylesheets behind the builtin theme names.
type Store struct {
	dir     string
	builtin []config.BuiltinTheme
}

// NewStore returns a store rooted at dir. The directory is created on first
// use, not here.
func NewStore(dir string, builtin []config.BuiltinTheme) *Store {
	return &Store{dir: dir, builtin: builtin}
}

// NewStoreFromConfig returns the store described by cfg.
func NewStoreFromConfig(cfg *config.Config) *Store {
	return NewStore(cfg.ThemesDir(), cfg.Theme.Builtin)
}

// Dir returns the managed directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) ensureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// Persist copies the theme file at src into the managed directory under a
// name derived from its declared name (or its base file name) and returns
// the stored file name. An existing file of that name is overwritten.
func (s *Store) Persist(src string) (string, error) {
	logger := log.LogWithFields(log.F("source", src))

	info, err := os.Stat(src)
	if err != nil {
		return "", errors.NewThemeError("failed to persist theme", src, errors.PersistFailed, err)
	}
	if info.IsDir() {
		return "", errors.NewThemeError("theme source is a directory", src, errors.PersistFailed, nil)
	}

	name, ok := ParseName(src)
	if !ok {
		name = fallbackName(src)
	}
	stored := SanitizeFilename(name)

	if err := s.ensureDir(); err != nil {
		return "", errors.NewThemeError("failed to create theme directory", s.dir, errors.PersistFailed, err)
	}

	dst := filepath.Join(s.dir, stored)
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		logger.Debugf("theme already stored as %s", stored)
		return stored, nil
	}

	if err := copy.Copy(src, dst); err != nil {
		return "", errors.NewThemeError("failed to persist theme", dst, errors.PersistFailed, err)
	}

	logger.With(log.F("stored", stored)).Info("Theme persisted")
	return stored, nil
}

// Import persists src and parses the stored copy. The returned definition
// always carries a name: the declared one, or the base file name without
// its extension. A NoContent error still leaves the copy in place.
func (s *Store) Import(src string) (*Definition, string, error) {
	stored, err := s.Persist(src)
	if err != nil {
		return nil, "", err
	}

	def, err := Parse(filepath.Join(s.dir, stored))
	if err != nil {
		return nil, stored, err
	}
	if def.Name == "" {
		def.Name = displayName(src)
	}
	return def, stored, nil
}

// EnumerateSaved returns the declared names of the stored .wo files in
// directory order, each name once. Files without a declared name are
// skipped.
func (s *Store) EnumerateSaved() ([]string, error) {
	if err := s.ensureDir(); err != nil {
		return nil, errors.NewThemeError("failed to create theme directory", s.dir, errors.PersistFailed, err)
	}

	names := []string{}
	err := s.eachSaved(func(path, name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		names = append(names, name)
		return true
	})
	return names, err
}

// eachSaved calls fn for every stored .wo file declaring a name, in
// directory order, until fn returns false.
func (s *Store) eachSaved(fn func(path, name string) bool) error {
	d, err := os.Open(s.dir)
	if err != nil {
		return errors.NewThemeError("failed to open theme directory", s.dir, errors.NotFound, err)
	}
	defer d.Close()

	entries, err := d.ReadDir(-1)
	if err != nil && len(entries) == 0 {
		return errors.NewThemeError("failed to read theme directory", s.dir, errors.NotFound, err)
	}

	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		name, ok := ParseName(path)
		if !ok {
			continue
		}
		if !fn(path, name) {
			break
		}
	}
	return nil
}

// BuiltinNames returns the builtin theme names in configured order.
func (s *Store) BuiltinNames() []string {
	names := make([]string, 0, len(s.builtin))
	for _, b := range s.builtin {
		names = append(names, b.Name)
	}
	return names
}

// Names returns what a theme selector lists: builtin names first, then
// saved names not already present.
func (s *Store) Names() []string {
	names := s.BuiltinNames()
	saved, err := s.EnumerateSaved()
	if err != nil {
		log.LogWithError(err).Warn("Listing saved themes failed")
		return names
	}

	seen := make(map[string]bool, len(names)+len(saved))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range saved {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// Style resolves a selector name to style text. A saved theme declaring
// the name wins over a builtin of the same name; builtin stylesheets are
// returned whole.
func (s *Store) Style(name string) (string, error) {
	var found string
	if _, err := os.Stat(s.dir); err == nil {
		if err := s.eachSaved(func(path, declared string) bool {
			if declared == name {
				found = path
				return false
			}
			return true
		}); err != nil {
			return "", err
		}
	}
	if found != "" {
		def, err := Parse(found)
		if err != nil {
			return "", err
		}
		return def.Style, nil
	}

	for _, b := range s.builtin {
		if b.Name != name {
			continue
		}
		path := filepath.Join(s.dir, b.File)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewThemeError("failed to read builtin theme", path, errors.NotFound, err)
		}
		return string(data), nil
	}

	return "", errors.NewThemeError("unknown theme "+name, "", errors.NotFound, nil)
}
