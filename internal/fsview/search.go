package fsview

import (
	"strings"

	"wofiles/internal/log"
	"wofiles/pkg/types"
)

// DeepQueryLen is the query length, in bytes, at which Search switches from
// filtering the current directory to walking the whole subtree.
const DeepQueryLen = 2

// Search filters the entries under dir by case-insensitive substring match
// on the name. Matching folds ASCII letters only.
//
// An empty query returns the plain listing. A query shorter than
// DeepQueryLen filters the immediate children. Anything longer walks the
// subtree depth-first, testing each entry before descending into it, and
// returns every match at every depth. Only entries that lstat reports as
// directories are descended into, so symlinks are never followed.
// Subdirectories that cannot be read contribute nothing.
func Search(dir, query string, opts Options) ([]types.Entry, error) {
	exclude := compileExcludes(opts.Exclude)

	if query == "" {
		return list(dir, opts, exclude)
	}

	needle := foldASCII(query)

	if len(query) < DeepQueryLen {
		entries, err := list(dir, opts, exclude)
		if err != nil {
			return nil, err
		}
		matches := make([]types.Entry, 0, len(entries))
		for _, e := range entries {
			if strings.Contains(foldASCII(e.Name), needle) {
				matches = append(matches, e)
			}
		}
		return matches, nil
	}

	w := &walker{opts: opts, exclude: exclude, needle: needle}
	if opts.GuardCycles {
		w.seen = make(map[fileID]struct{})
		w.visit(dir)
	}

	entries, err := list(dir, opts, exclude)
	if err != nil {
		return nil, err
	}
	matches := []types.Entry{}
	w.walk(entries, &matches)

	log.LogWithFields(log.F("directory", dir), log.F("query", query)).
		Debugf("deep search found %d matches", len(matches))
	return matches, nil
}

// identify returns the device/inode pair of a directory.
var identify = statIdentity

type walker struct {
	opts    Options
	exclude excluder
	needle  string
	seen    map[fileID]struct{}
}

func (w *walker) walk(entries []types.Entry, matches *[]types.Entry) {
	for _, e := range entries {
		if strings.Contains(foldASCII(e.Name), w.needle) {
			*matches = append(*matches, e)
		}
		if !e.IsDir {
			continue
		}
		if w.seen != nil && !w.visit(e.Path) {
			log.Debugf("not re-entering %s", e.Path)
			continue
		}
		children, err := list(e.Path, w.opts, w.exclude)
		if err != nil {
			continue
		}
		w.walk(children, matches)
	}
}

// visit records dir and reports whether it was new. Directories whose
// identity cannot be read are always walked.
func (w *walker) visit(dir string) bool {
	id, ok := identify(dir)
	if !ok {
		return true
	}
	if _, dup := w.seen[id]; dup {
		return false
	}
	w.seen[id] = struct{}{}
	return true
}

// foldASCII lowercases A-Z and leaves every other byte alone.
func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
