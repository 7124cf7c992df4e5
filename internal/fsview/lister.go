// Package fsview turns directories into the entry slices the explorer
// renders: one level at a time with List, or filtered by name with Search.
package fsview

import (
	"os"

	"github.com/gobwas/glob"

	"wofiles/internal/errors"
	"wofiles/internal/log"
	"wofiles/pkg/types"
)

// Options controls which entries a listing yields.
type Options struct {
	// ShowHidden includes names starting with "." (privileged view).
	ShowHidden bool
	// Exclude drops entries whose name matches any of these glob patterns.
	Exclude []string
	// GuardCycles makes deep search refuse to re-enter a directory it has
	// already walked, identified by device and inode.
	GuardCycles bool
}

// List returns the immediate children of dir in filesystem enumeration
// order. The "." entry and, unless opts.ShowHidden is set, dotfiles are
// skipped; entries that cannot be lstat'ed are skipped silently.
//
// The only error is a NotFound FileError when dir cannot be opened or read.
func List(dir string, opts Options) ([]types.Entry, error) {
	return list(dir, opts, compileExcludes(opts.Exclude))
}

func list(dir string, opts Options, exclude excluder) ([]types.Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.NewFileError("failed to open directory", dir, errors.NotFound, err)
	}
	defer f.Close()

	// (*os.File).ReadDir keeps the order the filesystem hands back;
	// os.ReadDir would sort by name.
	dirents, err := f.ReadDir(-1)
	if err != nil && len(dirents) == 0 {
		return nil, errors.NewFileError("failed to read directory", dir, errors.NotFound, err)
	}
	if err != nil {
		log.LogWithFields(log.F("directory", dir)).Debugf("partial directory read: %v", err)
	}

	entries := make([]types.Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if name == "." || name == ".." {
			continue
		}
		if !opts.ShowHidden && name[0] == '.' {
			continue
		}
		if exclude.match(name) {
			continue
		}

		path := dir + "/" + name
		info, err := os.Lstat(path)
		if err != nil {
			statErr := errors.NewFileError("failed to stat entry", path, errors.StatFailed, err)
			log.LogWithError(statErr).Debug("skipping entry")
			continue
		}
		entries = append(entries, types.NewEntry(dir, name, info.IsDir()))
	}

	return entries, nil
}

type excluder []glob.Glob

func compileExcludes(patterns []string) excluder {
	if len(patterns) == 0 {
		return nil
	}
	compiled := make(excluder, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			log.Warnf("ignoring invalid exclude pattern %q: %v", p, err)
			continue
		}
		compiled = append(compiled, g)
	}
	return compiled
}

func (x excluder) match(name string) bool {
	for _, g := range x {
		if g.Match(name) {
			return true
		}
	}
	return false
}
