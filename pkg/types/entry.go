package types

import (
	"fmt"
	"strings"
)

// Entry is one child of a listed directory.
//
// Path is always the listed directory joined to Name with a single "/", so a
// listing of "/" yields paths such as "//etc". IsDir comes from lstat, which
// means a symlink to a directory is reported as a non-directory.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
}

// NewEntry builds the entry for name inside dir.
func NewEntry(dir, name string, isDir bool) Entry {
	return Entry{
		Name:  name,
		Path:  dir + "/" + name,
		IsDir: isDir,
	}
}

// Hidden reports whether the entry is a dotfile.
func (e Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// String returns a one-line representation, directories get a trailing slash.
func (e Entry) String() string {
	if e.IsDir {
		return fmt.Sprintf("%s/", e.Name)
	}
	return e.Name
}
