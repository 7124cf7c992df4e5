// Package fileops implements copy, move, delete and rename for the explorer
// with plain filesystem calls.
package fileops

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/otiai10/copy"

	"wofiles/internal/errors"
	"wofiles/internal/log"
	"wofiles/pkg/types"
)

// Engine runs file operations. Operations are serialised so a paste and a
// delete issued from different goroutines never interleave.
type Engine struct {
	mu     sync.Mutex
	dryRun bool
}

// New creates a new file operation engine.
func New() *Engine {
	return &Engine{}
}

// SetDryRun makes every operation log what it would do and return without
// touching the filesystem.
func (e *Engine) SetDryRun(dryRun bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dryRun = dryRun
}

// IsDryRun returns whether the engine is in dry run mode
func (e *Engine) IsDryRun() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dryRun
}

// Paste dispatches on the clipboard mode.
func (e *Engine) Paste(clip types.Clipboard, destDir string) (string, error) {
	if clip.Empty() {
		return "", errors.NewFileError("clipboard is empty", destDir, errors.InvalidPath, nil)
	}
	switch clip.Mode {
	case types.ClipboardCut:
		return e.Move(clip.Path, destDir)
	case types.ClipboardCopy:
		return e.Copy(clip.Path, destDir)
	default:
		return "", errors.NewFileError("unknown clipboard mode "+string(clip.Mode), clip.Path, errors.InvalidPath, nil)
	}
}

// Copy recursively copies src to destDir/base(src). Existing files are
// overwritten and existing directories are merged into. Symlinks are copied
// as links.
func (e *Engine) Copy(src, destDir string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	srcInfo, dest, err := prepare(src, destDir)
	if err != nil {
		return "", err
	}
	if srcInfo.IsDir() && within(dest, src) {
		return "", errors.NewFileError("cannot copy a directory into itself", dest, errors.InvalidPath, nil)
	}
	if destInfo, err := os.Lstat(dest); err == nil {
		if os.SameFile(srcInfo, destInfo) {
			return "", errors.NewFileError("source and destination are the same file", dest, errors.InvalidPath, nil)
		}
		// A file in the way of a directory, or of a link, is replaced.
		if !destInfo.IsDir() || !srcInfo.IsDir() {
			if !e.dryRun {
				if err := os.RemoveAll(dest); err != nil {
					return "", errors.NewFileError("failed to replace destination", dest, errors.FileOperationFailed, err)
				}
			}
		}
	}

	if e.dryRun {
		log.Info("Would copy %s -> %s", src, dest)
		return dest, nil
	}

	opts := copy.Options{
		OnSymlink: func(string) copy.SymlinkAction { return copy.Shallow },
	}
	if err := copy.Copy(src, dest, opts); err != nil {
		return "", errors.NewFileError("failed to copy", src, errors.FileOperationFailed, err)
	}

	log.LogWithFields(log.F("source", src), log.F("destination", dest)).Info("Copied")
	return dest, nil
}

// Move moves src to destDir/base(src). Moving an entry onto itself does
// nothing. Across filesystems the entry is copied and the source removed.
func (e *Engine) Move(src, destDir string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	srcInfo, dest, err := prepare(src, destDir)
	if err != nil {
		return "", err
	}
	if filepath.Clean(src) == filepath.Clean(dest) {
		log.Debug("Source and destination are the same, skipping: %s", src)
		return dest, nil
	}
	if srcInfo.IsDir() && within(dest, src) {
		return "", errors.NewFileError("cannot move a directory into itself", dest, errors.InvalidPath, nil)
	}

	if e.dryRun {
		log.Info("Would move %s -> %s", src, dest)
		return dest, nil
	}

	err = os.Rename(src, dest)
	if err != nil && isCrossDevice(err) {
		log.Debug("Rename crosses devices, copying %s", src)
		err = copy.Copy(src, dest, copy.Options{
			OnSymlink: func(string) copy.SymlinkAction { return copy.Shallow },
		})
		if err == nil {
			err = os.RemoveAll(src)
		}
	}
	if err != nil {
		return "", errors.NewFileError("failed to move", src, errors.FileOperationFailed, err)
	}

	log.LogWithFields(log.F("source", src), log.F("destination", dest)).Info("Moved")
	return dest, nil
}

// Delete removes path recursively.
func (e *Engine) Delete(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	clean := filepath.Clean(path)
	if path == "" || clean == "/" || clean == "." {
		return errors.NewFileError("refusing to delete", path, errors.InvalidPath, nil)
	}
	if _, err := os.Lstat(path); err != nil {
		return errors.NewFileError("failed to delete", path, errors.NotFound, err)
	}

	if e.dryRun {
		log.Info("Would delete %s", path)
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return errors.NewFileError("failed to delete", path, errors.FileOperationFailed, err)
	}
	log.LogWithFields(log.F("path", path)).Info("Deleted")
	return nil
}

// Rename renames path to newName inside the same directory and returns the
// new path. newName must be a single path segment.
func (e *Engine) Rename(path, newName string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if newName == "" || newName == "." || newName == ".." || strings.ContainsRune(newName, '/') {
		return "", errors.NewFileError("invalid name "+newName, path, errors.InvalidPath, nil)
	}
	if _, err := os.Lstat(path); err != nil {
		return "", errors.NewFileError("failed to rename", path, errors.NotFound, err)
	}

	dest := filepath.Join(filepath.Dir(path), newName)
	if e.dryRun {
		log.Info("Would rename %s -> %s", path, dest)
		return dest, nil
	}

	if err := os.Rename(path, dest); err != nil {
		return "", errors.NewFileError("failed to rename", path, errors.FileOperationFailed, err)
	}
	log.LogWithFields(log.F("path", path), log.F("name", newName)).Info("Renamed")
	return dest, nil
}

// prepare checks src and destDir and returns the source info and the
// destination path.
func prepare(src, destDir string) (os.FileInfo, string, error) {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return nil, "", errors.NewFileError("source not found", src, errors.NotFound, err)
	}
	dirInfo, err := os.Stat(destDir)
	if err != nil {
		return nil, "", errors.NewFileError("destination not found", destDir, errors.NotFound, err)
	}
	if !dirInfo.IsDir() {
		return nil, "", errors.NewFileError("destination is not a directory", destDir, errors.InvalidPath, nil)
	}
	return srcInfo, filepath.Join(destDir, filepath.Base(src)), nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, "../"))
}
