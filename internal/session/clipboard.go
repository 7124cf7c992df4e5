package session

import (
	"os"

	"wofiles/internal/errors"
	"wofiles/internal/log"
	"wofiles/pkg/types"
)

// CopyToClipboard marks path to be copied by the next Paste.
func (s *Session) CopyToClipboard(path string) error {
	return s.setClipboard(path, types.ClipboardCopy)
}

// CutToClipboard marks path to be moved by the next Paste.
func (s *Session) CutToClipboard(path string) error {
	return s.setClipboard(path, types.ClipboardCut)
}

func (s *Session) setClipboard(path string, mode types.ClipboardMode) error {
	if _, err := os.Lstat(path); err != nil {
		return errors.NewFileError("cannot put on clipboard", path, errors.NotFound, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = types.Clipboard{Path: path, Mode: mode}
	log.LogWithFields(log.F("path", path), log.F("mode", string(mode))).Debug("Clipboard set")
	return nil
}

// Clipboard returns what is waiting to be pasted.
func (s *Session) Clipboard() types.Clipboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clipboard
}

// Paste copies or moves the clipboard entry into the current directory and
// returns its new path. The clipboard is emptied whether or not the paste
// succeeds.
func (s *Session) Paste() (string, error) {
	s.mu.Lock()
	clip, dest := s.clipboard, s.current
	s.clipboard = types.Clipboard{}
	s.mu.Unlock()

	if clip.Empty() {
		return "", errors.NewFileError("nothing to paste", dest, errors.InvalidPath, nil)
	}
	return s.ops.Paste(clip, dest)
}

// Delete removes path recursively. A clipboard entry pointing at it is
// dropped.
func (s *Session) Delete(path string) error {
	if err := s.ops.Delete(path); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clipboard.Path == path {
		s.clipboard = types.Clipboard{}
	}
	return nil
}

// Rename gives path a new name in the same directory.
func (s *Session) Rename(path, newName string) (string, error) {
	dest, err := s.ops.Rename(path, newName)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clipboard.Path == path {
		s.clipboard.Path = dest
	}
	return dest, nil
}
