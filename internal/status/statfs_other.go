//go:build !(linux || darwin || freebsd)

package status

import "wofiles/internal/errors"

// FreeSpace is not available on this platform.
func FreeSpace(path string) (uint64, error) {
	return 0, errors.NewFileError("free space unavailable", path, errors.StatFailed, nil)
}
