// Package status builds the one-line summary shown under the explorer grid:
// item count, free space on the current filesystem and details of the
// selected entry.
package status

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	serr "wofiles/internal/errors"
	"wofiles/internal/log"
	"wofiles/pkg/types"
)

const unknown = "?"

// Scan describes the entry at path. Directories get
// types.DirectoryContentType; files get a MIME type sniffed from content.
func Scan(path string) (*types.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to stat file", path, serr.NotFound, err)
		}
		return nil, serr.NewFileError("failed to stat file", path, serr.StatFailed, err)
	}

	fi := &types.FileInfo{
		Path:  path,
		Size:  info.Size(),
		IsDir: info.IsDir(),
	}
	if info.IsDir() {
		fi.ContentType = types.DirectoryContentType
		return fi, nil
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		log.LogWithFields(log.F("path", path)).Debugf("content type detection failed: %v", err)
		fi.ContentType = unknown
		return fi, nil
	}
	fi.ContentType = mtype.String()
	return fi, nil
}

// FormatFree renders a byte count as gigabytes with one decimal, matching
// the status bar's "Free: 12.3 GB".
func FormatFree(bytes uint64) string {
	return fmt.Sprintf("%.1f GB", float64(bytes)/(1024*1024*1024))
}

// Free returns the formatted free space of the filesystem holding dir, or
// "?" when it cannot be read.
func Free(dir string) string {
	bytes, err := FreeSpace(dir)
	if err != nil {
		log.LogWithFields(log.F("path", dir)).Debugf("statfs failed: %v", err)
		return unknown
	}
	return FormatFree(bytes)
}

// Line builds the status text for a directory showing items entries.
// selected may be empty.
func Line(dir string, items int, selected string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Items: %d | Free: %s", items, Free(dir))
	if selected == "" {
		return sb.String()
	}

	info, err := Scan(selected)
	if err != nil {
		fmt.Fprintf(&sb, " | Selected: %s — %s", filepath.Base(selected), unknown)
		return sb.String()
	}
	fmt.Fprintf(&sb, " | Selected: %s — %s (%s)", info.Name(), info.HumanSize(), info.ContentType)
	return sb.String()
}
