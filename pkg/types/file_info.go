package types

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// DirectoryContentType is reported for directories instead of a detected
// MIME type.
const DirectoryContentType = "inode/directory"

// FileInfo describes the selected entry in the status bar.
type FileInfo struct {
	Path        string `json:"path"`
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
	IsDir       bool   `json:"is_dir"`
}

// Name returns the base name of the file
func (f *FileInfo) Name() string {
	return filepath.Base(f.Path)
}

// HumanSize formats Size with binary units, e.g. "1.5 KiB".
func (f *FileInfo) HumanSize() string {
	if f.Size < 0 {
		return "?"
	}
	return humanize.IBytes(uint64(f.Size))
}

// ToJSON converts FileInfo to JSON string
func (f *FileInfo) ToJSON() string {
	jsonBytes, _ := json.Marshal(f)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (f *FileInfo) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", f.Path))
	sb.WriteString(fmt.Sprintf("Type: %s\n", f.ContentType))
	sb.WriteString(fmt.Sprintf("Size: %s (%d bytes)\n", f.HumanSize(), f.Size))
	return sb.String()
}

// IsSymlink checks if the file is a symbolic link
func (f *FileInfo) IsSymlink() bool {
	info, err := os.Lstat(f.Path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
