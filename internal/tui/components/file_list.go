package components

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wofiles/internal/tui/styles"
	"wofiles/pkg/types"
)

// FileList renders entries as a scrolling column with a cursor line.
type FileList struct {
	entries    []types.Entry
	cursor     int
	height     int
	currentDir string
	marked     string
	styles     styles.Styles
}

func NewFileList(st styles.Styles) *FileList {
	return &FileList{styles: st}
}

func (fl *FileList) SetEntries(entries []types.Entry) {
	fl.entries = entries
}

func (fl *FileList) SetCursor(cursor int) {
	fl.cursor = cursor
}

// SetHeight limits the number of rows shown; zero shows everything.
func (fl *FileList) SetHeight(height int) {
	fl.height = height
}

func (fl *FileList) SetCurrentDir(dir string) {
	fl.currentDir = dir
}

// SetMarked highlights the entry waiting on the clipboard.
func (fl *FileList) SetMarked(path string) {
	fl.marked = path
}

func (fl *FileList) View() string {
	if len(fl.entries) == 0 {
		return fl.styles.Status.Render("No files found") + "\n"
	}

	start, end := fl.window()
	var s strings.Builder
	for i := start; i < end; i++ {
		e := fl.entries[i]
		name := fl.displayName(e)

		cursor := "  "
		if i == fl.cursor {
			cursor = "> "
		}
		s.WriteString(cursor + fl.styleFor(i, e).Render(name) + "\n")
	}
	return s.String()
}

// styleFor picks the row style. Dotfiles, only listed in the privileged
// view, are muted.
func (fl *FileList) styleFor(i int, e types.Entry) lipgloss.Style {
	switch {
	case i == fl.cursor:
		return fl.styles.Cursor
	case e.Path == fl.marked:
		return fl.styles.Marked
	case e.Hidden():
		return fl.styles.Hidden
	case e.IsDir:
		return fl.styles.Directory
	}
	return fl.styles.File
}

// displayName shows search hits below the current directory by their
// relative path. Directories get a trailing slash.
func (fl *FileList) displayName(e types.Entry) string {
	name := e.Name
	if fl.currentDir != "" {
		if rel, err := filepath.Rel(fl.currentDir, e.Path); err == nil && !strings.HasPrefix(rel, "..") {
			name = rel
		}
	}
	if e.IsDir {
		name += "/"
	}
	return name
}

// window returns the slice of rows that keeps the cursor visible.
func (fl *FileList) window() (int, int) {
	n := len(fl.entries)
	if fl.height <= 0 || n <= fl.height {
		return 0, n
	}
	start := fl.cursor - fl.height/2
	if start < 0 {
		start = 0
	}
	if start+fl.height > n {
		start = n - fl.height
	}
	return start, start + fl.height
}
