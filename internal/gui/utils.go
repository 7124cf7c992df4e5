//go:build !nogui

package gui

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"

	"wofiles/internal/log"
	wotheme "wofiles/internal/theme"
)

// HandleDrop imports dropped .wo files. A dropped directory is opened;
// anything else is ignored.
func (a *App) HandleDrop(uris []fyne.URI) {
	for _, uri := range uris {
		if uri.Scheme() != "file" {
			continue
		}
		path := uri.Path()

		if strings.EqualFold(uri.Extension(), wotheme.Extension) {
			a.importTheme(path)
			continue
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			a.open(path)
			continue
		}
		log.LogWithFields(log.F("path", path)).Debug("Ignoring dropped file")
	}
}

// splitLines turns the exclude editor text into patterns, dropping blank
// lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
