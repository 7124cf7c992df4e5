// Package theme reads .wo theme files and manages the directory imported
// themes are copied into.
//
// A theme file is plain text. Line 1 may declare a display name:
//
//	THEMENAME: Midnight
//	---
//	.x{color:red}
//
// Everything after the first line starting with "---" is the style payload,
// kept verbatim and handed to the front-end untouched.
package theme

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"wofiles/internal/errors"
)

const (
	// Extension is appended to every stored theme file.
	Extension = ".wo"
	// NamePrefix starts a name declaration on line 1.
	NamePrefix = "THEMENAME:"
	// Boundary starts the line after which the payload begins.
	Boundary = "---"
	// MaxNameLen bounds a declared name, in bytes.
	MaxNameLen = 127
)

// Definition is a parsed theme file.
type Definition struct {
	Name  string // declared name, empty when line 1 declares none
	Style string // payload, verbatim including line terminators
}

// Parse reads the theme file at path. It fails with NotFound when the file
// cannot be opened and NoContent when no payload follows a boundary line.
func Parse(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewThemeError("failed to open theme file", path, errors.NotFound, err)
	}
	defer f.Close()

	def, err := parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.NewThemeError("failed to read theme file", path, errors.NotFound, err)
	}
	if def.Style == "" {
		return nil, errors.NewThemeError("theme file has no style content", path, errors.NoContent, nil)
	}
	return def, nil
}

func parse(r *bufio.Reader) (*Definition, error) {
	def := &Definition{}
	var payload strings.Builder
	first, inPayload := true, false

	for {
		line, err := r.ReadString('\n')
		if line != "" {
			switch {
			case inPayload:
				payload.WriteString(line)
			case first && strings.HasPrefix(line, NamePrefix):
				def.Name, _ = nameFromLine(line)
			case strings.HasPrefix(line, Boundary):
				inPayload = true
			}
			first = false
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	def.Style = payload.String()
	return def, nil
}

// ParseName returns the name declared on line 1 of the file at path. It
// reports false when the file cannot be read, line 1 is not a name line, or
// the declared name is empty.
func ParseName(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false
	}
	if !strings.HasPrefix(line, NamePrefix) {
		return "", false
	}
	return nameFromLine(line)
}

// nameFromLine extracts the name from a line known to start with
// NamePrefix. Blanks after the colon are skipped and the line terminator is
// dropped; the result is cut to MaxNameLen bytes on a rune boundary.
func nameFromLine(line string) (string, bool) {
	name := strings.TrimLeft(line[len(NamePrefix):], " \t\v\f")
	name = strings.TrimSuffix(name, "\n")
	name = strings.TrimSuffix(name, "\r")

	if len(name) > MaxNameLen {
		cut := MaxNameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name, name != ""
}
