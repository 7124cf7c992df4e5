package theme

import (
	"path/filepath"
	"strings"
)

// maxStemLen bounds the sanitized name before the extension is added.
const maxStemLen = 251

// fallbackStem is used when nothing in the name survives sanitization.
const fallbackStem = "theme"

// SanitizeFilename turns a theme name into a stored file name. Letters,
// digits, '-' and '_' are kept, spaces become '_', everything else is
// dropped. The result is capped at 251 bytes and then gets Extension.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for i := 0; i < len(name) && b.Len() < maxStemLen; i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('_')
		}
	}

	stem := b.String()
	if stem == "" {
		stem = fallbackStem
	}
	return stem + Extension
}

// fallbackName stands in for an undeclared name when the file is stored:
// the whole base file name, extension included.
func fallbackName(path string) string {
	return filepath.Base(path)
}

// displayName is what an imported theme without a declared name is shown
// as: the base file name without its extension.
func displayName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Extension)
}
