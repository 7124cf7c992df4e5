package testutils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wofiles/pkg/types"
)

// CreateTree creates files and directories under root. Keys ending in "/"
// are directories, everything else is a file holding the mapped content.
// Parent directories are created as needed.
func CreateTree(t *testing.T, root string, tree map[string]string) {
	t.Helper()
	for name, content := range tree {
		full := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestFilesWithDefault creates a small mixed directory: two text files,
// an image, a dotfile and a subdirectory.
func CreateTestFilesWithDefault(t *testing.T, dir string) {
	t.Helper()
	CreateTree(t, dir, map[string]string{
		"test1.txt":  "test content 1",
		"test2.txt":  "test content 2",
		"test3.jpg":  "image content",
		".hidden":    "secret",
		"documents/": "",
	})
}

// WritePNG writes a size x size solid PNG to path.
func WritePNG(t *testing.T, path string, size int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// Names returns the entry names, sorted, so tests can compare listings
// without depending on filesystem enumeration order.
func Names(entries []types.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
