package icons_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wofiles/internal/icons"
	"wofiles/pkg/testutils"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func assetsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutils.WritePNG(t, filepath.Join(dir, icons.FolderIcon), 16, red)
	testutils.WritePNG(t, filepath.Join(dir, icons.FallbackIcon), 16, green)
	testutils.WritePNG(t, filepath.Join(dir, "jpg.png"), 16, blue)
	return dir
}

func centre(img image.Image) color.RGBA {
	b := img.Bounds()
	return color.RGBAModel.Convert(img.At(b.Dx()/2, b.Dy()/2)).(color.RGBA)
}

func TestResolve(t *testing.T) {
	r := icons.NewResolver(assetsDir(t), 32)

	t.Run("directories share the folder icon", func(t *testing.T) {
		a := r.Resolve("docs", true)
		b := r.Resolve("photo.jpg", true)
		assert.True(t, a == b)
		assert.Equal(t, red, centre(a))
		assert.Equal(t, image.Rect(0, 0, 32, 32), a.Bounds())
	})

	t.Run("extension icon", func(t *testing.T) {
		img := r.Resolve("photo.jpg", false)
		assert.Equal(t, blue, centre(img))
		assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		assert.True(t, r.Resolve("photo.JPG", false) == r.Fallback())
	})

	t.Run("no extension", func(t *testing.T) {
		assert.True(t, r.Resolve("Makefile", false) == r.Fallback())
		assert.True(t, r.Resolve("trailing.", false) == r.Fallback())
		assert.Equal(t, green, centre(r.Fallback()))
	})

	t.Run("unknown extension", func(t *testing.T) {
		assert.True(t, r.Resolve("notes.zzz", false) == r.Fallback())
	})
}

func TestResolvePlaceholders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "txt.png"), []byte("not a png"), 0644))
	r := icons.NewResolver(dir, 0)

	t.Run("missing folder icon", func(t *testing.T) {
		img := r.Resolve("dir", true)
		assert.Equal(t, icons.PlaceholderColor, centre(img))
		assert.Equal(t, icons.DefaultSize, img.Bounds().Dx())
	})

	t.Run("corrupt extension icon", func(t *testing.T) {
		img := r.Resolve("readme.txt", false)
		assert.Equal(t, icons.PlaceholderColor, centre(img))
		assert.False(t, img == r.Fallback())
	})

	t.Run("missing fallback", func(t *testing.T) {
		assert.Equal(t, icons.PlaceholderColor, centre(r.Resolve("x", false)))
	})
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"photo.JPG":      "JPG",
		"archive.tar.gz": "gz",
		".bashrc":        "bashrc",
		"Makefile":       "",
		"dot.":           "",
	}
	for name, want := range tests {
		assert.Equal(t, want, icons.Extension(name), name)
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := icons.NewResolver(assetsDir(t), 16)

	var wg sync.WaitGroup
	results := make([]image.Image, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve("dir", true)
		}(i)
	}
	wg.Wait()

	for _, img := range results {
		assert.True(t, img == results[0])
	}
}
