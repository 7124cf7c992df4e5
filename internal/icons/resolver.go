// Package icons maps entries to the images shown in the explorer grid.
//
// Icons live as PNG files in an assets directory: folder.png for
// directories, file.png as the shared fallback and <ext>.png per file
// extension. Every icon is scaled to a square of the configured size.
package icons

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "image/png"

	"golang.org/x/image/draw"

	"wofiles/internal/log"
)

const (
	// DefaultSize is the icon edge length used when none is configured.
	DefaultSize = 48

	FolderIcon   = "folder.png"
	FallbackIcon = "file.png"
)

// PlaceholderColor fills the square returned when an icon cannot be loaded.
var PlaceholderColor = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}

// Resolver resolves entry icons from an assets directory. The folder and
// fallback icons are decoded once per resolver; extension icons are decoded
// on every call. It is safe for concurrent use.
type Resolver struct {
	dir  string
	size int

	folderOnce   sync.Once
	folder       image.Image
	fallbackOnce sync.Once
	fallback     image.Image
}

// NewResolver returns a resolver reading from assetsDir. A non-positive
// size means DefaultSize.
func NewResolver(assetsDir string, size int) *Resolver {
	if size <= 0 {
		size = DefaultSize
	}
	return &Resolver{dir: assetsDir, size: size}
}

// Size returns the icon edge length in pixels.
func (r *Resolver) Size() int {
	return r.size
}

// Resolve returns the icon for an entry. It never fails: unreadable icons
// become a grey placeholder square.
func (r *Resolver) Resolve(name string, isDir bool) image.Image {
	if isDir {
		return r.Folder()
	}

	if ext := Extension(name); ext != "" {
		path := filepath.Join(r.dir, ext+".png")
		if _, err := os.Stat(path); err == nil {
			return r.load(path)
		}
	}
	return r.Fallback()
}

// Folder returns the cached directory icon.
func (r *Resolver) Folder() image.Image {
	r.folderOnce.Do(func() {
		r.folder = r.load(filepath.Join(r.dir, FolderIcon))
	})
	return r.folder
}

// Fallback returns the cached icon shared by files without their own.
func (r *Resolver) Fallback() image.Image {
	r.fallbackOnce.Do(func() {
		r.fallback = r.load(filepath.Join(r.dir, FallbackIcon))
	})
	return r.fallback
}

// Extension returns the text after the last '.' in name, or "" when there
// is no dot or nothing follows it. Case is preserved.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}

func (r *Resolver) load(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.LogWithFields(log.F("icon", path)).Debugf("icon unavailable: %v", err)
		return Placeholder(r.size)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		log.LogWithFields(log.F("icon", path)).Warnf("icon decode failed: %v", err)
		return Placeholder(r.size)
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Placeholder returns a size x size square of PlaceholderColor.
func Placeholder(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: PlaceholderColor}, image.Point{}, draw.Src)
	return img
}
