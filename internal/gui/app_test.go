//go:build !nogui

package gui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wofiles/internal/config"
	"wofiles/internal/session"
	"wofiles/internal/watch"
	wotheme "wofiles/internal/theme"
	"wofiles/pkg/testutils"
	"wofiles/pkg/types"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	root := t.TempDir()
	testutils.CreateTree(t, root, map[string]string{
		"docs/":          "",
		"docs/notes.txt": "notes",
		".hidden":        "x",
		"file.txt":       "plain",
	})

	sess, err := session.New(config.NewTestConfig(root))
	require.NoError(t, err)

	a := New(test.NewTempApp(t), sess, nil)
	t.Cleanup(a.mainWindow.Close)
	return a, root
}

func TestNewListsStartDirectory(t *testing.T) {
	a, root := newTestApp(t)

	assert.Equal(t, []string{"docs", "file.txt"}, testutils.Names(a.visibleEntries()))
	assert.Equal(t, root, a.pathEntry.Text)
	assert.True(t, a.backButton.Disabled())
	assert.True(t, a.forwardButton.Disabled())
	assert.True(t, strings.HasPrefix(a.statusLabel.Text, "Items: 2 |"), a.statusLabel.Text)
}

func TestNavigation(t *testing.T) {
	a, root := newTestApp(t)
	docs := filepath.Join(root, "docs")

	a.open(docs)
	assert.Equal(t, docs, a.pathEntry.Text)
	assert.Equal(t, []string{"notes.txt"}, testutils.Names(a.visibleEntries()))
	assert.False(t, a.backButton.Disabled())

	test.Tap(a.backButton)
	assert.Equal(t, root, a.session.Current())
	assert.False(t, a.forwardButton.Disabled())

	test.Tap(a.forwardButton)
	assert.Equal(t, docs, a.session.Current())

	a.goUp()
	assert.Equal(t, root, a.session.Current())

	t.Run("path entry", func(t *testing.T) {
		a.pathEntry.SetText(docs)
		a.pathEntry.OnSubmitted(docs)
		assert.Equal(t, docs, a.session.Current())

		missing := filepath.Join(root, "missing")
		a.pathEntry.SetText(missing)
		a.pathEntry.OnSubmitted(missing)
		assert.Equal(t, docs, a.session.Current())
		assert.Equal(t, docs, a.pathEntry.Text, "a rejected path is replaced by the current one")
	})
}

func TestSearchAndPrivilegedView(t *testing.T) {
	a, root := newTestApp(t)

	test.Type(a.searchEntry, "no")
	require.Len(t, a.visibleEntries(), 1)
	assert.Equal(t, filepath.Join(root, "docs", "notes.txt"), a.visibleEntries()[0].Path)

	a.searchEntry.SetText("")
	assert.Equal(t, []string{"docs", "file.txt"}, testutils.Names(a.visibleEntries()))

	test.Tap(a.privileged)
	assert.Equal(t, []string{".hidden", "docs", "file.txt"}, testutils.Names(a.visibleEntries()))

	a.open(filepath.Join(root, "docs"))
	assert.Empty(t, a.searchEntry.Text)
}

func TestEntryItem(t *testing.T) {
	a, root := newTestApp(t)

	item := newEntryItem(a)
	item.set(types.NewEntry(root, "file.txt", false))
	assert.Equal(t, "file.txt", item.label.Text)
	assert.NotNil(t, item.icon.Image)

	test.Tap(item)
	assert.Equal(t, filepath.Join(root, "file.txt"), a.selectedPath())
	assert.Contains(t, a.statusLabel.Text, "Selected: file.txt")

	dir := newEntryItem(a)
	dir.set(types.NewEntry(root, "docs", true))
	test.DoubleTap(dir)
	assert.Equal(t, filepath.Join(root, "docs"), a.session.Current())
}

func TestFileActions(t *testing.T) {
	a, root := newTestApp(t)
	docs := filepath.Join(root, "docs")

	require.NoError(t, a.session.CopyToClipboard(filepath.Join(root, "file.txt")))
	a.open(docs)
	a.paste()
	assert.Equal(t, []string{"file.txt", "notes.txt"}, testutils.Names(a.visibleEntries()))

	a.rename(filepath.Join(docs, "file.txt"), "copy.txt")
	assert.Equal(t, []string{"copy.txt", "notes.txt"}, testutils.Names(a.visibleEntries()))

	a.delete(filepath.Join(docs, "copy.txt"))
	assert.Equal(t, []string{"notes.txt"}, testutils.Names(a.visibleEntries()))
	assert.FileExists(t, filepath.Join(root, "file.txt"))
}

func TestAddShortcut(t *testing.T) {
	a, root := newTestApp(t)
	before := len(a.shortcuts)

	a.open(filepath.Join(root, "docs"))
	a.addShortcut()
	require.Len(t, a.shortcuts, before+1)
	assert.Equal(t, "docs", a.shortcuts[before].Label)
	assert.Equal(t, before+1, a.sidebar.Length())
}

func TestThemes(t *testing.T) {
	a, root := newTestApp(t)
	themesDir := a.session.Config().ThemesDir()
	testutils.CreateTree(t, themesDir, map[string]string{"red.css": "window { background-color: #330000; color: #ffeeee; }"})

	a.themeSelect.SetSelected("Red")
	assert.Equal(t, "Red", a.session.ActiveTheme())
	st, ok := a.fyneApp.Settings().Theme().(*styleTheme)
	require.True(t, ok)
	assert.Equal(t, "#330000", wotheme.Hex(st.palette.Background))

	t.Run("drop imports a theme", func(t *testing.T) {
		src := filepath.Join(root, "midnight.wo")
		require.NoError(t, os.WriteFile(src, []byte("THEMENAME: Midnight\n---\nwindow{color:#aabbcc}\n"), 0644))

		a.HandleDrop([]fyne.URI{storage.NewFileURI(src)})
		assert.Equal(t, "Midnight", a.session.ActiveTheme())
		assert.Equal(t, "Midnight", a.themeSelect.Selected)
		assert.Contains(t, a.themeSelect.Options, "Midnight")
		assert.FileExists(t, filepath.Join(themesDir, "Midnight.wo"))
	})

	t.Run("drop of a directory opens it", func(t *testing.T) {
		a.HandleDrop([]fyne.URI{storage.NewFileURI(filepath.Join(root, "docs"))})
		assert.Equal(t, filepath.Join(root, "docs"), a.session.Current())
	})

	t.Run("unknown theme keeps the current one", func(t *testing.T) {
		a.applyTheme("Nope")
		assert.Equal(t, "Midnight", a.session.ActiveTheme())
	})
}

func TestChangesRefreshWhileGridReads(t *testing.T) {
	a, root := newTestApp(t)

	changes := make(chan watch.Change)
	done := make(chan struct{})
	go func() {
		a.followChanges(changes)
		close(done)
	}()

	go func() {
		for i := 0; i < 20; i++ {
			changes <- watch.Change{Dir: root, Path: filepath.Join(root, "file.txt")}
		}
		close(changes)
	}()

	item := newEntryItem(a)
	for {
		select {
		case <-done:
			assert.Equal(t, []string{"docs", "file.txt"}, testutils.Names(a.visibleEntries()))
			return
		default:
			for id := 0; id < a.grid.Length(); id++ {
				a.grid.UpdateItem(id, item)
			}
		}
	}
}

func TestStyleThemeFallsBack(t *testing.T) {
	st := newStyleTheme(".x{margin:0}")
	def := theme.DefaultTheme()
	assert.Equal(t,
		def.Color(theme.ColorNameBackground, theme.VariantDark),
		st.Color(theme.ColorNameBackground, theme.VariantDark))

	st = newStyleTheme("window{background-color:#112233}")
	assert.Equal(t, "#112233", wotheme.Hex(st.Color(theme.ColorNameBackground, theme.VariantDark)))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"*.o", "build"}, splitLines(" *.o \n\n build\n"))
	assert.Nil(t, splitLines("\n \n"))
	assert.Equal(t, "a\nb", joinLines([]string{"a", "b"}))
}
