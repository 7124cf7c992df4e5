package theme_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wofiles/internal/config"
	"wofiles/internal/errors"
	"wofiles/internal/theme"
	"wofiles/pkg/testutils"
)

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		wantName  string
		wantStyle string
		wantKind  errors.ErrorKind
	}{
		{
			name:      "declared name",
			content:   "THEMENAME: Midnight\n---\n.x{color:red}\n",
			wantName:  "Midnight",
			wantStyle: ".x{color:red}\n",
		},
		{
			name:      "marker without name",
			content:   "comment line\n--- styles\nbody{}\r\n.a{}",
			wantStyle: "body{}\r\n.a{}",
		},
		{
			name:      "marker on line one",
			content:   "---\n.b{}\n",
			wantStyle: ".b{}\n",
		},
		{
			name:      "only the first marker is a boundary",
			content:   "THEMENAME: Dash\nignored\n---\n.c{}\n---\n.d{}\n",
			wantName:  "Dash",
			wantStyle: ".c{}\n---\n.d{}\n",
		},
		{
			name:      "blanks after the colon are skipped",
			content:   "THEMENAME:\t  Spaced Out \r\n---\n.e{}\n",
			wantName:  "Spaced Out ",
			wantStyle: ".e{}\n",
		},
		{
			name:     "no name and no marker",
			content:  ".x{color:red}\n",
			wantKind: errors.NoContent,
		},
		{
			name:     "name but no marker",
			content:  "THEMENAME: Lonely\n.x{}\n",
			wantKind: errors.NoContent,
		},
		{
			name:     "marker with empty payload",
			content:  "THEMENAME: Empty\n---\n",
			wantKind: errors.NoContent,
		},
		{
			name:     "empty file",
			content:  "",
			wantKind: errors.NoContent,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, dir, "case"+string(rune('a'+i))+".wo", tt.content)
			def, err := theme.Parse(path)
			if tt.wantKind != errors.Unknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, errors.KindOf(err))
				assert.Nil(t, def)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, def.Name)
			assert.Equal(t, tt.wantStyle, def.Style)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := theme.Parse(filepath.Join(dir, "missing.wo"))
		assert.True(t, errors.IsNotFound(err))

		var themeErr *errors.ThemeError
		require.True(t, errors.As(err, &themeErr))
		assert.Equal(t, filepath.Join(dir, "missing.wo"), themeErr.File())
	})
}

func TestParseName(t *testing.T) {
	dir := t.TempDir()

	t.Run("declared", func(t *testing.T) {
		name, ok := theme.ParseName(writeTheme(t, dir, "a.wo", "THEMENAME: Ocean\n---\nx\n"))
		assert.True(t, ok)
		assert.Equal(t, "Ocean", name)
	})

	t.Run("only line one counts", func(t *testing.T) {
		_, ok := theme.ParseName(writeTheme(t, dir, "b.wo", "---\nTHEMENAME: Late\n"))
		assert.False(t, ok)
	})

	t.Run("empty name", func(t *testing.T) {
		_, ok := theme.ParseName(writeTheme(t, dir, "c.wo", "THEMENAME:   \n---\nx\n"))
		assert.False(t, ok)
	})

	t.Run("long names are cut", func(t *testing.T) {
		long := strings.Repeat("n", 300)
		name, ok := theme.ParseName(writeTheme(t, dir, "d.wo", "THEMENAME: "+long+"\n"))
		assert.True(t, ok)
		assert.Equal(t, long[:theme.MaxNameLen], name)
	})

	t.Run("cut keeps whole runes", func(t *testing.T) {
		long := strings.Repeat("a", theme.MaxNameLen-1) + "é"
		name, ok := theme.ParseName(writeTheme(t, dir, "e.wo", "THEMENAME: "+long))
		assert.True(t, ok)
		assert.Equal(t, strings.Repeat("a", theme.MaxNameLen-1), name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, ok := theme.ParseName(filepath.Join(dir, "nope.wo"))
		assert.False(t, ok)
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Theme! v2", "My_Theme_v2.wo"},
		{"dark-mode_2", "dark-mode_2.wo"},
		{"../../etc/passwd", "etcpasswd.wo"},
		{"midnight.wo", "midnightwo.wo"},
		{"日本", "theme.wo"},
		{"", "theme.wo"},
		{strings.Repeat("x", 400), strings.Repeat("x", 251) + ".wo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, theme.SanitizeFilename(tt.in))
		})
	}
}

func TestStorePersist(t *testing.T) {
	src := t.TempDir()
	managed := filepath.Join(t.TempDir(), "assets", "themes")
	store := theme.NewStore(managed, nil)

	t.Run("declared name", func(t *testing.T) {
		content := "THEMENAME: My Theme! v2\n---\n.x{}\n"
		stored, err := store.Persist(writeTheme(t, src, "upload.wo", content))
		require.NoError(t, err)
		assert.Equal(t, "My_Theme_v2.wo", stored)

		data, err := os.ReadFile(filepath.Join(managed, stored))
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("falls back to the file name", func(t *testing.T) {
		stored, err := store.Persist(writeTheme(t, src, "night sky.wo", "---\n.y{}\n"))
		require.NoError(t, err)
		assert.Equal(t, "night_skywo.wo", stored)
		assert.FileExists(t, filepath.Join(managed, "night_skywo.wo"))
	})

	t.Run("overwrites silently", func(t *testing.T) {
		_, err := store.Persist(writeTheme(t, src, "one.wo", "THEMENAME: Same\n---\nold\n"))
		require.NoError(t, err)
		stored, err := store.Persist(writeTheme(t, src, "two.wo", "THEMENAME: Same\n---\nnew\n"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(managed, stored))
		require.NoError(t, err)
		assert.Equal(t, "THEMENAME: Same\n---\nnew\n", string(data))
	})

	t.Run("persisting the stored copy is a no-op", func(t *testing.T) {
		stored, err := store.Persist(filepath.Join(managed, "Same.wo"))
		require.NoError(t, err)
		assert.Equal(t, "Same.wo", stored)

		data, err := os.ReadFile(filepath.Join(managed, stored))
		require.NoError(t, err)
		assert.Equal(t, "THEMENAME: Same\n---\nnew\n", string(data))
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := store.Persist(filepath.Join(src, "gone.wo"))
		assert.True(t, errors.IsPersistFailed(err))
	})

	t.Run("directory source", func(t *testing.T) {
		_, err := store.Persist(src)
		assert.True(t, errors.IsPersistFailed(err))
	})

	t.Run("unwritable managed directory", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		bad := theme.NewStore(filepath.Join(blocker, "themes"), nil)

		_, err := bad.Persist(writeTheme(t, src, "ok.wo", "---\nx\n"))
		assert.True(t, errors.IsPersistFailed(err))
	})
}

func TestStoreImport(t *testing.T) {
	src := t.TempDir()
	store := theme.NewStore(filepath.Join(t.TempDir(), "themes"), nil)

	t.Run("declared", func(t *testing.T) {
		def, stored, err := store.Import(writeTheme(t, src, "x.wo", "THEMENAME: Midnight\n---\n.x{color:red}\n"))
		require.NoError(t, err)
		assert.Equal(t, "Midnight.wo", stored)
		assert.Equal(t, "Midnight", def.Name)
		assert.Equal(t, ".x{color:red}\n", def.Style)
	})

	t.Run("undeclared name uses the file name", func(t *testing.T) {
		def, stored, err := store.Import(writeTheme(t, src, "forest.wo", "---\n.f{}\n"))
		require.NoError(t, err)
		assert.Equal(t, "forest", def.Name)
		assert.Equal(t, "forestwo.wo", stored)
	})

	t.Run("no content is reported but the copy stays", func(t *testing.T) {
		_, stored, err := store.Import(writeTheme(t, src, "blank.wo", "THEMENAME: Blank\n"))
		assert.True(t, errors.IsNoContent(err))
		assert.FileExists(t, filepath.Join(store.Dir(), stored))
	})
}

func TestStoreEnumerateSaved(t *testing.T) {
	managed := filepath.Join(t.TempDir(), "themes")
	store := theme.NewStore(managed, nil)

	names, err := store.EnumerateSaved()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.DirExists(t, managed, "directory is created lazily")

	testutils.CreateTestFilesWithContent(t, managed, map[string]string{
		"a.wo":        "THEMENAME: Ocean\n---\nx\n",
		"b.wo":        "THEMENAME: Ocean\n---\ny\n",
		"c.wo":        "THEMENAME: Forest\n---\nz\n",
		"nameless.wo": "---\nz\n",
		"ignored.css": "THEMENAME: Css\n",
	})

	names, err = store.EnumerateSaved()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ocean", "Forest"}, names)
}

func TestStoreNamesAndStyle(t *testing.T) {
	managed := filepath.Join(t.TempDir(), "themes")
	cfg := config.NewTestConfig(t.TempDir())
	cfg.Directories.Themes = managed
	store := theme.NewStoreFromConfig(cfg)

	testutils.CreateTree(t, managed, map[string]string{
		"oled.css":  "window{background:#000}",
		"red.css":   "window{background:#300}",
		"sea.wo":    "THEMENAME: Sea\n---\n.sea{}\n",
		"oled-2.wo": "THEMENAME: OLED\n---\n.override{}\n",
	})

	assert.Equal(t, []string{"OLED", "Red", "Blue", "Sea"}, store.Names())

	t.Run("builtin stylesheet", func(t *testing.T) {
		style, err := store.Style("Red")
		require.NoError(t, err)
		assert.Equal(t, "window{background:#300}", style)
	})

	t.Run("saved theme", func(t *testing.T) {
		style, err := store.Style("Sea")
		require.NoError(t, err)
		assert.Equal(t, ".sea{}\n", style)
	})

	t.Run("saved theme shadows a builtin", func(t *testing.T) {
		style, err := store.Style("OLED")
		require.NoError(t, err)
		assert.Equal(t, ".override{}\n", style)
	})

	t.Run("builtin without stylesheet", func(t *testing.T) {
		_, err := store.Style("Blue")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := store.Style("Nope")
		assert.True(t, errors.IsNotFound(err))
	})
}
