package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wofiles/internal/tui/styles"
	"wofiles/pkg/testutils"
	"wofiles/pkg/types"
)

func TestFileListWindow(t *testing.T) {
	fl := NewFileList(styles.Default())
	for i := 0; i < 10; i++ {
		fl.entries = append(fl.entries, types.Entry{Name: string(rune('a' + i))})
	}

	tests := []struct {
		name       string
		height     int
		cursor     int
		start, end int
	}{
		{"unbounded", 0, 5, 0, 10},
		{"fits", 12, 5, 0, 10},
		{"top", 4, 0, 0, 4},
		{"middle", 4, 5, 3, 7},
		{"bottom", 4, 9, 6, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl.SetHeight(tt.height)
			fl.SetCursor(tt.cursor)
			start, end := fl.window()
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestFileListDisplayName(t *testing.T) {
	fl := NewFileList(styles.Default())
	fl.SetCurrentDir("/home/u")

	assert.Equal(t, "docs/", fl.displayName(types.NewEntry("/home/u", "docs", true)))
	assert.Equal(t, "docs/a.txt", fl.displayName(types.NewEntry("/home/u/docs", "a.txt", false)))
	assert.Equal(t, "x", fl.displayName(types.NewEntry("/elsewhere", "x", false)))
}

func TestFileListMarksClipboard(t *testing.T) {
	fl := NewFileList(styles.Default())
	fl.SetEntries([]types.Entry{types.NewEntry("/d", "a", false), types.NewEntry("/d", "b", false)})
	fl.SetMarked("/d/b")

	out := testutils.StripANSI(fl.View())
	assert.Contains(t, out, "> a")
	assert.Contains(t, out, "  b")
}

func TestFileListMutesDotfiles(t *testing.T) {
	st := styles.Default()
	fl := NewFileList(st)
	entries := []types.Entry{
		types.NewEntry("/d", "top", false),
		types.NewEntry("/d", ".cache", true),
		types.NewEntry("/d", ".env", false),
		types.NewEntry("/d", "src", true),
	}
	fl.SetEntries(entries)

	assert.Equal(t, st.Cursor, fl.styleFor(0, entries[0]))
	assert.Equal(t, st.Hidden, fl.styleFor(1, entries[1]))
	assert.Equal(t, st.Hidden, fl.styleFor(2, entries[2]))
	assert.Equal(t, st.Directory, fl.styleFor(3, entries[3]))

	fl.SetMarked("/d/.env")
	assert.Equal(t, st.Marked, fl.styleFor(2, entries[2]))
}

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(styles.Default())
	sb.SetText("Items: 3")
	assert.Equal(t, "Items: 3", testutils.StripANSI(sb.View()))

	sb.SetError("boom")
	assert.Equal(t, "boom\nItems: 3", testutils.StripANSI(sb.View()))

	sb.SetError("")
	sb.SetLoading(true)
	assert.Contains(t, testutils.StripANSI(sb.View()), "Items: 3")
	assert.NotNil(t, sb.Tick())
}
