package status_test

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wofiles/internal/errors"
	"wofiles/internal/status"
	"wofiles/pkg/testutils"
	"wofiles/pkg/types"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTree(t, dir, map[string]string{
		"notes.txt": "hello world\n",
		"sub/":      "",
	})

	t.Run("text file", func(t *testing.T) {
		info, err := status.Scan(filepath.Join(dir, "notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, int64(12), info.Size)
		assert.Contains(t, info.ContentType, "text/plain")
		assert.Equal(t, "12 B", info.HumanSize())
		assert.False(t, info.IsDir)
	})

	t.Run("directory", func(t *testing.T) {
		info, err := status.Scan(filepath.Join(dir, "sub"))
		require.NoError(t, err)
		assert.Equal(t, types.DirectoryContentType, info.ContentType)
		assert.True(t, info.IsDir)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := status.Scan(filepath.Join(dir, "missing"))
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestFormatFree(t *testing.T) {
	assert.Equal(t, "0.0 GB", status.FormatFree(0))
	assert.Equal(t, "1.5 GB", status.FormatFree(3<<29))
}

func TestLine(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"a.txt": "abc"})

	t.Run("no selection", func(t *testing.T) {
		line := status.Line(dir, 3, "")
		assert.Regexp(t, regexp.MustCompile(`^Items: 3 \| Free: (\d+\.\d GB|\?)$`), line)
	})

	t.Run("selection", func(t *testing.T) {
		line := status.Line(dir, 1, filepath.Join(dir, "a.txt"))
		assert.Contains(t, line, "| Selected: a.txt — 3 B (text/plain")
	})

	t.Run("vanished selection", func(t *testing.T) {
		line := status.Line(dir, 1, filepath.Join(dir, "gone.txt"))
		assert.Contains(t, line, "| Selected: gone.txt — ?")
	})

	t.Run("vanished directory with trailing slash", func(t *testing.T) {
		line := status.Line(dir, 1, filepath.Join(dir, "gone")+"/")
		assert.True(t, strings.HasSuffix(line, "| Selected: gone — ?"), line)
	})
}
