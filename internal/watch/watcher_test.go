package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		require.True(t, ok, "Change channel closed unexpectedly")
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change")
	}
	return Change{}
}

func TestWatcherReportsChanges(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New(50 * time.Millisecond)
	require.NoError(t, err, "New watcher creation failed")
	require.NoError(t, w.Watch(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	testFilePath := filepath.Join(tempDir, "testfile.txt")
	require.NoError(t, os.WriteFile(testFilePath, []byte("hello"), 0644))

	c := waitChange(t, w.Changes())
	assert.Equal(t, filepath.Clean(tempDir), c.Dir)
	assert.Equal(t, testFilePath, c.Path)

	require.NoError(t, os.Remove(testFilePath))

	// A late write from the first burst may still be queued ahead of the removal.
	for i := 0; i < 3; i++ {
		c = waitChange(t, w.Changes())
		if c.Op.Has(fsnotify.Remove) {
			return
		}
	}
	t.Fatal("Did not receive a Remove change")
}

func TestWatcherDebouncesBursts(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New(300 * time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Watch(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		name := filepath.Join(tempDir, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0644))
	}

	waitChange(t, w.Changes())
	select {
	case c := <-w.Changes():
		t.Fatalf("burst produced a second change: %+v", c)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherRetarget(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := New(0)
	require.NoError(t, err)
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, filepath.Clean(second), w.Dir())
	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "seen.txt"), nil, 0644))

	c := waitChange(t, w.Changes())
	assert.Equal(t, filepath.Join(second, "seen.txt"), c.Path)
}

func TestWatchRejectsFiles(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := New(0)
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Watch(file))
	err = w.Watch(filepath.Join(tempDir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "error accessing directory")
	assert.Empty(t, w.Dir())
}

func TestStopClosesChannel(t *testing.T) {
	w, err := New(0)
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir()))
	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "second start should fail")

	w.Stop()
	w.Stop()

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok, "Change channel should be closed after stop")
	case <-time.After(time.Second):
		t.Error("Timeout waiting for change channel to close after stop")
	}
	assert.Error(t, w.Start(), "a stopped watcher cannot be restarted")
}
