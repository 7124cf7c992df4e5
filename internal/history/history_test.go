package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wofiles/internal/history"
)

func TestNavigateBackForward(t *testing.T) {
	h := history.New()
	current := "/a"

	current = h.Navigate(current, "/b")
	assert.Equal(t, []string{"/a"}, h.BackStack())
	assert.Empty(t, h.ForwardStack())

	current = h.Navigate(current, "/c")
	assert.Equal(t, []string{"/a", "/b"}, h.BackStack())

	var ok bool
	current, ok = h.Back(current)
	require.True(t, ok)
	assert.Equal(t, "/b", current)
	assert.Equal(t, []string{"/a"}, h.BackStack())
	assert.Equal(t, []string{"/c"}, h.ForwardStack())

	current, ok = h.Back(current)
	require.True(t, ok)
	assert.Equal(t, "/a", current)
	assert.Empty(t, h.BackStack())
	assert.Equal(t, []string{"/c", "/b"}, h.ForwardStack())

	current, ok = h.Forward(current)
	require.True(t, ok)
	assert.Equal(t, "/b", current)
	assert.Equal(t, []string{"/a"}, h.BackStack())
	assert.Equal(t, []string{"/c"}, h.ForwardStack())
}

func TestEmptyStacksAreNoops(t *testing.T) {
	h := history.New()

	path, ok := h.Back("/here")
	assert.False(t, ok)
	assert.Empty(t, path)

	path, ok = h.Forward("/here")
	assert.False(t, ok)
	assert.Empty(t, path)

	assert.Zero(t, h.BackLen())
	assert.Zero(t, h.ForwardLen())
}

func TestNavigateClearsForward(t *testing.T) {
	var h history.History
	current := h.Navigate("/a", "/b")
	current, _ = h.Back(current)
	require.Equal(t, 1, h.ForwardLen())

	h.Navigate(current, "/elsewhere")
	assert.Zero(t, h.ForwardLen())
	assert.Equal(t, 1, h.BackLen())
}

func TestSnapshotsAreCopies(t *testing.T) {
	h := history.New()
	h.Navigate("/a", "/b")

	snapshot := h.BackStack()
	snapshot[0] = "/mutated"
	assert.Equal(t, []string{"/a"}, h.BackStack())
}
