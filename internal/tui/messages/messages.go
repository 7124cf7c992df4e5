package messages

import (
	"wofiles/internal/watch"
	"wofiles/pkg/types"
)

// ErrorMsg reports a failed operation to the status bar.
type ErrorMsg struct {
	Err error
}

// SearchCompleteMsg carries the result of a deep search. Dir and Query
// identify the request so stale results can be dropped.
type SearchCompleteMsg struct {
	Dir     string
	Query   string
	Entries []types.Entry
	Error   error
}

// DirectoryChangeMsg is sent when the watched directory changed on disk.
type DirectoryChangeMsg struct {
	Change watch.Change
}
