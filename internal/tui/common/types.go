package common

import "wofiles/pkg/types"

// Mode says what the keyboard is currently driving.
type Mode int

const (
	Normal Mode = iota
	Search
	Path
	Rename
	ConfirmDelete
)

func (m Mode) String() string {
	switch m {
	case Search:
		return "search"
	case Path:
		return "path"
	case Rename:
		return "rename"
	case ConfirmDelete:
		return "delete"
	default:
		return "normal"
	}
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Entries() []types.Entry
	Cursor() int
	Mode() Mode
	CurrentDir() string
	ClipboardPath() string
	Privileged() bool
	ActiveTheme() string
	InputView() string
	StatusView() string
	HelpView() string
	Height() int
}
