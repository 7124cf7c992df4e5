package types

// ClipboardMode says what a paste does with the clipboard path.
type ClipboardMode string

const (
	// ClipboardCopy pastes a recursive copy, leaving the source in place.
	ClipboardCopy ClipboardMode = "copy"
	// ClipboardCut pastes by moving the source.
	ClipboardCut ClipboardMode = "cut"
)

// Clipboard holds the single path waiting to be pasted.
type Clipboard struct {
	Path string
	Mode ClipboardMode
}

// Empty reports whether nothing is waiting to be pasted.
func (c Clipboard) Empty() bool {
	return c.Path == ""
}

// Shortcut is a labelled bookmark shown in the sidebar.
type Shortcut struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}
