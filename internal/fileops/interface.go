package fileops

import "wofiles/pkg/types"

// Operator performs the explorer's file operations.
// This allows the session to be driven by a fake in tests.
type Operator interface {
	// Paste copies or moves clip.Path into destDir, keeping its base name,
	// and returns the new path.
	Paste(clip types.Clipboard, destDir string) (string, error)

	// Copy recursively copies src to destDir/base(src), overwriting files
	// that already exist there.
	Copy(src, destDir string) (string, error)

	// Move moves src to destDir/base(src).
	Move(src, destDir string) (string, error)

	// Delete removes path and everything below it. There is no trash.
	Delete(path string) error

	// Rename gives path a new name within the same directory.
	Rename(path, newName string) (string, error)
}

// DryRunner is an Operator that can log operations instead of running them.
type DryRunner interface {
	SetDryRun(dryRun bool)
	IsDryRun() bool
}

// Ensure Engine implements the Operator interface
var (
	_ Operator  = (*Engine)(nil)
	_ DryRunner = (*Engine)(nil)
)
