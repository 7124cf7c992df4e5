package fsview

import "testing"

// HasIdentity reports whether directories have a device/inode pair on this
// platform.
func HasIdentity() bool {
	_, ok := identify(".")
	return ok
}

// AliasDir makes the cycle guard see alias as the same directory as target,
// the way a bind mount would.
func AliasDir(t *testing.T, alias, target string) {
	t.Helper()
	prev := identify
	identify = func(path string) (fileID, bool) {
		if path == alias {
			path = target
		}
		return prev(path)
	}
	t.Cleanup(func() { identify = prev })
}
