//go:build unix

package fsview

import "golang.org/x/sys/unix"

type fileID struct {
	dev uint64
	ino uint64
}

func statIdentity(path string) (fileID, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fileID{}, false
	}
	return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
