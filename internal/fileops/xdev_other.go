//go:build !unix

package fileops

func isCrossDevice(error) bool {
	return false
}
