//go:build !windows

package flash

import "syscall"

// availableSpace returns the free bytes on the filesystem holding path.
func availableSpace(path string) (int64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return int64(stat.Bavail) * int64(stat.Bsize), nil
}
