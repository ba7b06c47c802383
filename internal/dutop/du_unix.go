//go:build unix

package dutop

import (
	"io/fs"
	"syscall"
)

// allocatedSize returns the bytes actually consumed on disk, not the
// apparent length. Stat_t reports blocks in 512-byte units regardless
// of the filesystem block size, so sparse files come out smaller than
// their length and small files come out block-rounded, matching du.
func allocatedSize(info fs.FileInfo) int64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return stat.Blocks * 512
	}

	return info.Size()
}
