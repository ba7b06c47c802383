//go:build unix

package dutop

import (
	"io/fs"
	"syscall"
)

// identityOf returns the (device, inode) pair identifying the physical
// file behind info. Two hard-linked paths yield equal keys. ok is false
// when the platform metadata is not a Stat_t, in which case the caller
// treats the file as unique and never deduplicates it.
func identityOf(_ string, info fs.FileInfo) (identityKey, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return identityKey{}, false
	}

	//nolint:unconvert // Dev and Ino widths vary across unix platforms.
	return identityKey{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}
