//go:build windows

package dutop

import "io/fs"

// allocatedSize approximates on-disk usage by rounding the apparent
// size up to 4096-byte clusters, the default NTFS cluster size.
func allocatedSize(info fs.FileInfo) int64 {
	size := info.Size()
	if size == 0 {
		return 0
	}

	return ((size + 4095) / 4096) * 4096
}
