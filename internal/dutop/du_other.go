//go:build !unix && !windows

package dutop

import "io/fs"

// allocatedSize falls back to the apparent length on platforms without
// allocation metadata.
func allocatedSize(info fs.FileInfo) int64 {
	return info.Size()
}
