//go:build windows

package dutop

import (
	"io/fs"
	"syscall"
)

// identityOf returns the (volume serial, file index) pair identifying
// the physical file at path. Windows only exposes these through an open
// handle, so the file is opened briefly with backup semantics (which
// also permits opening directories and requires no read access).
func identityOf(path string, _ fs.FileInfo) (identityKey, bool) {
	namep, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return identityKey{}, false
	}

	handle, err := syscall.CreateFile(
		namep,
		0,
		syscall.FILE_SHARE_READ|syscall.FILE_SHARE_WRITE|syscall.FILE_SHARE_DELETE,
		nil,
		syscall.OPEN_EXISTING,
		syscall.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return identityKey{}, false
	}
	defer syscall.CloseHandle(handle)

	var info syscall.ByHandleFileInformation
	if err := syscall.GetFileInformationByHandle(handle, &info); err != nil {
		return identityKey{}, false
	}

	return identityKey{
		dev: uint64(info.VolumeSerialNumber),
		ino: uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
	}, true
}
