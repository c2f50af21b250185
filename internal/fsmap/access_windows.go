//go:build windows

package fsmap

import (
	"os"

	"golang.org/x/sys/windows"
)

// access on Windows has no direct analogue of POSIX access(2); it
// probes existence via GetFileAttributes and approximates Write by
// checking the read-only attribute bit.
func access(path string, mode AccessMode) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return os.ErrNotExist
	}
	switch mode {
	case Exists, Read, Execute:
		return nil
	case Write:
		if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
			return os.ErrPermission
		}
		return nil
	default:
		return nil
	}
}
