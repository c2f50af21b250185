//go:build !windows

package fsmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func access(path string, mode AccessMode) error {
	var how uint32
	switch mode {
	case Exists:
		how = unix.F_OK
	case Read:
		how = unix.R_OK
	case Write:
		how = unix.W_OK
	case Execute:
		how = unix.X_OK
	default:
		return nil
	}
	if err := unix.Access(path, how); err != nil {
		if err == unix.ENOENT {
			return os.ErrNotExist
		}
		return err
	}
	return nil
}
