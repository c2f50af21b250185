//go:build windows

package fsmap

import "os"

// statPath on Windows has no POSIX mode bits to read, so Mode is
// synthesized best-effort from os.FileInfo's portable permission bits.
func statPath(path string) (Stat, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Stat{}, err
	}
	return Stat{
		Size:  fi.Size(),
		Mode:  protFromOSMode(fi.Mode()),
		Type:  typeFromOSMode(fi.Mode()),
		Mtime: fi.ModTime(),
	}, nil
}
