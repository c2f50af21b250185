//go:build !linux && !windows

package fsmap

import "os"

// statPath on hosts without a uniform Stat_t layout falls back to
// os.Stat's portable fields.
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
