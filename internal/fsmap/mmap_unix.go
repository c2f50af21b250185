//go:build !windows

package fsmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// platformRegion holds nothing extra on POSIX: unix.Munmap only needs
// the slice itself.
type platformRegion struct{}

// MapFile maps [offset, offset+length) of the file at path. offset must
// be a multiple of os.Getpagesize(); length is clamped to the file's
// remaining size. The descriptor is closed immediately after mapping:
// the kernel holds its own reference to the mapping independent of the
// open file descriptor.
func MapFile(path string, mt MappingType, prot ProtFlags, offset, length int64) (*Region, error) {
	if pg := int64(os.Getpagesize()); offset%pg != 0 {
		return nil, fmt.Errorf("fsmap: offset %d is not a multiple of the page size %d", offset, pg)
	}
	fd, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		fd, err = os.Open(path)
		if err != nil {
			return nil, err
		}
	}
	defer fd.Close()

	fi, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if offset >= fi.Size() {
		return nil, fmt.Errorf("fsmap: offset %d is past the end of %q (%d bytes)", offset, path, fi.Size())
	}
	if length <= 0 || offset+length > fi.Size() {
		length = fi.Size() - offset
	}

	unixProt := unix.PROT_READ
	unixFlags := unix.MAP_SHARED
	if prot&(ProtUserWrite|ProtGroupWrite|ProtAllWrite) != 0 {
		unixProt |= unix.PROT_WRITE
	}
	if mt == Private {
		unixFlags = unix.MAP_PRIVATE
	}

	data, err := unix.Mmap(int(fd.Fd()), offset, int(length), unixProt, unixFlags)
	if err != nil {
		return nil, err
	}
	return &Region{Data: data, prot: prot, mt: mt}, nil
}

func (r *Region) unmap() error {
	return unix.Munmap(r.Data)
}

// Sync flushes the mapping's dirty pages back to the backing file.
func (r *Region) Sync() error {
	if r.Data == nil {
		return nil
	}
	return unix.Msync(r.Data, unix.MS_SYNC)
}
