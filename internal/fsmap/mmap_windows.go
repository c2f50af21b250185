//go:build windows

package fsmap

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// platformRegion keeps the Win32 handles alive for the lifetime of the
// mapping; CreateFileMapping/MapViewOfFile require both to stay open
// until UnmapViewOfFile/CloseHandle run. The *os.File is retained (not
// just its handle) so its finalizer cannot close the descriptor under a
// live mapping.
type platformRegion struct {
	file    *os.File
	mapping windows.Handle
}

// MapFile maps [offset, offset+length) of the file at path using
// CreateFileMapping + MapViewOfFile, the Windows analogue of the POSIX
// mmap path in mmap_unix.go.
func MapFile(path string, mt MappingType, prot ProtFlags, offset, length int64) (*Region, error) {
	if pg := int64(os.Getpagesize()); offset%pg != 0 {
		return nil, fmt.Errorf("fsmap: offset %d is not a multiple of the page size %d", offset, pg)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if offset >= fi.Size() {
		f.Close()
		return nil, fmt.Errorf("fsmap: offset %d is past the end of %q (%d bytes)", offset, path, fi.Size())
	}
	if length <= 0 || offset+length > fi.Size() {
		length = fi.Size() - offset
	}

	protect := uint32(windows.PAGE_READONLY)
	access := uint32(windows.FILE_MAP_READ)
	if prot&(ProtUserWrite|ProtGroupWrite|ProtAllWrite) != 0 {
		if mt == Private {
			protect = windows.PAGE_WRITECOPY
			access = windows.FILE_MAP_COPY
		} else {
			protect = windows.PAGE_READWRITE
			access = windows.FILE_MAP_WRITE
		}
	}

	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, protect, 0, 0, nil)
	if err != nil {
		f.Close()
		return nil, err
	}

	addr, err := windows.MapViewOfFile(mapping, access, uint32(offset>>32), uint32(offset&0xffffffff), uintptr(length))
	if err != nil {
		windows.CloseHandle(mapping)
		f.Close()
		return nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(length))
	return &Region{
		Data: data,
		prot: prot,
		mt:   mt,
		plat: platformRegion{file: f, mapping: mapping},
	}, nil
}

func (r *Region) unmap() error {
	addr := uintptr(unsafe.Pointer(&r.Data[0]))
	if err := windows.UnmapViewOfFile(addr); err != nil {
		return err
	}
	if err := windows.CloseHandle(r.plat.mapping); err != nil {
		return err
	}
	return r.plat.file.Close()
}

// Sync flushes the mapping's dirty pages and the file's metadata to
// disk.
func (r *Region) Sync() error {
	if r.Data == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&r.Data[0]))
	if err := windows.FlushViewOfFile(addr, uintptr(len(r.Data))); err != nil {
		return err
	}
	return windows.FlushFileBuffers(windows.Handle(r.plat.file.Fd()))
}
