// Package fsmap provides memory-mapped file regions and the native
// filesystem helpers (stat, access checks, path conversion) that
// internal/resource builds its categorized search paths on top of.
package fsmap

// MappingType selects how a Region is shared.
type MappingType int

const (
	// Private gives the caller a copy-on-write view; writes never reach
	// the backing file.
	Private MappingType = iota
	// Shared maps the file such that writes are visible to other
	// mappers and are eventually written back.
	Shared
)

// ProtFlags is a 9-bit rwx by (user, group, all) protection set plus
// setuid/setgid, used both for mmap protection and for Stat's reported
// mode bits.
type ProtFlags uint32

const (
	ProtUserRead ProtFlags = 1 << iota
	ProtUserWrite
	ProtUserExecute
	ProtGroupRead
	ProtGroupWrite
	ProtGroupExecute
	ProtAllRead
	ProtAllWrite
	ProtAllExecute
	ProtSetUid
	ProtSetGid
)

// Region is a memory-mapped view of a file. Its platform-specific
// backing handles live in mmap_unix.go / mmap_windows.go; Data is valid
// from a successful MapFile until Unmap.
type Region struct {
	Data []byte
	prot ProtFlags
	mt   MappingType
	plat platformRegion
}

// Unmap releases the mapping. It is idempotent; calling it twice is a
// no-op the second time.
func (r *Region) Unmap() error {
	if r.Data == nil {
		return nil
	}
	err := r.unmap()
	r.Data = nil
	return err
}
