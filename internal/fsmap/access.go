package fsmap

// AccessMode selects the probe performed by Access.
type AccessMode int

const (
	// None performs no probe at all; callers use this to skip the
	// existence/permission check entirely.
	None AccessMode = iota
	// Exists checks only that the path resolves to something.
	Exists
	// Read checks the path is readable.
	Read
	// Write checks the path is writable.
	Write
	// Execute checks the path is executable.
	Execute
)

// Access probes path for the given mode using the platform's native
// access check (unix.Access on POSIX, a best-effort attribute read on
// Windows). A nil error means the probe succeeded; io/fs.ErrNotExist
// wraps a missing path so callers can distinguish "not found" from other
// failures per the Soft error-handling rule in the filesystem resolver.
func Access(path string, mode AccessMode) error {
	if mode == None {
		return nil
	}
	return access(path, mode)
}
