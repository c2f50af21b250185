//go:build windows

package resource

// Windows has no effective-uid concept; XDG_RUNTIME_DIR's synthetic
// default is POSIX-specific, so this is only reached if a caller asks
// for it explicitly on a Windows host.
func uidString() string { return "0" }
