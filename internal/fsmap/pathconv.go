package fsmap

import "strings"

// ToNative converts a POSIX-style path (the resolver's internal
// contract, e.g. "/c/dir/file") into the current platform's native form.
// Identity on POSIX; on Windows, see pathconv_windows.go.
func ToNative(posix string) string { return toNative(posix) }

// FromNative converts a native-form path back into POSIX style.
// Identity on POSIX; on Windows, see pathconv_windows.go.
func FromNative(native string) string { return fromNative(native) }

func isPosixAbs(p string) bool { return strings.HasPrefix(p, "/") }
