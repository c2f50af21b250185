package resource

import (
	"os"
	"strings"

	"github.com/libstappler/libstappler-core-sub003/internal/diag"
	"github.com/libstappler/libstappler-core-sub003/internal/errors"
	"github.com/libstappler/libstappler-core-sub003/internal/fsmap"
)

// enumerateOrdered is an order-stable partition: entries whose
// FileFlags carry the order-bit's matching visibility bit come first,
// but the relative order within each partition is preserved (no sort).
func enumerateOrdered(order FileFlags, paths []pathEntry, cb func(path string, flags FileFlags) bool) bool {
	if len(paths) == 0 {
		return true
	}
	var want FileFlags
	switch order {
	case PrivateFirst:
		want = Private
	case PublicFirst:
		want = Public
	case SharedFirst:
		want = Shared
	default:
		for _, e := range paths {
			if !cb(e.path, e.flags) {
				return false
			}
		}
		return true
	}

	front := make([]pathEntry, 0, len(paths))
	back := make([]pathEntry, 0, len(paths))
	for _, e := range paths {
		if e.flags&want != 0 {
			front = append(front, e)
		} else {
			back = append(back, e)
		}
	}
	for _, e := range front {
		if !cb(e.path, e.flags) {
			return false
		}
	}
	for _, e := range back {
		if !cb(e.path, e.flags) {
			return false
		}
	}
	return true
}

// EnumeratePaths computes the filtered, ordered set of concrete paths
// that could hold filename under cat, calling cb for each survivor until
// cb returns false.
func (t *Table) EnumeratePaths(cat FileCategory, filename string, flags FileFlags, access AccessMode, cb func(path string, effective FileFlags) bool) {
	if isAboveRoot(filename) {
		diag.Default.Log("resource", "rejected resource path", "error", errors.AboveRoot(filename))
		return
	}
	if cat < 0 || cat >= categoryCount {
		return
	}
	if cat == Custom {
		t.enumerateCustom(filename, access, cb)
		return
	}

	res := t.row(cat)

	if flags&MakeWritableDir != 0 {
		flags |= Writable
	}
	if flags&PathMask != 0 {
		flags |= res.DefaultFlags
	}

	if res.Flags&PlatformSpecific != 0 {
		// No platform-specific backend ships in this repo (see
		// archiveBackend); PlatformSpecific rows yield nothing through
		// this path on hosts with no specialised category.
		return
	}
	t.enumerateLocation(res, filename, flags, access, cb)
}

// enumerateCustom resolves filename as a native path (an absolute name
// as is, a relative one against the working directory) and never
// indexes into the category table, resolving the Open Question on
// FileCategory::Custom (see DESIGN.md).
func (t *Table) enumerateCustom(filename string, access AccessMode, cb func(string, FileFlags) bool) {
	path := filename
	if !strings.HasPrefix(path, "/") {
		if wd, err := currentDir(); err == nil {
			path = mergePath(wd, path)
		}
	}
	if probeAccess(path, access) {
		cb(path, 0)
	}
}

// probeAccess runs the native access probe for a candidate path. A
// missing path is a Soft miss (the candidate is silently skipped); any
// other failure is reported through the diagnostics sink with its
// Status mapping before the candidate is skipped.
func probeAccess(path string, access AccessMode) bool {
	if access == AccessNone {
		return true
	}
	err := fsmap.Access(path, access)
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		diag.Default.Log("resource", "access probe failed",
			"path", path, "status", errors.StatusFromErrno(err))
	}
	return false
}

func (t *Table) enumerateLocation(res *ResourceLocation, filename string, flags FileFlags, access AccessMode, cb func(string, FileFlags) bool) {
	writable := flags&Writable != 0
	pathFlags := flags & PathMask
	orderFlags := flags & OrderMask

	if access == AccessWrite {
		pathFlags |= Writable
	}

	if writable {
		t.mu.Lock()
		if res.init != stateInitialised {
			t.initResource(res)
		}
		t.mu.Unlock()
	}

	enumerateOrdered(orderFlags, res.Paths, func(locPath string, locFlags FileFlags) bool {
		if writable && locFlags&Writable == 0 {
			return true
		}
		if pathFlags == 0 || locFlags&pathFlags != 0 {
			path := mergePath(locPath, filename)
			if probeAccess(path, access) {
				if flags&MakeWritableDir != 0 {
					mkdirRecursive(dirname(path))
				}
				if !cb(path, locFlags) {
					return false
				}
			}
		}
		return true
	})
}

// CategoryFlags is defined in table.go.

// DetectResourceCategory returns the FileCategory whose canonical prefix
// path begins with, otherwise scans all Locateable, non-PlatformSpecific
// categories for the longest path-prefix match. On success cb is called
// once with (prefixedPath, categoryPath).
func (t *Table) DetectResourceCategory(path string, cb func(prefixed, categoryPath string)) FileCategory {
	if strings.HasPrefix(path, "%") {
		cat := t.GetResourceCategoryByPrefix(path)
		if cat != Custom && cat != categoryCount {
			if cb != nil {
				prefix := t.row(cat).Prefix
				cb(path, path[len(prefix):])
			}
		}
		return cat
	}

	// An installed archive backend claims the path for Bundled before
	// the plain path-prefix scan runs.
	if t.archive != nil && t.archive.Has(strings.TrimLeft(path, "/")) {
		rest := strings.TrimLeft(path, "/")
		if cb != nil {
			cb(t.row(Bundled).Prefix+rest, rest)
		}
		return Bundled
	}

	var target *ResourceLocation
	match := 0
	for c := FileCategory(0); c < categoryCount; c++ {
		res := t.row(c)
		if res.Flags&PlatformSpecific != 0 || res.Flags&Locateable == 0 {
			continue
		}
		for _, e := range res.Paths {
			if strings.HasPrefix(path, e.path) && len(path) > len(e.path) && path[len(e.path)] == '/' {
				if len(e.path) > match {
					target = res
					match = len(e.path)
				}
			}
		}
	}

	if target != nil {
		rest := strings.TrimLeft(path[match:], "/")
		if cb != nil {
			cb(target.Prefix+rest, rest)
		}
		return target.Category
	}
	return Max
}

// GetResourceCategoryByPrefix finds the FileCategory whose canonical
// prefix the given string starts with, or categoryCount ("Max") on
// failure.
func (t *Table) GetResourceCategoryByPrefix(prefix string) FileCategory {
	for c := FileCategory(0); c < categoryCount; c++ {
		p := t.row(c).Prefix
		if p != "" && strings.HasPrefix(prefix, p) {
			return c
		}
	}
	return categoryCount
}
