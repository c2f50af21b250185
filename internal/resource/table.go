package resource

import (
	"sync"

	"github.com/libstappler/libstappler-core-sub003/internal/fsmap"
	"github.com/libstappler/libstappler-core-sub003/internal/pool"
)

// initState is ResourceLocation.init's three-value state machine:
// Uninitialised -> Probing -> Initialised, no backwards transition.
type initState int

const (
	stateUninitialised initState = iota
	stateProbing
	stateInitialised
)

// pathEntry is one (path, flags) pair in a ResourceLocation's ordered
// path list.
type pathEntry struct {
	path  string
	flags FileFlags
}

// ResourceLocation is one row of the resolver's table: a category, its
// canonical prefix, an ordered path list, and the policy bits governing
// it.
type ResourceLocation struct {
	Category     FileCategory
	Prefix       string
	Paths        []pathEntry
	init         initState
	Flags        CategoryFlags
	DefaultFlags FileFlags
}

// Table is the process-wide (or, here, pool-scoped) resource table: one
// ResourceLocation per FileCategory, built by Initialize and immutable
// afterward except for the lazy writable-probe flip on each row.
type Table struct {
	mu       sync.Mutex
	pool     *pool.Pool
	rows     [categoryCount]ResourceLocation
	archive  ArchiveIndex
	execPath string
	homePath string
}

// ArchiveIndex abstracts an archive-backed resource namespace: a
// read-only pack file (an Android APK's asset listing, for instance)
// presented as a resolvable namespace. No concrete implementation ships
// in this repo (no Android build target); a nil backend makes Bundled
// fall back to the executable-relative directory on every platform this
// module targets.
type ArchiveIndex interface {
	Has(relPath string) bool
}

// SetArchiveBackend installs an archive-backed namespace consulted by
// DetectResourceCategory before the path-prefix scan. Passing nil
// removes any installed backend.
func (t *Table) SetArchiveBackend(b ArchiveIndex) {
	t.archive = b
}

// Initialize builds a Table from the host environment: HOME, PATH,
// LD_LIBRARY_PATH, XDG_* variables and their defaults, user-dirs.dirs,
// and the executable's own directory. All returned path strings are
// interned into p via pool.Pstrdup, tying the table's string lifetime to
// the pool.
func Initialize(p *pool.Pool) (*Table, error) {
	t := &Table{pool: p}
	for c := FileCategory(0); c < categoryCount; c++ {
		t.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	if err := initSystemPaths(t); err != nil {
		return nil, err
	}
	for c := range t.rows {
		for i, e := range t.rows[c].Paths {
			t.rows[c].Paths[i] = pathEntry{path: trimTrailingSlashes(e.path), flags: e.flags}
		}
	}
	poolIntern(p, &t.rows)
	return t, nil
}

// initAppPaths creates the AppData/AppConfig/AppState/AppCache/AppRuntime
// rows rooted at root/AppData/<subname>. Shared by both the POSIX and
// Windows initSystemPaths implementations.
func initAppPaths(t *Table, root string) {
	make := func(c FileCategory, subname string) {
		res := t.row(c)
		res.Paths = append(res.Paths, pathEntry{
			path:  mergePath(mergePath(root, "AppData"), subname),
			flags: Private | Public | Writable,
		})
		res.Flags |= Locateable
	}
	make(AppData, "data")
	make(AppConfig, "config")
	make(AppState, "state")
	make(AppCache, "cache")
	make(AppRuntime, "runtime")
}

// poolIntern interns a batch of plain Go strings produced by
// initSystemPaths into p, tying their lifetime to the pool.
func poolIntern(p *pool.Pool, rows *[categoryCount]ResourceLocation) {
	if p == nil {
		return
	}
	for c := range rows {
		rows[c].Prefix = p.Pstrdup(rows[c].Prefix)
		for i := range rows[c].Paths {
			rows[c].Paths[i].path = p.Pstrdup(rows[c].Paths[i].path)
		}
	}
}

func trimTrailingSlashes(s string) string {
	i := len(s)
	for i > 1 && s[i-1] == '/' {
		i--
	}
	return s[:i]
}

func (t *Table) row(c FileCategory) *ResourceLocation {
	return &t.rows[c]
}

// CategoryFlags returns the row's CategoryFlags, or CategoryFlags(0) for
// an out-of-range category.
func (t *Table) CategoryFlags(c FileCategory) CategoryFlags {
	if c < 0 || c >= categoryCount {
		return 0
	}
	return t.rows[c].Flags
}

// initResource runs the lazy writable probe: for every path flagged
// Writable, mkdir -p it and then confirm it's actually writable,
// dropping the bit (a Soft failure, not an error) if the probe fails.
// PlatformSpecific rows skip the probe entirely.
func (t *Table) initResource(res *ResourceLocation) {
	if len(res.Paths) == 0 {
		res.init = stateInitialised
		return
	}
	res.init = stateProbing
	if res.Flags&PlatformSpecific == 0 {
		for i := range res.Paths {
			if res.Paths[i].flags&Writable != 0 {
				mkdirRecursive(res.Paths[i].path)
				if fsmap.Access(res.Paths[i].path, fsmap.Write) != nil {
					res.Paths[i].flags &^= Writable
				}
			}
		}
	}
	res.init = stateInitialised
}
