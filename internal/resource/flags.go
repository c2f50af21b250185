package resource

import "github.com/libstappler/libstappler-core-sub003/internal/fsmap"

// FileFlags is a bit-set of visibility, ordering, and mutability bits
// attached to a single search path.
type FileFlags uint32

const (
	Private FileFlags = 1 << iota
	Public
	Shared
	Writable

	// PrivateFirst / PublicFirst / SharedFirst are the OrderMask bits:
	// set at most one to request a stable reordering of a category's
	// paths so entries matching the bit come first.
	PrivateFirst
	PublicFirst
	SharedFirst

	// MakeWritableDir asks EnumeratePaths to recursively create a
	// candidate's parent directory before yielding it.
	MakeWritableDir
)

// PathMask selects the visibility bits a filter / comparison considers;
// it intentionally excludes Writable and the OrderMask/MakeWritableDir
// bits.
const PathMask = Private | Public | Shared

// OrderMask selects the three mutually-exclusive ordering bits.
const OrderMask = PrivateFirst | PublicFirst | SharedFirst

// CategoryFlags describes properties of a whole ResourceLocation row.
type CategoryFlags uint32

const (
	// Locateable means at least one known path exists for the category.
	Locateable CategoryFlags = 1 << iota
	// PlatformSpecific routes resolution through a platform backend
	// (e.g. an archive-backed namespace) instead of the plain path list.
	PlatformSpecific
	// Removable marks a category whose backing mount may disappear at
	// runtime (removable media, a tmpfs runtime dir).
	Removable
)

// AccessMode re-exports fsmap's probe selector under the name the
// resolver's API surface uses.
type AccessMode = fsmap.AccessMode

const (
	AccessNone    = fsmap.None
	AccessExists  = fsmap.Exists
	AccessRead    = fsmap.Read
	AccessWrite   = fsmap.Write
	AccessExecute = fsmap.Execute
)
