package pool

import (
	"github.com/Masterminds/semver/v3"

	"github.com/libstappler/libstappler-core-sub003/internal/errors"
)

// ForeignPool describes a pool handle arriving from outside this module,
// e.g. across a cgo or plugin boundary, whose magic word and advertised
// version this module did not produce.
type ForeignPool struct {
	Magic   uint64
	Version string
}

// AcceptInterop reports whether a ForeignPool can be treated as
// interoperable with this module's pools under constraint (a semver
// constraint string such as "~1.2" or ">=1.0.0, <2.0.0").
//
// This module never guesses or hardcodes a specific third-party magic
// value (the real APR sentinel is implementation-defined and was an
// explicit open question left unresolved rather than fabricated); it
// only recognizes its own poolMagic, and even then requires the foreign
// side's advertised version to satisfy constraint. A bare magic-word
// match is never treated as sufficient proof of compatibility.
func AcceptInterop(f ForeignPool, constraint string) bool {
	if f.Magic != poolMagic {
		return false
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(f.Version)
	if err != nil {
		return false
	}
	return c.Check(v)
}

// InteropVersion returns the version a's owner should advertise to a peer
// performing AcceptInterop, as configured by WithInteropVersion.
func (a *Allocator) InteropVersion() string { return a.interopVersion }

// RequireStappler asserts p carries this module's own sentinel. It is
// the fatal form of IsStapplerPool for boundaries where a foreign
// handle is a programming error rather than a dispatch case.
func RequireStappler(p *Pool) {
	if !IsStapplerPool(p) {
		var got uint64
		if p != nil {
			got = p.magic
		}
		panic(errors.MagicMismatch(got, poolMagic))
	}
}

// AcceptForeign is AcceptInterop scoped to a pool: a pool created with
// WithForceCustom never accepts a foreign peer, whatever its magic or
// version.
func (p *Pool) AcceptForeign(f ForeignPool, constraint string) bool {
	if p.forceCustom {
		return false
	}
	return AcceptInterop(f, constraint)
}
