// File: modes.go
// Role: the allowed-mode set with rent/park/kiss qualifiers.
package request

import "github.com/transitgraph/streetcore/core"

// ModeQualifier distinguishes the kiss-and-ride / bike-rental / park-
// and-ride variants of a street mode from its plain form.
type ModeQualifier int

const (
	QualifierNone ModeQualifier = iota
	QualifierRent                      // BICYCLE_RENT: pick up/drop off a shared bike
	QualifierPark                      // CAR_PARK: park-and-ride
	QualifierKiss                      // CAR_KISS: kiss-and-ride drop-off/pick-up
)

// ModeOption is one entry in a RoutingRequest's allowed mode set.
type ModeOption struct {
	Mode      core.TraverseMode
	Qualifier ModeQualifier
}

// ModeSet is the request's allowed street modes plus whether transit
// legs are permitted. Transit itself is not a core.TraverseMode (the
// GTFS/transit search is an external collaborator); it is
// tracked here only as a boolean so the default mode set "TRANSIT,WALK"
// round-trips through assembly.
type ModeSet struct {
	Options        []ModeOption
	IncludeTransit bool
}

// DefaultModeSet returns the default mode set: TRANSIT,WALK.
func DefaultModeSet() ModeSet {
	return ModeSet{
		Options:        []ModeOption{{Mode: core.ModeWalk}},
		IncludeTransit: true,
	}
}

// Allows reports whether mode (with any qualifier) is in the set.
func (s ModeSet) Allows(mode core.TraverseMode) bool {
	for _, o := range s.Options {
		if o.Mode == mode {
			return true
		}
	}
	return false
}

// HasQualifier reports whether mode is present with the given qualifier.
func (s ModeSet) HasQualifier(mode core.TraverseMode, q ModeQualifier) bool {
	for _, o := range s.Options {
		if o.Mode == mode && o.Qualifier == q {
			return true
		}
	}
	return false
}
