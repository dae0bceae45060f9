// File: turnrestriction.go
// Role: Graph-side turn restriction records (evaluation lives in
// package turncost; the records themselves are graph data).
package core

// TurnRestrictionType distinguishes an exclusive allow-list from a
// simple ban.
type TurnRestrictionType int

const (
	// RestrictionNoTurn forbids turning onto restriction.To.
	RestrictionNoTurn TurnRestrictionType = iota
	// RestrictionOnlyTurn forbids turning onto anything except restriction.To.
	RestrictionOnlyTurn
)

// TimeRestriction reports whether a TurnRestriction is active at a given
// time-of-day, expressed in seconds since the request's local midnight.
type TimeRestriction interface {
	Active(timeSeconds int64) bool
}

// AlwaysActive is a TimeRestriction that is always in effect.
type AlwaysActive struct{}

// Active always returns true.
func (AlwaysActive) Active(int64) bool { return true }

// DailyWindow restricts activity to [StartSecond, EndSecond) of each day,
// wrapping past midnight when EndSecond < StartSecond.
type DailyWindow struct {
	StartSecond int64
	EndSecond   int64
}

// Active reports whether timeSeconds falls within the daily window.
func (w DailyWindow) Active(timeSeconds int64) bool {
	const day = 86400
	tod := timeSeconds % day
	if tod < 0 {
		tod += day
	}
	if w.StartSecond <= w.EndSecond {
		return tod >= w.StartSecond && tod < w.EndSecond
	}
	// Window wraps past midnight.
	return tod >= w.StartSecond || tod < w.EndSecond
}

// TurnRestriction is attached to an incoming edge and constrains which
// outgoing edge(s) a given mode may continue onto.
type TurnRestriction struct {
	// To is the outgoing edge this restriction singles out.
	To *StreetEdge

	// Modes is the set of TraverseMode this restriction applies to.
	Modes TraversalPermission

	// Type selects NO_TURN (ban To) or ONLY_TURN (only To is allowed).
	Type TurnRestrictionType

	// Time gates when the restriction is active; nil means always active.
	Time TimeRestriction
}

// Active reports whether the restriction is in effect at timeSeconds.
func (r *TurnRestriction) Active(timeSeconds int64) bool {
	if r.Time == nil {
		return true
	}
	return r.Time.Active(timeSeconds)
}

// AppliesToMode reports whether the restriction governs the given mode.
func (r *TurnRestriction) AppliesToMode(mode TraverseMode) bool {
	return r.Modes.Allows(mode)
}
