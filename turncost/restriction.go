// File: restriction.go
// Role: Turn Restriction Evaluator — admissibility half: decides
// whether a candidate turn is permitted.
package turncost

import "github.com/transitgraph/streetcore/core"

// PermitsTurn reports whether mode may continue onto outgoing at
// timeSeconds, given the restrictions attached to the incoming edge
//.
//
// For each restriction governing mode and active at timeSeconds:
//   - RestrictionOnlyTurn: outgoing must be equivalent to restriction.To,
//     else the turn is forbidden.
//   - RestrictionNoTurn: outgoing must NOT be equivalent to restriction.To.
//
// A restriction that does not govern mode, or is not active at
// timeSeconds, is skipped entirely.
func PermitsTurn(restrictions []*core.TurnRestriction, outgoing *core.StreetEdge, mode core.TraverseMode, timeSeconds int64) bool {
	for _, r := range restrictions {
		if !r.AppliesToMode(mode) {
			continue
		}
		if !r.Active(timeSeconds) {
			continue
		}

		matches := outgoing.IsEquivalentTo(r.To)
		switch r.Type {
		case core.RestrictionOnlyTurn:
			if !matches {
				return false
			}
		case core.RestrictionNoTurn:
			if matches {
				return false
			}
		}
	}

	return true
}
