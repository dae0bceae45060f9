// File: modeswitch.go
// Role: Mode-Switch Policy — kiss-and-ride branching layered on
// top of the single-mode cost kernel.
package traversal

import (
	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/request"
	"github.com/transitgraph/streetcore/tstate"
)

// Traverse evaluates a single edge expansion: the cost kernel in the
// requested mode, plus the kiss-and-ride policy.
//
// Arrive-by: after transit, a walking state whose car is still "parked"
// (in reverse-search terms: not yet picked up) forks a parallel CAR
// traversal; on success the forked state's CarParked flag is cleared
// and it is attached to the primary result's successor chain, so the
// search sees both the keep-walking and the drive-away branch.
//
// Depart-after: a driving state reaching an edge that forbids CAR
// switches irrevocably to walking — the driver has dropped the
// traveler off. Only the walking state is returned; there is no way
// back into the car.
//
// The result may be nil (no successor), a single state, or a state
// chain; callers enumerate it with State.Successors.
func Traverse(g *core.Graph, s0 *tstate.State, edge *core.StreetEdge, req *request.RoutingRequest, mode core.TraverseMode) *tstate.State {
	state := traverseWithMode(g, s0, edge, req, mode)

	if req.ArriveBy {
		if state != nil && s0.CarParked && s0.EverBoarded && mode == core.ModeWalk {
			if fork := traverseWithMode(g, s0, edge, req, core.ModeCar); fork != nil {
				fork.CarParked = false
				state.Append(fork)
			}
		}
		return state
	}

	if !s0.CarParked && mode == core.ModeCar && !edge.Permission.Allows(core.ModeCar) {
		if walked := traverseWithMode(g, s0, edge, req, core.ModeWalk); walked != nil {
			walked.CarParked = true
			return walked
		}
	}

	return state
}
