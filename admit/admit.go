// File: admit.go
// Role: Admissibility Filter — canTraverse(edge, request, mode).
package admit

import (
	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/request"
)

// Admit reports whether mode may traverse edge under req:
//
//  1. A wheelchair request requires the edge to be wheelchair-accessible
//     and its steepest grade to stay within the request's slope bound.
//  2. A traveler who opted out of footways rejects every footway edge.
//  3. Any accessibility feature the request forbids outright rejects an
//     edge carrying it.
//  4. The edge's permission set must allow mode.
//
// Admit only answers the yes/no question; the BICYCLE-fails-then-walk
// retry lives in the cost kernel, which owns the bike-walking options.
func Admit(edge *core.StreetEdge, req *request.RoutingRequest, mode core.TraverseMode) bool {
	if edge == nil || req == nil {
		return false
	}

	if req.WheelchairAccessible {
		if !edge.IsWheelchairAccessible() {
			return false
		}
		if edge.MaxSlope > req.MaxSlope {
			return false
		}
	}

	if !req.PermitFootway && edge.IsFootway() {
		return false
	}

	if _, forbidden := req.Accessibility.ForbiddenFeature(edge.Flags); forbidden {
		return false
	}

	return edge.Permission.Allows(mode)
}
