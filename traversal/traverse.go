// File: traverse.go
// Role: Cost Kernel — the per-edge weight computation: speed
// selection, base time, bicycle optimization branches, walk slope cost,
// accessibility multiplier, reluctances, turn cost, bike-switch cost,
// walk-limit and pre-transit-time policies.
package traversal

import (
	"math"

	"github.com/transitgraph/streetcore/admit"
	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/request"
	"github.com/transitgraph/streetcore/tstate"
	"github.com/transitgraph/streetcore/turncost"
)

// greenwayBonus is the extra multiplier GREENWAYS optimization grants
// on edges at or below the greenway safety threshold.
const greenwayBonus = 0.66

// walkSlopeWeightFactor scales the slope-adjusted walk cost into a
// weight; walking is priced at 4/3 of its slope-adjusted traversal time.
const walkSlopeWeightFactor = 4.0 / 3.0

// traverseWithMode is the single-mode cost kernel. It returns the
// successor state, or nil when the edge is inadmissible or a hard
// limit kills the branch. Kiss-and-ride forking is layered on top by
// Traverse (modeswitch.go).
func traverseWithMode(g *core.Graph, s0 *tstate.State, edge *core.StreetEdge, req *request.RoutingRequest, mode core.TraverseMode) *tstate.State {
	if g == nil || s0 == nil || edge == nil || req == nil {
		return nil
	}

	back := s0.BackEdge
	if back != nil && (edge.IsReverseOf(back) || back.IsReverseOf(edge)) {
		return nil
	}

	// Walking-bike booleans only mean anything on foot.
	walkingBike := req.WalkingBike && mode == core.ModeWalk
	backWalkingBike := s0.BackWalkingBike && s0.BackMode == core.ModeWalk

	if !admit.Admit(edge, req, mode) {
		if mode == core.ModeBicycle {
			// Dismount and push the bike where riding is not allowed.
			return traverseWithMode(g, s0, edge, req.BikeWalkingOptions(), core.ModeWalk)
		}
		return nil
	}

	var speed float64
	if mode.IsDriving() {
		speed = float64(edge.CarSpeed)
	} else {
		speed = req.SpeedFor(mode)
	}
	if speed <= 0 {
		return nil
	}

	distance := edge.LengthMeters()
	elapsed := distance / speed
	var weight float64

	switch {
	case req.WheelchairAccessible:
		weight = edge.SlopeSpeedEffectiveLength / speed

	case mode == core.ModeBicycle:
		elapsed = edge.SlopeSpeedEffectiveLength / speed
		weight = bicycleWeight(edge, req, distance, speed)

	case walkingBike:
		elapsed = edge.SlopeSpeedEffectiveLength / speed
		weight = elapsed

	case mode == core.ModeWalk:
		slopeCost := WalkCostForSlope(distance, edge.MaxSlope)
		weight = slopeCost * walkSlopeWeightFactor / speed
		elapsed = weight
		weight *= req.Accessibility.Multiplier(edge.Flags)

	default:
		weight = elapsed
	}

	// Note: walkReluctance also scales bicycle and car traversals here.
	if edge.IsStairs() {
		weight *= req.StairsReluctance
	} else {
		weight *= req.WalkReluctance
	}

	var walkDelta float64
	if back != nil {
		if !turncost.PermitsTurn(g.TurnRestrictions(back.ID), edge, mode, s0.TimeSeconds) {
			return nil
		}

		realTurnCost := intersectionCost(g, s0, edge, back, req, mode, speed)
		if !mode.IsDriving() {
			// Tie-breaker only; keeps otherwise-equal paths ordered by
			// how much turning they do.
			walkDelta += realTurnCost / 100
		}
		elapsed += math.Ceil(realTurnCost)
		weight += req.TurnReluctance * realTurnCost
	}

	if (walkingBike || mode == core.ModeBicycle) && !(backWalkingBike || s0.BackMode == core.ModeBicycle) {
		elapsed += float64(req.BikeSwitchTime)
		weight += req.BikeSwitchCost
	}

	if !mode.IsDriving() {
		walkDelta += distance
	}

	ed := tstate.NewEditor(s0, mode)
	if req.ArriveBy {
		ed.SetVertex(edge.FromVertex)
	} else {
		ed.SetVertex(edge.ToVertex)
	}

	timeDelta := int64(math.Ceil(elapsed))
	ed.IncrementTimeBy(timeDelta)
	ed.IncrementWeightBy(weight)
	ed.IncrementWalkDistanceBy(walkDelta)

	preTransit := !s0.EverBoarded
	if req.ArriveBy {
		preTransit = !s0.CarParked
	}
	if preTransit {
		ed.IncrementPreTransitTimeBy(timeDelta)
		if next := ed.PreTransitTime(); next > req.MaxPreTransitTime {
			if !req.SoftPreTransitLimiting {
				return nil
			}
			ed.IncrementWeightBy(overageWeight(
				float64(s0.PreTransitTime), float64(next), float64(req.MaxPreTransitTime),
				req.PreTransitPenalty, req.PreTransitOverageRate))
		}
	}

	if next := ed.WalkDistance(); next > req.MaxWalkDistance {
		if !req.SoftWalkLimiting {
			return nil
		}
		ed.IncrementWeightBy(overageWeight(
			s0.WalkDistance, next, req.MaxWalkDistance,
			req.SoftWalkPenalty, req.SoftWalkOverageRate))
	}

	ed.SetBackEdge(edge)
	ed.SetBackMode(mode)
	ed.SetBackWalkingBike(walkingBike)

	state, ok := ed.MakeState()
	if !ok {
		return nil
	}
	return state
}

// bicycleWeight computes the base weight for a riding traversal under
// the request's optimization branch.
func bicycleWeight(edge *core.StreetEdge, req *request.RoutingRequest, distance, speed float64) float64 {
	safety := float64(edge.BicycleSafetyFactor)

	switch req.Optimize {
	case request.OptimizeSafe:
		return safety * distance / speed

	case request.OptimizeGreenways:
		w := safety * distance / speed
		if safety <= core.GreenwaySafetyFactor {
			w *= greenwayBonus
		}
		return w

	case request.OptimizeFlat:
		return distance/speed + edge.SlopeWorkCostEffectiveLength

	case request.OptimizeTriangle:
		t := req.Triangle
		if t == nil {
			// Assembly guarantees a triangle; a hand-built request
			// without one degrades to QUICK.
			return edge.SlopeSpeedEffectiveLength / speed
		}
		quick := edge.SlopeSpeedEffectiveLength
		safetyLen := safety * distance
		slopeLen := edge.SlopeWorkCostEffectiveLength
		return (quick*t.Time + slopeLen*t.Slope + safetyLen*t.Safety) / speed

	default: // QUICK
		return edge.SlopeSpeedEffectiveLength / speed
	}
}

// intersectionCost prices the turn from back onto edge via the
// request's cost model. The traversed vertex is the
// far endpoint in an arrive-by search and the near endpoint otherwise;
// when that vertex is not a real intersection (a temporary split
// point), the turn is free.
func intersectionCost(g *core.Graph, s0 *tstate.State, edge, back *core.StreetEdge, req *request.RoutingRequest, mode core.TraverseMode, speed float64) float64 {
	model := req.CostModel
	if model == nil {
		return 0
	}

	backSpeed := float64(0)
	if s0.BackMode.IsDriving() {
		backSpeed = float64(back.CarSpeed)
	} else {
		backSpeed = req.SpeedFor(s0.BackMode)
	}

	if req.ArriveBy {
		return model.TraversalCost(isIntersection(g, edge.ToVertex), edge, back, s0.BackMode,
			float32(speed), float32(backSpeed))
	}
	return model.TraversalCost(isIntersection(g, edge.FromVertex), back, edge, mode,
		float32(backSpeed), float32(speed))
}

// isIntersection reports whether vertexID names a real street-network
// junction in g. A vertex the graph doesn't know about (a temporary
// edge endpoint) is not an intersection.
func isIntersection(g *core.Graph, vertexID string) bool {
	v, err := g.GetVertex(vertexID)
	return err == nil && v.IsIntersectionVertex
}
