// File: costmodel.go
// Role: IntersectionTraversalCostModel — the scalar "real turn cost" the
// cost kernel adds to time/weight at every intersection.
package turncost

import (
	"math"

	"github.com/transitgraph/streetcore/core"
)

// CostModel computes the traversal cost, in seconds, of turning from one
// street edge onto another at a vertex. isIntersection distinguishes a
// real street-network junction from a synthetic temporary-edge split
// point: the cost kernel treats the latter as free.
//
// The cost kernel passes into/from by search direction: depart-after
// passes the back edge as into and the edge being traversed as from;
// arrive-by passes the edge being traversed as into and the back edge
// as from. mode is the TraverseMode under evaluation; fromSpeed/toSpeed
// are the matching speeds in meters/second. DefaultCostModel does not
// use the speeds.
type CostModel interface {
	TraversalCost(isIntersection bool, into, from *core.StreetEdge, mode core.TraverseMode, fromSpeed, toSpeed float32) float64
}

// DefaultCostModel is an angle-based turn cost: a near-straight
// continuation is free, a moderate turn costs a small constant, and a
// sharp turn or U-turn costs the most, scaled down for non-driving
// modes (a pedestrian or cyclist loses far less time at a corner than
// a car does).
type DefaultCostModel struct {
	// StraightThresholdDegrees: at or below this absolute turn angle, the cost is zero.
	StraightThresholdDegrees int
	// TurnCostSeconds is the base cost for a turn past the straight threshold.
	TurnCostSeconds float64
	// SharpTurnCostSeconds is the cost for a turn at or beyond SharpThresholdDegrees.
	SharpTurnCostSeconds float64
	// SharpThresholdDegrees is the angle from which on a turn is "sharp."
	SharpThresholdDegrees int
	// DrivingMultiplier scales the cost for CAR; non-driving modes use 1.0.
	DrivingMultiplier float64
}

// NewDefaultCostModel returns a DefaultCostModel with OTP-style defaults:
// a turn of 20 degrees or less is free, a turn costs 4s, a turn of
// 120 degrees or more costs 12s, and driving pays double (stricter
// right-of-way yielding, signal cycles).
func NewDefaultCostModel() *DefaultCostModel {
	return &DefaultCostModel{
		StraightThresholdDegrees: 20,
		TurnCostSeconds:          4,
		SharpTurnCostSeconds:     12,
		SharpThresholdDegrees:    120,
		DrivingMultiplier:        2.0,
	}
}

// TraversalCost implements CostModel.
func (m *DefaultCostModel) TraversalCost(isIntersection bool, into, from *core.StreetEdge, mode core.TraverseMode, fromSpeed, toSpeed float32) float64 {
	if !isIntersection || into == nil || from == nil {
		return 0
	}

	delta := turnAngleDegrees(from.OutAngleDegrees(), into.InAngleDegrees())

	var cost float64
	switch {
	case delta <= m.StraightThresholdDegrees:
		cost = 0
	case delta >= m.SharpThresholdDegrees:
		cost = m.SharpTurnCostSeconds
	default:
		cost = m.TurnCostSeconds
	}

	if mode.IsDriving() {
		cost *= m.DrivingMultiplier
	}

	return cost
}

// turnAngleDegrees returns the absolute angular difference between two
// integer-degree azimuths, in [0, 180].
func turnAngleDegrees(outDeg, inDeg int) int {
	d := outDeg - inDeg
	for d < 0 {
		d += 360
	}
	d %= 360
	if d > 180 {
		d = 360 - d
	}
	return int(math.Abs(float64(d)))
}
