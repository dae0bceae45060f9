// File: editor.go
// Role: StateEditor — the mutation scratch-space a single edge
// traversal uses to build a successor State, or abandon it once Fail
// marks it. The cost kernel checks the U-turn guard and turn
// restrictions before it creates an editor, and drops the branch
// itself when a hard walk or pre-transit limit fails.
package tstate

import "github.com/transitgraph/streetcore/core"

// StateEditor accumulates the deltas a single call to traversal.Traverse
// applies on top of a base State. It is created fresh per traversal
// attempt and discarded; nothing here is reused across edges.
type StateEditor struct {
	base *State

	vertex         string
	timeSeconds    int64
	weight         float64
	walkDistance   float64
	preTransitTime int64
	mode           core.TraverseMode

	carParked   bool
	everBoarded bool

	backEdge        *core.StreetEdge
	backMode        core.TraverseMode
	backWalkingBike bool

	startTime int64

	failed bool
}

// NewEditor returns a StateEditor seeded from base, traversing in mode.
// base must be non-nil; it is never mutated.
func NewEditor(base *State, mode core.TraverseMode) *StateEditor {
	return &StateEditor{
		base:           base,
		vertex:         base.Vertex,
		timeSeconds:    base.TimeSeconds,
		weight:         base.Weight,
		walkDistance:   base.WalkDistance,
		preTransitTime: base.PreTransitTime,
		mode:           mode,
		carParked:      base.CarParked,
		everBoarded:    base.EverBoarded,
		startTime:      base.StartTime,
	}
}

// Base returns the State this editor was derived from.
func (e *StateEditor) Base() *State { return e.base }

// Mode returns the traverse mode this edit is being built for.
func (e *StateEditor) Mode() core.TraverseMode { return e.mode }

// SetVertex sets the vertex the successor state will sit at.
func (e *StateEditor) SetVertex(v string) { e.vertex = v }

// IncrementTimeBy advances the accumulated time by seconds (may be
// fractional-rounded by the caller before calling this).
func (e *StateEditor) IncrementTimeBy(seconds int64) { e.timeSeconds += seconds }

// IncrementWeightBy adds delta to the accumulated weight.
func (e *StateEditor) IncrementWeightBy(delta float64) { e.weight += delta }

// IncrementWalkDistanceBy adds delta meters to the accumulated walk distance.
func (e *StateEditor) IncrementWalkDistanceBy(delta float64) { e.walkDistance += delta }

// IncrementPreTransitTimeBy adds seconds to the accumulated pre-transit time.
func (e *StateEditor) IncrementPreTransitTimeBy(seconds int64) { e.preTransitTime += seconds }

// SetBackEdge records the edge this traversal crosses, for the next
// traversal's U-turn guard and turn-cost computation.
func (e *StateEditor) SetBackEdge(edge *core.StreetEdge) { e.backEdge = edge }

// SetBackMode records the mode this traversal was made under.
func (e *StateEditor) SetBackMode(mode core.TraverseMode) { e.backMode = mode }

// SetBackWalkingBike records whether this traversal walked a bike.
func (e *StateEditor) SetBackWalkingBike(walking bool) { e.backWalkingBike = walking }

// SetCarParked sets the resulting state's CarParked flag.
func (e *StateEditor) SetCarParked(parked bool) { e.carParked = parked }

// SetEverBoarded sets the resulting state's EverBoarded flag.
func (e *StateEditor) SetEverBoarded(boarded bool) { e.everBoarded = boarded }

// WalkDistance returns the editor's current accumulated walk distance,
// for hard/soft walk-limit checks.
func (e *StateEditor) WalkDistance() float64 { return e.walkDistance }

// PreTransitTime returns the editor's current accumulated pre-transit
// time, for the hard/soft pre-transit overage checks.
func (e *StateEditor) PreTransitTime() int64 { return e.preTransitTime }

// Fail marks the edit as violating a hard invariant. MakeState will
// return (nil, false) for a failed editor; this is not an error, it is
// the "path dies here" signal the search engine expects.
func (e *StateEditor) Fail() { e.failed = true }

// Failed reports whether Fail was called.
func (e *StateEditor) Failed() bool { return e.failed }

// MakeState commits the edit into a successor State, or returns
// (nil, false) if the edit was marked failed.
func (e *StateEditor) MakeState() (*State, bool) {
	if e.failed {
		return nil, false
	}
	return &State{
		Vertex:          e.vertex,
		BackState:       e.base,
		TimeSeconds:     e.timeSeconds,
		Weight:          e.weight,
		WalkDistance:    e.walkDistance,
		PreTransitTime:  e.preTransitTime,
		Mode:            e.mode,
		CarParked:       e.carParked,
		EverBoarded:     e.everBoarded,
		BackEdge:        e.backEdge,
		BackMode:        e.backMode,
		BackWalkingBike: e.backWalkingBike,
		StartTime:       e.startTime,
	}, true
}
