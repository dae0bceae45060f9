// File: state.go
// Role: Traversal state — time, weight, walk distance, pre-transit
// time, mode, car-parked, ever-boarded, back-edge.
package tstate

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/transitgraph/streetcore/core"
)

// State is a node in the search frontier. It is a value object: two
// States with equal Vertex and Key() are interchangeable for search
// bookkeeping (dominance checks, visited sets), even if produced via
// different BackEdge chains.
type State struct {
	Vertex string

	TimeSeconds    int64
	Weight         float64
	WalkDistance   float64
	PreTransitTime int64

	// Mode is the traverse mode this state was reached under.
	Mode core.TraverseMode

	// CarParked and EverBoarded drive the kiss-and-ride mode-switch
	// policy and the pre-transit accounting in the cost kernel
	//.
	CarParked   bool
	EverBoarded bool

	// BackEdge is the edge used to reach this state; nil for the
	// search's origin state. BackMode/BackWalkingBike capture how that
	// edge was traversed, consulted by the next traversal's walking-
	// bike normalization and turn-cost computation.
	BackEdge        *core.StreetEdge
	BackMode        core.TraverseMode
	BackWalkingBike bool

	// BackState is the state this one was expanded from; nil for the
	// origin. Together with BackEdge it reconstructs the path.
	BackState *State

	StartTime int64

	// Next chains an alternate successor produced by the kiss-and-ride
	// mode-switch policy: an arrive-by fork attaches the unparked
	// CAR state here rather than replacing this state. The search
	// engine must walk the chain to discover every successor a single
	// edge expansion produced.
	Next *State
}

// Key identifies a State for dominance / visited-set comparisons: by
// value, not pointer. Identity is the (vertex, time, mode, parked,
// boarded) tuple; equivalence is value-based.
type Key struct {
	Vertex      string
	TimeSeconds int64
	Mode        core.TraverseMode
	CarParked   bool
	EverBoarded bool
}

// Key returns s's identity tuple.
func (s *State) Key() Key {
	return Key{
		Vertex:      s.Vertex,
		TimeSeconds: s.TimeSeconds,
		Mode:        s.Mode,
		CarParked:   s.CarParked,
		EverBoarded: s.EverBoarded,
	}
}

// Successors returns s and every state chained after it via Next, in
// chain order. Callers that only want the primary result can ignore
// this and read s directly; callers implementing a search frontier
// must enumerate the full chain.
func (s *State) Successors() []*State {
	if s == nil {
		return nil
	}
	out := make([]*State, 0, 1)
	for cur := s; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}

// Append attaches alt as the last link in s's successor chain,
// preserving any existing chain on alt.
func (s *State) Append(alt *State) {
	if s == nil || alt == nil {
		return
	}
	cur := s
	for cur.Next != nil {
		cur = cur.Next
	}
	cur.Next = alt
}

// DebugJSON renders the state's search-relevant fields as a stable
// JSON object for trace logging. The back chain is summarized by the
// back edge's ID rather than serialized.
func (s *State) DebugJSON() ([]byte, error) {
	v := struct {
		Vertex         string  `json:"vertex"`
		TimeSeconds    int64   `json:"time"`
		Weight         float64 `json:"weight"`
		WalkDistance   float64 `json:"walkDistance"`
		PreTransitTime int64   `json:"preTransitTime"`
		Mode           string  `json:"mode"`
		CarParked      bool    `json:"carParked"`
		EverBoarded    bool    `json:"everBoarded"`
		BackEdge       string  `json:"backEdge,omitempty"`
	}{
		Vertex:         s.Vertex,
		TimeSeconds:    s.TimeSeconds,
		Weight:         s.Weight,
		WalkDistance:   s.WalkDistance,
		PreTransitTime: s.PreTransitTime,
		Mode:           s.Mode.String(),
		CarParked:      s.CarParked,
		EverBoarded:    s.EverBoarded,
	}
	if s.BackEdge != nil {
		v.BackEdge = s.BackEdge.ID
	}
	return json.Marshal(v)
}

func (s *State) String() string {
	return fmt.Sprintf("State{%s @t=%d w=%.2f walk=%.1fm mode=%s}",
		s.Vertex, s.TimeSeconds, s.Weight, s.WalkDistance, s.Mode)
}
