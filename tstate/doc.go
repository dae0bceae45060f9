// Package tstate defines the search frontier's node type: State and
// StateEditor.
//
// A State is a value-object snapshot of a traversal in progress: the
// vertex reached, the accumulated time/weight/walk-distance, and enough
// of the mode-switch bookkeeping (carParked, everBoarded, backMode,
// backWalkingBike) for the cost kernel in package traversal to decide
// the next edge's admissibility and cost. A State's BackEdge chain
// reconstructs the path; StateEditor is the mutation scratch-space a
// single edge traversal uses to produce the next State, or nothing if
// a post-edit invariant (a hard walk or pre-transit limit) fails.
//
// State is a plain struct, passed around as *State, with no internal
// locking (the search engine owns one frontier at a time).
package tstate
