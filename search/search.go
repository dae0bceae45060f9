// Package search is a minimal reference shortest-path harness that
// drives the per-edge contract end to end: pop the lightest state,
// expand its vertex's outgoing edges through traversal.Traverse, and
// enqueue every successor in the returned chain.
//
// It exists to prove the admit/traverse contract is drivable and to
// host integration tests; the production search engine (full Dijkstra/
// A* with transit legs) is an external collaborator.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the street graph, using a "lazy"
//     decrease-key strategy: duplicates are pushed and stale entries
//     skipped on pop.
//   - Space: O(V + E) for the best-weight map and heap entries.
package search

import (
	"container/heap"
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/internal/logctx"
	"github.com/transitgraph/streetcore/request"
	"github.com/transitgraph/streetcore/traversal"
	"github.com/transitgraph/streetcore/tstate"
)

var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilRequest indicates a nil routing request was supplied.
	ErrNilRequest = errors.New("search: request is nil")

	// ErrNoPath indicates the destination is unreachable from the origin
	// under the request's admissibility rules and limits.
	ErrNoPath = errors.New("search: no admissible path")
)

// frontierKey collapses States into dominance classes: two states at
// the same vertex, in the same mode, with the same kiss-and-ride
// standing compete on weight; everything else coexists.
type frontierKey struct {
	Vertex    string
	Mode      core.TraverseMode
	CarParked bool
}

type stateHeap []*tstate.State

func (h stateHeap) Len() int            { return len(h) }
func (h stateHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h stateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *stateHeap) Push(x interface{}) { *h = append(*h, x.(*tstate.State)) }
func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// ShortestPath runs a weight-ordered search from origin to destination
// under req, starting in mode. It returns the first destination state
// popped (the lightest), whose back-edge chain reconstructs the path.
//
// The context is checked once per pop; a canceled search returns
// ctx.Err().
func ShortestPath(ctx context.Context, g *core.Graph, req *request.RoutingRequest, origin, destination string, mode core.TraverseMode) (*tstate.State, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if req == nil {
		return nil, ErrNilRequest
	}
	if _, err := g.GetVertex(origin); err != nil {
		return nil, err
	}
	if _, err := g.GetVertex(destination); err != nil {
		return nil, err
	}

	log := logctx.From(ctx).WithField("request_id", req.ID)

	start := &tstate.State{
		Vertex:   origin,
		Mode:     mode,
		BackMode: mode,
	}
	if !req.DateTime.IsZero() {
		start.StartTime = req.DateTime.Unix()
		start.TimeSeconds = req.DateTime.Unix()
	}

	best := map[frontierKey]float64{keyOf(start): start.Weight}
	frontier := &stateHeap{start}
	heap.Init(frontier)

	expansions := 0
	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s := heap.Pop(frontier).(*tstate.State)
		if w, ok := best[keyOf(s)]; ok && s.Weight > w {
			continue // stale duplicate from lazy decrease-key
		}

		if s.Vertex == destination {
			log.WithFields(logrus.Fields{
				"expansions": expansions,
				"weight":     s.Weight,
				"walk_m":     s.WalkDistance,
			}).Debug("destination reached")
			return s, nil
		}

		edges, err := g.OutgoingEdges(s.Vertex)
		if err != nil {
			continue
		}
		for _, edge := range edges {
			next := traversal.Traverse(g, s, edge, req, s.Mode)
			for _, succ := range next.Successors() {
				expansions++
				k := keyOf(succ)
				if w, seen := best[k]; seen && succ.Weight >= w {
					continue
				}
				best[k] = succ.Weight
				heap.Push(frontier, succ)
			}
		}
	}

	return nil, ErrNoPath
}

// Path unwinds the back-edge chain of a destination state into edge
// order from origin to destination.
func Path(s *tstate.State) []*core.StreetEdge {
	var out []*core.StreetEdge
	for cur := s; cur != nil && cur.BackEdge != nil; cur = cur.BackState {
		out = append(out, cur.BackEdge)
	}
	// Reverse into origin-first order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func keyOf(s *tstate.State) frontierKey {
	return frontierKey{Vertex: s.Vertex, Mode: s.Mode, CarParked: s.CarParked}
}
