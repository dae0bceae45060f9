// Package turncost implements the Turn Restriction Evaluator: given
// an incoming and outgoing StreetEdge, decide whether the turn is
// permitted under the current mode and time-of-day, and compute the
// scalar "real turn cost" (in seconds) the cost kernel folds into its
// weight via the request's CostModel.
//
// Restriction records themselves live on core.TurnRestriction (graph
// data, attached to the incoming edge); this package only evaluates
// them. Equivalence between a candidate outgoing edge and a
// restriction's named edge is delegated to core.StreetEdge.IsEquivalentTo,
// which tolerates temporary-edge aliasing.
package turncost
