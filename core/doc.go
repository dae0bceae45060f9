// Package core defines the street network's primitive types: Vertex,
// StreetEdge, the per-edge Flags bitset, and TraversalPermission.
//
// It also provides a minimal thread-safe Graph good enough to host
// StreetEdge values and TurnRestriction lists for testing the
// admissibility filter and cost kernel end-to-end. The production
// graph loader, shortest-path search engine, and street-network
// builder are external collaborators; this package only defines the
// shapes they hand to each other.
//
// All mutation happens at load time. Once a StreetEdge is constructed,
// its methods change only its Flags (via SetFlag/ClearFlag, used for
// load-time tagging) and, on a temporary edge, its alias (via
// SetAlias); every other field is read-only by convention for the
// remainder of the process's life.
package core
