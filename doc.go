// Package streetcore is the accessibility-aware street edge traversal
// core of a multi-modal trip planner.
//
// Given a street network annotated with pedestrian-relevant obstacles
// (curbs, bollards, turnstiles, cycle barriers, crossings, accessible
// traffic lights) streetcore computes, for any candidate edge
// traversal, whether the traversal is admissible and what scalar cost
// it contributes to a shortest-path search. The value of this module
// is the cost model: how a traveler's preferences about footways and
// accessibility features translate into edge-level admissibility
// filters and weight multipliers, and how that composes with base
// walking/biking/driving semantics (slopes, stairs, turn restrictions,
// kiss-and-ride mode switching).
//
// Everything here is organized under single-purpose subpackages:
//
//	core/       — StreetEdge, Vertex, Flags bitset, TraversalPermission
//	tstate/     — State and StateEditor, the search frontier's node type
//	turncost/   — turn restriction evaluation and intersection cost
//	admit/      — the admissibility filter (canTraverse)
//	traversal/  — the cost kernel and kiss-and-ride mode-switch policy
//	request/    — routing request assembly from repeated HTTP params
//	bannedtrip/ — agency:trip[:stop...] ban-list grammar
//	localetime/ — locale and partial date/time resolution
//	search/     — a minimal reference shortest-path harness
//	config/     — process-wide ambient defaults
//
// The search algorithm itself (Dijkstra, A*, the graph loader, GTFS
// ingestion, the HTTP binding layer, and the geometry library) are
// external collaborators; streetcore only defines the per-edge
// contract those collaborators invoke.
package streetcore
