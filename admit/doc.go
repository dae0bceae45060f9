// Package admit answers the per-edge admissibility question: may this
// traveler, in this mode, use this street edge at all? Wheelchair
// accessibility, slope bounds, footway opt-out, forbidden obstacle
// features, and the edge's mode permission are all checked here; cost
// is none of this package's business.
package admit
