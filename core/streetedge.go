// File: streetedge.go
// Role: Street Edge Model — fixed-point length, permission set,
// car speed, bike-safety factor, entry/exit angles, geometry handle, flags.
//
// AI-HINT (file):
//   - LengthMillimeters is fixed-point; use LengthMeters() for f64 meters.
//   - InAngle/OutAngle are brad-encoded signed bytes; use *Degrees() accessors.
//   - Flags (SetFlag/ClearFlag) and the temporary-edge alias (SetAlias)
//     are the only state changed through methods after construction.

package core

import "fmt"

// StreetClass classifies a StreetEdge's functional road class, the
// closed set a street graph loader tags edges with. Used to break
// walk-reluctance ties and to give greenway detection semantic context
// beyond the bare BicycleSafetyFactor threshold.
type StreetClass int

const (
	StreetClassResidential StreetClass = iota
	StreetClassCollector
	StreetClassArterial
	StreetClassHighway
	StreetClassPedestrian
	StreetClassCycleway
)

func (c StreetClass) String() string {
	switch c {
	case StreetClassResidential:
		return "residential"
	case StreetClassCollector:
		return "collector"
	case StreetClassArterial:
		return "arterial"
	case StreetClassHighway:
		return "highway"
	case StreetClassPedestrian:
		return "pedestrian"
	case StreetClassCycleway:
		return "cycleway"
	default:
		return "unknown"
	}
}

// GeometryHandle is an opaque reference into the (out-of-scope)
// geometry library's line-string store. streetcore never dereferences
// it; it only carries the handle through.
type GeometryHandle uint64

// maxLengthMillimeters bounds LengthMillimeters to ~2100km.
const maxLengthMillimeters = 2_100_000_000

// GreenwaySafetyFactor is the threshold at or below which GREENWAYS
// optimization grants the extra 0.66 multiplier.
const GreenwaySafetyFactor = 0.1

// StreetEdge is an edge in the street graph, immutable save for Flags
// and the alias set by SetAlias.
type StreetEdge struct {
	ID         string
	FromVertex string
	ToVertex   string
	Name       string

	LengthMillimeters int32
	Permission        TraversalPermission
	CarSpeed          float32 // meters/second; must be > 0 for drivable edges

	BicycleSafetyFactor float32

	InAngle  int8 // brad-encoded
	OutAngle int8 // brad-encoded

	StreetClass     StreetClass
	CompactGeometry GeometryHandle

	Flags Flags

	// MaxSlope is the edge's steepest grade as a fraction (0.08 = 8%),
	// precomputed by the (out-of-scope) elevation profile builder.
	MaxSlope float64

	// SlopeSpeedEffectiveLength and SlopeWorkCostEffectiveLength are
	// precomputed, elevation-adjusted lengths in meters, supplied by
	// the graph loader's elevation module (out of scope here).
	SlopeSpeedEffectiveLength    float64
	SlopeWorkCostEffectiveLength float64

	// aliasOf lets a temporary edge (built for a single search, not
	// present in the permanent graph) declare equivalence to a graph
	// edge for turn-restriction purposes. Empty for ordinary edges.
	aliasOf string
}

// NewStreetEdge validates and constructs a StreetEdge. Length must be
// non-negative and within the fixed-point range; carSpeed must be
// positive whenever the edge permits CAR.
func NewStreetEdge(id, from, to string, lengthMillimeters int32, permission TraversalPermission, carSpeed float32) (*StreetEdge, error) {
	if lengthMillimeters < 0 {
		return nil, ErrNegativeLength
	}
	if lengthMillimeters > maxLengthMillimeters {
		return nil, ErrLengthOverflow
	}
	if permission.Allows(ModeCar) && carSpeed <= 0 {
		return nil, ErrNonPositiveCarSpeed
	}

	return &StreetEdge{
		ID:                id,
		FromVertex:        from,
		ToVertex:          to,
		LengthMillimeters: lengthMillimeters,
		Permission:        permission,
		CarSpeed:          carSpeed,
	}, nil
}

// LengthMeters returns the edge's length in meters as a float64.
func (e *StreetEdge) LengthMeters() float64 { return float64(e.LengthMillimeters) / 1000.0 }

// InAngleDegrees decodes InAngle to integer degrees.
func (e *StreetEdge) InAngleDegrees() int { return DecodeAngleDegrees(e.InAngle) }

// OutAngleDegrees decodes OutAngle to integer degrees.
func (e *StreetEdge) OutAngleDegrees() int { return DecodeAngleDegrees(e.OutAngle) }

// SetFlag sets bit on the edge. Together with ClearFlag and SetAlias it
// is one of the few post-construction mutations StreetEdge exposes,
// reserved for load-time tagging.
func (e *StreetEdge) SetFlag(bit Flags) { e.Flags = e.Flags.Set(bit) }

// ClearFlag clears bit on the edge.
func (e *StreetEdge) ClearFlag(bit Flags) { e.Flags = e.Flags.Clear(bit) }

// SetAlias marks e as a temporary stand-in for the permanent graph edge
// identified by graphEdgeID, for turn-restriction equivalence.
func (e *StreetEdge) SetAlias(graphEdgeID string) { e.aliasOf = graphEdgeID }

func (e *StreetEdge) effectiveID() string {
	if e.aliasOf != "" {
		return e.aliasOf
	}
	return e.ID
}

// IsBack reports the "back" flag (this edge is the reverse direction
// of a bidirectional street pair).
func (e *StreetEdge) IsBack() bool { return e.Flags.Has(FlagBack) }

// IsRoundabout reports whether this edge is part of a roundabout.
func (e *StreetEdge) IsRoundabout() bool { return e.Flags.Has(FlagRoundabout) }

// HasBogusName reports whether the edge's Name is a generated placeholder.
func (e *StreetEdge) HasBogusName() bool { return e.Flags.Has(FlagBogusName) }

// IsNoThru reports whether the edge is tagged no-through-traffic.
func (e *StreetEdge) IsNoThru() bool { return e.Flags.Has(FlagNoThru) }

// IsStairs reports whether the edge is a flight of stairs.
func (e *StreetEdge) IsStairs() bool { return e.Flags.Has(FlagStairs) }

// HasSlopeOverride reports whether MaxSlope was manually overridden at load time.
func (e *StreetEdge) HasSlopeOverride() bool { return e.Flags.Has(FlagSlopeOverride) }

// IsWheelchairAccessible reports the wheelchair-accessible flag.
func (e *StreetEdge) IsWheelchairAccessible() bool { return e.Flags.Has(FlagWheelchairAccessible) }

// IsFootway reports whether the edge is a footway.
func (e *StreetEdge) IsFootway() bool { return e.Flags.Has(FlagFootway) }

// IsCrossing reports whether the edge is a street crossing.
func (e *StreetEdge) IsCrossing() bool { return e.Flags.Has(FlagCrossing) }

// HasBollard reports whether the edge contains a bollard obstacle.
func (e *StreetEdge) HasBollard() bool { return e.Flags.Has(FlagBollard) }

// HasTurnstile reports whether the edge contains a turnstile obstacle.
func (e *StreetEdge) HasTurnstile() bool { return e.Flags.Has(FlagTurnstile) }

// HasCycleBarrier reports whether the edge contains a cycle-barrier obstacle.
func (e *StreetEdge) HasCycleBarrier() bool { return e.Flags.Has(FlagCycleBarrier) }

// HasTLSound reports whether the edge has an accessible traffic light with sound cues.
func (e *StreetEdge) HasTLSound() bool { return e.Flags.Has(FlagTLSound) }

// HasTLVibration reports whether the edge has an accessible traffic light with vibration cues.
func (e *StreetEdge) HasTLVibration() bool { return e.Flags.Has(FlagTLVibration) }

// HasTLFloorVibration reports whether the edge has an accessible traffic
// light with floor-vibration cues.
func (e *StreetEdge) HasTLFloorVibration() bool { return e.Flags.Has(FlagTLFloorVibration) }

// HasFeature reports whether the edge carries the given accessibility feature.
func (e *StreetEdge) HasFeature(feature AccessibilityFeature) bool { return e.Flags.HasFeature(feature) }

// IsReverseOf reports whether e traverses the opposite direction of other
// between the same pair of vertices. Used by the U-turn guard.
func (e *StreetEdge) IsReverseOf(other *StreetEdge) bool {
	if other == nil {
		return false
	}
	return e.FromVertex == other.ToVertex && e.ToVertex == other.FromVertex
}

// IsEquivalentTo reports whether e and other refer to the same logical
// edge, tolerating temporary-edge aliasing: a temporary edge
// built for a single search may alias a permanent graph edge via SetAlias.
func (e *StreetEdge) IsEquivalentTo(other *StreetEdge) bool {
	if e == nil || other == nil {
		return false
	}
	return e.effectiveID() == other.effectiveID()
}

func (e *StreetEdge) String() string {
	return fmt.Sprintf("StreetEdge{%s: %s->%s, %.1fm}", e.ID, e.FromVertex, e.ToVertex, e.LengthMeters())
}
