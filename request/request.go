// File: request.go
// Role: the immutable RoutingRequest record — every knob the
// admissibility filter, cost kernel, and mode-switch policy consult,
// assembled once per HTTP invocation by cloning the process prototype.
package request

import (
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"

	"github.com/transitgraph/streetcore/bannedtrip"
	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/turncost"
)

// FeedScopedID is a transit entity identifier in `agency_id` form: the
// agency feed identifier, then an underscore, then the entity id.
type FeedScopedID struct {
	Agency string
	ID     string
}

// RoutingRequest carries every per-request parameter the street
// traversal core consults. It is built once by Assemble (cloned from a
// process-wide prototype), then read-only for the lifetime of the
// search. The zero value is not usable; start from Prototype or
// Assemble.
type RoutingRequest struct {
	// ID correlates log lines for a single assembled request.
	ID string

	From string
	To   string

	DateTime time.Time
	ArriveBy bool

	Modes ModeSet

	// Reluctances are dimensionless multipliers over raw seconds.
	WalkReluctance        float64
	WaitReluctance        float64
	WaitAtBeginningFactor float64
	StairsReluctance      float64
	TurnReluctance        float64

	// Speeds in meters/second.
	WalkSpeed float64
	BikeSpeed float64
	CarSpeed  float64

	BikeSwitchTime int64 // seconds to pick up or put down a bike
	BikeSwitchCost float64

	Optimize OptimizeType
	// Triangle is nil unless Optimize == OptimizeTriangle.
	Triangle *BikeTriangle

	WheelchairAccessible bool
	MaxSlope             float64

	MaxWalkDistance     float64
	SoftWalkLimiting    bool
	SoftWalkPenalty     float64
	SoftWalkOverageRate float64

	MaxPreTransitTime      int64
	SoftPreTransitLimiting bool
	PreTransitPenalty      float64
	PreTransitOverageRate  float64

	WalkBoardCost   int
	BikeBoardCost   int
	TransferPenalty int

	BoardSlack    int
	AlightSlack   int
	TransferSlack int

	PreferredRoutes     []string
	UnpreferredRoutes   []string
	BannedRoutes        []string
	PreferredAgencies   []string
	UnpreferredAgencies []string
	BannedAgencies      []string

	BannedStopsSoft []string
	BannedStopsHard []string

	BannedTrips map[bannedtrip.TripID]bannedtrip.BanSet

	MaxTransfers int
	Batch        bool

	StartingTransitStop *FeedScopedID
	StartingTransitTrip *FeedScopedID

	ClampInitialWait int64

	Locale language.Tag

	// PermitFootway false opts the traveler out of footway edges entirely.
	PermitFootway bool

	Accessibility AccessibilityVector

	UseBikeRentalAvailability bool

	// WalkingBike marks a request variant used while pushing a bicycle
	// on foot. Set only on the derived bike-walking options, never on a
	// top-level request.
	WalkingBike bool

	// CostModel prices intersection traversals (turn cost).
	CostModel turncost.CostModel

	// bikeWalkingOptions is the derived request used when a BICYCLE
	// traversal fails admission and the kernel retries on foot.
	bikeWalkingOptions *RoutingRequest
}

// SpeedFor returns the traveler's speed for a non-driving mode. Driving
// speed comes from the edge, not the request (the kernel asks the edge
// for CarSpeed directly).
func (r *RoutingRequest) SpeedFor(mode core.TraverseMode) float64 {
	switch mode {
	case core.ModeBicycle:
		return r.BikeSpeed
	case core.ModeCar:
		return r.CarSpeed
	default:
		return r.WalkSpeed
	}
}

// BikeWalkingOptions returns the derived request the cost kernel
// retries with when a bicycle traversal is inadmissible: same traveler,
// walking pace, WalkingBike set. Built once per request.
func (r *RoutingRequest) BikeWalkingOptions() *RoutingRequest {
	if r.bikeWalkingOptions != nil {
		return r.bikeWalkingOptions
	}
	bw := r.Clone()
	bw.WalkingBike = true
	bw.bikeWalkingOptions = bw // self-link terminates the derivation
	r.bikeWalkingOptions = bw
	return bw
}

// Clone returns a deep copy of r. Slices and the banned-trips map are
// copied; the CostModel is shared (stateless by contract). The derived
// bike-walking options are not carried over and will be rebuilt lazily.
func (r *RoutingRequest) Clone() *RoutingRequest {
	out := *r
	out.bikeWalkingOptions = nil

	out.Modes.Options = append([]ModeOption(nil), r.Modes.Options...)
	out.PreferredRoutes = append([]string(nil), r.PreferredRoutes...)
	out.UnpreferredRoutes = append([]string(nil), r.UnpreferredRoutes...)
	out.BannedRoutes = append([]string(nil), r.BannedRoutes...)
	out.PreferredAgencies = append([]string(nil), r.PreferredAgencies...)
	out.UnpreferredAgencies = append([]string(nil), r.UnpreferredAgencies...)
	out.BannedAgencies = append([]string(nil), r.BannedAgencies...)
	out.BannedStopsSoft = append([]string(nil), r.BannedStopsSoft...)
	out.BannedStopsHard = append([]string(nil), r.BannedStopsHard...)

	if r.Triangle != nil {
		t := *r.Triangle
		out.Triangle = &t
	}
	if r.StartingTransitStop != nil {
		s := *r.StartingTransitStop
		out.StartingTransitStop = &s
	}
	if r.StartingTransitTrip != nil {
		t := *r.StartingTransitTrip
		out.StartingTransitTrip = &t
	}
	if r.BannedTrips != nil {
		out.BannedTrips = make(map[bannedtrip.TripID]bannedtrip.BanSet, len(r.BannedTrips))
		for k, v := range r.BannedTrips {
			out.BannedTrips[k] = v
		}
	}

	return &out
}

// debugView is the JSON shape DebugJSON emits: the tuning parameters a
// trace reader actually wants, not the full struct.
type debugView struct {
	ID                   string    `json:"id"`
	From                 string    `json:"from,omitempty"`
	To                   string    `json:"to,omitempty"`
	ArriveBy             bool      `json:"arriveBy"`
	Optimize             string    `json:"optimize"`
	WheelchairAccessible bool      `json:"wheelchair"`
	WalkSpeed            float64   `json:"walkSpeed"`
	BikeSpeed            float64   `json:"bikeSpeed"`
	WalkReluctance       float64   `json:"walkReluctance"`
	StairsReluctance     float64   `json:"stairsReluctance"`
	MaxWalkDistance      float64   `json:"maxWalkDistance"`
	Locale               string    `json:"locale"`
	Accessibility        [7]int8   `json:"accessibility"`
	Triangle             []float64 `json:"triangle,omitempty"`
}

// DebugJSON renders the request's tuning parameters as a stable JSON
// object for trace logging.
func (r *RoutingRequest) DebugJSON() ([]byte, error) {
	v := debugView{
		ID:                   r.ID,
		From:                 r.From,
		To:                   r.To,
		ArriveBy:             r.ArriveBy,
		Optimize:             r.Optimize.String(),
		WheelchairAccessible: r.WheelchairAccessible,
		WalkSpeed:            r.WalkSpeed,
		BikeSpeed:            r.BikeSpeed,
		WalkReluctance:       r.WalkReluctance,
		StairsReluctance:     r.StairsReluctance,
		MaxWalkDistance:      r.MaxWalkDistance,
		Locale:               r.Locale.String(),
		Accessibility: [7]int8{
			int8(r.Accessibility.PermitCrossing),
			int8(r.Accessibility.PermitBollard),
			int8(r.Accessibility.PermitCycleBarrier),
			int8(r.Accessibility.PermitTurnstile),
			int8(r.Accessibility.PermitTrafficLightSound),
			int8(r.Accessibility.PermitTrafficLightVibration),
			int8(r.Accessibility.PermitTrafficLightVibrationFloor),
		},
	}
	if r.Triangle != nil {
		v.Triangle = []float64{r.Triangle.Safety, r.Triangle.Slope, r.Triangle.Time}
	}
	return json.Marshal(v)
}
