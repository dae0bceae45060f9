// File: assemble.go
// Role: Request Assembly — consume repeated-parameter
// lists, select the n-th occurrence with sentinel defaulting, coerce,
// cross-validate, and overlay onto a clone of the process prototype.
package request

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/transitgraph/streetcore/bannedtrip"
	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/internal/logctx"
	"github.com/transitgraph/streetcore/internal/reqid"
	"github.com/transitgraph/streetcore/localetime"
)

// DefaultBikeRentalSpeed is the assumed speed of a shared rental bike,
// applied when bike-rental mode is requested but no bikeSpeed was given.
const DefaultBikeRentalSpeed = 4.3 // m/s

// bikeRentalAvailabilityWindow bounds how far from "now" a request may
// depart and still be served live rental-station availability data.
const bikeRentalAvailabilityWindow = 15 * time.Hour

// Assemble builds a RoutingRequest from repeated HTTP parameters.
//
// Each key in params maps to the ordered list of its occurrences; n
// selects which occurrence to use (clamped to the last). An absent key,
// or an occurrence carrying the -1 / -1.0 sentinel, leaves the cloned
// prototype's value in place. homeTZ is the graph's home time zone,
// used when the request's timestamp omits one; now anchors partial
// dates and the rental-availability window.
//
// Cross-field validation failures return the sentinel errors in
// errors.go; the HTTP layer maps them to 4xx responses.
func Assemble(ctx context.Context, params url.Values, n int, proto *RoutingRequest, homeTZ *time.Location, now time.Time) (*RoutingRequest, error) {
	r := proto.Clone()
	r.ID = reqid.New()
	log := logctx.From(ctx).WithField("request_id", r.ID)

	r.From = pickString(params, "fromPlace", n, r.From)
	r.To = pickString(params, "toPlace", n, r.To)
	r.ArriveBy = pickBool(params, "arriveBy", n, r.ArriveBy)
	r.Batch = pickBool(params, "batch", n, r.Batch)

	if raw, ok := pickRaw(params, "mode", n); ok {
		r.Modes = parseModeSet(raw)
	}

	resolveDateTime(params, n, r, homeTZ, now)

	r.WalkSpeed = pickFloat(params, "walkSpeed", n, r.WalkSpeed)
	r.CarSpeed = pickFloat(params, "carSpeed", n, r.CarSpeed)
	if v, ok := pickFloatSet(params, "bikeSpeed", n); ok {
		r.BikeSpeed = v
	} else if r.Modes.HasQualifier(core.ModeBicycle, QualifierRent) {
		r.BikeSpeed = DefaultBikeRentalSpeed
	}

	r.WalkReluctance = pickFloat(params, "walkReluctance", n, r.WalkReluctance)
	r.WaitReluctance = pickFloat(params, "waitReluctance", n, r.WaitReluctance)
	r.WaitAtBeginningFactor = pickFloat(params, "waitAtBeginningFactor", n, r.WaitAtBeginningFactor)
	r.StairsReluctance = pickFloat(params, "stairsReluctance", n, r.StairsReluctance)
	r.TurnReluctance = pickFloat(params, "turnReluctance", n, r.TurnReluctance)

	r.BikeSwitchTime = pickInt64(params, "bikeSwitchTime", n, r.BikeSwitchTime)
	r.BikeSwitchCost = pickFloat(params, "bikeSwitchCost", n, r.BikeSwitchCost)

	r.WheelchairAccessible = pickBool(params, "wheelchair", n, r.WheelchairAccessible)
	r.MaxSlope = pickFloat(params, "maxSlope", n, r.MaxSlope)

	r.MaxWalkDistance = pickFloat(params, "maxWalkDistance", n, r.MaxWalkDistance)
	r.SoftWalkLimiting = pickBool(params, "softWalkLimiting", n, r.SoftWalkLimiting)
	r.SoftWalkPenalty = pickFloat(params, "softWalkPenalty", n, r.SoftWalkPenalty)
	r.SoftWalkOverageRate = pickFloat(params, "softWalkOverageRate", n, r.SoftWalkOverageRate)

	r.MaxPreTransitTime = pickInt64(params, "maxPreTransitTime", n, r.MaxPreTransitTime)
	r.SoftPreTransitLimiting = pickBool(params, "softPreTransitLimiting", n, r.SoftPreTransitLimiting)
	r.PreTransitPenalty = pickFloat(params, "preTransitPenalty", n, r.PreTransitPenalty)
	r.PreTransitOverageRate = pickFloat(params, "preTransitOverageRate", n, r.PreTransitOverageRate)

	r.WalkBoardCost = pickInt(params, "walkBoardCost", n, r.WalkBoardCost)
	r.BikeBoardCost = pickInt(params, "bikeBoardCost", n, r.BikeBoardCost)
	r.TransferPenalty = pickInt(params, "transferPenalty", n, r.TransferPenalty)

	r.BoardSlack = pickInt(params, "boardSlack", n, r.BoardSlack)
	r.AlightSlack = pickInt(params, "alightSlack", n, r.AlightSlack)
	r.TransferSlack = pickInt(params, "transferSlack", n, r.TransferSlack)
	if r.BoardSlack+r.AlightSlack > r.TransferSlack {
		return nil, ErrSlackInvariant
	}

	r.PreferredRoutes = pickStringList(params, "preferredRoutes", n, r.PreferredRoutes)
	r.UnpreferredRoutes = pickStringList(params, "unpreferredRoutes", n, r.UnpreferredRoutes)
	r.BannedRoutes = pickStringList(params, "bannedRoutes", n, r.BannedRoutes)
	r.PreferredAgencies = pickStringList(params, "preferredAgencies", n, r.PreferredAgencies)
	r.UnpreferredAgencies = pickStringList(params, "unpreferredAgencies", n, r.UnpreferredAgencies)
	r.BannedAgencies = pickStringList(params, "bannedAgencies", n, r.BannedAgencies)
	r.BannedStopsSoft = pickStringList(params, "bannedStops", n, r.BannedStopsSoft)
	r.BannedStopsHard = pickStringList(params, "bannedStopsHard", n, r.BannedStopsHard)

	if raw, ok := pickRaw(params, "bannedTrips", n); ok {
		r.BannedTrips = bannedtrip.Parse(raw)
	}

	r.MaxTransfers = pickInt(params, "maxTransfers", n, r.MaxTransfers)
	r.ClampInitialWait = pickInt64(params, "clampInitialWait", n, r.ClampInitialWait)

	if raw, ok := pickRaw(params, "startTransitStopId", n); ok {
		r.StartingTransitStop = parseFeedScopedID(raw)
	}
	if raw, ok := pickRaw(params, "startTransitTripId", n); ok {
		r.StartingTransitTrip = parseFeedScopedID(raw)
	}

	if raw, ok := pickRaw(params, "locale", n); ok {
		tag, parsed := localetime.ParseLocale(raw)
		if !parsed {
			log.WithField("locale", raw).Warn("malformed locale, defaulting to en")
		}
		r.Locale = tag
	}

	r.PermitFootway = pickBool(params, "permitFootway", n, r.PermitFootway)
	r.Accessibility.PermitCrossing = pickPreference(params, "permitCrossing", n, r.Accessibility.PermitCrossing)
	r.Accessibility.PermitBollard = pickPreference(params, "permitBollard", n, r.Accessibility.PermitBollard)
	r.Accessibility.PermitCycleBarrier = pickPreference(params, "permitCycleBarrier", n, r.Accessibility.PermitCycleBarrier)
	r.Accessibility.PermitTurnstile = pickPreference(params, "permitTurnstile", n, r.Accessibility.PermitTurnstile)
	r.Accessibility.PermitTrafficLightSound = pickPreference(params, "permitTrafficLightSound", n, r.Accessibility.PermitTrafficLightSound)
	r.Accessibility.PermitTrafficLightVibration = pickPreference(params, "permitTrafficLightVibration", n, r.Accessibility.PermitTrafficLightVibration)
	r.Accessibility.PermitTrafficLightVibrationFloor = pickPreference(params, "permitTrafficLightVibrationFloor", n, r.Accessibility.PermitTrafficLightVibrationFloor)

	if err := applyOptimizeAndTriangle(params, n, r); err != nil {
		return nil, err
	}

	delta := r.DateTime.Sub(now)
	if delta < 0 {
		delta = -delta
	}
	r.UseBikeRentalAvailability = delta < bikeRentalAvailabilityWindow

	return r, nil
}

// applyOptimizeAndTriangle handles the optimize enum, the bike-triangle
// simplex constraint, and the TRANSFERS rewrite.
func applyOptimizeAndTriangle(params url.Values, n int, r *RoutingRequest) error {
	optRaw, optGiven := pickRaw(params, "optimize", n)
	var opt OptimizeType
	optSet := false
	if optGiven {
		parsed, ok := ParseOptimizeType(optRaw)
		if ok {
			opt, optSet = parsed, true
		}
	}

	safety, safetySet := pickFloatSet(params, "triangleSafetyFactor", n)
	slope, slopeSet := pickFloatSet(params, "triangleSlopeFactor", n)
	timeF, timeSet := pickFloatSet(params, "triangleTimeFactor", n)

	anySet := safetySet || slopeSet || timeSet
	allSet := safetySet && slopeSet && timeSet

	switch {
	case anySet && !allSet:
		return ErrUnderspecifiedTriangle
	case allSet:
		if optSet && opt != OptimizeTriangle {
			return ErrTriangleOptimizeTypeNotSet
		}
		t := BikeTriangle{Safety: safety, Slope: slope, Time: timeF}
		if !t.IsAffine() {
			return ErrTriangleNotAffine
		}
		r.Optimize = OptimizeTriangle
		r.Triangle = &t
		return nil
	case optSet && opt == OptimizeTriangle:
		return ErrTriangleValuesNotSet
	}

	if optSet {
		r.Optimize = opt
	}
	if r.Optimize == OptimizeTransfers {
		r.Optimize = OptimizeQuick
		r.TransferPenalty += 1800
	}
	return nil
}

// resolveDateTime applies the timestamp rules: a lone `time`
// parameter that parses as ISO8601 wins (with its own zone, or homeTZ
// attached when it carries none); otherwise the separate date/time/
// timeZone strings go through lenient parsing.
func resolveDateTime(params url.Values, n int, r *RoutingRequest, homeTZ *time.Location, now time.Time) {
	dateRaw, dateGiven := pickRaw(params, "date", n)
	timeRaw, timeGiven := pickRaw(params, "time", n)
	tzRaw, _ := pickRaw(params, "timeZone", n)

	if !dateGiven && !timeGiven {
		if r.DateTime.IsZero() {
			r.DateTime = now.In(homeTZ)
		}
		return
	}

	if timeGiven && !dateGiven {
		if t, ok := localetime.ResolveFromTimeString(timeRaw, homeTZ); ok {
			r.DateTime = t
			return
		}
	}

	t, err := localetime.ResolveFromParts(dateRaw, timeRaw, tzRaw, homeTZ, now)
	if err != nil {
		r.DateTime = now.In(homeTZ)
		return
	}
	r.DateTime = t
}

// parseFeedScopedID splits an `agency_id` form identifier on its first
// underscore. An identifier with no underscore is treated as an id with
// an empty agency.
func parseFeedScopedID(raw string) *FeedScopedID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if i := strings.Index(raw, "_"); i >= 0 {
		return &FeedScopedID{Agency: raw[:i], ID: raw[i+1:]}
	}
	return &FeedScopedID{ID: raw}
}

// parseModeSet parses a comma-separated mode list (e.g. "TRANSIT,WALK",
// "BICYCLE_RENT", "CAR_KISS"). Unrecognized entries are skipped.
func parseModeSet(raw string) ModeSet {
	var set ModeSet
	for _, entry := range strings.Split(raw, ",") {
		switch strings.TrimSpace(entry) {
		case "WALK":
			set.Options = append(set.Options, ModeOption{Mode: core.ModeWalk})
		case "BICYCLE":
			set.Options = append(set.Options, ModeOption{Mode: core.ModeBicycle})
		case "CAR":
			set.Options = append(set.Options, ModeOption{Mode: core.ModeCar})
		case "BICYCLE_RENT":
			set.Options = append(set.Options, ModeOption{Mode: core.ModeBicycle, Qualifier: QualifierRent})
		case "CAR_PARK":
			set.Options = append(set.Options, ModeOption{Mode: core.ModeCar, Qualifier: QualifierPark})
		case "CAR_KISS":
			set.Options = append(set.Options, ModeOption{Mode: core.ModeCar, Qualifier: QualifierKiss})
		case "TRANSIT":
			set.IncludeTransit = true
		}
	}
	return set
}
