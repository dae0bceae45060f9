// File: accessibility.go
// Role: the seven-field Accessibility Preference Vector the
// admissibility filter and cost kernel consult per obstacle feature.
package request

import "github.com/transitgraph/streetcore/core"

// AccessibilityPreference is a four-valued per-feature preference:
// forbid, dislike, neutral, or prefer.
type AccessibilityPreference int8

const (
	// PreferenceForbid makes any edge bearing the feature inadmissible.
	PreferenceForbid AccessibilityPreference = -1
	// PreferenceDislike multiplies the edge's weight by 2.0.
	PreferenceDislike AccessibilityPreference = 0
	// PreferenceNeutral leaves the edge's weight unchanged (x1.0).
	PreferenceNeutral AccessibilityPreference = 1
	// PreferencePrefer multiplies the edge's weight by 0.5.
	PreferencePrefer AccessibilityPreference = 2
)

// Factor returns the cost multiplier for p: forbid is never multiplied
// (admission rejects it outright), dislike doubles the weight, neutral
// is the identity, prefer halves it. Any other value is treated as
// neutral.
func (p AccessibilityPreference) Factor() float64 {
	switch p {
	case PreferenceDislike:
		return 2.0
	case PreferenceNeutral:
		return 1.0
	case PreferencePrefer:
		return 0.5
	default:
		return 1.0
	}
}

// Forbidden reports whether p forbids the feature outright.
func (p AccessibilityPreference) Forbidden() bool { return p == PreferenceForbid }

// AccessibilityVector is the seven-field preference set, one field per
// pedestrian-relevant obstacle feature.
type AccessibilityVector struct {
	PermitCrossing                   AccessibilityPreference
	PermitBollard                    AccessibilityPreference
	PermitCycleBarrier               AccessibilityPreference
	PermitTurnstile                  AccessibilityPreference
	PermitTrafficLightSound          AccessibilityPreference
	PermitTrafficLightVibration      AccessibilityPreference
	PermitTrafficLightVibrationFloor AccessibilityPreference
}

// NeutralAccessibilityVector returns a vector with every preference set
// to neutral, the "no accessibility preferences" baseline.
func NeutralAccessibilityVector() AccessibilityVector {
	return AccessibilityVector{
		PermitCrossing:                   PreferenceNeutral,
		PermitBollard:                    PreferenceNeutral,
		PermitCycleBarrier:               PreferenceNeutral,
		PermitTurnstile:                  PreferenceNeutral,
		PermitTrafficLightSound:          PreferenceNeutral,
		PermitTrafficLightVibration:      PreferenceNeutral,
		PermitTrafficLightVibrationFloor: PreferenceNeutral,
	}
}

// For returns the preference governing the given core.AccessibilityFeature.
func (v AccessibilityVector) For(feature core.AccessibilityFeature) AccessibilityPreference {
	switch feature {
	case core.FeatureCrossing:
		return v.PermitCrossing
	case core.FeatureBollard:
		return v.PermitBollard
	case core.FeatureCycleBarrier:
		return v.PermitCycleBarrier
	case core.FeatureTurnstile:
		return v.PermitTurnstile
	case core.FeatureTLSound:
		return v.PermitTrafficLightSound
	case core.FeatureTLVibration:
		return v.PermitTrafficLightVibration
	case core.FeatureTLFloorVibration:
		return v.PermitTrafficLightVibrationFloor
	default:
		return PreferenceNeutral
	}
}

// crossingGroupFeatures are the features that only apply to the edge's
// multiplier when the edge is itself a crossing:
// crossing, and the three accessible-traffic-light cue variants.
var crossingGroupFeatures = [...]core.AccessibilityFeature{
	core.FeatureCrossing,
	core.FeatureTLSound,
	core.FeatureTLVibration,
	core.FeatureTLFloorVibration,
}

// independentFeatures apply to the edge's multiplier regardless of
// whether the edge is a crossing.
var independentFeatures = [...]core.AccessibilityFeature{
	core.FeatureBollard,
	core.FeatureTurnstile,
	core.FeatureCycleBarrier,
}

// Multiplier computes the composed accessibility weight multiplier for
// an edge carrying the given flags: the crossing
// group (crossing + the three traffic-light cue features) only
// contributes when the edge isCrossing; bollard/turnstile/cycle-barrier
// always contribute independently when present. Multiple applicable
// features compose multiplicatively.
func (v AccessibilityVector) Multiplier(flags core.Flags) float64 {
	m := 1.0

	if flags.HasFeature(core.FeatureCrossing) {
		for _, f := range crossingGroupFeatures {
			if flags.HasFeature(f) {
				m *= v.For(f).Factor()
			}
		}
	}

	for _, f := range independentFeatures {
		if flags.HasFeature(f) {
			m *= v.For(f).Factor()
		}
	}

	return m
}

// ForbiddenFeature returns the first feature flags carries that v
// forbids outright, and true, or the zero feature and false if none is
// forbidden. Used by the admissibility filter.
func (v AccessibilityVector) ForbiddenFeature(flags core.Flags) (core.AccessibilityFeature, bool) {
	all := append(append([]core.AccessibilityFeature{}, crossingGroupFeatures[:]...), independentFeatures[:]...)
	for _, f := range all {
		if flags.HasFeature(f) && v.For(f).Forbidden() {
			return f, true
		}
	}
	return 0, false
}
