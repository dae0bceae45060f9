// File: triangle.go
// Role: the bike triangle simplex (safety, slope, time) and its
// affine-sum validation.
package request

import "math"

// ulp1Times3 is the sum-invariant tolerance: 3*ulp(1), matching the
// source's floating-point slack for "safety+slope+time == 1".
var ulp1Times3 = 3 * (math.Nextafter(1, 2) - 1)

// BikeTriangle is the convex combination over (safety, slope, time)
// that defines bicycle TRIANGLE-optimization cost.
type BikeTriangle struct {
	Safety float64
	Slope  float64
	Time   float64
}

// Sum returns Safety+Slope+Time.
func (t BikeTriangle) Sum() float64 { return t.Safety + t.Slope + t.Time }

// IsAffine reports whether t's components sum to 1 within 3*ulp(1).
func (t BikeTriangle) IsAffine() bool {
	return math.Abs(t.Sum()-1) <= ulp1Times3
}
