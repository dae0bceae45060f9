package request

import "errors"

// Sentinel assembly-phase errors, surfaced to the HTTP layer and
// transformed into 4xx responses.
var (
	// ErrUnderspecifiedTriangle: some but not all of the three triangle
	// factors were provided.
	ErrUnderspecifiedTriangle = errors.New("request: bike triangle factors are underspecified; all of safety/slope/time must be set together")

	// ErrTriangleOptimizeTypeNotSet: triangle factors provided with a
	// non-TRIANGLE optimize type.
	ErrTriangleOptimizeTypeNotSet = errors.New("request: bike triangle factors require optimize=TRIANGLE")

	// ErrTriangleNotAffine: the three factors don't sum to 1 within 3*ulp(1).
	ErrTriangleNotAffine = errors.New("request: bike triangle factors must sum to 1")

	// ErrTriangleValuesNotSet: optimize=TRIANGLE but no factors were supplied.
	ErrTriangleValuesNotSet = errors.New("request: optimize=TRIANGLE requires safety/slope/time factors")

	// ErrSlackInvariant: board + alight slack exceeds the transfer slack.
	ErrSlackInvariant = errors.New("request: board slack + alight slack must not exceed transfer slack")
)
