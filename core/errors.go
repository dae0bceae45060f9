package core

import "errors"

// Sentinel errors for core graph and edge construction.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a referenced edge does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeLength indicates a StreetEdge was built with a negative length.
	ErrNegativeLength = errors.New("core: edge length must be non-negative")

	// ErrNonPositiveCarSpeed indicates a drivable StreetEdge had carSpeed <= 0.
	ErrNonPositiveCarSpeed = errors.New("core: car speed must be positive for a drivable edge")

	// ErrLengthOverflow indicates a length exceeds the fixed-point range (~2100km).
	ErrLengthOverflow = errors.New("core: edge length exceeds fixed-point range")
)
