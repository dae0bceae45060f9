// Package request implements the Routing Request Assembly Layer:
// it consumes a vector of user parameters, each field possibly supplied
// as a repeated list, and normalizes them into a single immutable
// RoutingRequest via sentinel-driven defaulting and cross-field
// validation.
//
// url.Values models the HTTP layer's repeated query parameters (one
// slice per field); Assemble clones a process-wide prototype
// RoutingRequest (built by package config) and overlays each field,
// treating an integer -1 or double -1.0 occurrence as "unspecified".
package request
