// Package localetime implements the Locale & Time Resolver: it
// parses locale strings (preserving the documented first-component-only
// quirk) and resolves a request's partial date/time,
// attaching the graph's home time zone when the caller didn't supply
// one.
package localetime
