// Package bannedtrip implements the Banned-Trip Parser: it turns a
// comma-separated `agency:trip[:stopIndex...]` grammar into a map from
// trip identifier to a banned-stop-index set, or the ALL sentinel
// meaning "ban boarding at every stop on this trip".
//
// Entries with fewer than two colon-separated parts are silently
// skipped — this mirrors the source grammar's permissive parsing,
// where a malformed single entry in a large list should not fail the
// whole request.
package bannedtrip
