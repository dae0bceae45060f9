// File: parser.go
// Role: Banned-Trip Parser grammar and the per-trip ban set it produces.
package bannedtrip

import (
	"strconv"
	"strings"
)

// TripID identifies a trip by its owning agency and trip identifier,
// matching the "agency:trip" form used throughout the grammar.
type TripID struct {
	Agency string
	Trip   string
}

// BanSet is the set of stop indices at which boarding a trip is
// forbidden, or the ALL sentinel forbidding boarding anywhere on it.
type BanSet struct {
	all   bool
	stops map[int]struct{}
}

// All returns a BanSet that forbids boarding at every stop.
func All() BanSet { return BanSet{all: true} }

// Stops returns a BanSet that forbids boarding only at the given indices.
func Stops(indices ...int) BanSet {
	s := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return BanSet{stops: s}
}

// IsAll reports whether every stop on the trip is banned.
func (b BanSet) IsAll() bool { return b.all }

// Bans reports whether boarding at stopIndex is forbidden.
func (b BanSet) Bans(stopIndex int) bool {
	if b.all {
		return true
	}
	_, banned := b.stops[stopIndex]
	return banned
}

// Parse parses the grammar `entry ("," entry)*` where
// `entry := agency ":" trip (":" stopIndex)*`. Entries with fewer than
// two colon-separated parts are silently skipped. An entry with no
// stop-index parts bans the entire trip (the ALL sentinel); with one
// or more stop indices, only those indices are banned. A stop index
// that fails to parse as an integer is skipped, not fatal to the entry.
func Parse(input string) map[TripID]BanSet {
	out := make(map[TripID]BanSet)
	if strings.TrimSpace(input) == "" {
		return out
	}

	for _, entry := range strings.Split(input, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) < 2 {
			continue
		}

		id := TripID{Agency: parts[0], Trip: parts[1]}

		if len(parts) == 2 {
			out[id] = All()
			continue
		}

		indices := make([]int, 0, len(parts)-2)
		for _, raw := range parts[2:] {
			idx, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			indices = append(indices, idx)
		}

		if existing, ok := out[id]; ok && !existing.IsAll() {
			for idx := range Stops(indices...).stops {
				existing.stops[idx] = struct{}{}
			}
			out[id] = existing
			continue
		}

		out[id] = Stops(indices...)
	}

	return out
}
