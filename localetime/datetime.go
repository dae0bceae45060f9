// File: datetime.go
// Role: partial date/time resolution with ISO timezone handling and
// home-timezone fallback.
package localetime

import (
	"errors"
	"time"
)

// ErrUnparseableDateTime is returned when none of the lenient layouts
// this package knows about match the supplied date/time/timezone strings.
var ErrUnparseableDateTime = errors.New("localetime: could not parse date/time")

// isoNoZoneLayout is the ISO8601 layout without a zone offset.
const isoNoZoneLayout = "2006-01-02T15:04:05"

// dateLayouts and timeLayouts are tried, in order, by ResolveFromParts.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "2006/01/02"}
var timeLayouts = []string{"15:04:05", "15:04", "3:04pm", "3:04 PM"}

// ResolveFromTimeString attempts to parse raw as a single self-contained
// ISO8601 timestamp. If raw carries
// an explicit zone offset, it is used as-is; if it parses as ISO8601
// without a zone, homeTZ is attached. ok is false if raw isn't ISO8601
// at all, signaling the caller should fall back to ResolveFromParts with
// separate date/time/timezone fields.
func ResolveFromTimeString(raw string, homeTZ *time.Location) (t time.Time, ok bool) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, true
	}
	if parsed, err := time.ParseInLocation(isoNoZoneLayout, raw, homeTZ); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// ResolveFromParts lenient-parses separate date, time-of-day, and
// timezone strings, attaching homeTZ when tzStr is empty or unrecognized.
// Either dateStr or timeStr may be empty; an empty dateStr defaults to
// today's date in the resolved zone, an empty timeStr defaults to
// midnight.
func ResolveFromParts(dateStr, timeStr, tzStr string, homeTZ *time.Location, now time.Time) (time.Time, error) {
	loc := homeTZ
	if tzStr != "" {
		if parsedLoc, err := time.LoadLocation(tzStr); err == nil {
			loc = parsedLoc
		}
	}

	year, month, day := now.In(loc).Date()
	if dateStr != "" {
		parsedDate, ok := parseWithLayouts(dateLayouts, dateStr, loc)
		if !ok {
			return time.Time{}, ErrUnparseableDateTime
		}
		year, month, day = parsedDate.Date()
	}

	hour, minute, second := 0, 0, 0
	if timeStr != "" {
		parsedTime, ok := parseWithLayouts(timeLayouts, timeStr, loc)
		if !ok {
			return time.Time{}, ErrUnparseableDateTime
		}
		hour, minute, second = parsedTime.Clock()
	}

	return time.Date(year, month, day, hour, minute, second, 0, loc), nil
}

func parseWithLayouts(layouts []string, raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
