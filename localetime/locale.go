// File: locale.go
// Role: locale string parsing.
//
// The source splits a locale string on '_' and, regardless of whether
// 1, 2, or 3 parts resulted, only ever uses the first part to build the
// locale — "it_IT" yields a language-only "it" tag, silently discarding
// the region. Likely unintentional upstream, but clients have come to
// depend on the resulting language-only tags, so it is preserved here
// rather than "fixed."
package localetime

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when the input is empty or its first component
// fails to parse as a BCP-47 language subtag.
const DefaultLocale = "en"

// ParseLocale splits raw on '_' and builds a language.Tag from only the
// first component. Returns (tag, true) on success, or
// (language.English, false) if raw is empty or unparseable — callers
// that care about the fallback (for a log warning) should check the
// bool.
func ParseLocale(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.English, false
	}

	parts := strings.Split(raw, "_")
	tag, err := language.Parse(parts[0])
	if err != nil {
		return language.English, false
	}

	return tag, true
}
