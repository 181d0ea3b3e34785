package domain

import "strings"

// NormalizeQuery prepares a user-supplied pinyin or onset query for
// lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - replaces the ASCII substitute "v" with "ü" (common typing
//     convention: "nv" for "nü")
//
// Dataset values already use "ü", so normalization happens on the query
// side only.
func NormalizeQuery(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	return strings.ReplaceAll(q, "v", "ü")
}

// ParseOnsetQuery maps a user-supplied onset query to an Onset. The
// literal "none" selects the empty onset. Returns false for strings
// outside the onset table.
func ParseOnsetQuery(q string) (Onset, bool) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == NoneLabel {
		return OnsetNone, true
	}
	o := Onset(q)
	// The empty string is not an accepted query form; "none" is.
	if o == OnsetNone || !o.IsValid() {
		return OnsetNone, false
	}
	return o, true
}
