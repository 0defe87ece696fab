package util

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases, strips diacritics, collapses non-alphanumeric runs
// into single dashes and truncates to 40 chars. Deterministic, so the same
// display text always yields the same progress key.
func Slugify(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevDash = false
		} else if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug
}

// KeyForAction derives the stable progress key for one checkable action of a
// subskill: <module>:skill:<subIndex b36>:<actionIndex b36>:<slug(text)>.
// Indexes are base36 to keep keys compact.
func KeyForAction(moduleID string, subIndex, actionIndex int, actionText string) string {
	return Slugify(moduleID) + ":skill:" +
		strconv.FormatInt(int64(subIndex), 36) + ":" +
		strconv.FormatInt(int64(actionIndex), 36) + ":" +
		Slugify(actionText)
}
