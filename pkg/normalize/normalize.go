// Package normalize maps raw, free-text vehicle attribute values into
// small closed vocabularies or canonical strings. Both catalogue
// providers encode the same attributes inconsistently (Italian and
// English spellings, compound phrases, packaging suffixes on OEM codes),
// so every comparison in the matching engine goes through this package.
//
// Every normalizer is pure and total: the empty string and any
// unrecognized input produce the empty canonical value, never an error.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold strips diacritics so accented spellings ("coupé", "velocità")
// compare equal to their plain-ASCII forms.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// clean lowercases, folds accents and trims surrounding space. This is
// the shared first step of every normalizer.
func clean(s string) string {
	return strings.TrimSpace(strings.ToLower(fold(s)))
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
