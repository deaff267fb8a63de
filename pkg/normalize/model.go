package normalize

import (
	"regexp"
	"strings"
)

// Abbreviations seen in source model names, expanded word by word.
var modelExpansions = map[string]string{
	"rr":   "range rover",
	"r.r.": "range rover",
	"rre":  "range rover evoque",
	"rrs":  "range rover sport",
	"rrv":  "range rover velar",
	"ar":   "alfa romeo",
	"vw":   "volkswagen",
}

var (
	generationSuffixRe = regexp.MustCompile(`\s+(i{1,3}|iv|v|vi|vii|viii)(\s+\d{4})?$`)
	yearSuffixRe       = regexp.MustCompile(`\s+\d{4}$`)
	dsModelRe          = regexp.MustCompile(`^ds\s+(\d)\b`)
)

// Model canonicalizes a model name: lowercases, strips generation and
// year suffixes ("golf viii 2020" -> "golf"), collapses "ds N" to
// "dsN", and expands known abbreviations.
func Model(raw string) string {
	if raw == "" {
		return ""
	}

	model := strings.TrimSpace(strings.ToLower(raw))

	model = generationSuffixRe.ReplaceAllString(model, "")
	model = yearSuffixRe.ReplaceAllString(model, "")
	model = dsModelRe.ReplaceAllString(model, "ds$1")

	words := strings.Fields(model)
	for i, word := range words {
		if expanded, ok := modelExpansions[word]; ok {
			words[i] = expanded
		}
	}

	return strings.Join(words, " ")
}
