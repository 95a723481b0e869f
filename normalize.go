package gazetteer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// maxQueryLen bounds query length in runes so edit-distance work on a single
// lookup stays small.
const maxQueryLen = 256

// lowerCaser is not safe for concurrent use, so each call builds its own.
func newLowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// normalizeTerms is the single analyzer for both indexed names and queries:
// NFC composition, Unicode lower-casing, split on whitespace. Punctuation is
// left inside the terms.
func normalizeTerms(s string) []string {
	if s == "" {
		return nil
	}
	c := newLowerCaser()
	return strings.Fields(c.String(norm.NFC.String(s)))
}

// normalizeName returns the normalized terms joined by a single space.
func normalizeName(s string) string {
	return strings.Join(normalizeTerms(s), " ")
}

// prepareQuery trims and truncates a raw query before normalization.
func prepareQuery(s string) string {
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxQueryLen {
		s = string(runes[:maxQueryLen])
	}
	return s
}

// distinctTerms returns terms with duplicates removed, keeping first
// occurrence order.
func distinctTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// phraseScore returns len(query)/len(name) when query occurs as a contiguous
// run inside name, and 0 otherwise.
func phraseScore(query, name []string) float64 {
	if len(query) == 0 || len(query) > len(name) {
		return 0
	}
	for i := 0; i+len(query) <= len(name); i++ {
		match := true
		for j, q := range query {
			if name[i+j] != q {
				match = false
				break
			}
		}
		if match {
			return float64(len(query)) / float64(len(name))
		}
	}
	return 0
}
