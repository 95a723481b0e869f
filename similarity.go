package gazetteer

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// maxFuzzyDistance caps the configured fuzzy edit distance; every extra edit
// widens the dictionary scan considerably.
const maxFuzzyDistance = 3

// editDistance is the case-insensitive Levenshtein distance between a and b,
// counted in runes.
func editDistance(a, b string) int {
	c := newLowerCaser()
	return levenshtein.ComputeDistance(c.String(a), c.String(b))
}

// withinEdits reports whether two already-normalized terms are at most maxDist
// edits apart. The length check avoids computing distances that cannot pass.
func withinEdits(a, b string, maxDist int) bool {
	if maxDist <= 0 {
		return a == b
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la-lb > maxDist || lb-la > maxDist {
		return false
	}
	return levenshtein.ComputeDistance(a, b) <= maxDist
}

// termSimilarity scores two normalized terms in [0, 1]: 1 for equal terms,
// 1 - d/len for terms within maxDist edits, 0 otherwise.
func termSimilarity(a, b string, maxDist int) float64 {
	if a == b {
		return 1
	}
	if !withinEdits(a, b, maxDist) {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 1 - float64(d)/float64(n)
}

// fuzzyConfidence is the confidence reported for a fuzzy match of input
// against the matched index name.
func fuzzyConfidence(input, matched string) float64 {
	return 1 / (float64(editDistance(input, matched)) + 0.5)
}
