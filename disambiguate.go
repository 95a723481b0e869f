package gazetteer

// initialCandidateDepth is how many candidates per name the first
// disambiguation pass considers.
const initialCandidateDepth = 3

// chunkCandidates splits candidate lists into consecutive groups of at most
// window lists.
func chunkCandidates(lists [][]ResolvedMatch, window int) [][][]ResolvedMatch {
	if window < 1 {
		window = 1
	}
	chunks := make([][][]ResolvedMatch, 0, (len(lists)+window-1)/window)
	for start := 0; start < len(lists); start += window {
		chunks = append(chunks, lists[start:min(start+window, len(lists))])
	}
	return chunks
}

// pickBestCandidates picks one candidate per list, chunk by chunk, and
// returns the picks in input order.
func (r *Resolver) pickBestCandidates(lists [][]ResolvedMatch) []ResolvedMatch {
	out := make([]ResolvedMatch, 0, len(lists))
	for _, chunk := range chunkCandidates(lists, r.cfg.MaxContextWindow) {
		best, depth, evaluated := bestCombination(chunk)
		r.metrics.settled(depth, evaluated)
		out = append(out, best...)
	}
	return out
}

// bestCombination searches combinations of the top-d candidates of every list
// for the one whose picks share the fewest countries and admin1 regions. d
// starts at initialCandidateDepth and grows while the best score strictly
// improves. It also returns the last depth searched and the number of
// combinations scored.
func bestCombination(lists [][]ResolvedMatch) ([]ResolvedMatch, int, int) {
	if len(lists) == 0 {
		return nil, 0, 0
	}

	var best []ResolvedMatch
	var bestScore, prevScore float64
	var evaluated int
	depth := initialCandidateDepth

	for {
		prevScore = bestScore
		forEachCombination(lists, depth, func(combo []ResolvedMatch) {
			evaluated++
			if s := combinationScore(combo, depth); s > bestScore {
				bestScore = s
				best = append(best[:0:0], combo...)
			}
		})
		if !(bestScore > prevScore) {
			break
		}
		depth++
	}
	return best, depth, evaluated
}

// forEachCombination visits the cross product of the first depth entries of
// every list, last list varying fastest. combo is reused between calls.
func forEachCombination(lists [][]ResolvedMatch, depth int, fn func(combo []ResolvedMatch)) {
	sizes := make([]int, len(lists))
	for i, l := range lists {
		sizes[i] = min(len(l), depth)
		if sizes[i] == 0 {
			return
		}
	}

	idx := make([]int, len(lists))
	combo := make([]ResolvedMatch, len(lists))
	for {
		for i, j := range idx {
			combo[i] = lists[i][j]
		}
		fn(combo)

		// Advance the odometer from the rightmost position.
		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < sizes[pos] {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}

// combinationScore is n / (distinct countries + distinct admin1 codes) / depth.
// Admin1 codes are compared bare, without their country.
func combinationScore(combo []ResolvedMatch, depth int) float64 {
	countries := make(map[CountryCode]struct{}, len(combo))
	admin1 := make(map[string]struct{}, len(combo))
	for _, m := range combo {
		countries[m.Entity.CountryCode] = struct{}{}
		admin1[m.Entity.Admin1Code] = struct{}{}
	}
	return float64(len(combo)) / float64(len(countries)+len(admin1)) / float64(depth)
}
