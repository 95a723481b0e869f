package gazetteer

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// scoredEntry is a name entry with its match score for one query.
type scoredEntry struct {
	entry NameEntry
	score float64
}

// Candidates returns up to MaxHitDepth gazetteer matches for a single name:
// exact phrase matches if there are any, otherwise fuzzy matches when fuzzy
// matching is enabled. No match yields an empty slice.
func (r *Resolver) Candidates(name string) []ResolvedMatch {
	matches, err := r.candidates(context.Background(), name)
	if err != nil {
		r.logger.Warn("candidate lookup failed", zap.String("name", name), zap.Error(err))
		r.metrics.lookup(outcomeMiss)
		return []ResolvedMatch{}
	}
	return matches
}

func (r *Resolver) candidates(ctx context.Context, name string) ([]ResolvedMatch, error) {
	query := prepareQuery(name)
	terms := normalizeTerms(query)
	if len(terms) == 0 {
		r.metrics.lookup(outcomeMiss)
		return []ResolvedMatch{}, nil
	}

	exact, err := r.exactMatches(ctx, terms)
	if err != nil {
		return nil, err
	}
	if len(exact) > 0 {
		r.metrics.lookup(outcomeExact)
		return r.toMatches(name, query, exact, false), nil
	}

	if r.cfg.Fuzzy {
		fuzzy, err := r.fuzzyMatches(ctx, terms)
		if err != nil {
			return nil, err
		}
		if len(fuzzy) > 0 {
			r.metrics.lookup(outcomeFuzzy)
			return r.toMatches(name, query, fuzzy, true), nil
		}
	}

	r.logger.Debug("no match found", zap.String("name", name))
	r.metrics.lookup(outcomeMiss)
	return []ResolvedMatch{}, nil
}

// exactMatches ranks entries whose name contains the query as a contiguous
// run of terms.
func (r *Resolver) exactMatches(ctx context.Context, terms []string) ([]NameEntry, error) {
	entries, err := r.index.MatchPhrase(ctx, terms)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredEntry, 0, len(entries))
	for _, e := range entries {
		if s := phraseScore(terms, normalizeTerms(e.Name)); s > 0 {
			scored = append(scored, scoredEntry{entry: e, score: s})
		}
	}
	return rankEntries(scored, r.cfg.MaxHitDepth), nil
}

// fuzzyMatches expands every query term to the dictionary terms within the
// configured edit distance and ranks the entries containing any of them.
func (r *Resolver) fuzzyMatches(ctx context.Context, terms []string) ([]NameEntry, error) {
	dist := r.cfg.FuzzyDistance

	var expanded []string
	for _, t := range distinctTerms(terms) {
		more, err := r.index.ExpandTerm(ctx, t, dist)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, more...)
	}
	if len(expanded) == 0 {
		return nil, nil
	}

	entries, err := r.index.MatchAny(ctx, expanded)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredEntry, 0, len(entries))
	for _, e := range entries {
		nameTerms := normalizeTerms(e.Name)
		var sum float64
		for _, q := range terms {
			var best float64
			for _, nt := range nameTerms {
				best = max(best, termSimilarity(q, nt, dist))
			}
			sum += best
		}
		if s := sum / float64(max(len(terms), len(nameTerms))); s > 0 {
			scored = append(scored, scoredEntry{entry: e, score: s})
		}
	}
	return rankEntries(scored, r.cfg.MaxHitDepth), nil
}

// rankEntries orders by score, population, geoname id and matched name, keeps
// the best entry per entity and returns at most limit entries. Entries whose
// id is OutOfBounds are never merged.
func rankEntries(scored []scoredEntry, limit int) []NameEntry {
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.entry.Population != b.entry.Population {
			return a.entry.Population > b.entry.Population
		}
		if a.entry.GeonameID != b.entry.GeonameID {
			return a.entry.GeonameID < b.entry.GeonameID
		}
		return a.entry.Name < b.entry.Name
	})

	seen := make(map[int]struct{}, len(scored))
	out := make([]NameEntry, 0, min(limit, len(scored)))
	for _, s := range scored {
		if len(out) == limit {
			break
		}
		// Records without a usable id are distinct entities.
		if id := s.entry.GeonameID; id != OutOfBounds {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
		}
		out = append(out, s.entry)
	}
	return out
}

func (r *Resolver) toMatches(input, query string, entries []NameEntry, fuzzy bool) []ResolvedMatch {
	out := make([]ResolvedMatch, len(entries))
	for i, e := range entries {
		m := ResolvedMatch{
			Entity:      ParseRecord(e.Record),
			InputName:   input,
			MatchedName: e.Name,
			Fuzzy:       fuzzy,
			Confidence:  1,
		}
		if fuzzy {
			m.Confidence = fuzzyConfidence(query, e.Name)
		}
		r.logger.Debug("candidate", zap.Stringer("match", m))
		out[i] = m
	}
	return out
}
