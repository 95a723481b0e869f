package gazetteer

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// lookupConcurrency bounds the candidate searches a single Resolve call runs
// at once.
var lookupConcurrency = runtime.GOMAXPROCS(0)

// ResolvedMatch is a gazetteer entity chosen for an input name.
type ResolvedMatch struct {
	Entity      Entity
	InputName   string  // name as passed to Resolve or Candidates
	MatchedName string  // index name variant that matched
	Fuzzy       bool    // found by the edit-distance fallback
	Confidence  float64 // 1 for exact matches, 1/(edits+0.5) for fuzzy ones
}

// Equal reports whether both matches resolve to the same entity, regardless
// of how they were found.
func (m ResolvedMatch) Equal(other ResolvedMatch) bool {
	return m.Entity.ID == other.Entity.ID
}

func (m ResolvedMatch) String() string {
	return fmt.Sprintf("Resolved %q as: %q {%s}, fuzzy=%t, confidence=%.3f",
		m.InputName, m.MatchedName, m.Entity, m.Fuzzy, m.Confidence)
}

// Resolver maps place names to gazetteer entities, using the other names of
// the same document to pick between ambiguous candidates. Safe for concurrent
// use.
type Resolver struct {
	index     IndexReader
	cfg       ResolverConfig
	logger    *zap.Logger
	metrics   *Metrics
	ownsIndex bool
}

// NewResolver returns a Resolver reading from index. Invalid settings yield an
// error wrapping ErrInvalidConfig.
func NewResolver(index IndexReader, opts ...Option) (*Resolver, error) {
	if index == nil {
		return nil, fmt.Errorf("%w: no index", ErrIndexUnavailable)
	}
	if m, ok := index.(*MemoryIndex); ok && !m.frozen {
		return nil, fmt.Errorf("%w: memory index not closed", ErrIndexUnavailable)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	switch {
	case cfg.MaxHitDepth < 1:
		return nil, fmt.Errorf("%w: max hit depth %d, must be at least 1", ErrInvalidConfig, cfg.MaxHitDepth)
	case cfg.MaxContextWindow < 1:
		return nil, fmt.Errorf("%w: max context window %d, must be at least 1", ErrInvalidConfig, cfg.MaxContextWindow)
	case cfg.FuzzyDistance < 1:
		return nil, fmt.Errorf("%w: fuzzy distance %d, must be at least 1", ErrInvalidConfig, cfg.FuzzyDistance)
	}
	cfg.FuzzyDistance = min(cfg.FuzzyDistance, maxFuzzyDistance)
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Resolver{
		index:   index,
		cfg:     *cfg,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}, nil
}

// OpenResolver opens the index at path and returns a Resolver that owns it.
// Paths ending in ".dmp" or ".dmp.bz2" are gob snapshots loaded into memory;
// anything else is opened as a SQLite index.
func OpenResolver(path string, opts ...Option) (*Resolver, error) {
	var (
		index IndexReader
		err   error
	)
	if strings.HasSuffix(path, ".dmp") || strings.HasSuffix(path, ".dmp.bz2") {
		index, err = LoadMemoryIndex(path)
	} else {
		index, err = OpenSQLiteIndex(path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}

	r, err := NewResolver(index, opts...)
	if err != nil {
		index.Close()
		return nil, err
	}
	r.ownsIndex = true

	if n, err := index.EntryCount(context.Background()); err == nil {
		r.logger.Info("opened gazetteer index", zap.String("path", path), zap.Int("entries", n))
	}
	return r, nil
}

// Config returns the effective configuration.
func (r *Resolver) Config() ResolverConfig {
	return r.cfg
}

// Close releases the index if it was opened by OpenResolver.
func (r *Resolver) Close() error {
	if !r.ownsIndex {
		return nil
	}
	return r.index.Close()
}

// Resolve returns one match per name that has at least one candidate, in
// input order. With MaxHitDepth 1 each name takes its top candidate; otherwise
// candidates are disambiguated against the surrounding names.
func (r *Resolver) Resolve(names []string) []ResolvedMatch {
	start := time.Now()
	defer r.metrics.resolved(start)

	// Lookups are independent; results keep input order.
	found := make([][]ResolvedMatch, len(names))
	var g errgroup.Group
	g.SetLimit(lookupConcurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			found[i] = r.Candidates(name)
			return nil
		})
	}
	_ = g.Wait()

	lists := make([][]ResolvedMatch, 0, len(names))
	for _, c := range found {
		if len(c) > 0 {
			lists = append(lists, c)
		}
	}

	if r.cfg.MaxHitDepth == 1 {
		out := make([]ResolvedMatch, len(lists))
		for i, c := range lists {
			out[i] = c[0]
		}
		return out
	}
	return r.pickBestCandidates(lists)
}
