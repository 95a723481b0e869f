package gazetteer

import (
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned (wrapped) by NewResolver for settings outside
// their valid range.
var ErrInvalidConfig = errors.New("invalid resolver configuration")

// ResolverConfig contains the settings of a Resolver.
type ResolverConfig struct {
	MaxHitDepth      int  // candidates considered per name (default: 1)
	MaxContextWindow int  // names disambiguated together (default: 1)
	Fuzzy            bool // fall back to edit-distance matching (default: false)
	FuzzyDistance    int  // maximum edits per term, capped at 3 (default: 1)

	Logger  *zap.Logger
	Metrics *Metrics
}

// Option is a functional option for configuring a Resolver.
type Option func(*ResolverConfig)

// WithMaxHitDepth sets how many candidates are retrieved for each name. A
// depth of 1 disables disambiguation.
func WithMaxHitDepth(n int) Option {
	return func(c *ResolverConfig) {
		c.MaxHitDepth = n
	}
}

// WithMaxContextWindow sets how many consecutive names are disambiguated
// against each other.
func WithMaxContextWindow(n int) Option {
	return func(c *ResolverConfig) {
		c.MaxContextWindow = n
	}
}

// WithFuzzy enables or disables the fuzzy fallback.
func WithFuzzy(enabled bool) Option {
	return func(c *ResolverConfig) {
		c.Fuzzy = enabled
	}
}

// WithFuzzyDistance sets the maximum edit distance per term for fuzzy
// matching. Values above 3 are lowered to 3.
func WithFuzzyDistance(n int) Option {
	return func(c *ResolverConfig) {
		c.FuzzyDistance = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *ResolverConfig) {
		c.Logger = l
	}
}

// WithMetrics sets the Prometheus collectors to record into.
func WithMetrics(m *Metrics) Option {
	return func(c *ResolverConfig) {
		c.Metrics = m
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *ResolverConfig {
	return &ResolverConfig{
		MaxHitDepth:      1,
		MaxContextWindow: 1,
		Fuzzy:            false,
		FuzzyDistance:    1,
		Logger:           zap.NewNop(),
	}
}
