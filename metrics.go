package gazetteer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes recorded by CandidateLookups.
const (
	outcomeExact = "exact"
	outcomeFuzzy = "fuzzy"
	outcomeMiss  = "miss"
)

// Metrics holds the Prometheus collectors for index builds and resolution.
// A nil *Metrics records nothing.
type Metrics struct {
	CandidateLookups      *prometheus.CounterVec // labels: outcome={exact,fuzzy,miss}
	DisambiguationDepth   prometheus.Histogram
	CombinationsEvaluated prometheus.Counter
	ResolveDuration       prometheus.Histogram
	IndexEntries          prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		CandidateLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gazetteer",
			Name:      "candidate_lookups_total",
			Help:      "Candidate searches by outcome.",
		}, []string{"outcome"}),
		DisambiguationDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gazetteer",
			Name:      "disambiguation_depth",
			Help:      "Candidate depth at which disambiguation of a chunk settled.",
			Buckets:   []float64{3, 4, 5, 6, 8, 10, 15, 20},
		}),
		CombinationsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gazetteer",
			Name:      "combinations_evaluated_total",
			Help:      "Candidate combinations scored during disambiguation.",
		}),
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gazetteer",
			Name:      "resolve_duration_seconds",
			Help:      "Duration of a complete Resolve call.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		IndexEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gazetteer",
			Name:      "index_entries_total",
			Help:      "Name entries written by index builds.",
		}),
	}
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// means the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := newMetrics()
	reg.MustRegister(
		m.CandidateLookups,
		m.DisambiguationDepth,
		m.CombinationsEvaluated,
		m.ResolveDuration,
		m.IndexEntries,
	)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, to
// avoid "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func (m *Metrics) lookup(outcome string) {
	if m == nil {
		return
	}
	m.CandidateLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) settled(depth, combinations int) {
	if m == nil {
		return
	}
	m.DisambiguationDepth.Observe(float64(depth))
	m.CombinationsEvaluated.Add(float64(combinations))
}

func (m *Metrics) resolved(start time.Time) {
	if m == nil {
		return
	}
	m.ResolveDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) indexed(entries int) {
	if m == nil {
		return
	}
	m.IndexEntries.Add(float64(entries))
}
