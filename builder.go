package gazetteer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const defaultBatchSize = 5000

// BuildStats summarizes an index build.
type BuildStats struct {
	Records int           // gazetteer lines read
	Entries int           // name entries written
	Elapsed time.Duration // wall time from the first source to Finish
}

// Builder turns gazetteer sources into name entries and feeds them to an
// IndexWriter in batches. A Builder is used by a single goroutine.
type Builder struct {
	writer    IndexWriter
	logger    *zap.Logger
	metrics   *Metrics
	clock     clockwork.Clock
	batchSize int

	batch   []NameEntry
	stats   BuildStats
	started time.Time
}

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*Builder)

// WithBuildLogger sets the build logger. The default discards everything.
func WithBuildLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithBuildMetrics records written entries into m.
func WithBuildMetrics(m *Metrics) BuilderOption {
	return func(b *Builder) {
		b.metrics = m
	}
}

// WithBuildClock sets the time source for BuildStats.Elapsed.
func WithBuildClock(c clockwork.Clock) BuilderOption {
	return func(b *Builder) {
		b.clock = c
	}
}

// WithBatchSize sets how many entries are handed to the writer at once.
func WithBatchSize(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// NewBuilder returns a Builder writing to w.
func NewBuilder(w IndexWriter, opts ...BuilderOption) *Builder {
	b := &Builder{
		writer:    w,
		logger:    zap.NewNop(),
		clock:     clockwork.NewRealClock(),
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.batch = make([]NameEntry, 0, b.batchSize)
	return b
}

// AddRecord indexes a single raw gazetteer line.
func (b *Builder) AddRecord(ctx context.Context, line string) error {
	if b.started.IsZero() {
		b.started = b.clock.Now()
	}
	b.stats.Records++
	b.batch = append(b.batch, entriesFor(ParseRecord(line), line)...)
	if len(b.batch) >= b.batchSize {
		return b.flush(ctx)
	}
	return nil
}

// AddReader indexes every non-empty line read from r.
func (b *Builder) AddReader(ctx context.Context, r io.Reader) error {
	return scanLines(r, func(line string) error {
		return b.AddRecord(ctx, line)
	})
}

// AddSource indexes the gazetteer file at path. See forEachSourceLine for the
// accepted formats.
func (b *Builder) AddSource(ctx context.Context, path string) error {
	before := b.stats.Records
	start := b.clock.Now()
	b.logger.Info("indexing gazetteer source", zap.String("path", path))

	err := forEachSourceLine(path, func(line string) error {
		return b.AddRecord(ctx, line)
	})
	if err != nil {
		return fmt.Errorf("indexing %s: %w", path, err)
	}

	b.logger.Info("indexed gazetteer source",
		zap.String("path", path),
		zap.Int("records", b.stats.Records-before),
		zap.Duration("elapsed", b.clock.Since(start)))
	return nil
}

// Finish flushes the last batch and closes the writer. The index is usable
// once Finish returns without error.
func (b *Builder) Finish(ctx context.Context) (BuildStats, error) {
	if err := b.flush(ctx); err != nil {
		return b.stats, err
	}
	b.logger.Info("finalizing index", zap.Int("entries", b.stats.Entries))
	if err := b.writer.Close(); err != nil {
		return b.stats, fmt.Errorf("closing index writer: %w", err)
	}
	if !b.started.IsZero() {
		b.stats.Elapsed = b.clock.Since(b.started)
	}
	b.logger.Info("index build complete",
		zap.Int("records", b.stats.Records),
		zap.Int("entries", b.stats.Entries),
		zap.Duration("elapsed", b.stats.Elapsed))
	return b.stats, nil
}

// Stats returns the counts accumulated so far.
func (b *Builder) Stats() BuildStats {
	return b.stats
}

func (b *Builder) flush(ctx context.Context) error {
	if len(b.batch) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.writer.Add(ctx, b.batch); err != nil {
		return fmt.Errorf("writing index batch: %w", err)
	}
	b.stats.Entries += len(b.batch)
	b.metrics.indexed(len(b.batch))
	b.batch = b.batch[:0]
	return nil
}

// BuildIndex indexes the primary gazetteer followed by any supplementary
// sources and closes w. On failure w is aborted and the error is returned.
func BuildIndex(ctx context.Context, w IndexWriter, primary string, supplementary []string, opts ...BuilderOption) (BuildStats, error) {
	b := NewBuilder(w, opts...)

	for _, path := range append([]string{primary}, supplementary...) {
		if err := b.AddSource(ctx, path); err != nil {
			if abortErr := w.Abort(); abortErr != nil {
				b.logger.Warn("aborting index build", zap.Error(abortErr))
			}
			return b.stats, err
		}
	}

	stats, err := b.Finish(ctx)
	if err != nil {
		if abortErr := w.Abort(); abortErr != nil {
			b.logger.Warn("aborting index build", zap.Error(abortErr))
		}
		return stats, err
	}
	return stats, nil
}
