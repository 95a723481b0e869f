package gazetteer

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recordingWriter is an IndexWriter that keeps every batch it receives.
type recordingWriter struct {
	batches [][]NameEntry
	closed  int
	aborted int
	failAdd error
}

func (w *recordingWriter) Add(_ context.Context, entries []NameEntry) error {
	if w.failAdd != nil {
		return w.failAdd
	}
	w.batches = append(w.batches, append([]NameEntry(nil), entries...))
	return nil
}

func (w *recordingWriter) Close() error { w.closed++; return nil }
func (w *recordingWriter) Abort() error { w.aborted++; return nil }

func (w *recordingWriter) entries() []NameEntry {
	var out []NameEntry
	for _, b := range w.batches {
		out = append(out, b...)
	}
	return out
}

func TestBuildIndexStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	w := &recordingWriter{}

	stats, err := BuildIndex(context.Background(), w, fixtureGazetteer, []string{fixtureSupplementary},
		WithBatchSize(7), WithBuildMetrics(metrics))
	if err != nil {
		t.Fatal(err)
	}

	if stats.Records != 50 || stats.Entries != 67 {
		t.Errorf("stats = %+v, want 50 records / 67 entries", stats)
	}
	if w.closed != 1 || w.aborted != 0 {
		t.Errorf("writer closed %d times, aborted %d times", w.closed, w.aborted)
	}
	if len(w.batches) < 67/7 {
		t.Errorf("only %d batches written", len(w.batches))
	}
	if got := gatheredValue(t, reg, "gazetteer_index_entries_total", ""); got != 67 {
		t.Errorf("index_entries_total = %v, want 67", got)
	}

	// Supplementary records come after the primary gazetteer.
	all := w.entries()
	if last := all[len(all)-1]; last.GeonameID != 4140963 {
		t.Errorf("last entry from %d, want the supplementary Washington record", last.GeonameID)
	}
}

func TestBuildIndexCompressedSources(t *testing.T) {
	dir := t.TempDir()
	supplementary, err := os.ReadFile(fixtureSupplementary)
	if err != nil {
		t.Fatal(err)
	}

	gzPath := filepath.Join(dir, "supplementary.txt.gz")
	writeGzip(t, gzPath, supplementary)

	zipPath := filepath.Join(dir, "extra.zip")
	writeZip(t, zipPath, map[string][]byte{
		"a.txt": []byte(restonRecord + "\n"),
		"b.txt": supplementary,
	})

	tests := []struct {
		source  string
		records int
	}{
		{"testdata/supplementary.txt.bz2", 50},
		{gzPath, 50},
		{zipPath, 51},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.source), func(t *testing.T) {
			w := &recordingWriter{}
			stats, err := BuildIndex(context.Background(), w, fixtureGazetteer, []string{tt.source})
			if err != nil {
				t.Fatal(err)
			}
			if stats.Records != tt.records {
				t.Errorf("records = %d, want %d", stats.Records, tt.records)
			}
		})
	}
}

func writeGzip(t *testing.T, path string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, path string, files map[string][]byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	if _, err := zw.Create("docs/"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.txt", "b.txt"} {
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestBuilderAddReader(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{}
	b := NewBuilder(w)

	input := restonRecord + "\r\n\r\n   \n" + "4695535\tGun Barrel City\tGun Barrel City\t\t32.33459\t-96.15137\tP\tPPL\tUS\t\tTX\n"
	if err := b.AddReader(ctx, strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if got := b.Stats().Records; got != 2 {
		t.Errorf("records = %d, want 2 (blank lines skipped)", got)
	}
	if len(w.batches) != 0 {
		t.Error("batch flushed before reaching the batch size")
	}

	stats, err := b.Finish(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 3 {
		t.Errorf("entries = %d, want 3", stats.Entries)
	}
	entries := w.entries()
	if entries[0].Record != restonRecord {
		t.Errorf("carriage return kept in record: %q", entries[0].Record)
	}
}

func TestBuilderRejectsOversizedLine(t *testing.T) {
	b := NewBuilder(&recordingWriter{})
	long := "1\t" + strings.Repeat("x", maxLineSize+1)
	if err := b.AddReader(context.Background(), strings.NewReader(long)); err == nil {
		t.Error("line longer than the scanner limit accepted")
	}
}

func TestBuilderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &recordingWriter{}
	_, err := BuildIndex(ctx, w, fixtureGazetteer, nil, WithBatchSize(1))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if w.aborted != 1 || w.closed != 0 {
		t.Errorf("writer closed %d times, aborted %d times", w.closed, w.aborted)
	}
}

func TestBuildIndexFailureAborts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazetteer.db")

	w, err := CreateSQLiteIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = BuildIndex(context.Background(), w, fixtureGazetteer, []string{filepath.Join(dir, "missing.txt")})
	if err == nil {
		t.Fatal("build with a missing source succeeded")
	}
	for _, p := range []string{path, path + ".building"} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s exists after failed build", filepath.Base(p))
		}
	}
	if _, err := OpenSQLiteIndex(path); !errors.Is(err, ErrIndexUnavailable) {
		t.Errorf("open after failed build: err = %v", err)
	}
}

func TestBuildIndexWriterError(t *testing.T) {
	boom := errors.New("disk full")
	w := &recordingWriter{failAdd: boom}

	_, err := BuildIndex(context.Background(), w, fixtureGazetteer, nil, WithBatchSize(3))
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if w.aborted != 1 {
		t.Errorf("aborted %d times, want 1", w.aborted)
	}
}

func TestBuilderElapsedAndLogs(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	core, logs := observer.New(zap.InfoLevel)

	b := NewBuilder(&recordingWriter{}, WithBuildClock(clock), WithBuildLogger(zap.New(core)))
	if err := b.AddSource(ctx, fixtureSupplementary); err != nil {
		t.Fatal(err)
	}
	clock.Advance(90 * time.Second)

	stats, err := b.Finish(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Elapsed != 90*time.Second {
		t.Errorf("elapsed = %v, want 1m30s", stats.Elapsed)
	}

	done := logs.FilterMessage("index build complete").All()
	if len(done) != 1 {
		t.Fatalf("%d completion logs", len(done))
	}
	fields := done[0].ContextMap()
	if fields["records"] != int64(2) || fields["entries"] != int64(7) {
		t.Errorf("completion log fields = %v", fields)
	}
	if n := logs.FilterMessage("indexed gazetteer source").Len(); n != 1 {
		t.Errorf("%d source logs, want 1", n)
	}
}
