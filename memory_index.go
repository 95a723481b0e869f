package gazetteer

import (
	"bytes"
	"compress/bzip2"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// MemoryIndex keeps the whole index in process memory. It is written through
// the IndexWriter methods, frozen by Close, and from then on is immutable and
// safe for concurrent reads. Snapshots are gob files, optionally bzip2
// compressed when loaded.
type MemoryIndex struct {
	entries  []NameEntry
	postings map[string][]int // normalized term -> ascending entry positions

	termsByLen map[int][]string // sorted dictionary, bucketed by rune length
	frozen     bool
}

// memorySnapshot is the gob-friendly form of a MemoryIndex.
type memorySnapshot struct {
	Format   string
	Entries  []NameEntry
	Postings map[string][]int
}

// NewMemoryIndex returns an empty index ready for writing.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{postings: make(map[string][]int)}
}

// Add appends entries. It fails once the index has been closed.
func (m *MemoryIndex) Add(_ context.Context, entries []NameEntry) error {
	if m.frozen {
		return errWriterClosed
	}
	for _, e := range entries {
		pos := len(m.entries)
		m.entries = append(m.entries, e)
		for _, term := range distinctTerms(normalizeTerms(e.Name)) {
			m.postings[term] = append(m.postings[term], pos)
		}
	}
	return nil
}

// Close freezes the index and builds the term dictionary. Further calls are
// no-ops.
func (m *MemoryIndex) Close() error {
	if m.frozen {
		return nil
	}
	m.termsByLen = make(map[int][]string)
	for term := range m.postings {
		n := utf8.RuneCountInString(term)
		m.termsByLen[n] = append(m.termsByLen[n], term)
	}
	for _, terms := range m.termsByLen {
		sort.Strings(terms)
	}
	m.frozen = true
	return nil
}

// Abort drops everything added so far.
func (m *MemoryIndex) Abort() error {
	m.entries = nil
	m.postings = make(map[string][]int)
	return nil
}

// MatchPhrase returns the entries whose name contains every term.
func (m *MemoryIndex) MatchPhrase(_ context.Context, terms []string) ([]NameEntry, error) {
	terms = distinctTerms(terms)
	if len(terms) == 0 {
		return nil, nil
	}

	hits := m.postings[terms[0]]
	for _, t := range terms[1:] {
		hits = intersectSorted(hits, m.postings[t])
		if len(hits) == 0 {
			return nil, nil
		}
	}
	return m.collect(hits), nil
}

// MatchAny returns the entries whose name contains at least one term.
func (m *MemoryIndex) MatchAny(_ context.Context, terms []string) ([]NameEntry, error) {
	seen := make(map[int]struct{})
	var hits []int
	for _, t := range distinctTerms(terms) {
		for _, pos := range m.postings[t] {
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			hits = append(hits, pos)
		}
	}
	sort.Ints(hits)
	return m.collect(hits), nil
}

// ExpandTerm returns the dictionary terms within maxEdits of term.
func (m *MemoryIndex) ExpandTerm(_ context.Context, term string, maxEdits int) ([]string, error) {
	if !m.frozen {
		return nil, errors.New("memory index not closed")
	}
	n := utf8.RuneCountInString(term)
	var out []string
	for l := n - maxEdits; l <= n+maxEdits; l++ {
		for _, candidate := range m.termsByLen[l] {
			if withinEdits(term, candidate, maxEdits) {
				out = append(out, candidate)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// EntryCount returns the number of name entries.
func (m *MemoryIndex) EntryCount(context.Context) (int, error) {
	return len(m.entries), nil
}

func (m *MemoryIndex) collect(positions []int) []NameEntry {
	if len(positions) == 0 {
		return nil
	}
	out := make([]NameEntry, len(positions))
	for i, pos := range positions {
		out[i] = m.entries[pos]
	}
	return out
}

func intersectSorted(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Save writes a gob snapshot of a closed index to path.
func (m *MemoryIndex) Save(path string) error {
	if !m.frozen {
		return errors.New("memory index not closed")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	b := new(bytes.Buffer)
	snap := memorySnapshot{Format: indexFormat, Entries: m.entries, Postings: m.postings}
	if err := gob.NewEncoder(b).Encode(snap); err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// LoadMemoryIndex reads a snapshot written by Save. A ".bz2" sibling of path
// is preferred when present, and a path ending in ".bz2" is always read through
// bzip2.
func LoadMemoryIndex(path string) (*MemoryIndex, error) {
	r, cleanup, err := openOptionallyBzippedFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}
	defer cleanup()

	var snap memorySnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrIndexUnavailable, path, err)
	}
	if snap.Format != indexFormat {
		return nil, fmt.Errorf("%w: unsupported index format %q", ErrIndexUnavailable, snap.Format)
	}

	m := &MemoryIndex{entries: snap.Entries, postings: snap.Postings}
	if m.postings == nil {
		m.postings = make(map[string][]int)
	}
	return m, m.Close()
}

func openOptionallyBzippedFile(file string) (io.Reader, func() error, error) {
	if strings.HasSuffix(file, ".bz2") {
		fh, err := os.Open(file)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", file, err)
		}
		return bzip2.NewReader(fh), fh.Close, nil
	}

	fh, err := os.Open(file + ".bz2")
	if err != nil {
		fh, err = os.Open(file)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", file, err)
		}
		return fh, fh.Close, nil
	}
	return bzip2.NewReader(fh), fh.Close, nil
}
