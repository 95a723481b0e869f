package gazetteer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/andreiashu/gazetteer/schema"
)

// indexFormat is written to the meta table and checked on open.
const indexFormat = "gazetteer-index/1"

// maxBoundTerms keeps a single statement well under SQLite's host parameter
// limit when a fuzzy expansion produces many terms.
const maxBoundTerms = 500

var errWriterClosed = errors.New("index writer already closed")

// SQLiteIndexWriter builds an on-disk index. Rows are written to a temporary
// file that is renamed over the target path by Close, so a reader never opens
// a partially built index.
type SQLiteIndexWriter struct {
	db      *sql.DB
	path    string
	tmpPath string
	entries int
	closed  bool
}

// CreateSQLiteIndex starts a new index at path. An existing index at path is
// only replaced once Close succeeds.
func CreateSQLiteIndex(path string) (*SQLiteIndexWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	tmpPath := path + ".building"
	if err := os.Remove(tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("removing stale build file: %w", err)
	}

	// Durability comes from the final rename, not the journal.
	db, err := sql.Open("sqlite", tmpPath+"?_pragma=journal_mode(OFF)&_pragma=synchronous(OFF)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema.Schema); err != nil {
		db.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteIndexWriter{db: db, path: path, tmpPath: tmpPath}, nil
}

// Add writes one batch of entries in a single transaction.
func (w *SQLiteIndexWriter) Add(ctx context.Context, entries []NameEntry) error {
	if w.closed {
		return errWriterClosed
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	insertEntry, err := tx.PrepareContext(ctx,
		"INSERT INTO entries (name, geoname_id, population, record) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing entry insert: %w", err)
	}
	defer insertEntry.Close()

	insertPosting, err := tx.PrepareContext(ctx, "INSERT INTO postings (term, entry_id) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing posting insert: %w", err)
	}
	defer insertPosting.Close()

	insertTerm, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO terms (term, term_len) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing term insert: %w", err)
	}
	defer insertTerm.Close()

	for _, e := range entries {
		res, err := insertEntry.ExecContext(ctx, e.Name, e.GeonameID, e.Population, e.Record)
		if err != nil {
			return fmt.Errorf("inserting entry %q: %w", e.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading entry id: %w", err)
		}
		for _, term := range distinctTerms(normalizeTerms(e.Name)) {
			if _, err := insertPosting.ExecContext(ctx, term, id); err != nil {
				return fmt.Errorf("inserting posting %q: %w", term, err)
			}
			if _, err := insertTerm.ExecContext(ctx, term, utf8.RuneCountInString(term)); err != nil {
				return fmt.Errorf("inserting term %q: %w", term, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}
	w.entries += len(entries)
	return nil
}

// Close builds the secondary indexes, records the index metadata and moves the
// finished file into place.
func (w *SQLiteIndexWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.finish(); err != nil {
		w.db.Close()
		os.Remove(w.tmpPath)
		return err
	}
	if err := w.db.Close(); err != nil {
		os.Remove(w.tmpPath)
		return fmt.Errorf("closing database: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath)
		return fmt.Errorf("moving index into place: %w", err)
	}
	return nil
}

func (w *SQLiteIndexWriter) finish() error {
	if _, err := w.db.Exec(schema.Indexes); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}
	meta := map[string]string{
		"format":   indexFormat,
		"entries":  strconv.Itoa(w.entries),
		"built_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := w.db.Exec("INSERT INTO meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("writing index metadata: %w", err)
		}
	}
	return nil
}

// Abort discards everything written so far. The previous index at the target
// path, if any, is left untouched.
func (w *SQLiteIndexWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.db.Close()
	if err := os.Remove(w.tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing build file: %w", err)
	}
	return nil
}

// SQLiteIndex is a read-only view of an index built by SQLiteIndexWriter.
// Safe for concurrent use.
type SQLiteIndex struct {
	db   *sql.DB
	path string
}

// OpenSQLiteIndex opens an existing index. A missing file or one that was not
// written by SQLiteIndexWriter yields an error wrapping ErrIndexUnavailable.
func OpenSQLiteIndex(path string) (*SQLiteIndex, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", ErrIndexUnavailable, err)
	}

	var format string
	if err := db.QueryRow("SELECT value FROM meta WHERE key = 'format'").Scan(&format); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: reading index metadata: %w", ErrIndexUnavailable, err)
	}
	if format != indexFormat {
		db.Close()
		return nil, fmt.Errorf("%w: unsupported index format %q", ErrIndexUnavailable, format)
	}

	return &SQLiteIndex{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteIndex) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteIndex) Close() error {
	return s.db.Close()
}

// MatchPhrase returns the entries whose name contains every term.
func (s *SQLiteIndex) MatchPhrase(ctx context.Context, terms []string) ([]NameEntry, error) {
	terms = distinctTerms(terms)
	if len(terms) == 0 {
		return nil, nil
	}

	parts := make([]string, len(terms))
	args := make([]any, len(terms))
	for i, t := range terms {
		parts[i] = "SELECT entry_id FROM postings WHERE term = ?"
		args[i] = t
	}
	query := "SELECT id, name, record, geoname_id, population FROM entries WHERE id IN (" +
		strings.Join(parts, " INTERSECT ") + ") ORDER BY id"
	entries, _, err := s.queryEntries(ctx, query, args)
	return entries, err
}

// MatchAny returns the entries whose name contains at least one term.
func (s *SQLiteIndex) MatchAny(ctx context.Context, terms []string) ([]NameEntry, error) {
	terms = distinctTerms(terms)
	if len(terms) == 0 {
		return nil, nil
	}

	var out []NameEntry
	seen := make(map[int64]struct{})
	for start := 0; start < len(terms); start += maxBoundTerms {
		batch := terms[start:min(start+maxBoundTerms, len(terms))]
		args := make([]any, len(batch))
		for i, t := range batch {
			args[i] = t
		}
		query := "SELECT id, name, record, geoname_id, population FROM entries WHERE id IN " +
			"(SELECT entry_id FROM postings WHERE term IN (" + placeholders(len(batch)) + ")) ORDER BY id"
		entries, ids, err := s.queryEntries(ctx, query, args)
		if err != nil {
			return nil, err
		}
		for i, e := range entries {
			if _, ok := seen[ids[i]]; ok {
				continue
			}
			seen[ids[i]] = struct{}{}
			out = append(out, e)
		}
	}
	return out, nil
}

// ExpandTerm returns the dictionary terms within maxEdits of term, in
// lexical order.
func (s *SQLiteIndex) ExpandTerm(ctx context.Context, term string, maxEdits int) ([]string, error) {
	n := utf8.RuneCountInString(term)
	rows, err := s.db.QueryContext(ctx,
		"SELECT term FROM terms WHERE term_len BETWEEN ? AND ? ORDER BY term", n-maxEdits, n+maxEdits)
	if err != nil {
		return nil, fmt.Errorf("querying terms: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var candidate string
		if err := rows.Scan(&candidate); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		if withinEdits(term, candidate, maxEdits) {
			out = append(out, candidate)
		}
	}
	return out, rows.Err()
}

// EntryCount returns the number of name entries.
func (s *SQLiteIndex) EntryCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

func (s *SQLiteIndex) queryEntries(ctx context.Context, query string, args []any) ([]NameEntry, []int64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []NameEntry
	var ids []int64
	for rows.Next() {
		var id int64
		var e NameEntry
		if err := rows.Scan(&id, &e.Name, &e.Record, &e.GeonameID, &e.Population); err != nil {
			return nil, nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, ids, nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
