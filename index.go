package gazetteer

import (
	"context"
	"errors"
)

// ErrIndexUnavailable is returned (wrapped) when an index cannot be opened,
// is missing, or fails validation.
var ErrIndexUnavailable = errors.New("gazetteer index unavailable")

// NameEntry is one searchable name variant of a gazetteer entity. Record holds
// the raw gazetteer line verbatim; entities are re-parsed from it on demand.
type NameEntry struct {
	Name       string
	Record     string
	GeonameID  int
	Population int64
}

// IndexWriter receives name entries during a build. Close flushes everything
// durably; an index is not readable before Close returns nil. Abort throws
// away a failed build.
type IndexWriter interface {
	Add(ctx context.Context, entries []NameEntry) error
	Close() error
	Abort() error
}

// IndexReader answers term queries against a built index. Terms passed in must
// already be normalized; readers never interpret them as query syntax.
type IndexReader interface {
	// MatchPhrase returns entries whose name contains every term.
	MatchPhrase(ctx context.Context, terms []string) ([]NameEntry, error)
	// MatchAny returns entries whose name contains at least one term.
	MatchAny(ctx context.Context, terms []string) ([]NameEntry, error)
	// ExpandTerm returns dictionary terms within maxEdits of term.
	ExpandTerm(ctx context.Context, term string, maxEdits int) ([]string, error)
	// EntryCount is the number of name entries in the index.
	EntryCount(ctx context.Context) (int, error)
	Close() error
}

// entriesFor emits one entry per distinct non-empty name variant of e: the
// primary name, the ASCII name, then each alternate not already emitted.
func entriesFor(e Entity, record string) []NameEntry {
	names := make([]string, 0, 2+len(e.AlternateNames))
	names = append(names, e.Name, e.ASCIIName)
	names = append(names, e.AlternateNames...)

	seen := make(map[string]struct{}, len(names))
	entries := make([]NameEntry, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, NameEntry{
			Name:       name,
			Record:     record,
			GeonameID:  e.ID,
			Population: e.Population,
		})
	}
	return entries
}
