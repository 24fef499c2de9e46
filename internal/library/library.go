// Package library keeps every loaded TF05 document in memory, keyed by
// match id. The library is populated once at startup and never written
// afterwards, so handlers share it without locking.
package library

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fortuna/pallas/internal/tracab"
	"github.com/rs/zerolog"
)

// Entry pairs a parsed document with its metadata.
type Entry struct {
	MatchID string
	Path    string
	Doc     *tracab.Document
	Info    tracab.MatchInfo
}

// Library is an immutable index of loaded matches.
type Library struct {
	byID  map[string]*Entry
	order []string
}

// LoadDir parses every .xml file directly under dir. Files that fail to
// parse or lack required metadata are logged and skipped; a duplicate
// match id keeps the lexicographically later file. At least one loadable
// document is required.
func LoadDir(dir string, log zerolog.Logger) (*Library, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("scanning data dir %s: %w", dir, err)
	}
	sort.Strings(paths)

	lib := &Library{byID: make(map[string]*Entry)}
	for _, path := range paths {
		doc, err := tracab.Load(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable TF05 file")
			continue
		}
		info, err := doc.MatchInfo()
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping TF05 file without match metadata")
			continue
		}
		if _, dup := lib.byID[info.MatchID]; dup {
			log.Warn().Str("match_id", info.MatchID).Str("file", path).Msg("duplicate match id, keeping the later file")
		} else {
			lib.order = append(lib.order, info.MatchID)
		}
		lib.byID[info.MatchID] = &Entry{MatchID: info.MatchID, Path: path, Doc: doc, Info: info}
	}

	if len(lib.byID) == 0 {
		return nil, fmt.Errorf("no loadable TF05 documents in %s", dir)
	}
	return lib, nil
}

// FromDocuments builds a library from already-parsed documents. Used by
// tests and one-shot tooling.
func FromDocuments(docs ...*tracab.Document) (*Library, error) {
	lib := &Library{byID: make(map[string]*Entry)}
	for _, doc := range docs {
		info, err := doc.MatchInfo()
		if err != nil {
			return nil, err
		}
		if _, dup := lib.byID[info.MatchID]; !dup {
			lib.order = append(lib.order, info.MatchID)
		}
		lib.byID[info.MatchID] = &Entry{MatchID: info.MatchID, Path: doc.Source(), Doc: doc, Info: info}
	}
	if len(lib.byID) == 0 {
		return nil, fmt.Errorf("no documents given")
	}
	return lib, nil
}

// Get returns the entry for a match id.
func (l *Library) Get(matchID string) (*Entry, bool) {
	entry, ok := l.byID[matchID]
	return entry, ok
}

// List returns all entries in load order.
func (l *Library) List() []*Entry {
	entries := make([]*Entry, 0, len(l.order))
	for _, id := range l.order {
		entries = append(entries, l.byID[id])
	}
	return entries
}

// Len reports the number of loaded matches.
func (l *Library) Len() int { return len(l.byID) }
