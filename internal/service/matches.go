package service

import (
	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/internal/tracab"
)

// MatchService exposes the loaded match catalogue.
type MatchService struct {
	lib *library.Library
}

// NewMatchService creates a new match service.
func NewMatchService(lib *library.Library) *MatchService {
	return &MatchService{lib: lib}
}

// List returns metadata for every loaded match, in load order.
func (s *MatchService) List() []tracab.MatchInfo {
	entries := s.lib.List()
	infos := make([]tracab.MatchInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, entry.Info)
	}
	return infos
}

// Get returns the metadata for one match.
func (s *MatchService) Get(matchID string) (tracab.MatchInfo, error) {
	entry, ok := s.lib.Get(matchID)
	if !ok {
		return tracab.MatchInfo{}, &tracab.NotFoundError{Entity: "match", Selector: matchID}
	}
	return entry.Info, nil
}

func resolveMatch(lib *library.Library, matchID string) (*library.Entry, error) {
	entry, ok := lib.Get(matchID)
	if !ok {
		return nil, &tracab.NotFoundError{Entity: "match", Selector: matchID}
	}
	return entry, nil
}
