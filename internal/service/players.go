package service

import (
	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/internal/tracab"
)

// PlayerService resolves players within a loaded match.
type PlayerService struct {
	lib *library.Library
}

// NewPlayerService creates a new player service.
func NewPlayerService(lib *library.Library) *PlayerService {
	return &PlayerService{lib: lib}
}

// PlayerProfile is the API-facing player summary. Average position is
// reported in the source coordinate frame, as stored.
type PlayerProfile struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Jersey     string                 `json:"jersey"`
	Team       string                 `json:"team"`
	AvgPosX    float64                `json:"avg_pos_x"`
	AvgPosY    float64                `json:"avg_pos_y"`
	Possession tracab.PossessionStats `json:"possession"`
}

// Get resolves a player by id or exact name and returns the profile
// plus the owning team's name.
func (s *PlayerService) Get(matchID, selector string) (*PlayerProfile, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	player, teamName, err := entry.Doc.Player(selector)
	if err != nil {
		return nil, err
	}
	x, y, err := player.AvgPosition()
	if err != nil {
		return nil, err
	}
	possession, err := player.Possession()
	if err != nil {
		return nil, err
	}
	return &PlayerProfile{
		ID:         player.ID(),
		Name:       player.Name(),
		Jersey:     player.Jersey(),
		Team:       teamName,
		AvgPosX:    x,
		AvgPosY:    y,
		Possession: possession,
	}, nil
}
