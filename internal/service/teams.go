package service

import (
	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/internal/tracab"
)

// TeamService resolves teams within a loaded match.
type TeamService struct {
	lib *library.Library
}

// NewTeamService creates a new team service.
func NewTeamService(lib *library.Library) *TeamService {
	return &TeamService{lib: lib}
}

// TeamView is the API-facing team summary.
type TeamView struct {
	Role        string                 `json:"role"`
	Name        string                 `json:"name"`
	PlayerCount int                    `json:"player_count"`
	Possession  tracab.PossessionStats `json:"possession"`
}

// Get resolves a team by role tag or exact name and returns its summary.
func (s *TeamService) Get(matchID, selector string) (*TeamView, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	team, err := entry.Doc.Team(selector)
	if err != nil {
		return nil, err
	}
	possession, err := team.Possession()
	if err != nil {
		return nil, err
	}
	return &TeamView{
		Role:        team.Role(),
		Name:        team.Name(),
		PlayerCount: len(team.Players()),
		Possession:  possession,
	}, nil
}

// Players returns a team's roster in document order.
func (s *TeamService) Players(matchID, selector string) ([]tracab.PlayerSummary, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	team, err := entry.Doc.Team(selector)
	if err != nil {
		return nil, err
	}
	return team.Players(), nil
}
