package tracab

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Role tags for team resolution.
const (
	RoleHome = "home"
	RoleAway = "away"
)

// xml* structs mirror the TF05 attribute schema one-to-one. They stay
// private; callers only see the typed accessors on Document, Team and
// Player.

type xmlPossessionSplit struct {
	Heatmap           string `xml:"sHeatmap,attr"`
	FirstHalfHeatmap  string `xml:"sFirstHalfHeatmap,attr"`
	SecondHalfHeatmap string `xml:"sSecondHalfHeatmap,attr"`
}

type xmlPossessionData struct {
	AvgTimePerPossession string              `xml:"iAvgTimePerPossession,attr"`
	PossessionPercentage string              `xml:"fPossessionPercentage,attr"`
	OwnTeam              *xmlPossessionSplit `xml:"OwnTeamPossession"`
	Opponent             *xmlPossessionSplit `xml:"OpponentPossession"`
}

type xmlPlayer struct {
	PlayerID   string             `xml:"iPlayerId,attr"`
	PlayerName string             `xml:"sPlayerName,attr"`
	Jersey     string             `xml:"iJersey,attr"`
	AvgPosX    string             `xml:"fAvgPosX,attr"`
	AvgPosY    string             `xml:"fAvgPosY,attr"`
	Heatmap    string             `xml:"sHeatmap,attr"`
	Possession *xmlPossessionData `xml:"PossessionData"`
}

type xmlTeam struct {
	TeamName        string             `xml:"sTeamName,attr"`
	Heatmap         string             `xml:"sHeatmap,attr"`
	DefenceHeatmap  string             `xml:"sDefenceHeatmap,attr"`
	MidfieldHeatmap string             `xml:"sMidfieldHeatmap,attr"`
	AttackHeatmap   string             `xml:"sAttackHeatmap,attr"`
	Possession      *xmlPossessionData `xml:"PossessionData"`
	Players         []xmlPlayer        `xml:"Player"`
}

type xmlDocument struct {
	XMLName         xml.Name `xml:"TracabDocument"`
	MatchID         string   `xml:"iMatchId,attr"`
	HomeTeamName    string   `xml:"sHomeTeamName,attr"`
	HomeTeamID      string   `xml:"iHomeTeamId,attr"`
	AwayTeamName    string   `xml:"sAwayTeamName,attr"`
	AwayTeamID      string   `xml:"iAwayTeamId,attr"`
	TotalGameTime   string   `xml:"iTotalGameTime,attr"`
	ArenaName       string   `xml:"sArenaName,attr"`
	ArenaID         string   `xml:"iArenaId,attr"`
	CompetitionName string   `xml:"sCompetitionName,attr"`
	CompetitionID   string   `xml:"iCompetitionId,attr"`
	Date            string   `xml:"dtDate,attr"`
	Season          string   `xml:"sSeason,attr"`
	SeasonID        string   `xml:"iSeasonId,attr"`
	SportID         string   `xml:"iSportId,attr"`
	SportName       string   `xml:"sSportName,attr"`
	HomeTeam        *xmlTeam `xml:"HomeTeam"`
	AwayTeam        *xmlTeam `xml:"AwayTeam"`
}

// Document is an immutable view over one parsed TF05 export. Nothing is
// written after Load returns and accessors recompute their results on
// every call, so a Document is safe to share across concurrent readers.
type Document struct {
	source string
	root   xmlDocument
}

// Load reads and fully parses a TF05 XML file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	defer f.Close()
	return load(f, path)
}

// LoadReader parses a TF05 document from r.
func LoadReader(r io.Reader) (*Document, error) {
	return load(r, "")
}

func load(r io.Reader, source string) (*Document, error) {
	doc := &Document{source: source}
	if err := xml.NewDecoder(r).Decode(&doc.root); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if doc.root.HomeTeam == nil || doc.root.AwayTeam == nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("document has no HomeTeam/AwayTeam elements")}
	}
	return doc, nil
}

// Source returns the path the document was loaded from, if any.
func (d *Document) Source() string { return d.source }

// MatchInfo carries the top-level match metadata.
type MatchInfo struct {
	MatchID         string  `json:"match_id"`
	HomeTeamName    string  `json:"home_team_name"`
	HomeTeamID      string  `json:"home_team_id"`
	AwayTeamName    string  `json:"away_team_name"`
	AwayTeamID      string  `json:"away_team_id"`
	Duration        float64 `json:"duration_minutes"`
	ArenaName       string  `json:"arena_name,omitempty"`
	ArenaID         string  `json:"arena_id,omitempty"`
	CompetitionName string  `json:"competition_name,omitempty"`
	CompetitionID   string  `json:"competition_id,omitempty"`
	Date            string  `json:"date"`
	Season          string  `json:"season,omitempty"`
	SeasonID        string  `json:"season_id,omitempty"`
	SportID         string  `json:"sport_id,omitempty"`
	SportName       string  `json:"sport_name,omitempty"`
}

// MatchInfo returns the top-level match metadata. The identifying
// attributes and the game time are required; the rest pass through
// as-is, absent ones as empty strings.
func (d *Document) MatchInfo() (MatchInfo, error) {
	required := []struct {
		attr  string
		value string
	}{
		{"iMatchId", d.root.MatchID},
		{"sHomeTeamName", d.root.HomeTeamName},
		{"iHomeTeamId", d.root.HomeTeamID},
		{"sAwayTeamName", d.root.AwayTeamName},
		{"iAwayTeamId", d.root.AwayTeamID},
		{"iTotalGameTime", d.root.TotalGameTime},
		{"dtDate", d.root.Date},
	}
	for _, req := range required {
		if req.value == "" {
			return MatchInfo{}, &SchemaError{Element: "TracabDocument", Field: req.attr}
		}
	}

	gameTimeMS, err := strconv.ParseFloat(d.root.TotalGameTime, 64)
	if err != nil {
		return MatchInfo{}, &SchemaError{Element: "TracabDocument", Field: "iTotalGameTime", Reason: "not a number"}
	}

	return MatchInfo{
		MatchID:         d.root.MatchID,
		HomeTeamName:    d.root.HomeTeamName,
		HomeTeamID:      d.root.HomeTeamID,
		AwayTeamName:    d.root.AwayTeamName,
		AwayTeamID:      d.root.AwayTeamID,
		Duration:        gameTimeMS / 60000, // ms -> minutes
		ArenaName:       d.root.ArenaName,
		ArenaID:         d.root.ArenaID,
		CompetitionName: d.root.CompetitionName,
		CompetitionID:   d.root.CompetitionID,
		Date:            d.root.Date,
		Season:          d.root.Season,
		SeasonID:        d.root.SeasonID,
		SportID:         d.root.SportID,
		SportName:       d.root.SportName,
	}, nil
}

// Team is a resolved team view over the document.
type Team struct {
	role string
	node *xmlTeam
}

// Role reports which side the team plays: RoleHome or RoleAway.
func (t *Team) Role() string { return t.role }

// Name returns the team name as spelled on the team element.
func (t *Team) Name() string { return t.node.TeamName }

func (t *Team) element() string {
	if t.role == RoleHome {
		return "HomeTeam"
	}
	return "AwayTeam"
}

// Team resolves a team by role tag ("home", "away") or by exact team
// name. Role tags win over names and a name is checked against the home
// side before the away side. An unmatched selector is a hard rejection.
func (d *Document) Team(selector string) (*Team, error) {
	switch {
	case selector == RoleHome:
		return &Team{role: RoleHome, node: d.root.HomeTeam}, nil
	case selector == RoleAway:
		return &Team{role: RoleAway, node: d.root.AwayTeam}, nil
	case selector != "" && selector == d.root.HomeTeamName:
		return &Team{role: RoleHome, node: d.root.HomeTeam}, nil
	case selector != "" && selector == d.root.AwayTeamName:
		return &Team{role: RoleAway, node: d.root.AwayTeam}, nil
	}
	return nil, &NotFoundError{
		Entity:   "team",
		Selector: selector,
		Hint:     `must be "home", "away", or the exact team name`,
	}
}

// Player is a resolved player view over the document.
type Player struct {
	node *xmlPlayer
}

// ID returns the player id attribute.
func (p *Player) ID() string { return p.node.PlayerID }

// Name returns the player name as spelled in the document.
func (p *Player) Name() string { return p.node.PlayerName }

// Jersey returns the jersey number attribute.
func (p *Player) Jersey() string { return p.node.Jersey }

// AvgPosition returns the player's average position in the source
// coordinate frame. The TF05 frame is mirrored relative to the pitch
// frame; renderers apply the sign inversion, not this accessor.
func (p *Player) AvgPosition() (x, y float64, err error) {
	if p.node.AvgPosX == "" || p.node.AvgPosY == "" {
		return 0, 0, &SchemaError{Element: "Player", Field: "fAvgPosX/fAvgPosY"}
	}
	x, err = strconv.ParseFloat(p.node.AvgPosX, 64)
	if err != nil {
		return 0, 0, &SchemaError{Element: "Player", Field: "fAvgPosX", Reason: "not a number"}
	}
	y, err = strconv.ParseFloat(p.node.AvgPosY, 64)
	if err != nil {
		return 0, 0, &SchemaError{Element: "Player", Field: "fAvgPosY", Reason: "not a number"}
	}
	return x, y, nil
}

// Player resolves a player by numeric id or exact name and reports the
// owning team's name. The search order is fixed: id within the home
// team, id within the away team, then name within the home team, then
// name within the away team. The first hit wins, which keeps ambiguous
// selectors (a name that looks like the other side's id) deterministic.
func (d *Document) Player(selector string) (*Player, string, error) {
	sides := []*xmlTeam{d.root.HomeTeam, d.root.AwayTeam}
	for _, side := range sides {
		for i := range side.Players {
			if side.Players[i].PlayerID == selector {
				return &Player{node: &side.Players[i]}, side.TeamName, nil
			}
		}
	}
	for _, side := range sides {
		for i := range side.Players {
			if side.Players[i].PlayerName == selector {
				return &Player{node: &side.Players[i]}, side.TeamName, nil
			}
		}
	}
	return nil, "", &NotFoundError{
		Entity:   "player",
		Selector: selector,
		Hint:     "player names must match the document spelling exactly",
	}
}

// PlayerSummary is one roster row.
type PlayerSummary struct {
	ID     string `json:"id"`
	Jersey string `json:"jersey"`
	Name   string `json:"name"`
}

// Players lists the team's roster in document order.
func (t *Team) Players() []PlayerSummary {
	players := make([]PlayerSummary, 0, len(t.node.Players))
	for i := range t.node.Players {
		p := &t.node.Players[i]
		players = append(players, PlayerSummary{
			ID:     p.PlayerID,
			Jersey: p.Jersey,
			Name:   p.PlayerName,
		})
	}
	return players
}

// PossessionStats holds the possession summary for a team or player.
type PossessionStats struct {
	AvgTimePerPossession float64 `json:"avg_time_per_possession"` // seconds
	Percentage           float64 `json:"pct_possession"`
}

// Possession returns the team's possession statistics.
func (t *Team) Possession() (PossessionStats, error) {
	return possessionStats(t.element(), t.node.Possession)
}

// Possession returns the player's possession statistics.
func (p *Player) Possession() (PossessionStats, error) {
	return possessionStats("Player", p.node.Possession)
}

func possessionStats(owner string, data *xmlPossessionData) (PossessionStats, error) {
	if data == nil {
		return PossessionStats{}, &SchemaError{Element: owner, Field: "PossessionData"}
	}
	if data.AvgTimePerPossession == "" {
		return PossessionStats{}, &SchemaError{Element: owner + "/PossessionData", Field: "iAvgTimePerPossession"}
	}
	if data.PossessionPercentage == "" {
		return PossessionStats{}, &SchemaError{Element: owner + "/PossessionData", Field: "fPossessionPercentage"}
	}
	avgMS, err := strconv.ParseFloat(data.AvgTimePerPossession, 64)
	if err != nil {
		return PossessionStats{}, &SchemaError{Element: owner + "/PossessionData", Field: "iAvgTimePerPossession", Reason: "not a number"}
	}
	pct, err := strconv.ParseFloat(data.PossessionPercentage, 64)
	if err != nil {
		return PossessionStats{}, &SchemaError{Element: owner + "/PossessionData", Field: "fPossessionPercentage", Reason: "not a number"}
	}
	return PossessionStats{
		AvgTimePerPossession: avgMS / 1000, // ms -> seconds
		Percentage:           pct,          // already percentage units
	}, nil
}
