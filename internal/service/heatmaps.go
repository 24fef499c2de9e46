package service

import (
	"fmt"

	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/internal/pitch"
	"github.com/fortuna/pallas/internal/tracab"
)

// HeatmapService decodes heatmap strings and dresses them up as
// renderable views: title, subtitle and endnote composition lives here,
// the document layer stays label-free.
type HeatmapService struct {
	lib *library.Library
}

// NewHeatmapService creates a new heatmap service.
func NewHeatmapService(lib *library.Library) *HeatmapService {
	return &HeatmapService{lib: lib}
}

func endnote(info tracab.MatchInfo) string {
	return fmt.Sprintf("%s v. %s, %s", info.HomeTeamName, info.AwayTeamName, info.Date)
}

// Team builds the view for one situational team heatmap.
func (s *HeatmapService) Team(matchID, selector string, kind tracab.TeamKind) (*pitch.View, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	team, err := entry.Doc.Team(selector)
	if err != nil {
		return nil, err
	}
	raw, err := team.RawHeatmap(kind)
	if err != nil {
		return nil, err
	}
	grid, err := tracab.Decode(raw)
	if err != nil {
		return nil, err
	}
	return &pitch.View{
		Grid:    grid,
		Title:   fmt.Sprintf("%s - %s", team.Name(), kind),
		Endnote: endnote(entry.Info),
		Legend:  true,
	}, nil
}

// TeamPossession builds the view for one possession-qualified team
// heatmap. The whole-game variant carries the possession summary as a
// subtitle; the half splits have no per-half statistics to show.
func (s *HeatmapService) TeamPossession(matchID, selector string, side tracab.Side, span tracab.Span) (*pitch.View, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	team, err := entry.Doc.Team(selector)
	if err != nil {
		return nil, err
	}
	raw, err := team.PossessionHeatmap(side, span)
	if err != nil {
		return nil, err
	}
	grid, err := tracab.Decode(raw)
	if err != nil {
		return nil, err
	}

	view := &pitch.View{
		Grid:    grid,
		Title:   fmt.Sprintf("%s - %s - %s", team.Name(), side.Label(), span),
		Endnote: endnote(entry.Info),
		Legend:  true,
	}
	if span == tracab.SpanOverall {
		stats, err := team.Possession()
		if err != nil {
			return nil, err
		}
		view.Subtitle = fmt.Sprintf("Possession: %.0f%% Avg. time/possession: %.1fs", stats.Percentage, stats.AvgTimePerPossession)
	}
	return view, nil
}

// Player builds the view for a player's whole-game heatmap, with the
// average position marked.
func (s *HeatmapService) Player(matchID, selector string) (*pitch.View, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	player, teamName, err := entry.Doc.Player(selector)
	if err != nil {
		return nil, err
	}
	raw, err := player.RawHeatmap()
	if err != nil {
		return nil, err
	}
	grid, err := tracab.Decode(raw)
	if err != nil {
		return nil, err
	}
	x, y, err := player.AvgPosition()
	if err != nil {
		return nil, err
	}
	return &pitch.View{
		Grid:    grid,
		Title:   fmt.Sprintf("%s - %s #%s - overall", player.Name(), teamName, player.Jersey()),
		Endnote: endnote(entry.Info),
		Marker:  &pitch.Marker{X: x, Y: y},
		Legend:  true,
	}, nil
}

// PlayerPossession builds the view for one possession-qualified player
// heatmap. No marker: the average position covers the whole game, not
// the possession slice.
func (s *HeatmapService) PlayerPossession(matchID, selector string, side tracab.Side, span tracab.Span) (*pitch.View, error) {
	entry, err := resolveMatch(s.lib, matchID)
	if err != nil {
		return nil, err
	}
	player, teamName, err := entry.Doc.Player(selector)
	if err != nil {
		return nil, err
	}
	raw, err := player.PossessionHeatmap(side, span)
	if err != nil {
		return nil, err
	}
	grid, err := tracab.Decode(raw)
	if err != nil {
		return nil, err
	}
	return &pitch.View{
		Grid:    grid,
		Title:   fmt.Sprintf("%s - %s #%s - %s - %s", player.Name(), teamName, player.Jersey(), side.Label(), span),
		Endnote: endnote(entry.Info),
		Legend:  true,
	}, nil
}
