// Command tf05 inspects a single Tracab TF05 statistics file from the
// terminal: match summary, rosters, possession figures and heatmaps.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/internal/pitch"
	"github.com/fortuna/pallas/internal/service"
	"github.com/fortuna/pallas/internal/tracab"
)

func main() {
	app := &cli.App{
		Name:  "tf05",
		Usage: "inspect Tracab TF05 top-level statistics files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "path to the TF05 XML file",
				Required: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "summary",
				Usage:  "print the match metadata",
				Action: runSummary,
			},
			{
				Name:   "teams",
				Usage:  "print both teams with their possession figures",
				Action: runTeams,
			},
			{
				Name:  "players",
				Usage: "print a team's roster in document order",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "team", Usage: `team selector: "home", "away" or the exact name`, Required: true},
				},
				Action: runPlayers,
			},
			{
				Name:  "possession",
				Usage: "print possession statistics for a team or player",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "team", Usage: "team selector"},
					&cli.StringFlag{Name: "player", Usage: "player id or exact name"},
				},
				Action: runPossession,
			},
			{
				Name:  "heatmap",
				Usage: "render a heatmap as ASCII art or SVG",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "team", Usage: "team selector"},
					&cli.StringFlag{Name: "player", Usage: "player id or exact name"},
					&cli.StringFlag{Name: "kind", Value: string(tracab.TeamOverall), Usage: "team heatmap kind: overall, defence, midfield or attack"},
					&cli.StringFlag{Name: "side", Usage: "possession side: in or out (selects the possession heatmap)"},
					&cli.StringFlag{Name: "span", Usage: "possession span: overall, first-half or second-half"},
					&cli.StringFlag{Name: "format", Value: "ascii", Usage: "output format: ascii or svg"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: `output file, "-" for stdout`},
				},
				Action: runHeatmap,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type session struct {
	matchID  string
	matches  *service.MatchService
	teams    *service.TeamService
	players  *service.PlayerService
	heatmaps *service.HeatmapService
}

func open(c *cli.Context) (*session, error) {
	doc, err := tracab.Load(c.String("input"))
	if err != nil {
		return nil, err
	}
	lib, err := library.FromDocuments(doc)
	if err != nil {
		return nil, err
	}
	info, err := doc.MatchInfo()
	if err != nil {
		return nil, err
	}
	return &session{
		matchID:  info.MatchID,
		matches:  service.NewMatchService(lib),
		teams:    service.NewTeamService(lib),
		players:  service.NewPlayerService(lib),
		heatmaps: service.NewHeatmapService(lib),
	}, nil
}

func runSummary(c *cli.Context) error {
	s, err := open(c)
	if err != nil {
		return err
	}
	info, err := s.matches.Get(s.matchID)
	if err != nil {
		return err
	}

	fmt.Printf("%s v. %s\n", info.HomeTeamName, info.AwayTeamName)
	fmt.Printf("  source:      %s\n", c.String("input"))
	fmt.Printf("  match id:    %s\n", info.MatchID)
	fmt.Printf("  date:        %s\n", info.Date)
	fmt.Printf("  duration:    %.1f min\n", info.Duration)
	if info.ArenaName != "" {
		fmt.Printf("  arena:       %s\n", info.ArenaName)
	}
	if info.CompetitionName != "" {
		fmt.Printf("  competition: %s\n", info.CompetitionName)
	}
	if info.Season != "" {
		fmt.Printf("  season:      %s\n", info.Season)
	}
	return nil
}

func runTeams(c *cli.Context) error {
	s, err := open(c)
	if err != nil {
		return err
	}
	for _, role := range []string{tracab.RoleHome, tracab.RoleAway} {
		team, err := s.teams.Get(s.matchID, role)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (%d players)\n", team.Role, team.Name, team.PlayerCount)
		fmt.Printf("  possession: %.1f%%, avg %.1fs\n", team.Possession.Percentage, team.Possession.AvgTimePerPossession)
	}
	return nil
}

func runPlayers(c *cli.Context) error {
	s, err := open(c)
	if err != nil {
		return err
	}
	players, err := s.teams.Players(s.matchID, c.String("team"))
	if err != nil {
		return err
	}
	for _, p := range players {
		fmt.Printf("#%-3s %-6s %s\n", p.Jersey, p.ID, p.Name)
	}
	return nil
}

func runPossession(c *cli.Context) error {
	s, err := open(c)
	if err != nil {
		return err
	}

	switch {
	case c.String("player") != "":
		profile, err := s.players.Get(s.matchID, c.String("player"))
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s #%s)\n", profile.Name, profile.Team, profile.Jersey)
		fmt.Printf("  possession: %.1f%%, avg %.1fs\n", profile.Possession.Percentage, profile.Possession.AvgTimePerPossession)
	case c.String("team") != "":
		team, err := s.teams.Get(s.matchID, c.String("team"))
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", team.Name)
		fmt.Printf("  possession: %.1f%%, avg %.1fs\n", team.Possession.Percentage, team.Possession.AvgTimePerPossession)
	default:
		return fmt.Errorf("one of --team or --player is required")
	}
	return nil
}

func runHeatmap(c *cli.Context) error {
	s, err := open(c)
	if err != nil {
		return err
	}

	// --side or --span select the possession-qualified variants.
	possession := c.IsSet("side") || c.IsSet("span")
	side := tracab.Side(stringOr(c, "side", string(tracab.SideIn)))
	span := tracab.Span(stringOr(c, "span", string(tracab.SpanOverall)))

	var view *pitch.View
	switch {
	case c.String("player") != "":
		if possession {
			view, err = s.heatmaps.PlayerPossession(s.matchID, c.String("player"), side, span)
		} else {
			view, err = s.heatmaps.Player(s.matchID, c.String("player"))
		}
	case c.String("team") != "":
		if possession {
			view, err = s.heatmaps.TeamPossession(s.matchID, c.String("team"), side, span)
		} else {
			view, err = s.heatmaps.Team(s.matchID, c.String("team"), tracab.TeamKind(c.String("kind")))
		}
	default:
		return fmt.Errorf("one of --team or --player is required")
	}
	if err != nil {
		return err
	}

	renderer := pitch.NewRenderer()
	var out []byte
	switch c.String("format") {
	case "ascii":
		text, err := renderer.RenderASCII(*view)
		if err != nil {
			return err
		}
		out = []byte(text)
	case "svg":
		out, err = renderer.RenderSVG(*view)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format %q (use ascii or svg)", c.String("format"))
	}

	return writeOutput(c.String("output"), out)
}

func stringOr(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
