package tracab

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fixtureHomeName = "Alpha FC"
	fixtureAwayName = "Beta United"
)

// hm builds a valid 280-character heatmap string from a single digit so
// each fixture attribute stays distinguishable in assertions.
func hm(digit byte) string {
	return strings.Repeat(string(digit), GridRows*GridCols)
}

var fixtureTeamHeatmaps = map[string]string{
	"sHeatmap":         hm('1'),
	"sDefenceHeatmap":  hm('2'),
	"sMidfieldHeatmap": hm('3'),
	"sAttackHeatmap":   hm('4'),
}

func possessionXML(avgMS string, pct string) string {
	return fmt.Sprintf(`<PossessionData iAvgTimePerPossession=%q fPossessionPercentage=%q>
    <OwnTeamPossession sHeatmap=%q sFirstHalfHeatmap=%q sSecondHalfHeatmap=%q/>
    <OpponentPossession sHeatmap=%q sFirstHalfHeatmap=%q sSecondHalfHeatmap=%q/>
  </PossessionData>`, avgMS, pct, hm('6'), hm('7'), hm('8'), hm('5'), hm('4'), hm('3'))
}

// fixtureXML is a complete, minimal TF05 document. The away roster
// deliberately contains a player literally named "77" while the home
// roster has a player with id "77": the id lookup must win.
func fixtureXML() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<TracabDocument iMatchId="555001" sHomeTeamName=%q iHomeTeamId="101"
  sAwayTeamName=%q iAwayTeamId="202" iTotalGameTime="5700000"
  sArenaName="Stadio Olimpico" iArenaId="31" sCompetitionName="Serie A"
  iCompetitionId="7" dtDate="2023-05-14" sSeason="2022-2023" iSeasonId="22"
  iSportId="1" sSportName="soccer">
  <HomeTeam sTeamName=%q sHeatmap=%q sDefenceHeatmap=%q sMidfieldHeatmap=%q sAttackHeatmap=%q>
    %s
    <Player iPlayerId="1" sPlayerName="Ivo KEEPER" iJersey="1" fAvgPosX="4850.0" fAvgPosY="12.0" sHeatmap=%q>
      %s
    </Player>
    <Player iPlayerId="77" sPlayerName="Luca BARZAGLI" iJersey="8" fAvgPosX="1234.5" fAvgPosY="-321.0" sHeatmap=%q>
      %s
    </Player>
  </HomeTeam>
  <AwayTeam sTeamName=%q sHeatmap=%q sDefenceHeatmap=%q sMidfieldHeatmap=%q sAttackHeatmap=%q>
    %s
    <Player iPlayerId="901" sPlayerName="77" iJersey="10" fAvgPosX="-800.0" fAvgPosY="95.5" sHeatmap=%q>
      %s
    </Player>
    <Player iPlayerId="902" sPlayerName="Abel CROSS" iJersey="7" fAvgPosX="-150.0" fAvgPosY="-2200.0" sHeatmap=%q>
      %s
    </Player>
  </AwayTeam>
</TracabDocument>`,
		fixtureHomeName, fixtureAwayName,
		fixtureHomeName,
		fixtureTeamHeatmaps["sHeatmap"], fixtureTeamHeatmaps["sDefenceHeatmap"],
		fixtureTeamHeatmaps["sMidfieldHeatmap"], fixtureTeamHeatmaps["sAttackHeatmap"],
		possessionXML("24500", "52.5"),
		hm('0'), possessionXML("9100", "52.5"),
		hm('9'), possessionXML("12250", "52.5"),
		fixtureAwayName,
		hm('5'), hm('5'), hm('5'), hm('5'),
		possessionXML("17800", "47.5"),
		hm('2'), possessionXML("8000", "47.5"),
		hm('1'), possessionXML("7500", "47.5"),
	)
}

func loadFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadReader(strings.NewReader(fixtureXML()))
	require.NoError(t, err)
	return doc
}
