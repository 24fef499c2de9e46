package tracab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidString(t *testing.T) {
	raw := strings.Repeat("0123456789", 28) // 280 chars

	grid, err := Decode(raw)
	require.NoError(t, err)

	require.Equal(t, GridRows, grid.Rows())
	require.Equal(t, GridCols, grid.Cols())
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			assert.Equal(t, int(raw[r*GridCols+c]-'0'), grid[r][c], "cell (%d,%d)", r, c)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	raw := strings.Repeat("9876501234", 28)

	grid, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, grid.Flatten())
}

func TestDecodeAllZeros(t *testing.T) {
	grid, err := Decode(strings.Repeat("0", 280))
	require.NoError(t, err)

	assert.Equal(t, 0, grid.Max())
	for _, row := range grid {
		for _, v := range row {
			require.Zero(t, v)
		}
	}
}

func TestDecodeRejectsBadStrings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "too short", raw: strings.Repeat("1", 279)},
		{name: "too long", raw: strings.Repeat("1", 281)},
		{name: "letter", raw: strings.Repeat("1", 279) + "a"},
		{name: "space", raw: " " + strings.Repeat("1", 279)},
		{name: "negative sign", raw: "-" + strings.Repeat("1", 279)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Decode(tt.raw)
			assert.Nil(t, grid)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestDecodeShape(t *testing.T) {
	grid, err := DecodeShape("123456", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Grid{{1, 2, 3}, {4, 5, 6}}, grid)

	_, err = DecodeShape("123456", 0, 6)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestGridMax(t *testing.T) {
	raw := strings.Repeat("0", 139) + "7" + strings.Repeat("0", 140)
	grid, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, 7, grid.Max())
}

func TestTeamRawHeatmapKindValidation(t *testing.T) {
	doc := loadFixture(t)
	team, err := doc.Team("home")
	require.NoError(t, err)

	_, err = team.RawHeatmap(TeamKind("unknown"))

	var kindErr *InvalidKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "unknown", kindErr.Kind)
	assert.Equal(t, []string{"overall", "defence", "midfield", "attack"}, kindErr.Valid)
}

func TestTeamRawHeatmapSelectsByKind(t *testing.T) {
	doc := loadFixture(t)
	team, err := doc.Team("home")
	require.NoError(t, err)

	tests := []struct {
		kind TeamKind
		want string
	}{
		{kind: TeamOverall, want: fixtureTeamHeatmaps["sHeatmap"]},
		{kind: TeamDefence, want: fixtureTeamHeatmaps["sDefenceHeatmap"]},
		{kind: TeamMidfield, want: fixtureTeamHeatmaps["sMidfieldHeatmap"]},
		{kind: TeamAttack, want: fixtureTeamHeatmaps["sAttackHeatmap"]},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			raw, err := team.RawHeatmap(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, raw)
		})
	}
}

func TestPossessionHeatmapValidation(t *testing.T) {
	doc := loadFixture(t)
	team, err := doc.Team("away")
	require.NoError(t, err)

	t.Run("invalid side", func(t *testing.T) {
		_, err := team.PossessionHeatmap(Side("sideways"), SpanOverall)
		var kindErr *InvalidKindError
		require.ErrorAs(t, err, &kindErr)
		assert.Equal(t, []string{"in", "out"}, kindErr.Valid)
	})

	t.Run("invalid span", func(t *testing.T) {
		_, err := team.PossessionHeatmap(SideIn, Span("extra-time"))
		var kindErr *InvalidKindError
		require.ErrorAs(t, err, &kindErr)
		assert.Equal(t, []string{"overall", "first-half", "second-half"}, kindErr.Valid)
	})

	t.Run("valid lookup", func(t *testing.T) {
		raw, err := team.PossessionHeatmap(SideOut, SpanSecondHalf)
		require.NoError(t, err)
		require.Len(t, raw, GridRows*GridCols)
	})
}

func TestPlayerPossessionHeatmap(t *testing.T) {
	doc := loadFixture(t)
	player, _, err := doc.Player("77")
	require.NoError(t, err)

	raw, err := player.PossessionHeatmap(SideIn, SpanFirstHalf)
	require.NoError(t, err)

	grid, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, GridRows, grid.Rows())
}

func TestEndToEndZeroHeatmap(t *testing.T) {
	// Minimal path from document to grid: player id "1" carries an
	// all-zero 280-character heatmap in the fixture.
	doc := loadFixture(t)

	player, teamName, err := doc.Player("1")
	require.NoError(t, err)
	assert.Equal(t, fixtureHomeName, teamName)

	raw, err := player.RawHeatmap()
	require.NoError(t, err)

	grid, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, GridRows, grid.Rows())
	assert.Equal(t, GridCols, grid.Cols())
	assert.Equal(t, 0, grid.Max())
}
