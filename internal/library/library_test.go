package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/pallas/internal/tracab"
)

func matchXML(matchID, home, away string) string {
	hm := strings.Repeat("0", tracab.GridRows*tracab.GridCols)
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<TracabDocument iMatchId=%q sHomeTeamName=%q iHomeTeamId="101"
  sAwayTeamName=%q iAwayTeamId="202" iTotalGameTime="5400000" dtDate="2023-05-14">
  <HomeTeam sTeamName=%q sHeatmap=%q/>
  <AwayTeam sTeamName=%q sHeatmap=%q/>
</TracabDocument>`, matchID, home, away, home, hm, away, hm)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.xml", matchXML("2002", "Gamma SC", "Delta FK"))
	writeFile(t, dir, "a.xml", matchXML("1001", "Alpha FC", "Beta United"))
	writeFile(t, dir, "notes.txt", "not a match file")

	lib, err := LoadDir(dir, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())

	// Load order follows the sorted file names.
	entries := lib.List()
	assert.Equal(t, "1001", entries[0].MatchID)
	assert.Equal(t, "2002", entries[1].MatchID)

	entry, ok := lib.Get("1001")
	require.True(t, ok)
	assert.Equal(t, "Alpha FC", entry.Info.HomeTeamName)
	assert.Equal(t, filepath.Join(dir, "a.xml"), entry.Path)

	_, ok = lib.Get("3003")
	assert.False(t, ok)
}

func TestLoadDirSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.xml", matchXML("1001", "Alpha FC", "Beta United"))
	writeFile(t, dir, "broken.xml", "this is not xml at all <<<")
	writeFile(t, dir, "no-meta.xml", `<TracabDocument><HomeTeam/><AwayTeam/></TracabDocument>`)

	lib, err := LoadDir(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())
}

func TestLoadDirDuplicateKeepsLaterFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first.xml", matchXML("1001", "Alpha FC", "Beta United"))
	writeFile(t, dir, "second.xml", matchXML("1001", "Alpha FC Reserves", "Beta United"))

	lib, err := LoadDir(dir, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 1, lib.Len())

	entry, ok := lib.Get("1001")
	require.True(t, ok)
	assert.Equal(t, "Alpha FC Reserves", entry.Info.HomeTeamName)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir(), zerolog.Nop())
	require.Error(t, err)
}

func TestFromDocuments(t *testing.T) {
	doc, err := tracab.LoadReader(strings.NewReader(matchXML("1001", "Alpha FC", "Beta United")))
	require.NoError(t, err)

	lib, err := FromDocuments(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())

	_, err = FromDocuments()
	require.Error(t, err)
}
