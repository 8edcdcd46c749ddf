package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "laps.json", `[
		{"team":"Ferrari","driver":"Leclerc","day":1,"stint":1,
		 "lapNumber":1,"compound":"SOFT","lapTimeSeconds":88.123},
		{"team":"Ferrari","driver":"Leclerc","day":1,"stint":1,
		 "lapNumber":2,"compound":"SOFT","lapTimeSeconds":null}
	]`)

	laps, err := LoadJSON(path)
	require.NoError(t, err)
	require.Len(t, laps, 2)
	assert.Equal(t, "Ferrari", laps[0].Team)
	assert.InDelta(t, 88.123, laps[0].LapTimeSeconds, 1e-9)
	assert.True(t, math.IsNaN(laps[1].LapTimeSeconds),
		"null lap time should load as NaN")
}

func TestLoadJSON_MalformedRecord(t *testing.T) {
	path := writeFile(t, "laps.json",
		`[{"team":"Ferrari","driver":"Leclerc","day":"one","stint":1,
		   "lapNumber":1,"compound":"SOFT","lapTimeSeconds":88.0}]`)

	_, err := LoadJSON(path)
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "laps.csv",
		"Team,Driver,Day,Stint,LapNumber,Compound,LapTimeSeconds\n"+
			"McLaren,Norris,1,1,1,MEDIUM,89.532\n"+
			"McLaren,Norris,1,1,2,MEDIUM,\n")

	laps, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, laps, 2)
	assert.Equal(t, "Norris", laps[0].Driver)
	assert.InDelta(t, 89.532, laps[0].LapTimeSeconds, 1e-9)
	assert.True(t, math.IsNaN(laps[1].LapTimeSeconds),
		"empty lap time cell should load as NaN")
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	path := writeFile(t, "laps.csv",
		"Team,Driver,Day\nMcLaren,Norris,1\n")

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "missing column")
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	_, err := LoadFile("laps.xlsx")
	assert.Error(t, err)
}
