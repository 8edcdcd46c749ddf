package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/racedata/testday-report-go/pkg/model"
)

func TestTeamColor(t *testing.T) {
	assert.Equal(t, ParseHex("#E8002D"), TeamColor("Ferrari"))
	assert.Equal(t, FallbackColor(), TeamColor("Garage 56"),
		"unmapped teams use the fallback color")
}

func TestBuildColorMaps(t *testing.T) {
	laps := []model.Lap{
		{Team: "Ferrari", Driver: "Leclerc"},
		{Team: "Ferrari", Driver: "Sainz"},
		{Team: "Garage 56", Driver: "Unknown"},
	}
	teamColors, driverColors := BuildColorMaps(laps)

	assert.Equal(t, ParseHex("#E8002D"), teamColors["Ferrari"])
	assert.Equal(t, FallbackColor(), teamColors["Garage 56"])

	// teammates get distinct shades of the team color
	assert.NotEqual(t, driverColors["Leclerc"], driverColors["Sainz"])
	assert.Equal(t, teamColors["Ferrari"], driverColors["Leclerc"],
		"first driver keeps the base team color")
}

func TestCompoundColor(t *testing.T) {
	assert.Equal(t, ParseHex("#DA291C"), CompoundColor("SOFT"))
	assert.Equal(t, ParseHex("#FFD12E"), CompoundColor("medium"),
		"lookup is case-insensitive")
	assert.Equal(t, FallbackColor(), CompoundColor("PROTOTYPE"))
}

func TestLighten(t *testing.T) {
	base := ParseHex("#000000")
	assert.Equal(t, base, Lighten(base, 0))
	white := Lighten(base, 1)
	assert.Equal(t, uint8(255), white.R)
	mid := Lighten(base, 0.5)
	assert.Greater(t, mid.R, base.R)
	assert.Less(t, mid.R, white.R)
}
