package render

import (
	"image/color"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/racedata/testday-report-go/pkg/config"
	"github.com/racedata/testday-report-go/pkg/model"
)

// ParseHex converts "#rrggbb" (or "rrggbb") into a drawing color.
func ParseHex(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// FallbackColor is used for any team or driver without a mapped color.
func FallbackColor() drawing.Color {
	return ParseHex(config.FallbackColor)
}

// TeamColor looks up the configured color of a team.
func TeamColor(team string) drawing.Color {
	if hex, ok := config.TeamColors[team]; ok {
		return ParseHex(hex)
	}
	return FallbackColor()
}

// BuildColorMaps derives the team and driver color lookups for a lap
// table. Drivers get progressively lighter shades of their team color so
// teammates stay distinguishable in trace charts.
func BuildColorMaps(laps []model.Lap) (
	teamColors map[string]drawing.Color,
	driverColors map[string]drawing.Color,
) {
	teamColors = map[string]drawing.Color{}
	driverColors = map[string]drawing.Color{}
	byTeam := lo.GroupBy(laps, func(l model.Lap) string { return l.Team })
	for team, teamLaps := range byTeam {
		base := TeamColor(team)
		teamColors[team] = base
		drivers := lo.Uniq(lo.Map(teamLaps,
			func(l model.Lap, _ int) string { return l.Driver }))
		sort.Strings(drivers)
		for i, driver := range drivers {
			driverColors[driver] = Lighten(base, 0.12*float64(i))
		}
	}
	return teamColors, driverColors
}

// CompoundColor returns the fixed tire palette color.
func CompoundColor(compound string) drawing.Color {
	switch strings.ToUpper(compound) {
	case "SOFT":
		return ParseHex("#DA291C")
	case "MEDIUM":
		return ParseHex("#FFD12E")
	case "HARD":
		return ParseHex("#B0B0B0")
	case "INTERMEDIATE":
		return ParseHex("#43B02A")
	case "WET":
		return ParseHex("#0067AD")
	default:
		return FallbackColor()
	}
}

// Lighten blends a color toward white. factor 0 keeps the color, 1 is white.
func Lighten(c drawing.Color, factor float64) drawing.Color {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	blend := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*factor)
	}
	return drawing.Color{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}

// WithAlpha returns the color with the given alpha.
func WithAlpha(c drawing.Color, alpha uint8) drawing.Color {
	c.A = alpha
	return c
}

func toRGBA(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
