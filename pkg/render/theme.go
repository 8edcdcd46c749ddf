// Package render is the plotting layer shared by the analysis packages.
// Line, scatter and violin charts are built on go-chart; bar panels and
// heatmaps are rasterized directly since go-chart has no horizontal bar
// or matrix primitives. Figures are plain RGBA images that the caller
// owns after rendering.
package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/racedata/testday-report-go/pkg/config"
)

// Theme holds the process-wide visual defaults.
type Theme struct {
	Background drawing.Color
	Canvas     drawing.Color
	Grid       drawing.Color
	Text       drawing.Color
	Accent     drawing.Color
	Watermark  string
}

var theme *Theme

// ApplyTheme sets the process-wide visual defaults. It is idempotent;
// the first call wins until ResetTheme.
func ApplyTheme() {
	if theme != nil {
		return
	}
	watermark := config.Watermark
	if watermark == "" {
		watermark = "testday-report"
	}
	theme = &Theme{
		Background: drawing.ColorFromHex("FFFFFF"),
		Canvas:     drawing.ColorFromHex("FAFAFA"),
		Grid:       drawing.ColorFromHex("E0E0E0"),
		Text:       drawing.ColorFromHex("333333"),
		Accent:     drawing.ColorFromHex("2166AC"),
		Watermark:  watermark,
	}
}

// ResetTheme clears the active theme so the next ApplyTheme rebuilds it.
// Used when the watermark configuration changes between runs.
func ResetTheme() {
	theme = nil
}

func activeTheme() *Theme {
	ApplyTheme()
	return theme
}
