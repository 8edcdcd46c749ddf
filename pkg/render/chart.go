package render

import (
	"bytes"
	"fmt"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PointStyle returns a style that renders points only (no connecting line).
func PointStyle(col drawing.Color, dotWidth float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    dotWidth,
		DotColor:    col,
	}
}

// LineStyle returns a plain stroked line style.
func LineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: width,
		StrokeColor: col,
	}
}

// DashedStyle returns a dashed line style, used for zero baselines.
func DashedStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth:     width,
		StrokeColor:     col,
		StrokeDashArray: []float64{4.0, 3.0},
	}
}

// CategoryTicks builds x-axis ticks placing each label at its index.
func CategoryTicks(labels []string) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(labels))
	for i, l := range labels {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	return ticks
}

// RenderXY renders a go-chart XY chart into a themed figure of the given
// pixel size. The chart background and canvas defaults come from the
// theme unless the caller set them.
func RenderXY(ch chart.Chart, width, height int) (*Figure, error) {
	t := activeTheme()
	ch.Width = width
	ch.Height = height
	if ch.Background.FillColor.IsZero() {
		ch.Background.FillColor = t.Background
	}
	if ch.Canvas.FillColor.IsZero() {
		ch.Canvas.FillColor = t.Canvas
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return FromImage(img), nil
}
