package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/racedata/testday-report-go/pkg/analysis/stats"
)

const (
	violinHalfWidth = 0.35
	violinGridSize  = 41
)

// ViolinSeries builds the series for one violin at x position pos: a
// mirrored gaussian density outline plus a median marker. The outline is
// a closed polyline, so it renders with any XY chart.
func ViolinSeries(values []float64, pos float64, col drawing.Color) []chart.Series {
	if len(values) == 0 {
		return nil
	}
	grid, density := kde(values)

	// left edge bottom-up, right edge top-down, then close the outline
	xs := make([]float64, 0, 2*len(grid)+1)
	ys := make([]float64, 0, 2*len(grid)+1)
	for i := range grid {
		xs = append(xs, pos-density[i]*violinHalfWidth)
		ys = append(ys, grid[i])
	}
	for i := len(grid) - 1; i >= 0; i-- {
		xs = append(xs, pos+density[i]*violinHalfWidth)
		ys = append(ys, grid[i])
	}
	xs = append(xs, xs[0])
	ys = append(ys, ys[0])

	median := stats.Median(values)
	return []chart.Series{
		chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   LineStyle(WithAlpha(col, 180), 1.4),
		},
		chart.ContinuousSeries{
			XValues: []float64{pos - 0.18, pos + 0.18},
			YValues: []float64{median, median},
			Style:   LineStyle(drawing.ColorFromHex("333333"), 2.0),
		},
	}
}

// kde evaluates a gaussian kernel density estimate on a fixed grid over
// the data range, normalized so the peak density is 1.
func kde(values []float64) (grid, density []float64) {
	n := float64(len(values))
	std := stats.SampleStd(values)
	// Silverman's rule; fall back to a fixed bandwidth for degenerate data
	h := 1.06 * std * math.Pow(n, -0.2)
	if math.IsNaN(h) || h <= 0 {
		h = 0.25
	}
	lo := stats.Min(values) - h
	hi := stats.Max(values) + h
	if hi <= lo {
		hi = lo + 1
	}
	step := (hi - lo) / float64(violinGridSize-1)

	grid = make([]float64, violinGridSize)
	density = make([]float64, violinGridSize)
	maxDensity := 0.0
	for i := range grid {
		y := lo + float64(i)*step
		grid[i] = y
		d := 0.0
		for _, v := range values {
			z := (y - v) / h
			d += math.Exp(-0.5 * z * z)
		}
		density[i] = d
		if d > maxDensity {
			maxDensity = d
		}
	}
	if maxDensity > 0 {
		for i := range density {
			density[i] /= maxDensity
		}
	}
	return grid, density
}
