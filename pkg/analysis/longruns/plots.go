package longruns

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/racedata/testday-report-go/pkg/model"
	"github.com/racedata/testday-report-go/pkg/render"
)

const (
	traceWidth        = 1400
	traceHeight       = 800
	compoundPanelSize = 500
	rankingWidth      = 1200
	rankingHeight     = 700
)

// PlotLongRunTraces draws one mean-centered lap time trace per long run.
// Returns nil when there are no long run laps.
func PlotLongRunTraces(laps []model.Lap, runs []LongRun, opts ...Option) (*render.Figure, error) {
	render.ApplyTheme()
	teamColors, driverColors := render.BuildColorMaps(laps)

	runLaps := LongRunLaps(laps, runs)
	if len(runLaps) == 0 {
		return nil, nil
	}

	title := fmt.Sprintf("Long Run Lap Time Traces (stints >= %d laps)",
		resolveSettings(opts).minLaps)
	fig, err := traceChart(runLaps, teamColors, driverColors,
		title, drawing.ColorFromHex("333333"), traceWidth, traceHeight)
	if err != nil {
		return nil, err
	}

	teams := lo.Uniq(lo.Map(runLaps,
		func(l LongRunLap, _ int) string { return l.Team }))
	sort.Strings(teams)
	entries := lo.Map(teams, func(team string, _ int) render.LegendEntry {
		color, ok := teamColors[team]
		if !ok {
			color = render.FallbackColor()
		}
		return render.LegendEntry{Label: team, Color: color}
	})
	render.LegendOverlay(fig, entries)
	render.AddWatermark(fig)
	return fig, nil
}

// PlotConsistencyRankings draws the per-team median CoV ranking as
// horizontal bars, most consistent team on top. Returns nil when there
// are no long runs.
func PlotConsistencyRankings(runs []LongRun) (*render.Figure, error) {
	render.ApplyTheme()
	consistency := ComputeConsistencyByTeam(runs)
	if len(consistency) == 0 {
		return nil, nil
	}

	items := lo.Map(consistency, func(c TeamConsistency, _ int) render.HBarItem {
		return render.HBarItem{
			Label:      c.Team,
			Value:      c.MedianCoV * 100,
			Color:      render.TeamColor(c.Team),
			Annotation: fmt.Sprintf("n=%d", c.NumLongRuns),
		}
	})
	fig := render.HBarFigure(
		"Long Run Consistency by Team (lower = more consistent)",
		"Median Coefficient of Variation (%)",
		items, rankingWidth, rankingHeight)
	render.AddWatermark(fig)
	return fig, nil
}

// PlotLongRunsByCompound splits the long run traces into one panel per
// compound. Returns nil when there are no long run laps.
func PlotLongRunsByCompound(laps []model.Lap, runs []LongRun, opts ...Option) (*render.Figure, error) {
	render.ApplyTheme()
	teamColors, driverColors := render.BuildColorMaps(laps)

	runLaps := LongRunLaps(laps, runs)
	if len(runLaps) == 0 {
		return nil, nil
	}

	compounds := lo.Uniq(lo.FilterMap(runLaps, func(l LongRunLap, _ int) (string, bool) {
		return l.Compound, l.Compound != ""
	}))
	if len(compounds) == 0 {
		return nil, nil
	}
	sort.Strings(compounds)

	panels := make([]*render.Figure, 0, len(compounds))
	for _, compound := range compounds {
		compoundLaps := lo.Filter(runLaps,
			func(l LongRunLap, _ int) bool { return l.Compound == compound })
		panel, err := traceChart(compoundLaps, teamColors, driverColors,
			compound, render.CompoundColor(compound),
			traceWidth, compoundPanelSize)
		if err != nil {
			return nil, err
		}
		panels = append(panels, panel)
	}

	suptitle := fmt.Sprintf("Long Run Traces by Compound (stints >= %d laps)",
		resolveSettings(opts).minLaps)
	fig := render.ComposeRows(suptitle, panels)
	render.AddWatermark(fig)
	return fig, nil
}

func traceChart(
	runLaps []LongRunLap,
	teamColors, driverColors map[string]drawing.Color,
	title string,
	titleColor drawing.Color,
	width, height int,
) (*render.Figure, error) {
	// stints in encounter order; runLaps is already sorted per stint
	byStint := lo.GroupBy(runLaps,
		func(l LongRunLap) model.StintKey { return l.Key() })
	orderedKeys := lo.Uniq(lo.Map(runLaps,
		func(l LongRunLap, _ int) model.StintKey { return l.Key() }))

	maxLap := 1
	var series []chart.Series
	for _, key := range orderedKeys {
		group := byStint[key]
		xs := make([]float64, 0, len(group))
		ys := make([]float64, 0, len(group))
		for _, lap := range group {
			xs = append(xs, float64(lap.StintLapNumber))
			ys = append(ys, lap.DeltaFromMean)
			if lap.StintLapNumber > maxLap {
				maxLap = lap.StintLapNumber
			}
		}
		color, ok := driverColors[key.Driver]
		if !ok {
			if color, ok = teamColors[key.Team]; !ok {
				color = render.FallbackColor()
			}
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   render.LineStyle(render.WithAlpha(color, 128), 1.2),
		})
	}
	// zero baseline: a lap exactly on the stint mean
	series = append(series, chart.ContinuousSeries{
		XValues: []float64{1, float64(maxLap)},
		YValues: []float64{0, 0},
		Style:   render.DashedStyle(drawing.ColorFromHex("333333"), 0.8),
	})

	ch := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 14, FontColor: titleColor},
		Background: chart.Style{
			Padding: chart.Box{Top: 34, Left: 24, Right: 24, Bottom: 48},
		},
		XAxis: chart.XAxis{
			Name:  "Lap Within Stint",
			Range: &chart.ContinuousRange{Min: 0.8, Max: float64(maxLap) + 0.2},
		},
		YAxis: chart.YAxis{
			Name: "Delta from Stint Mean (seconds)",
		},
		Series: series,
	}
	return render.RenderXY(ch, width, height)
}

// GenerateAll identifies the long runs once and renders every long run
// chart. Absent charts (no qualifying stints) map to nil.
func GenerateAll(laps []model.Lap, opts ...Option) (map[string]*render.Figure, error) {
	runs := IdentifyLongRuns(laps, opts...)
	figures := map[string]*render.Figure{}
	var err error
	if figures["long_run_traces"], err = PlotLongRunTraces(laps, runs, opts...); err != nil {
		return nil, err
	}
	if figures["consistency_rankings"], err = PlotConsistencyRankings(runs); err != nil {
		return nil, err
	}
	if figures["long_runs_by_compound"], err = PlotLongRunsByCompound(laps, runs, opts...); err != nil {
		return nil, err
	}
	return figures, nil
}
