package distributions

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/racedata/testday-report-go/pkg/model"
	"github.com/racedata/testday-report-go/pkg/render"
)

const (
	panelWidth        = 1400
	violinHeight      = 800
	compoundPanelSize = 500
	scatterWidth      = 1200
	scatterHeight     = 700
)

// PlotTeamViolins draws one lap time violin per team, ordered ascending
// by median lap time. Returns nil when no team has a valid lap.
func PlotTeamViolins(laps []model.Lap) (*render.Figure, error) {
	render.ApplyTheme()
	teamColors, _ := render.BuildColorMaps(laps)

	fig, err := violinPanel(laps, teamColors,
		"Lap Time Distributions by Team", drawing.ColorFromHex("333333"),
		panelWidth, violinHeight)
	if err != nil || fig == nil {
		return nil, err
	}
	render.AddWatermark(fig)
	return fig, nil
}

// PlotCompoundDistributions draws one violin panel per compound present
// in the data, preferred race compounds first. Panel count drives the
// total figure height. Returns nil when no compound has valid laps.
func PlotCompoundDistributions(laps []model.Lap) (*render.Figure, error) {
	render.ApplyTheme()
	teamColors, _ := render.BuildColorMaps(laps)

	compounds := compoundsInOrder(laps)
	if len(compounds) == 0 {
		return nil, nil
	}

	panels := make([]*render.Figure, 0, len(compounds))
	for _, compound := range compounds {
		compoundLaps := lo.Filter(laps,
			func(l model.Lap, _ int) bool { return l.Compound == compound })
		panel, err := violinPanel(compoundLaps, teamColors,
			fmt.Sprintf("%s Compound", compound), render.CompoundColor(compound),
			panelWidth, compoundPanelSize)
		if err != nil {
			return nil, err
		}
		if panel != nil {
			panels = append(panels, panel)
		}
	}
	if len(panels) == 0 {
		return nil, nil
	}
	fig := render.ComposeRows("Lap Time Distributions by Compound", panels)
	render.AddWatermark(fig)
	return fig, nil
}

func violinPanel(
	laps []model.Lap,
	teamColors map[string]drawing.Color,
	title string,
	titleColor drawing.Color,
	width, height int,
) (*render.Figure, error) {
	teamStats := ComputeTeamStats(laps)
	if len(teamStats) == 0 {
		return nil, nil
	}
	valid := model.Valid(laps)
	byTeam := lo.GroupBy(valid, func(l model.Lap) string { return l.Team })

	teams := make([]string, 0, len(teamStats))
	var series []chart.Series
	for i, ts := range teamStats {
		teams = append(teams, ts.Team)
		color, ok := teamColors[ts.Team]
		if !ok {
			color = render.FallbackColor()
		}
		series = append(series,
			render.ViolinSeries(model.Times(byTeam[ts.Team]), float64(i), color)...)
	}

	ch := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 14, FontColor: titleColor},
		Background: chart.Style{
			Padding: chart.Box{Top: 34, Left: 24, Right: 24, Bottom: 90},
		},
		XAxis: chart.XAxis{
			Ticks:     render.CategoryTicks(teams),
			TickStyle: chart.Style{TextRotationDegrees: 45.0},
			Range: &chart.ContinuousRange{
				Min: -0.6,
				Max: float64(len(teams)) - 0.4,
			},
		},
		YAxis: chart.YAxis{
			Name: "Lap Time (seconds)",
		},
		Series: series,
	}
	return render.RenderXY(ch, width, height)
}

// PlotHeadlineVsMedian draws headline gap vs median pace per team, point
// size scaled by lap count. The y axis is inverted so quicker teams sit
// higher. Returns nil when no team has valid laps.
func PlotHeadlineVsMedian(laps []model.Lap) (*render.Figure, error) {
	render.ApplyTheme()
	teamColors, _ := render.BuildColorMaps(laps)
	teamStats := ComputeTeamStats(laps)
	if len(teamStats) == 0 {
		return nil, nil
	}

	var (
		series                 []chart.Series
		annotations            []chart.Value2
		minX, maxX, minY, maxY = math.MaxFloat64, -math.MaxFloat64,
			math.MaxFloat64, -math.MaxFloat64
	)
	for _, ts := range teamStats {
		color, ok := teamColors[ts.Team]
		if !ok {
			color = render.FallbackColor()
		}
		dotWidth := math.Max(4, math.Sqrt(float64(ts.LapCount))*0.9)
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{ts.HeadlineGap},
			YValues: []float64{ts.MedianTime},
			Style:   render.PointStyle(color, dotWidth),
		})
		annotations = append(annotations, chart.Value2{
			XValue: ts.HeadlineGap,
			YValue: ts.MedianTime,
			Label:  ts.Team,
		})
		minX = math.Min(minX, ts.HeadlineGap)
		maxX = math.Max(maxX, ts.HeadlineGap)
		minY = math.Min(minY, ts.MedianTime)
		maxY = math.Max(maxY, ts.MedianTime)
	}
	series = append(series, chart.AnnotationSeries{
		Annotations: annotations,
		Style: chart.Style{
			FontSize:    9,
			FontColor:   drawing.ColorFromHex("333333"),
			FillColor:   drawing.ColorTransparent,
			StrokeColor: drawing.ColorTransparent,
		},
	})

	padX := axisPad(minX, maxX)
	padY := axisPad(minY, maxY)
	ch := chart.Chart{
		Title:      "Program Focus: Headline Time vs Typical Running Pace",
		TitleStyle: chart.Style{FontSize: 14, FontColor: drawing.ColorFromHex("333333")},
		Background: chart.Style{
			Padding: chart.Box{Top: 34, Left: 24, Right: 60, Bottom: 48},
		},
		XAxis: chart.XAxis{
			Name:  "Gap: Median to Fastest Lap (seconds)",
			Range: &chart.ContinuousRange{Min: minX - padX, Max: maxX + padX},
		},
		YAxis: chart.YAxis{
			Name: "Median Lap Time (seconds)",
			Range: &chart.ContinuousRange{
				Min:        minY - padY,
				Max:        maxY + padY,
				Descending: true,
			},
		},
		Series: series,
	}
	fig, err := render.RenderXY(ch, scatterWidth, scatterHeight)
	if err != nil {
		return nil, err
	}
	render.AddWatermark(fig)
	return fig, nil
}

func axisPad(low, high float64) float64 {
	pad := (high - low) * 0.08
	if pad <= 0 {
		pad = 0.5
	}
	return pad
}

// GenerateAll renders every distribution chart. Absent charts (no data)
// map to nil; renderer errors abort the batch.
func GenerateAll(laps []model.Lap) (map[string]*render.Figure, error) {
	figures := map[string]*render.Figure{}
	var err error
	if figures["team_violins"], err = PlotTeamViolins(laps); err != nil {
		return nil, err
	}
	if figures["compound_distributions"], err = PlotCompoundDistributions(laps); err != nil {
		return nil, err
	}
	if figures["headline_vs_median"], err = PlotHeadlineVsMedian(laps); err != nil {
		return nil, err
	}
	return figures, nil
}
