package reliability

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/racedata/testday-report-go/pkg/model"
	"github.com/racedata/testday-report-go/pkg/render"
)

const (
	heatmapWidth  = 1200
	heatmapHeight = 800
	barWidth      = 1200
	barHeight     = 700
	stintPanelW   = 700
	stintPanelH   = 600
)

// PlotLapsHeatmap draws the laps-per-team-per-day grid, busiest teams at
// the bottom. Returns nil when the table is empty.
func PlotLapsHeatmap(laps []model.Lap) (*render.Figure, error) {
	render.ApplyTheme()
	grid := ComputeLapsPerTeamDay(laps)
	if len(grid.Teams) == 0 || len(grid.Days) == 0 {
		return nil, nil
	}

	// rows ascending by total laps, lightest program on top
	order := make([]int, len(grid.Teams))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return grid.RowTotal(order[a]) < grid.RowTotal(order[b])
	})

	rowLabels := make([]string, len(order))
	cells := make([][]int, len(order))
	for i, idx := range order {
		rowLabels[i] = grid.Teams[idx]
		cells[i] = grid.Counts[idx]
	}
	colLabels := lo.Map(grid.Days, func(d int, _ int) string {
		return fmt.Sprintf("Day %d", d)
	})

	fig := render.HeatmapFigure(
		"Programme Maturity: Laps Completed Per Day",
		rowLabels, colLabels, cells, heatmapWidth, heatmapHeight)
	render.AddWatermark(fig)
	return fig, nil
}

// PlotTotalLapsBar draws total laps per team, highest on top with value
// labels. Returns nil when the table is empty.
func PlotTotalLapsBar(laps []model.Lap) (*render.Figure, error) {
	render.ApplyTheme()
	totals := ComputeTotalLaps(laps)
	if len(totals) == 0 {
		return nil, nil
	}

	items := lo.Map(totals, func(t TeamLaps, _ int) render.HBarItem {
		return render.HBarItem{
			Label:      t.Team,
			Value:      float64(t.TotalLaps),
			Color:      render.TeamColor(t.Team),
			Annotation: fmt.Sprintf("%d", t.TotalLaps),
		}
	})
	fig := render.HBarFigure(
		"Total Laps Completed Across All Test Days",
		"Total Laps", items, barWidth, barHeight)
	render.AddWatermark(fig)
	return fig, nil
}

// PlotStintLengths draws two panels side by side: longest single stint
// and total stint count per team, leaders on top. Returns nil when the
// table is empty.
func PlotStintLengths(laps []model.Lap) (*render.Figure, error) {
	render.ApplyTheme()
	summary := ComputeStintSummary(laps)
	if len(summary) == 0 {
		return nil, nil
	}

	byMax := make([]StintSummary, len(summary))
	copy(byMax, summary)
	sort.SliceStable(byMax, func(i, j int) bool {
		return byMax[i].MaxStintLength > byMax[j].MaxStintLength
	})
	longest := render.HBarFigure("Longest Single Stint", "Laps",
		lo.Map(byMax, func(s StintSummary, _ int) render.HBarItem {
			return render.HBarItem{
				Label: s.Team,
				Value: float64(s.MaxStintLength),
				Color: render.TeamColor(s.Team),
			}
		}), stintPanelW, stintPanelH)

	counts := render.HBarFigure("Total Stint Count", "Stints",
		lo.Map(summary, func(s StintSummary, _ int) render.HBarItem {
			return render.HBarItem{
				Label: s.Team,
				Value: float64(s.TotalStints),
				Color: render.TeamColor(s.Team),
			}
		}), stintPanelW, stintPanelH)

	fig := render.ComposeCols([]*render.Figure{longest, counts})
	render.AddWatermark(fig)
	return fig, nil
}

// GenerateAll renders every reliability chart. Absent charts map to nil.
func GenerateAll(laps []model.Lap) (map[string]*render.Figure, error) {
	figures := map[string]*render.Figure{}
	var err error
	if figures["laps_heatmap"], err = PlotLapsHeatmap(laps); err != nil {
		return nil, err
	}
	if figures["total_laps"], err = PlotTotalLapsBar(laps); err != nil {
		return nil, err
	}
	if figures["stint_lengths"], err = PlotStintLengths(laps); err != nil {
		return nil, err
	}
	return figures, nil
}
