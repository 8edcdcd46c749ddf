// Package distributions analyzes lap time distributions per team and
// compound: who is quick over one lap, who is quick on average, and how
// far apart those two are (the headline gap).
package distributions

import (
	"sort"

	"github.com/samber/lo"

	"github.com/racedata/testday-report-go/pkg/analysis/stats"
	"github.com/racedata/testday-report-go/pkg/model"
)

// TeamStat is the per-team lap time summary.
type TeamStat struct {
	Team        string
	MinTime     float64
	MedianTime  float64
	MeanTime    float64
	StdTime     float64
	LapCount    int
	HeadlineGap float64 // median - min; small gap = sustained pace testing
}

// ComputeTeamStats aggregates valid lap times per team, sorted ascending
// by median. Teams without a single valid lap do not appear.
func ComputeTeamStats(laps []model.Lap) []TeamStat {
	valid := model.Valid(laps)
	byTeam := lo.GroupBy(valid, func(l model.Lap) string { return l.Team })

	teams := lo.Keys(byTeam)
	sort.Strings(teams)

	result := make([]TeamStat, 0, len(teams))
	for _, team := range teams {
		times := model.Times(byTeam[team])
		ts := TeamStat{
			Team:       team,
			MinTime:    stats.Min(times),
			MedianTime: stats.Median(times),
			MeanTime:   stats.Mean(times),
			StdTime:    stats.SampleStd(times),
			LapCount:   len(times),
		}
		ts.HeadlineGap = ts.MedianTime - ts.MinTime
		result = append(result, ts)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MedianTime < result[j].MedianTime
	})
	return result
}

// compoundsInOrder returns the compounds to plot: the preferred race
// compounds that are present, or every compound found when none of the
// preferred ones are. Only compounds with at least one valid lap count.
func compoundsInOrder(laps []model.Lap) []string {
	valid := model.Valid(laps)
	present := lo.Associate(model.Compounds(valid),
		func(c string) (string, bool) { return c, true })

	preferred := lo.Filter([]string{"SOFT", "MEDIUM", "HARD"},
		func(c string, _ int) bool { return present[c] })
	if len(preferred) > 0 {
		return preferred
	}
	rest := model.Compounds(valid)
	sort.Strings(rest)
	return rest
}
