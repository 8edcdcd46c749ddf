// Package reliability measures how much running each team banked: laps
// per day, total laps, stint counts and stint lengths. Every lap counts
// here, timed or not, since reliability is about the car running at all.
package reliability

import (
	"sort"

	"github.com/samber/lo"

	"github.com/racedata/testday-report-go/pkg/analysis/stats"
	"github.com/racedata/testday-report-go/pkg/model"
)

// TeamDayGrid is the laps-per-team-per-day pivot. Counts[i][j] is the
// lap count of Teams[i] on Days[j]; missing pairs are zero-filled.
type TeamDayGrid struct {
	Teams  []string
	Days   []int
	Counts [][]int
}

// RowTotal sums one team row.
func (g TeamDayGrid) RowTotal(i int) int {
	return lo.Sum(g.Counts[i])
}

// ComputeLapsPerTeamDay pivots the lap table into a team x day count
// grid, teams and days ascending.
func ComputeLapsPerTeamDay(laps []model.Lap) TeamDayGrid {
	teams := model.Teams(laps)
	sort.Strings(teams)
	days := lo.Uniq(lo.Map(laps, func(l model.Lap, _ int) int { return l.Day }))
	sort.Ints(days)

	dayIdx := map[int]int{}
	for j, d := range days {
		dayIdx[d] = j
	}
	teamIdx := map[string]int{}
	counts := make([][]int, len(teams))
	for i, t := range teams {
		teamIdx[t] = i
		counts[i] = make([]int, len(days))
	}
	for _, l := range laps {
		counts[teamIdx[l.Team]][dayIdx[l.Day]]++
	}
	return TeamDayGrid{Teams: teams, Days: days, Counts: counts}
}

// TeamLaps is the total lap count of one team.
type TeamLaps struct {
	Team      string
	TotalLaps int
}

// ComputeTotalLaps counts laps per team, descending by total.
func ComputeTotalLaps(laps []model.Lap) []TeamLaps {
	byTeam := lo.GroupBy(laps, func(l model.Lap) string { return l.Team })
	teams := lo.Keys(byTeam)
	sort.Strings(teams)

	totals := lo.Map(teams, func(team string, _ int) TeamLaps {
		return TeamLaps{Team: team, TotalLaps: len(byTeam[team])}
	})
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalLaps > totals[j].TotalLaps
	})
	return totals
}

// StintSummary describes a team's stint usage.
type StintSummary struct {
	Team            string
	TotalStints     int
	MaxStintLength  int
	MeanStintLength float64
}

// ComputeStintSummary aggregates stint counts and lengths per team,
// descending by stint count.
func ComputeStintSummary(laps []model.Lap) []StintSummary {
	byStint := lo.GroupBy(laps, func(l model.Lap) model.StintKey { return l.Key() })

	type stint struct {
		team string
		laps int
	}
	stints := lo.MapToSlice(byStint, func(k model.StintKey, group []model.Lap) stint {
		return stint{team: k.Team, laps: len(group)}
	})
	byTeam := lo.GroupBy(stints, func(s stint) string { return s.team })

	teams := lo.Keys(byTeam)
	sort.Strings(teams)

	summary := lo.Map(teams, func(team string, _ int) StintSummary {
		group := byTeam[team]
		lengths := lo.Map(group, func(s stint, _ int) float64 { return float64(s.laps) })
		return StintSummary{
			Team:            team,
			TotalStints:     len(group),
			MaxStintLength:  int(stats.Max(lengths)),
			MeanStintLength: stats.Mean(lengths),
		}
	})
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].TotalStints > summary[j].TotalStints
	})
	return summary
}

// DriverLaps is the lap count of one driver.
type DriverLaps struct {
	Team   string
	Driver string
	Laps   int
}

// ComputeLapsPerDriver counts laps per driver, grouped by team ascending
// and laps descending within a team.
func ComputeLapsPerDriver(laps []model.Lap) []DriverLaps {
	type key struct {
		team   string
		driver string
	}
	byDriver := lo.GroupBy(laps, func(l model.Lap) key {
		return key{team: l.Team, driver: l.Driver}
	})
	result := lo.MapToSlice(byDriver, func(k key, group []model.Lap) DriverLaps {
		return DriverLaps{Team: k.team, Driver: k.driver, Laps: len(group)}
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Team != result[j].Team {
			return result[i].Team < result[j].Team
		}
		if result[i].Laps != result[j].Laps {
			return result[i].Laps > result[j].Laps
		}
		return result[i].Driver < result[j].Driver
	})
	return result
}
