// Package longruns detects race-pace stints (long runs) and scores how
// consistently each team runs them. A stint qualifies as a long run when
// it contains at least the configured number of valid laps.
package longruns

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/racedata/testday-report-go/pkg/analysis/stats"
	"github.com/racedata/testday-report-go/pkg/config"
	"github.com/racedata/testday-report-go/pkg/model"
)

// LongRun is the summary of one qualifying stint.
type LongRun struct {
	Team      string
	Driver    string
	Day       int
	Stint     int
	StintLaps int
	Compound  string
	MeanTime  float64
	StdTime   float64 // NaN for a single-lap stint (threshold 1)
	MinTime   float64
	MaxTime   float64
	CoV       float64 // StdTime/MeanTime; NaN propagates from StdTime
	Range     float64
}

func (r LongRun) Key() model.StintKey {
	return model.StintKey{Team: r.Team, Driver: r.Driver, Day: r.Day, Stint: r.Stint}
}

type settings struct {
	minLaps int
}

type Option func(*settings)

// WithMinLaps overrides the configured long run threshold for one call.
func WithMinLaps(n int) Option {
	return func(s *settings) { s.minLaps = n }
}

func resolveSettings(opts []Option) settings {
	s := settings{minLaps: config.LongRunMinLaps}
	for _, opt := range opts {
		opt(&s)
	}
	if s.minLaps <= 0 {
		s.minLaps = config.DefaultLongRunMinLaps
	}
	return s
}

// IdentifyLongRuns groups valid laps into stints and keeps those with at
// least the threshold lap count. Compound is taken from the first lap of
// the stint.
func IdentifyLongRuns(laps []model.Lap, opts ...Option) []LongRun {
	s := resolveSettings(opts)

	valid := model.Valid(laps)
	byStint := lo.GroupBy(valid, func(l model.Lap) model.StintKey { return l.Key() })

	keys := lo.Keys(byStint)
	sort.Slice(keys, func(i, j int) bool { return lessStintKey(keys[i], keys[j]) })

	runs := make([]LongRun, 0, len(keys))
	for _, key := range keys {
		group := byStint[key]
		if len(group) < s.minLaps {
			continue
		}
		times := model.Times(group)
		run := LongRun{
			Team:      key.Team,
			Driver:    key.Driver,
			Day:       key.Day,
			Stint:     key.Stint,
			StintLaps: len(group),
			Compound:  group[0].Compound,
			MeanTime:  stats.Mean(times),
			StdTime:   stats.SampleStd(times),
			MinTime:   stats.Min(times),
			MaxTime:   stats.Max(times),
		}
		run.CoV = run.StdTime / run.MeanTime
		run.Range = run.MaxTime - run.MinTime
		runs = append(runs, run)
	}
	return runs
}

func lessStintKey(a, b model.StintKey) bool {
	if a.Team != b.Team {
		return a.Team < b.Team
	}
	if a.Driver != b.Driver {
		return a.Driver < b.Driver
	}
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.Stint < b.Stint
}

// LongRunLap is one lap inside a qualifying stint, renumbered within the
// stint and centered on the stint mean.
type LongRunLap struct {
	model.Lap
	StintLapNumber int // 1-based, contiguous within the stint
	DeltaFromMean  float64
}

// LongRunLaps expands the qualifying stints back into their laps, sorted
// by lap number per stint. Returns an empty slice when runs is empty.
func LongRunLaps(laps []model.Lap, runs []LongRun) []LongRunLap {
	result := []LongRunLap{}
	for _, run := range runs {
		key := run.Key()
		stintLaps := lo.Filter(laps, func(l model.Lap, _ int) bool {
			return l.Key() == key && l.HasTime()
		})
		sort.SliceStable(stintLaps, func(i, j int) bool {
			return stintLaps[i].LapNumber < stintLaps[j].LapNumber
		})
		mean := stats.Mean(model.Times(stintLaps))
		for i, lap := range stintLaps {
			result = append(result, LongRunLap{
				Lap:            lap,
				StintLapNumber: i + 1,
				DeltaFromMean:  lap.LapTimeSeconds - mean,
			})
		}
	}
	return result
}

// TeamConsistency aggregates long run variability per team.
type TeamConsistency struct {
	Team        string
	MeanCoV     float64
	MedianCoV   float64
	NumLongRuns int // long runs with a defined CoV
	MeanRange   float64
}

// ComputeConsistencyByTeam ranks teams by their median long run CoV,
// most consistent first. Runs with an undefined (NaN) CoV are excluded
// from the CoV aggregates but still contribute to MeanRange.
func ComputeConsistencyByTeam(runs []LongRun) []TeamConsistency {
	byTeam := lo.GroupBy(runs, func(r LongRun) string { return r.Team })

	teams := lo.Keys(byTeam)
	sort.Strings(teams)

	result := make([]TeamConsistency, 0, len(teams))
	for _, team := range teams {
		group := byTeam[team]
		covs := []float64{}
		ranges := make([]float64, 0, len(group))
		for _, r := range group {
			if !math.IsNaN(r.CoV) {
				covs = append(covs, r.CoV)
			}
			ranges = append(ranges, r.Range)
		}
		result = append(result, TeamConsistency{
			Team:        team,
			MeanCoV:     stats.Mean(covs),
			MedianCoV:   stats.Median(covs),
			NumLongRuns: len(covs),
			MeanRange:   stats.Mean(ranges),
		})
	}
	// ascending by median CoV, NaN entries last
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].MedianCoV, result[j].MedianCoV
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		if math.IsNaN(a) {
			return false
		}
		return a < b
	})
	return result
}
