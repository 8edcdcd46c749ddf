package model

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Lap is one row of the lap table: a single completed lap of a test day.
// A missing lap time is represented as NaN.
type Lap struct {
	Team           string  `json:"team"`
	Driver         string  `json:"driver"`
	Day            int     `json:"day"`
	Stint          int     `json:"stint"`
	LapNumber      int     `json:"lapNumber"`
	Compound       string  `json:"compound"`
	LapTimeSeconds float64 `json:"lapTimeSeconds"`
}

// StintKey identifies a stint: one driver on one set of tires on one day.
type StintKey struct {
	Team   string
	Driver string
	Day    int
	Stint  int
}

func (k StintKey) String() string {
	return fmt.Sprintf("%s/%s/day%d/stint%d", k.Team, k.Driver, k.Day, k.Stint)
}

func (l Lap) Key() StintKey {
	return StintKey{Team: l.Team, Driver: l.Driver, Day: l.Day, Stint: l.Stint}
}

// HasTime reports whether the lap carries a usable lap time.
func (l Lap) HasTime() bool {
	return !math.IsNaN(l.LapTimeSeconds) &&
		!math.IsInf(l.LapTimeSeconds, 0) &&
		l.LapTimeSeconds > 0
}

// Valid returns the laps with a usable (finite, positive) lap time.
// All lap time statistics operate on this subset.
func Valid(laps []Lap) []Lap {
	return lo.Filter(laps, func(l Lap, _ int) bool { return l.HasTime() })
}

// Times extracts the lap times of the given laps.
func Times(laps []Lap) []float64 {
	return lo.Map(laps, func(l Lap, _ int) float64 { return l.LapTimeSeconds })
}

// Teams returns the distinct team names in input order.
func Teams(laps []Lap) []string {
	return lo.Uniq(lo.Map(laps, func(l Lap, _ int) string { return l.Team }))
}

// Compounds returns the distinct non-empty compound names in input order.
func Compounds(laps []Lap) []string {
	compounds := lo.Uniq(lo.Map(laps, func(l Lap, _ int) string { return l.Compound }))
	return lo.Filter(compounds, func(c string, _ int) bool { return c != "" })
}
