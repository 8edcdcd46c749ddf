// Package testsupport provides lap table fixtures shared by the
// analysis and render tests.
package testsupport

import (
	"math"

	"github.com/racedata/testday-report-go/pkg/model"
)

// Stint builds the laps of one stint, lap numbers 1..len(times).
func Stint(
	team, driver string,
	day, stint int,
	compound string,
	times []float64,
) []model.Lap {
	laps := make([]model.Lap, 0, len(times))
	for i, t := range times {
		laps = append(laps, model.Lap{
			Team:           team,
			Driver:         driver,
			Day:            day,
			Stint:          stint,
			LapNumber:      i + 1,
			Compound:       compound,
			LapTimeSeconds: t,
		})
	}
	return laps
}

// Ramp builds n lap times starting at base, cycling a small deterministic
// variation so statistics stay predictable.
func Ramp(base float64, n int) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = base + 0.2*float64(i%4)
	}
	return times
}

// SampleLaps is a three-team lap table with short runs, long runs and a
// couple of unusable laps (missing or negative times).
func SampleLaps() []model.Lap {
	var laps []model.Lap
	laps = append(laps, Stint("Ferrari", "Leclerc", 1, 1, "SOFT",
		[]float64{88.1, 88.4, 88.2})...)
	laps = append(laps, Stint("Ferrari", "Leclerc", 1, 2, "MEDIUM",
		Ramp(90.0, 12))...)
	laps = append(laps, Stint("Ferrari", "Sainz", 2, 1, "HARD",
		Ramp(91.2, 11))...)
	laps = append(laps, Stint("McLaren", "Norris", 1, 1, "SOFT",
		[]float64{87.9, 88.0})...)
	laps = append(laps, Stint("McLaren", "Norris", 2, 1, "MEDIUM",
		Ramp(89.6, 10))...)
	laps = append(laps, Stint("Williams", "Albon", 1, 1, "MEDIUM",
		[]float64{92.0, 92.4, 92.1, 92.6, 92.2})...)
	// in/out laps without a usable time
	laps = append(laps, model.Lap{
		Team: "Ferrari", Driver: "Leclerc", Day: 1, Stint: 2,
		LapNumber: 13, Compound: "MEDIUM", LapTimeSeconds: math.NaN(),
	})
	laps = append(laps, model.Lap{
		Team: "Williams", Driver: "Albon", Day: 1, Stint: 1,
		LapNumber: 6, Compound: "MEDIUM", LapTimeSeconds: -1,
	})
	return laps
}
