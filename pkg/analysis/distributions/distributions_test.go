//nolint:funlen // ok for tests
package distributions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/racedata/testday-report-go/pkg/model"
	"github.com/racedata/testday-report-go/testsupport"
)

func TestComputeTeamStats(t *testing.T) {
	laps := testsupport.SampleLaps()
	got := ComputeTeamStats(laps)

	// one row per team with at least one valid lap
	assert.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].MedianTime, got[i].MedianTime,
			"rows must be sorted ascending by median")
	}
	for _, ts := range got {
		assert.InDelta(t, ts.MedianTime-ts.MinTime, ts.HeadlineGap, 1e-9)
		assert.Positive(t, ts.LapCount)
	}
}

func TestComputeTeamStats_NoValidLapsTeamAbsent(t *testing.T) {
	laps := testsupport.Stint("McLaren", "Norris", 1, 1, "SOFT",
		[]float64{88.0, 88.2})
	laps = append(laps, model.Lap{
		Team: "Haas", Driver: "Bearman", Day: 1, Stint: 1,
		LapNumber: 1, Compound: "SOFT", LapTimeSeconds: math.NaN(),
	})
	laps = append(laps, model.Lap{
		Team: "Haas", Driver: "Bearman", Day: 1, Stint: 1,
		LapNumber: 2, Compound: "SOFT", LapTimeSeconds: 0,
	})

	got := ComputeTeamStats(laps)
	assert.Len(t, got, 1)
	assert.Equal(t, "McLaren", got[0].Team)
}

func TestComputeTeamStats_ExcludesInvalidTimes(t *testing.T) {
	laps := testsupport.Stint("Williams", "Albon", 1, 1, "HARD",
		[]float64{92.0, 92.2})
	laps = append(laps, model.Lap{
		Team: "Williams", Driver: "Albon", Day: 1, Stint: 1,
		LapNumber: 3, Compound: "HARD", LapTimeSeconds: -5,
	})

	got := ComputeTeamStats(laps)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].LapCount)
	assert.InDelta(t, 92.0, got[0].MinTime, 1e-9)
}

func TestCompoundsInOrder(t *testing.T) {
	tests := []struct {
		name string
		laps []model.Lap
		want []string
	}{
		{
			name: "preferred compounds in fixed order",
			laps: testsupport.SampleLaps(),
			want: []string{"SOFT", "MEDIUM", "HARD"},
		},
		{
			name: "others sorted when no preferred compound present",
			laps: append(
				testsupport.Stint("Ferrari", "Leclerc", 1, 1, "WET",
					[]float64{99.0, 99.2}),
				testsupport.Stint("Ferrari", "Leclerc", 1, 2, "INTERMEDIATE",
					[]float64{96.0, 96.1})...),
			want: []string{"INTERMEDIATE", "WET"},
		},
		{
			name: "empty",
			laps: nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compoundsInOrder(tt.laps))
		})
	}
}

func TestPlotTeamViolins(t *testing.T) {
	fig, err := PlotTeamViolins(testsupport.SampleLaps())
	assert.NoError(t, err)
	assert.NotNil(t, fig)
}

func TestPlotTeamViolins_EmptyInput(t *testing.T) {
	fig, err := PlotTeamViolins(nil)
	assert.NoError(t, err)
	assert.Nil(t, fig)
}

func TestGenerateAll(t *testing.T) {
	figures, err := GenerateAll(testsupport.SampleLaps())
	assert.NoError(t, err)
	for _, key := range []string{
		"team_violins", "compound_distributions", "headline_vs_median",
	} {
		fig, ok := figures[key]
		assert.True(t, ok, "missing key %s", key)
		assert.NotNil(t, fig, "figure %s should be present", key)
	}
}

func TestGenerateAll_EmptyInput(t *testing.T) {
	figures, err := GenerateAll(nil)
	assert.NoError(t, err)
	assert.Len(t, figures, 3)
	for key, fig := range figures {
		assert.Nil(t, fig, "figure %s should be absent", key)
	}
}
