//nolint:funlen // ok for tests
package reliability

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/racedata/testday-report-go/testsupport"
)

func TestComputeLapsPerTeamDay(t *testing.T) {
	laps := testsupport.SampleLaps()
	grid := ComputeLapsPerTeamDay(laps)

	assert.Equal(t, []string{"Ferrari", "McLaren", "Williams"}, grid.Teams)
	assert.Equal(t, []int{1, 2}, grid.Days)

	// every cell exists and is non-negative; missing pairs are zero
	total := 0
	for i := range grid.Teams {
		assert.Len(t, grid.Counts[i], len(grid.Days))
		for _, v := range grid.Counts[i] {
			assert.GreaterOrEqual(t, v, 0)
			total += v
		}
	}
	assert.Equal(t, len(laps), total, "every lap lands in exactly one cell")

	// Williams only ran on day 1
	assert.Equal(t, 0, grid.Counts[2][1])
}

func TestComputeTotalLaps(t *testing.T) {
	totals := ComputeTotalLaps(testsupport.SampleLaps())
	assert.Len(t, totals, 3)
	for i := 1; i < len(totals); i++ {
		assert.GreaterOrEqual(t, totals[i-1].TotalLaps, totals[i].TotalLaps,
			"totals must be sorted descending")
	}
	// invalid laps still count as running
	want := map[string]int{"Ferrari": 27, "McLaren": 12, "Williams": 6}
	for _, tl := range totals {
		assert.Equal(t, want[tl.Team], tl.TotalLaps, tl.Team)
	}
}

func TestComputeStintSummary(t *testing.T) {
	summary := ComputeStintSummary(testsupport.SampleLaps())
	assert.Len(t, summary, 3)
	for i := 1; i < len(summary); i++ {
		assert.GreaterOrEqual(t,
			summary[i-1].TotalStints, summary[i].TotalStints,
			"summary must be sorted descending by stint count")
	}
	byTeam := map[string]StintSummary{}
	for _, s := range summary {
		byTeam[s.Team] = s
	}
	assert.Equal(t, 3, byTeam["Ferrari"].TotalStints)
	assert.Equal(t, 13, byTeam["Ferrari"].MaxStintLength)
	assert.Equal(t, 1, byTeam["Williams"].TotalStints)
}

func TestComputeLapsPerDriver(t *testing.T) {
	got := ComputeLapsPerDriver(testsupport.SampleLaps())
	want := []DriverLaps{
		{Team: "Ferrari", Driver: "Leclerc", Laps: 16},
		{Team: "Ferrari", Driver: "Sainz", Laps: 11},
		{Team: "McLaren", Driver: "Norris", Laps: 12},
		{Team: "Williams", Driver: "Albon", Laps: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("laps per driver mismatch (-want +got):\n%s", diff)
	}
}

func TestPlotLapsHeatmap_Empty(t *testing.T) {
	fig, err := PlotLapsHeatmap(nil)
	assert.NoError(t, err)
	assert.Nil(t, fig)
}

func TestGenerateAll(t *testing.T) {
	figures, err := GenerateAll(testsupport.SampleLaps())
	assert.NoError(t, err)
	for _, key := range []string{"laps_heatmap", "total_laps", "stint_lengths"} {
		fig, ok := figures[key]
		assert.True(t, ok, "missing key %s", key)
		assert.NotNil(t, fig, "figure %s should be present", key)
	}
}
