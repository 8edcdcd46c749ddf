//nolint:funlen // ok for tests
package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeRows(t *testing.T) {
	panels := []*Figure{NewFigure(400, 300), NewFigure(400, 300)}
	fig := ComposeRows("", panels)
	require.NotNil(t, fig)
	assert.Equal(t, 400, fig.Width)
	assert.Equal(t, 600, fig.Height, "panel heights add up")

	withTitle := ComposeRows("Stacked", panels)
	assert.Greater(t, withTitle.Height, 600, "suptitle adds a band")

	assert.Nil(t, ComposeRows("", nil))
}

func TestComposeCols(t *testing.T) {
	fig := ComposeCols([]*Figure{NewFigure(300, 200), NewFigure(300, 250)})
	require.NotNil(t, fig)
	assert.Equal(t, 600, fig.Width)
	assert.Equal(t, 250, fig.Height)
}

func TestAddWatermark(t *testing.T) {
	fig := NewFigure(200, 100)
	AddWatermark(fig)
	AddWatermark(nil) // must not panic
}

func TestSaveFigure(t *testing.T) {
	fig := NewFigure(120, 80)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SaveFigure(fig, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestLegendOverlay(t *testing.T) {
	fig := NewFigure(400, 300)
	LegendOverlay(fig, []LegendEntry{
		{Label: "Ferrari", Color: ParseHex("#E8002D")},
		{Label: "McLaren", Color: ParseHex("#FF8000")},
	})
	LegendOverlay(fig, nil) // must not panic
}

func TestViolinSeries(t *testing.T) {
	series := ViolinSeries([]float64{90, 91, 89, 92, 90}, 0, ParseHex("#E8002D"))
	require.Len(t, series, 2, "outline plus median marker")
	assert.Empty(t, ViolinSeries(nil, 0, ParseHex("#E8002D")))
}

func TestHBarFigure(t *testing.T) {
	items := []HBarItem{
		{Label: "Ferrari", Value: 120, Color: ParseHex("#E8002D"), Annotation: "120"},
		{Label: "McLaren", Value: 95, Color: ParseHex("#FF8000"), Annotation: "95"},
	}
	fig := HBarFigure("Title", "Laps", items, 600, 400)
	require.NotNil(t, fig)
	assert.Equal(t, 600, fig.Width)

	assert.Nil(t, HBarFigure("Title", "Laps", nil, 600, 400))
}

func TestHeatmapFigure(t *testing.T) {
	fig := HeatmapFigure("Laps",
		[]string{"Ferrari", "McLaren"},
		[]string{"Day 1", "Day 2"},
		[][]int{{10, 20}, {0, 15}},
		600, 400)
	require.NotNil(t, fig)

	assert.Nil(t, HeatmapFigure("Laps", nil, nil, nil, 600, 400))
}
