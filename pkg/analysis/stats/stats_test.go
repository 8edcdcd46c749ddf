package stats

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "odd", values: []float64{90, 91, 89}, want: 90},
		{name: "even midpoint", values: []float64{90, 91, 89, 92}, want: 90.5},
		{name: "single", values: []float64{88.4}, want: 88.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); got != tt.want {
				t.Errorf("Median() = %v, want %v", got, tt.want)
			}
		})
	}
	if !math.IsNaN(Median(nil)) {
		t.Errorf("Median(nil) should be NaN")
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{90, 91, 89, 92, 90}); math.Abs(got-90.4) > 1e-9 {
		t.Errorf("Mean() = %v, want 90.4", got)
	}
	if !math.IsNaN(Mean(nil)) {
		t.Errorf("Mean(nil) should be NaN")
	}
}

func TestSampleStd(t *testing.T) {
	// sample std (ddof=1) of {2,4,4,4,5,5,7,9} is ~2.1381
	got := SampleStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.13809) > 1e-4 {
		t.Errorf("SampleStd() = %v, want ~2.13809", got)
	}
	if !math.IsNaN(SampleStd([]float64{90})) {
		t.Errorf("SampleStd of a single value should be NaN")
	}
	if got := SampleStd([]float64{90, 90, 90}); got != 0 {
		t.Errorf("SampleStd of constant values = %v, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	values := []float64{90.2, 89.8, 91.4}
	if got := Min(values); got != 89.8 {
		t.Errorf("Min() = %v, want 89.8", got)
	}
	if got := Max(values); got != 91.4 {
		t.Errorf("Max() = %v, want 91.4", got)
	}
	if !math.IsNaN(Min(nil)) || !math.IsNaN(Max(nil)) {
		t.Errorf("Min/Max of empty input should be NaN")
	}
}
