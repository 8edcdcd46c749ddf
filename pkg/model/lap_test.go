package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLapHasTime(t *testing.T) {
	tests := []struct {
		name string
		time float64
		want bool
	}{
		{name: "regular lap", time: 90.123, want: true},
		{name: "missing time", time: math.NaN(), want: false},
		{name: "zero", time: 0, want: false},
		{name: "negative", time: -3, want: false},
		{name: "infinite", time: math.Inf(1), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lap := Lap{LapTimeSeconds: tt.time}
			assert.Equal(t, tt.want, lap.HasTime())
		})
	}
}

func TestValid(t *testing.T) {
	laps := []Lap{
		{Team: "A", LapTimeSeconds: 90},
		{Team: "A", LapTimeSeconds: math.NaN()},
		{Team: "B", LapTimeSeconds: -1},
		{Team: "B", LapTimeSeconds: 91.5},
	}
	got := Valid(laps)
	assert.Len(t, got, 2)
	assert.Equal(t, []float64{90, 91.5}, Times(got))
}

func TestCompounds(t *testing.T) {
	laps := []Lap{
		{Compound: "SOFT"},
		{Compound: ""},
		{Compound: "MEDIUM"},
		{Compound: "SOFT"},
	}
	assert.Equal(t, []string{"SOFT", "MEDIUM"}, Compounds(laps))
}
