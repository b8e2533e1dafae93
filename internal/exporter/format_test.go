package exporter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20.5, "20.5"},
		{-5, "-5.0"},
		{0, "0.0"},
		{0.1, "0.1"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in))
	}
}

func TestFormatStat(t *testing.T) {
	assert.Equal(t, "19.166667", formatStat(115.0/6))
	assert.Equal(t, "NaN", formatStat(math.NaN()))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "NaT", formatTime(time.Time{}))
	assert.Equal(t, "2024-01-01 05:00:00", formatTime(time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-01 05:00:00.5", formatTime(time.Date(2024, 1, 1, 5, 0, 0, 5e8, time.UTC)))
}
