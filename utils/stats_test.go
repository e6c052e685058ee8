package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 500*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 100.0, s.AveragePopulation, 1e-9)

	s.Update(2, 200, 0)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9, "zero duration keeps the last rate")
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}
