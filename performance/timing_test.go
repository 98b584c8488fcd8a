package performance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	calls := 0
	times := Measure(3, 5, func() { calls++ })

	require.Len(t, times, 3)
	assert.Equal(t, 15, calls, "3 runs of 5 repeats")
	for _, d := range times {
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}
}

func TestMeasureClampsArguments(t *testing.T) {
	calls := 0
	times := Measure(0, 0, func() { calls++ })

	require.Len(t, times, 1)
	assert.Equal(t, 1, calls)
}

func TestSampleStatistics(t *testing.T) {
	s := Sample{
		N:       100,
		Repeats: 10,
		Times: []time.Duration{
			3 * time.Second,
			1 * time.Second,
			2 * time.Second,
		},
	}

	// Fastest run: 1s over 10*100 items.
	assert.InDelta(t, 1e-3, s.PerItemMin(), 1e-12)
	assert.InDelta(t, 6.0, s.Total(), 1e-12)

	// Deviation around the minimum: sqrt((2²+0²+1²)/2) = sqrt(2.5)
	wantErr := math.Sqrt(2.5) / 1000
	assert.InDelta(t, wantErr, s.Err(), 1e-12)
}

func TestSampleDegenerateStatistics(t *testing.T) {
	empty := Sample{N: 10, Repeats: 10}
	assert.True(t, math.IsNaN(empty.PerItemMin()))
	assert.True(t, math.IsNaN(empty.Err()))
	assert.Zero(t, empty.Total())

	single := Sample{N: 10, Repeats: 10, Times: []time.Duration{time.Second}}
	assert.False(t, math.IsNaN(single.PerItemMin()))
	assert.True(t, math.IsNaN(single.Err()), "one run has no deviation estimate")
}
