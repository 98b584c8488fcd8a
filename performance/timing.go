package performance

import (
	"math"
	"time"
)

// Sample holds the timing runs collected for one strategy at one input
// size: each entry of Times is the total duration of Repeats consecutive
// invocations over N items.
type Sample struct {
	N       int             // items per invocation
	Repeats int             // invocations per timing run
	Times   []time.Duration // total duration of each timing run
}

// Measure executes fn repeats times per timing run and collects runs
// timing runs. Collecting several runs and keeping the minimum filters out
// scheduler noise: the true cost is in theory at or below the fastest
// observed run.
func Measure(runs, repeats int, fn func()) []time.Duration {
	if runs < 1 {
		runs = 1
	}
	if repeats < 1 {
		repeats = 1
	}

	times := make([]time.Duration, 0, runs)
	for r := 0; r < runs; r++ {
		start := time.Now()
		for i := 0; i < repeats; i++ {
			fn()
		}
		times = append(times, time.Since(start))
	}

	return times
}

// PerItemMin returns the fastest observed per-item time in seconds.
func (s Sample) PerItemMin() float64 {
	if len(s.Times) == 0 || s.N == 0 || s.Repeats == 0 {
		return math.NaN()
	}

	min := s.Times[0]
	for _, t := range s.Times[1:] {
		if t < min {
			min = t
		}
	}

	return min.Seconds() / float64(s.Repeats*s.N)
}

// Err returns the per-item deviation of the runs in seconds, measured
// around the minimum rather than the mean: the true time is at or below
// the fastest run, so all deviation sits above it. Returns NaN when fewer
// than two runs were collected.
func (s Sample) Err() float64 {
	if len(s.Times) < 2 || s.N == 0 || s.Repeats == 0 {
		return math.NaN()
	}

	min := s.Times[0]
	for _, t := range s.Times[1:] {
		if t < min {
			min = t
		}
	}

	var sq float64
	for _, t := range s.Times {
		d := (t - min).Seconds()
		sq += d * d
	}
	stdev := math.Sqrt(sq / float64(len(s.Times)-1))

	return stdev / float64(s.Repeats*s.N)
}

// Total returns the summed duration of all timing runs in seconds.
func (s Sample) Total() float64 {
	var total time.Duration
	for _, t := range s.Times {
		total += t
	}
	return total.Seconds()
}
