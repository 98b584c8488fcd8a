// Command timelstsq times the least-squares regression strategies against
// each other on a shared deterministic dataset.
//
// For each strategy it first prints the fitted line on the test dataset,
// then times the strategy at doubling input sizes until the total measured
// time crosses -min-time, and finally prints a relative comparison chart.
//
// Usage:
//
//	timelstsq [-repeats n] [-min-time seconds] [-test-n n] [-workers n]
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/ezoic/lstsqr/performance"
	"github.com/ezoic/lstsqr/pkg/log"
	"github.com/ezoic/lstsqr/regression"
)

type strategy struct {
	name string
	fit  func(x, y []float64) (regression.Line, error)
}

func main() {
	repeats := flag.Int("repeats", 100, "Number of repeats per timing run")
	minTime := flag.Float64("min-time", 1.0, "Shortest time in seconds that a strategy's runs must take")
	testN := flag.Int("test-n", 100000, "Input size for the test section")
	workers := flag.Int("workers", 0, "Worker count for the parallel strategy (0 = all processing units)")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *repeats <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -repeats must be positive\n")
		os.Exit(1)
	}
	if *testN <= 1 {
		fmt.Fprintf(os.Stderr, "Error: -test-n must be at least 2\n")
		os.Exit(1)
	}

	log.SetupLogger(*logLevel)

	strategies := []strategy{
		{"matrix_lstsqr", regression.FitMatrix},
		{"solve_lstsqr", regression.FitSolve},
		{"polyfit_lstsqr", regression.FitPolynomial},
		{"gonum_lstsqr", regression.FitGonum},
		{"sequential_lstsqr", regression.FitSequential},
		{"parallel_lstsqr", func(x, y []float64) (regression.Line, error) {
			return regression.FitParallel(x, y, regression.WithWorkers(*workers))
		}},
	}

	datasets := map[int][2][]float64{}
	dataset := func(n int) (xs, ys []float64) {
		if d, ok := datasets[n]; ok {
			return d[0], d[1]
		}
		xs, ys = performance.Dataset(n, performance.DefaultSeed)
		datasets[n] = [2][]float64{xs, ys}
		return xs, ys
	}

	nameWidth := 0
	for _, s := range strategies {
		if len(s.name) > nameWidth {
			nameWidth = len(s.name)
		}
	}
	nameWidth++

	fmt.Println("TEST:")
	fmt.Println()

	x, y := dataset(*testN)
	for _, s := range strategies {
		line, err := s.fit(x, y)
		if err != nil {
			log.LogError(err, "strategy failed on test dataset")
			fmt.Printf("%-*s failed: %v\n", nameWidth, s.name+":", err)
			continue
		}
		fmt.Printf("%-*s y = %.10f·x + %.10f\n", nameWidth, s.name+":", line.Slope, line.Intercept)
	}

	fmt.Println()
	fmt.Println()
	fmt.Println("TIME:")
	fmt.Println()

	runs := int(math.Sqrt(float64(*repeats)))
	perItem := map[string]float64{}

	for _, s := range strategies {
		fmt.Println(s.name)

		next := performance.Sizes(100)
		for {
			n := next()
			xs, ys := dataset(n)

			times := performance.Measure(runs, *repeats, func() {
				_, _ = s.fit(xs, ys)
			})
			sample := performance.Sample{N: n, Repeats: *repeats, Times: times}

			fmt.Println(performance.FormatSample(sample))
			perItem[s.name] = sample.PerItemMin()

			if sample.Total() > *minTime {
				break
			}
		}

		fmt.Println()
	}

	fmt.Println()
	fmt.Println()
	fmt.Println("SUMMARY:")
	fmt.Println()

	printSummary(strategies, perItem)
}

// printSummary renders the relative per-item times as bar charts, sorted
// fastest first, full scale and zoomed to 20x the best.
func printSummary(strategies []strategy, perItem map[string]float64) {
	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		if _, ok := perItem[s.name]; ok {
			names = append(names, s.name)
		}
	}
	if len(names) == 0 {
		return
	}

	sort.Slice(names, func(i, j int) bool {
		return perItem[names[i]] < perItem[names[j]]
	})

	best := perItem[names[0]]
	relative := make([]float64, len(names))
	for i, name := range names {
		relative[i] = perItem[name] / best
	}

	formatter := func(v float64) string {
		if v < 10 {
			return fmt.Sprintf("%.1f", v)
		}
		return fmt.Sprintf("%.0f", v)
	}

	if err := performance.Chart(os.Stdout, names, relative, 100,
		performance.WithFormatter(formatter)); err != nil {
		log.LogError(err, "failed to render summary chart")
		return
	}

	fmt.Println()
	fmt.Println("Zoomed:")
	fmt.Println()

	if err := performance.Chart(os.Stdout, names, relative, 100,
		performance.WithFormatter(formatter),
		performance.WithMaximum(relative[0]*20)); err != nil {
		log.LogError(err, "failed to render zoomed chart")
	}
}
