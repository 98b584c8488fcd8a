// Package regression implements simple (one predictor) ordinary
// least-squares regression through several interchangeable strategies.
//
// The package exists as a benchmarking exercise contrasting the performance
// of the strategies, which all fit the same line y = slope·x + intercept
// minimizing the sum of squared residuals:
//
//   - FitSequential: closed-form covariance/variance formula, single pass
//     per phase, deterministic summation order
//   - FitParallel: the same formula with fork-join accumulation over static
//     index partitions
//   - FitMatrix: normal equations solved by explicit matrix inversion
//   - FitSolve: library least-squares solve (QR under the hood)
//   - FitPolynomial: degree-1 polynomial fit via QR factorization
//   - FitGonum: gonum's stat.LinearRegression
//
// Example usage:
//
//	line, err := regression.FitSequential(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("y = %.4f·x + %.4f\n", line.Slope, line.Intercept)
//
// For large inputs the parallel variant accepts a worker count:
//
//	line, err := regression.FitParallel(x, y, regression.WithWorkers(8))
//
// All variants validate that the inputs are non-empty and of equal length,
// and fail explicitly with a DegenerateDataError when the variance of x is
// zero (a single sample, or all x values identical) instead of silently
// returning Inf or NaN. NaN and Inf values inside otherwise valid inputs
// propagate per standard floating-point rules.
//
// The LeastSquares estimator wraps the strategies behind a Fit/Predict
// interface for callers that want a trained model rather than a one-shot
// computation.
package regression

import (
	"runtime"

	"github.com/ezoic/lstsqr/core/parallel"
	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
)

// Line is a fitted regression line y = Slope·x + Intercept. It is a value
// type; a Line returned by a fit function is immutable from the package's
// point of view.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// validate checks the shared preconditions of all fit strategies.
func validate(op string, x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return lsqErrors.NewModelError(op, "no samples provided", lsqErrors.ErrEmptyData)
	}
	if len(x) != len(y) {
		return lsqErrors.NewDimensionError(op, len(x), len(y), 0)
	}
	return nil
}

// lineFromMoments computes the final slope and intercept from accumulated
// totals, rejecting zero variance of x. A NaN variance (NaN present in x)
// is not zero and therefore propagates into the result.
func lineFromMoments(op string, xAvg, yAvg, varX, covXY float64) (Line, error) {
	if varX == 0 {
		return Line{}, lsqErrors.NewDegenerateDataError(op, "variance of x is zero")
	}
	slope := covXY / varX
	return Line{Slope: slope, Intercept: yAvg - slope*xAvg}, nil
}

// FitSequential fits a line to the paired samples (x[i], y[i]) using the
// closed-form covariance/variance formula:
//
//	slope     = Σ(xᵢ-x̄)(yᵢ-ȳ) / Σ(xᵢ-x̄)²
//	intercept = ȳ - slope·x̄
//
// The computation runs in two passes: one accumulating the sums for the
// means, one accumulating the variance of x and the covariance of x and y.
// Both passes accumulate in index order 0..n-1, so repeated calls on the
// same inputs return bit-identical results.
//
// Errors:
//   - ErrEmptyData: if x or y contain no samples
//   - DimensionError: if x and y have different lengths
//   - DegenerateDataError: if the variance of x is zero
func FitSequential(x, y []float64) (Line, error) {
	if err := validate("FitSequential", x, y); err != nil {
		return Line{}, err
	}

	n := float64(len(x))

	var xSum, ySum float64
	for i := range x {
		xSum += x[i]
		ySum += y[i]
	}
	xAvg := xSum / n
	yAvg := ySum / n

	var varX, covXY float64
	for i := range x {
		dx := x[i] - xAvg
		varX += dx * dx
		covXY += dx * (y[i] - yAvg)
	}

	return lineFromMoments("FitSequential", xAvg, yAvg, varX, covXY)
}

// Option configures the parallel fit.
type Option func(*fitConfig)

type fitConfig struct {
	workers int
}

// WithWorkers sets the number of workers (static partitions) used by
// FitParallel. Values below 1 fall back to the default of one worker per
// available processing unit. The effective count never exceeds the number
// of samples.
func WithWorkers(n int) Option {
	return func(cfg *fitConfig) {
		cfg.workers = n
	}
}

// FitParallel fits a line to the paired samples (x[i], y[i]) using the same
// closed-form formula as FitSequential, with both accumulation phases
// executed by concurrent workers over disjoint contiguous chunks of the
// index range.
//
// The two phases are separated by a barrier: the global averages required
// by the variance/covariance phase only exist once every worker has
// finished the summation phase. Each worker accumulates into its own slot;
// the per-worker partials are combined serially in worker-index order after
// each join, so the result is reproducible for a given input and worker
// count. Results across different worker counts agree within floating-point
// rounding of the combination order.
//
// The default worker count is the number of available processing units;
// override it with WithWorkers. Errors match FitSequential.
func FitParallel(x, y []float64, opts ...Option) (Line, error) {
	if err := validate("FitParallel", x, y); err != nil {
		return Line{}, err
	}

	cfg := fitConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(x)
	workers := cfg.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	// Phase 1: per-worker partial sums, then a serial combine in worker
	// order once all workers have joined.
	xSums := make([]float64, workers)
	ySums := make([]float64, workers)
	parallel.ParallelizeWorkers(n, workers, func(w, start, end int) {
		var xs, ys float64
		for i := start; i < end; i++ {
			xs += x[i]
			ys += y[i]
		}
		xSums[w] = xs
		ySums[w] = ys
	})

	var xTot, yTot float64
	for w := 0; w < workers; w++ {
		xTot += xSums[w]
		yTot += ySums[w]
	}
	xAvg := xTot / float64(n)
	yAvg := yTot / float64(n)

	// Phase 2: variance and covariance partials against the finalized
	// averages, combined the same way.
	varXs := make([]float64, workers)
	covXYs := make([]float64, workers)
	parallel.ParallelizeWorkers(n, workers, func(w, start, end int) {
		var vx, cxy float64
		for i := start; i < end; i++ {
			dx := x[i] - xAvg
			vx += dx * dx
			cxy += dx * (y[i] - yAvg)
		}
		varXs[w] = vx
		covXYs[w] = cxy
	})

	var varX, covXY float64
	for w := 0; w < workers; w++ {
		varX += varXs[w]
		covXY += covXYs[w]
	}

	return lineFromMoments("FitParallel", xAvg, yAvg, varX, covXY)
}
