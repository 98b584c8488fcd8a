package regression

import (
	"errors"
	"math"
	"testing"

	"github.com/ezoic/lstsqr/performance"
	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
)

// closeRel reports whether a and b agree within a relative tolerance.
func closeRel(a, b, tol float64) bool {
	if a == b {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	if den == 0 {
		return math.Abs(a-b) < tol
	}
	return math.Abs(a-b)/den < tol
}

func TestFitSequential(t *testing.T) {
	tests := []struct {
		name          string
		x             []float64
		y             []float64
		wantSlope     float64
		wantIntercept float64
		wantErr       error
	}{
		{
			name:          "perfect line y = 2x",
			x:             []float64{1, 2, 3, 4, 5},
			y:             []float64{2, 4, 6, 8, 10},
			wantSlope:     2.0,
			wantIntercept: 0.0,
		},
		{
			name:          "noisy samples",
			x:             []float64{1, 2, 3, 4, 5},
			y:             []float64{2, 3, 5, 4, 6},
			wantSlope:     0.9,
			wantIntercept: 1.3,
		},
		{
			name:          "negative slope",
			x:             []float64{0, 1, 2, 3},
			y:             []float64{9, 6, 3, 0},
			wantSlope:     -3.0,
			wantIntercept: 9.0,
		},
		{
			name:    "mismatched lengths",
			x:       []float64{1, 2, 3},
			y:       []float64{1, 2},
			wantErr: lsqErrors.ErrDimensionMismatch,
		},
		{
			name:    "empty input",
			x:       nil,
			y:       nil,
			wantErr: lsqErrors.ErrEmptyData,
		},
		{
			name:    "single sample",
			x:       []float64{3},
			y:       []float64{7},
			wantErr: lsqErrors.ErrZeroVariance,
		},
		{
			name:    "zero variance in x",
			x:       []float64{5, 5, 5},
			y:       []float64{1, 2, 3},
			wantErr: lsqErrors.ErrZeroVariance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := FitSequential(tt.x, tt.y)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FitSequential() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FitSequential() unexpected error: %v", err)
			}

			if !closeRel(line.Slope, tt.wantSlope, 1e-12) {
				t.Errorf("Slope = %v, want %v", line.Slope, tt.wantSlope)
			}
			if !closeRel(line.Intercept, tt.wantIntercept, 1e-12) {
				t.Errorf("Intercept = %v, want %v", line.Intercept, tt.wantIntercept)
			}
		})
	}
}

func TestFitParallelErrors(t *testing.T) {
	if _, err := FitParallel([]float64{1, 2, 3}, []float64{1, 2}); !errors.Is(err, lsqErrors.ErrDimensionMismatch) {
		t.Errorf("mismatched lengths: error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := FitParallel(nil, nil); !errors.Is(err, lsqErrors.ErrEmptyData) {
		t.Errorf("empty input: error = %v, want ErrEmptyData", err)
	}
	if _, err := FitParallel([]float64{5, 5, 5}, []float64{1, 2, 3}); !errors.Is(err, lsqErrors.ErrZeroVariance) {
		t.Errorf("zero variance: error = %v, want ErrZeroVariance", err)
	}

	var degErr *lsqErrors.DegenerateDataError
	_, err := FitParallel([]float64{4}, []float64{2})
	if !errors.As(err, &degErr) {
		t.Errorf("single sample: error = %v, want DegenerateDataError", err)
	}
}

func TestFitParallelMatchesSequential(t *testing.T) {
	x, y := performance.Dataset(10_000, performance.DefaultSeed)

	want, err := FitSequential(x, y)
	if err != nil {
		t.Fatalf("FitSequential() failed: %v", err)
	}

	for _, workers := range []int{1, 2, 4, 17} {
		got, err := FitParallel(x, y, WithWorkers(workers))
		if err != nil {
			t.Fatalf("FitParallel(workers=%d) failed: %v", workers, err)
		}

		if !closeRel(got.Slope, want.Slope, 1e-9) {
			t.Errorf("workers=%d: Slope = %v, sequential = %v", workers, got.Slope, want.Slope)
		}
		if !closeRel(got.Intercept, want.Intercept, 1e-9) {
			t.Errorf("workers=%d: Intercept = %v, sequential = %v", workers, got.Intercept, want.Intercept)
		}
	}
}

func TestFitParallelWorkerCountInvariance(t *testing.T) {
	x, y := performance.Dataset(4_096, 99)

	base, err := FitParallel(x, y, WithWorkers(1))
	if err != nil {
		t.Fatalf("FitParallel(workers=1) failed: %v", err)
	}

	for _, workers := range []int{2, 8, 64} {
		got, err := FitParallel(x, y, WithWorkers(workers))
		if err != nil {
			t.Fatalf("FitParallel(workers=%d) failed: %v", workers, err)
		}
		if !closeRel(got.Slope, base.Slope, 1e-9) || !closeRel(got.Intercept, base.Intercept, 1e-9) {
			t.Errorf("workers=%d: got %+v, workers=1 gave %+v", workers, got, base)
		}
	}
}

func TestFitParallelWorkersExceedSamples(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}

	line, err := FitParallel(x, y, WithWorkers(32))
	if err != nil {
		t.Fatalf("FitParallel() failed: %v", err)
	}
	if !closeRel(line.Slope, 2.0, 1e-12) || !closeRel(line.Intercept, 0.0, 1e-12) {
		t.Errorf("got %+v, want slope 2 intercept 0", line)
	}
}

func TestFitSequentialIdempotent(t *testing.T) {
	x, y := performance.Dataset(1_000, performance.DefaultSeed)

	first, err := FitSequential(x, y)
	if err != nil {
		t.Fatalf("FitSequential() failed: %v", err)
	}
	second, err := FitSequential(x, y)
	if err != nil {
		t.Fatalf("FitSequential() failed: %v", err)
	}

	// Deterministic summation order: results must be bit-identical.
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestFitSequentialNaNPropagation(t *testing.T) {
	// NaN inputs are not special-cased: they flow through the arithmetic
	// instead of being reported as degenerate.
	x := []float64{1, math.NaN(), 3}
	y := []float64{2, 4, 6}

	line, err := FitSequential(x, y)
	if err != nil {
		t.Fatalf("FitSequential() unexpected error: %v", err)
	}
	if !math.IsNaN(line.Slope) || !math.IsNaN(line.Intercept) {
		t.Errorf("got %+v, want NaN slope and intercept", line)
	}
}

func TestLineAt(t *testing.T) {
	line := Line{Slope: 2, Intercept: 1}
	if got := line.At(3); got != 7 {
		t.Errorf("At(3) = %v, want 7", got)
	}
}
