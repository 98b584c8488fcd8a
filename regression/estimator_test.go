package regression

import (
	"errors"
	"math"
	"testing"

	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
)

func TestLeastSquares_Fit(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		y       []float64
		wantErr bool
	}{
		{
			name: "simple linear relationship y = 2x + 1",
			x:    []float64{1, 2, 3, 4, 5},
			y:    []float64{3, 5, 7, 9, 11},
		},
		{
			name:    "mismatched lengths",
			x:       []float64{1, 2, 3},
			y:       []float64{1, 2},
			wantErr: true,
		},
		{
			name:    "empty data",
			x:       nil,
			y:       nil,
			wantErr: true,
		},
		{
			name:    "degenerate x",
			x:       []float64{7, 7, 7},
			y:       []float64{1, 2, 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := NewLeastSquares()
			err := ls.Fit(tt.x, tt.y)

			if (err != nil) != tt.wantErr {
				t.Errorf("LeastSquares.Fit() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && !ls.IsFitted() {
				t.Error("LeastSquares should be fitted after successful Fit()")
			}
			if tt.wantErr && ls.IsFitted() {
				t.Error("LeastSquares should not be fitted after failed Fit()")
			}
		})
	}
}

func TestLeastSquares_Predict(t *testing.T) {
	// y = 2x + 1 の関係を学習
	ls := NewLeastSquares()
	if err := ls.Fit([]float64{1, 2, 3, 4, 5}, []float64{3, 5, 7, 9, 11}); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	preds, err := ls.Predict([]float64{0, 6, 10})
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	want := []float64{1, 13, 21}
	for i, p := range preds {
		if math.Abs(p-want[i]) > 1e-9 {
			t.Errorf("Prediction[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestLeastSquares_PredictNotFitted(t *testing.T) {
	// 未学習のモデルで予測を試みる
	ls := NewLeastSquares()

	_, err := ls.Predict([]float64{1, 2})
	if err == nil {
		t.Fatal("Expected error when predicting with unfitted model")
	}

	var notFitted *lsqErrors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("error = %v, want NotFittedError", err)
	}
	if !errors.Is(err, lsqErrors.ErrNotFitted) {
		t.Errorf("errors.Is(err, ErrNotFitted) = false for %v", err)
	}
}

func TestLeastSquares_Score(t *testing.T) {
	ls := NewLeastSquares()

	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{3, 5, 7, 9, 11, 13, 15, 17, 19, 21}

	if err := ls.Fit(x, y); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	r2, err := ls.Score(x, y)
	if err != nil {
		t.Fatalf("Failed to calculate R² score: %v", err)
	}

	// 完璧な線形関係なのでR²は1.0に近いはず
	if math.Abs(r2-1.0) > 1e-10 {
		t.Errorf("R² score = %v, want ≈ 1.0", r2)
	}
}

func TestLeastSquares_Strategies(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}

	base := NewLeastSquares()
	if err := base.Fit(x, y); err != nil {
		t.Fatalf("Failed to fit baseline: %v", err)
	}

	strategies := []Strategy{
		StrategyParallel,
		StrategyMatrix,
		StrategySolve,
		StrategyPolynomial,
		StrategyGonum,
	}

	for _, strat := range strategies {
		t.Run(strat.String(), func(t *testing.T) {
			ls := NewLeastSquares(WithStrategy(strat), WithFitWorkers(2))
			if err := ls.Fit(x, y); err != nil {
				t.Fatalf("Failed to fit with strategy %s: %v", strat, err)
			}

			if !closeRel(ls.GetSlope(), base.GetSlope(), 1e-8) {
				t.Errorf("Slope = %v, sequential = %v", ls.GetSlope(), base.GetSlope())
			}
			if !closeRel(ls.GetIntercept(), base.GetIntercept(), 1e-8) {
				t.Errorf("Intercept = %v, sequential = %v", ls.GetIntercept(), base.GetIntercept())
			}
		})
	}
}

func TestLeastSquares_GetParams(t *testing.T) {
	ls := NewLeastSquares(WithStrategy(StrategyParallel), WithFitWorkers(4))

	params := ls.GetParams()
	if params["strategy"] != "parallel" {
		t.Errorf("strategy = %v, want parallel", params["strategy"])
	}
	if params["workers"] != 4 {
		t.Errorf("workers = %v, want 4", params["workers"])
	}
	if params["fitted"] != false {
		t.Errorf("fitted = %v, want false", params["fitted"])
	}
}

func TestLeastSquares_AccessorsBeforeFit(t *testing.T) {
	ls := NewLeastSquares()
	if ls.GetSlope() != 0 || ls.GetIntercept() != 0 {
		t.Error("untrained model should report zero coefficients")
	}
}
