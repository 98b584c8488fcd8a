package regression

import (
	"time"

	"github.com/ezoic/lstsqr/core/model"
	"github.com/ezoic/lstsqr/metrics"
	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
	"github.com/ezoic/lstsqr/pkg/log"
)

// Strategy selects the computation used by LeastSquares.Fit.
type Strategy int

const (
	// StrategySequential is the closed-form single-goroutine formula.
	StrategySequential Strategy = iota
	// StrategyParallel is the closed-form formula with fork-join
	// accumulation.
	StrategyParallel
	// StrategyMatrix solves the normal equations by matrix inversion.
	StrategyMatrix
	// StrategySolve uses the generic least-squares solver.
	StrategySolve
	// StrategyPolynomial uses a degree-1 polynomial fit.
	StrategyPolynomial
	// StrategyGonum calls stat.LinearRegression.
	StrategyGonum
)

// String returns the strategy name as used in logs and benchmark output.
func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyParallel:
		return "parallel"
	case StrategyMatrix:
		return "matrix"
	case StrategySolve:
		return "solve"
	case StrategyPolynomial:
		return "polynomial"
	case StrategyGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// fit dispatches to the strategy's fit function.
func (s Strategy) fit(x, y []float64, workers int) (Line, error) {
	switch s {
	case StrategyParallel:
		return FitParallel(x, y, WithWorkers(workers))
	case StrategyMatrix:
		return FitMatrix(x, y)
	case StrategySolve:
		return FitSolve(x, y)
	case StrategyPolynomial:
		return FitPolynomial(x, y)
	case StrategyGonum:
		return FitGonum(x, y)
	default:
		return FitSequential(x, y)
	}
}

// LeastSquares is a simple linear regression estimator wrapping the fit
// strategies behind a Fit/Predict interface.
type LeastSquares struct {
	State   *model.StateManager // State manager (composition instead of embedding)
	Line    Line                // Fitted line, valid once the model is fitted
	logger  log.Logger
	strat   Strategy
	workers int
}

// EstimatorOption configures a LeastSquares estimator.
type EstimatorOption func(*LeastSquares)

// WithStrategy selects the fit strategy. The default is StrategySequential.
func WithStrategy(s Strategy) EstimatorOption {
	return func(ls *LeastSquares) {
		ls.strat = s
	}
}

// WithFitWorkers sets the worker count used by StrategyParallel. Zero means
// one worker per available processing unit.
func WithFitWorkers(n int) EstimatorOption {
	return func(ls *LeastSquares) {
		ls.workers = n
	}
}

// NewLeastSquares creates a new untrained simple linear regression
// estimator. The model must be trained with Fit before Predict or Score.
//
// Example:
//
//	ls := regression.NewLeastSquares(regression.WithStrategy(regression.StrategyParallel))
//	if err := ls.Fit(x, y); err != nil {
//	    log.Fatal(err)
//	}
//	preds, err := ls.Predict(xTest)
func NewLeastSquares(opts ...EstimatorOption) *LeastSquares {
	ls := &LeastSquares{
		State: model.NewStateManager(),
		strat: StrategySequential,
	}

	for _, opt := range opts {
		opt(ls)
	}

	ls.logger = log.GetLoggerWithName("regression").With(
		log.ModelNameKey, "LeastSquares",
		log.StrategyKey, ls.strat.String(),
	)

	return ls
}

// Fit trains the estimator on the paired samples (x[i], y[i]) using the
// configured strategy. After a successful fit the model's slope and
// intercept are available through GetSlope and GetIntercept.
//
// Errors:
//   - ErrEmptyData: if x or y contain no samples
//   - DimensionError: if x and y have different lengths
//   - DegenerateDataError: if the variance of x is zero
func (ls *LeastSquares) Fit(x, y []float64) (err error) {
	defer lsqErrors.Recover(&err, "LeastSquares.Fit")

	startTime := time.Now()
	if ls.logger != nil {
		ls.logger.Info("Training started",
			log.OperationKey, log.OperationFit,
			log.PhaseKey, log.PhaseTraining,
			log.SamplesKey, len(x),
		)
	}

	line, err := ls.strat.fit(x, y, ls.workers)
	if err != nil {
		return err
	}

	ls.Line = line
	ls.State.SetFitted()
	ls.State.SetDimensions(1, len(x))

	if ls.logger != nil {
		ls.logger.Info("Training completed",
			log.OperationKey, log.OperationFit,
			log.PhaseKey, log.PhaseTraining,
			log.SamplesKey, len(x),
			log.DurationMsKey, time.Since(startTime).Milliseconds(),
		)
	}

	return nil
}

// Predict evaluates the fitted line at each value of x.
//
// Errors:
//   - NotFittedError: if the model has not been trained
func (ls *LeastSquares) Predict(x []float64) (_ []float64, err error) {
	defer lsqErrors.Recover(&err, "LeastSquares.Predict")
	if !ls.State.IsFitted() {
		return nil, lsqErrors.NewNotFittedError("LeastSquares", "Predict")
	}

	if ls.logger != nil {
		ls.logger.Debug("Prediction started",
			log.OperationKey, log.OperationPredict,
			log.PhaseKey, log.PhaseInference,
			log.SamplesKey, len(x),
		)
	}

	preds := make([]float64, len(x))
	for i, v := range x {
		preds[i] = ls.Line.At(v)
	}

	return preds, nil
}

// Score returns the coefficient of determination (R²) of the fitted line
// on the given samples.
func (ls *LeastSquares) Score(x, y []float64) (_ float64, err error) {
	defer lsqErrors.Recover(&err, "LeastSquares.Score")
	if !ls.State.IsFitted() {
		return 0, lsqErrors.NewNotFittedError("LeastSquares", "Score")
	}

	preds, err := ls.Predict(x)
	if err != nil {
		return 0, err
	}

	return metrics.R2Score(y, preds)
}

// GetSlope returns the fitted slope, or 0 for an untrained model.
func (ls *LeastSquares) GetSlope() float64 {
	if !ls.State.IsFitted() {
		return 0
	}
	return ls.Line.Slope
}

// GetIntercept returns the fitted intercept, or 0 for an untrained model.
func (ls *LeastSquares) GetIntercept() float64 {
	if !ls.State.IsFitted() {
		return 0
	}
	return ls.Line.Intercept
}

// IsFitted returns whether the model has been fitted.
func (ls *LeastSquares) IsFitted() bool {
	return ls.State.IsFitted()
}

// GetParams returns the model's hyperparameters.
func (ls *LeastSquares) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy": ls.strat.String(),
		"workers":  ls.workers,
		"fitted":   ls.State.IsFitted(),
	}
}
