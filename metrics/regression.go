// Package metrics provides evaluation metrics for regression fits.
//
// The package implements the standard regression metrics over paired
// float64 slices:
//
//   - MSE: Mean Squared Error for measuring prediction accuracy
//   - RMSE: Root Mean Squared Error (square root of MSE)
//   - MAE: Mean Absolute Error for robust error measurement
//   - R2Score: R² coefficient of determination
//
// Example usage:
//
//	mse, err := metrics.MSE(yTrue, yPred)
//	r2, err := metrics.R2Score(yTrue, yPred)
//
// The benchmark harness uses these to verify that all fit strategies agree
// on the same data before timing them.
package metrics

import (
	"math"

	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
)

// MSE calculates the Mean Squared Error between true and predicted values.
//
// MSE measures the average squared differences between predictions and
// actual values. Lower values indicate a better fit; MSE is sensitive to
// outliers due to the squared differences.
//
// Errors:
//   - ValueError: if the inputs are empty
//   - DimensionError: if yTrue and yPred have different lengths
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, lsqErrors.NewValueError("MSE", "empty input")
	}
	if len(yPred) != n {
		return 0, lsqErrors.NewDimensionError("MSE", n, len(yPred), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE calculates the Root Mean Squared Error between true and predicted
// values, providing error measurement in the same units as the target
// variable.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE calculates the Mean Absolute Error between true and predicted values.
// MAE is more robust to outliers than MSE as it does not square the
// differences.
//
// Errors:
//   - ValueError: if the inputs are empty
//   - DimensionError: if yTrue and yPred have different lengths
func MAE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, lsqErrors.NewValueError("MAE", "empty input")
	}
	if len(yPred) != n {
		return 0, lsqErrors.NewDimensionError("MAE", n, len(yPred), 0)
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue[i] - yPred[i])
	}

	return sum / float64(n), nil
}

// R2Score calculates the coefficient of determination (R²).
//
// R² represents the proportion of variance in the target variable explained
// by the fit. The best possible score is 1.0; a score of 0 means the fit is
// no better than predicting the mean, and negative values mean worse than
// that.
//
// Errors:
//   - ValueError: if the inputs are empty, or if yTrue has no variance
//   - DimensionError: if yTrue and yPred have different lengths
func R2Score(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, lsqErrors.NewValueError("R2Score", "empty input")
	}
	if len(yPred) != n {
		return 0, lsqErrors.NewDimensionError("R2Score", n, len(yPred), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue[i]
	}
	yMean /= float64(n)

	// Total sum of squares (TSS) and residual sum of squares (RSS)
	var tss, rss float64
	for i := 0; i < n; i++ {
		dm := yTrue[i] - yMean
		dr := yTrue[i] - yPred[i]
		tss += dm * dm
		rss += dr * dr
	}

	if tss == 0 {
		return 0, lsqErrors.NewValueError("R2Score", "no variance in yTrue")
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}
