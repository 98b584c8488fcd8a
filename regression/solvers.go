package regression

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	lsqErrors "github.com/ezoic/lstsqr/pkg/errors"
)

// designMatrix builds the n×2 matrix [x 1] whose least-squares solution
// against y is [slope intercept].
func designMatrix(x []float64) *mat.Dense {
	n := len(x)
	X := mat.NewDense(n, 2, nil)
	for i, v := range x {
		X.Set(i, 0, v)
		X.Set(i, 1, 1)
	}
	return X
}

// FitMatrix fits a line by solving the normal equations with an explicit
// matrix inversion:
//
//	β = (XᵀX)⁻¹ Xᵀy
//
// where X is the design matrix [x 1]. This is the textbook formulation;
// it is less numerically stable than an orthogonal decomposition and exists
// as a benchmark strategy, not as the recommended solver.
//
// Errors match FitSequential, with zero variance of x surfacing as a
// singular XᵀX.
func FitMatrix(x, y []float64) (Line, error) {
	if err := validate("FitMatrix", x, y); err != nil {
		return Line{}, err
	}

	X := designMatrix(x)
	yVec := mat.NewVecDense(len(y), y)

	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return Line{}, lsqErrors.NewSingularMatrixError("FitMatrix", "XᵀX is not invertible")
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), yVec)

	var beta mat.VecDense
	beta.MulVec(&inv, &xty)

	return Line{Slope: beta.AtVec(0), Intercept: beta.AtVec(1)}, nil
}

// FitSolve fits a line using gonum's generic least-squares solve on the
// design matrix, which applies a QR factorization for overdetermined
// systems.
func FitSolve(x, y []float64) (Line, error) {
	if err := validate("FitSolve", x, y); err != nil {
		return Line{}, err
	}

	X := designMatrix(x)
	yCol := mat.NewDense(len(y), 1, y)

	var beta mat.Dense
	if err := beta.Solve(X, yCol); err != nil {
		return Line{}, lsqErrors.NewSingularMatrixError("FitSolve", "least-squares system is rank deficient")
	}

	return Line{Slope: beta.At(0, 0), Intercept: beta.At(1, 0)}, nil
}

// FitPolynomial fits a degree-1 polynomial through an explicit QR
// factorization of the Vandermonde matrix. For a single predictor this is
// mathematically identical to FitSolve; it exists as a separate benchmark
// strategy mirroring polynomial-fit library entry points.
func FitPolynomial(x, y []float64) (Line, error) {
	if err := validate("FitPolynomial", x, y); err != nil {
		return Line{}, err
	}

	X := designMatrix(x)
	yCol := mat.NewDense(len(y), 1, y)

	var qr mat.QR
	qr.Factorize(X)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, yCol); err != nil {
		return Line{}, lsqErrors.NewSingularMatrixError("FitPolynomial", "Vandermonde matrix is rank deficient")
	}

	return Line{Slope: beta.At(0, 0), Intercept: beta.At(1, 0)}, nil
}

// FitGonum fits a line through gonum's stat.LinearRegression. Unlike the
// closed-form variants it does not detect zero variance of x itself: a
// degenerate input yields NaN coefficients, matching the underlying
// library's behavior.
func FitGonum(x, y []float64) (Line, error) {
	if err := validate("FitGonum", x, y); err != nil {
		return Line{}, err
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return Line{Slope: slope, Intercept: intercept}, nil
}
