// Package errors defines the error taxonomy shared by all lstsqr packages.
//
// The package provides typed errors for the failure modes of regression
// computations, together with sentinel errors for errors.Is checks:
//
//   - DimensionError: input sequences of mismatched length
//   - DegenerateDataError: inputs for which the fit is mathematically undefined
//   - ValueError: invalid argument values
//   - NotFittedError: prediction attempted on an untrained estimator
//   - ModelError: operation failure wrapping an underlying sentinel
//
// All typed errors support errors.Is and errors.As through the standard
// unwrapping protocol, and are built on cockroachdb/errors so that wrapped
// errors keep stack traces for %+v formatting.
//
// Example usage:
//
//	if _, err := regression.FitSequential(x, y); err != nil {
//	    var degErr *errors.DegenerateDataError
//	    if errors.As(err, &degErr) {
//	        // all x values identical, slope undefined
//	    }
//	}
package errors

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
)

// prefix is prepended to every error message produced by this package.
const prefix = "lstsqr"

// Sentinel errors for errors.Is comparisons.
var (
	// ErrEmptyData indicates that an input sequence contains no samples.
	ErrEmptyData = cerrors.New("empty data")

	// ErrDimensionMismatch indicates that paired input sequences have
	// different lengths.
	ErrDimensionMismatch = cerrors.New("dimension mismatch")

	// ErrZeroVariance indicates that the independent variable has zero
	// variance, leaving the slope undefined.
	ErrZeroVariance = cerrors.New("zero variance in x")

	// ErrSingularMatrix indicates that a normal-equations matrix cannot
	// be inverted.
	ErrSingularMatrix = cerrors.New("singular matrix")

	// ErrNotFitted indicates that an estimator is used before training.
	ErrNotFitted = cerrors.New("model is not fitted")
)

// DimensionError reports paired inputs whose lengths disagree.
type DimensionError struct {
	Op       string // operation that detected the mismatch
	Expected int    // length of the reference input
	Got      int    // length of the offending input
	Axis     int    // axis on which the mismatch occurred
}

// NewDimensionError creates a DimensionError for the given operation.
func NewDimensionError(op string, expected, got, axis int) *DimensionError {
	return &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: dimension mismatch: expected %d, got %d (axis %d)",
		prefix, e.Op, e.Expected, e.Got, e.Axis)
}

// Unwrap makes errors.Is(err, ErrDimensionMismatch) succeed.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// DegenerateDataError reports input for which the regression result is
// mathematically undefined, such as zero variance in the independent
// variable or a singular normal-equations matrix.
type DegenerateDataError struct {
	Op     string // operation that detected the condition
	Reason string // human-readable description of the degeneracy
	err    error  // underlying sentinel (ErrZeroVariance or ErrSingularMatrix)
}

// NewDegenerateDataError creates a DegenerateDataError wrapping
// ErrZeroVariance.
func NewDegenerateDataError(op, reason string) *DegenerateDataError {
	return &DegenerateDataError{Op: op, Reason: reason, err: ErrZeroVariance}
}

// NewSingularMatrixError creates a DegenerateDataError wrapping
// ErrSingularMatrix.
func NewSingularMatrixError(op, reason string) *DegenerateDataError {
	return &DegenerateDataError{Op: op, Reason: reason, err: ErrSingularMatrix}
}

func (e *DegenerateDataError) Error() string {
	return fmt.Sprintf("%s: %s: degenerate input: %s", prefix, e.Op, e.Reason)
}

// Unwrap returns the underlying sentinel.
func (e *DegenerateDataError) Unwrap() error { return e.err }

// ValueError reports an invalid argument value.
type ValueError struct {
	Op      string
	Message string
}

// NewValueError creates a ValueError for the given operation.
func NewValueError(op, message string) *ValueError {
	return &ValueError{Op: op, Message: message}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
}

// NotFittedError reports usage of an estimator before training.
type NotFittedError struct {
	ModelName string
	Method    string
}

// NewNotFittedError creates a NotFittedError for the given model and method.
func NewNotFittedError(modelName, method string) *NotFittedError {
	return &NotFittedError{ModelName: modelName, Method: method}
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s: %s is not fitted, call Fit before %s",
		prefix, e.ModelName, e.Method)
}

// Unwrap makes errors.Is(err, ErrNotFitted) succeed.
func (e *NotFittedError) Unwrap() error { return ErrNotFitted }

// ModelError reports an operation failure with an underlying sentinel cause.
type ModelError struct {
	Op      string
	Message string
	Err     error
}

// NewModelError creates a ModelError wrapping the given cause.
func NewModelError(op, message string, err error) *ModelError {
	return &ModelError{Op: op, Message: message, Err: err}
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %v", prefix, e.Op, e.Message, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *ModelError) Unwrap() error { return e.Err }

// Recover converts a panic into an error assigned to *errp, so that a
// computation fails atomically instead of crashing the caller. Intended
// usage:
//
//	func (ls *LeastSquares) Fit(x, y []float64) (err error) {
//	    defer errors.Recover(&err, "LeastSquares.Fit")
//	    ...
//	}
func Recover(errp *error, op string) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*errp = cerrors.Wrapf(err, "%s: panic recovered", op)
			return
		}
		*errp = cerrors.Newf("%s: panic recovered: %v", op, r)
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return cerrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return cerrors.As(err, target) }
