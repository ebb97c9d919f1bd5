package distribution

import (
	"errors"
	"fmt"
)

// Sentinel errors for distribution construction and queries.
var (
	// ErrShapeMismatch indicates a table whose length disagrees with the
	// scenario, or operands built over different scenarios.
	ErrShapeMismatch = errors.New("distribution: table shape does not match scenario")

	// ErrOutOfRange indicates an outcome or setting index outside the scenario.
	ErrOutOfRange = errors.New("distribution: index out of range")

	// ErrInvalidProbability indicates a NaN, ±Inf or negative table entry.
	ErrInvalidProbability = errors.New("distribution: probability must be finite and non-negative")

	// ErrInvalidPrior indicates a prior with the wrong length, a bad weight,
	// or weights that do not sum to 1.
	ErrInvalidPrior = errors.New("distribution: invalid setting prior")

	// ErrNotNormalized is matched by *NormalizationWarning.
	ErrNotNormalized = errors.New("distribution: not normalized")
)

// NormalizationWarning reports that Σ_{a,b} p(a,b|x,m) ≠ 1 for at least one
// setting pair. It is a diagnostic, never a construction failure.
type NormalizationWarning struct {
	X, M       int     // first offending setting pair in (x, m) order
	Sum        float64 // its total probability
	Violations int     // number of offending setting pairs
}

// Error implements error.
func (w *NormalizationWarning) Error() string {
	return fmt.Sprintf("distribution: not normalized: sum over (a,b) at x=%d m=%d is %g (%d setting pairs affected)",
		w.X, w.M, w.Sum, w.Violations)
}

// Unwrap lets errors.Is(w, ErrNotNormalized) succeed.
func (w *NormalizationWarning) Unwrap() error { return ErrNotNormalized }
