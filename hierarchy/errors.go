package hierarchy

import "errors"

var (
	// ErrInvalidDepth indicates a hierarchy depth ≤ 0.
	ErrInvalidDepth = errors.New("hierarchy: depth must be a positive integer")

	// ErrOutOfRange indicates a monomial or matrix index outside [0, n).
	ErrOutOfRange = errors.New("hierarchy: index out of range")

	// ErrNilOracle indicates MomentValueMatrix was called without an oracle.
	ErrNilOracle = errors.New("hierarchy: oracle is nil")

	// ErrAssignmentLength indicates a variable assignment whose length
	// differs from the registry size.
	ErrAssignmentLength = errors.New("hierarchy: assignment length does not match variable count")

	// ErrInvalidCacheSize indicates a cache capacity ≤ 0.
	ErrInvalidCacheSize = errors.New("hierarchy: cache size must be positive")
)
