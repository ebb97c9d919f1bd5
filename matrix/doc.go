// Package matrix provides the small dense linear-algebra kernel the NPA
// tooling needs: a row-major float64 matrix, shape and symmetry
// validators, and a Jacobi eigen-solver for real symmetric matrices.
//
// It is used to materialise a moment matrix once every free variable has
// been assigned a number, and to test that matrix for positive
// semidefiniteness through its smallest eigenvalue.
//
// All public functions return the package sentinels (see errors.go),
// wrapped with an operation tag; match them with errors.Is.
package matrix
