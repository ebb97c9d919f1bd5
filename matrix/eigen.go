// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const opEigen = "Eigen"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi sweeps.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Copy into a working *Dense A and an identity accumulator Q.
//   - Stage 3: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and rotate it to zero;
//     maxIter caps the number of rotations.
//   - Stage 4: Read eigenvalues off the diagonal of A.
//
// Returns:
//   - []float64: eigenvalues, in diagonal order (not sorted).
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (bad tol or data),
//     ErrEigenFailed (max off-diagonal ≥ tol after maxIter rotations).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter · n²), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigen, err)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigen, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, fmt.Errorf("%s: A[%d,%d]: %w", opEigen, i, j, ErrNaNInf)
			}
			a.data[i*n+j] = v
		}
	}
	q, _ := Identity(n)

	var (
		p, r               int     // current pivot (p < r)
		maxOff, off        float64 // largest |A[p,r]| of this sweep
		app, arr, apr      float64 // pivot block
		theta, t, c, s     float64 // rotation parameters
		aip, air, qip, qir float64
	)
	for iter := 0; iter < maxIter; iter++ {
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff == 0 || maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr−app)/(2·apr); t = sign(θ)/(|θ|+√(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*air, c*aip-s*air
			a.data[i*n+r], a.data[r*n+i] = s*aip+c*air, s*aip+c*air
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check over the whole off-diagonal.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > 0 && off >= tol {
				return nil, nil, fmt.Errorf("%s: |A[%d,%d]|=%g after %d rotations: %w",
					opEigen, i, j, off, maxIter, ErrEigenFailed)
			}
		}
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// Eigenvalues returns the eigenvalues of a symmetric m in ascending order.
func Eigenvalues(m Matrix, tol float64, maxIter int) ([]float64, error) {
	eigs, _, err := Eigen(m, tol, maxIter)
	if err != nil {
		return nil, err
	}
	sort.Float64s(eigs)

	return eigs, nil
}

// MinEigenvalue returns the smallest eigenvalue of a symmetric m. A
// result ≥ −tol certifies positive semidefiniteness up to tol.
func MinEigenvalue(m Matrix, tol float64, maxIter int) (float64, error) {
	eigs, err := Eigenvalues(m, tol, maxIter)
	if err != nil {
		return 0, err
	}

	return eigs[0], nil
}
