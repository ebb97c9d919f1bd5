// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/npa/matrix"
)

// Cell is one moment-matrix entry: a known number or a shared variable.
type Cell struct {
	value    float64
	variable *Variable
}

// Known returns a numeric cell.
func Known(v float64) Cell { return Cell{value: v} }

// Free returns a variable cell.
func Free(v *Variable) Cell { return Cell{variable: v} }

// IsVariable reports whether the cell is a free variable.
func (c Cell) IsVariable() bool { return c.variable != nil }

// Value returns the numeric value; 0 for variable cells.
func (c Cell) Value() float64 { return c.value }

// Variable returns the shared variable, or nil for numeric cells.
func (c Cell) Variable() *Variable { return c.variable }

// String formats the cell as a %g number or "v<ID>".
func (c Cell) String() string {
	if c.variable != nil {
		return c.variable.String()
	}

	return strconv.FormatFloat(c.value, 'g', -1, 64)
}

// ValueMatrix is the evaluated n×n moment matrix. cells[i*n+j] equals
// cells[j*n+i] for all i, j.
type ValueMatrix struct {
	n     int
	cells []Cell
}

func newValueMatrix(n int) *ValueMatrix {
	return &ValueMatrix{n: n, cells: make([]Cell, n*n)}
}

// set writes c at (i, j) and its mirror (j, i).
func (vm *ValueMatrix) set(i, j int, c Cell) {
	vm.cells[i*vm.n+j] = c
	vm.cells[j*vm.n+i] = c
}

// Size returns n.
func (vm *ValueMatrix) Size() int { return vm.n }

// At returns the cell at (i, j).
// Errors: ErrOutOfRange.
func (vm *ValueMatrix) At(i, j int) (Cell, error) {
	if i < 0 || i >= vm.n || j < 0 || j >= vm.n {
		return Cell{}, fmt.Errorf("ValueMatrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return vm.cells[i*vm.n+j], nil
}

// Counts returns how many cells are numeric and how many are variables.
func (vm *ValueMatrix) Counts() (known, free int) {
	for _, c := range vm.cells {
		if c.IsVariable() {
			free++
		} else {
			known++
		}
	}

	return known, free
}

// Known returns the numeric value at (i, j) and whether the cell is known.
func (vm *ValueMatrix) Known(i, j int) (float64, bool) {
	c, err := vm.At(i, j)
	if err != nil || c.IsVariable() {
		return 0, false
	}

	return c.value, true
}

// Substitute materialises the matrix with assign(v) in place of every
// variable v.
// Errors: matrix.ErrNaNInf for non-finite assignments.
func (vm *ValueMatrix) Substitute(assign func(*Variable) float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(vm.n, vm.n)
	if err != nil {
		return nil, fmt.Errorf("Substitute: %w", err)
	}
	var v float64
	for i := 0; i < vm.n; i++ {
		for j := 0; j < vm.n; j++ {
			c := vm.cells[i*vm.n+j]
			v = c.value
			if c.variable != nil {
				v = assign(c.variable)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Substitute: %w", err)
			}
		}
	}

	return out, nil
}

// MinEigenvalue substitutes assign and returns the smallest eigenvalue of
// the resulting matrix. A result ≥ −tol means the assignment completes the
// known moments to a positive semidefinite matrix.
func (vm *ValueMatrix) MinEigenvalue(assign func(*Variable) float64, tol float64, maxIter int) (float64, error) {
	d, err := vm.Substitute(assign)
	if err != nil {
		return 0, err
	}
	low, err := matrix.MinEigenvalue(d, tol, maxIter)
	if err != nil {
		return 0, fmt.Errorf("MinEigenvalue: %w", err)
	}

	return low, nil
}

// String renders one bracketed, comma-separated row per line.
func (vm *ValueMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < vm.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < vm.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(vm.cells[i*vm.n+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
