// SPDX-License-Identifier: MIT

package hierarchy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/npa/monomial"
)

// MomentValueMatrix evaluates the symbolic matrix against o.
// See MomentValueMatrixContext.
func (b *Builder) MomentValueMatrix(o monomial.Oracle) (*ValueMatrix, *Registry, error) {
	return b.MomentValueMatrixContext(context.Background(), o)
}

// MomentValueMatrixContext walks the lower triangle (j ≤ i) of the
// symbolic matrix. Variable entries resolve through a fresh Registry by
// their own key or their adjoint's key, allocating under their own key if
// neither exists; known entries are evaluated against o. Each result is
// mirrored to (j, i).
//
// With WithWorkers(n > 1) the registry pass stays serial and only the
// numeric cells are evaluated concurrently, so the output is identical to
// the serial path.
//
// Errors: ErrNilOracle; ctx.Err(); oracle errors wrapped with the cell
// position. monomial.ErrInvalidEvaluationTarget is unreachable here since
// every entry is classified before evaluation.
func (b *Builder) MomentValueMatrixContext(ctx context.Context, o monomial.Oracle) (*ValueMatrix, *Registry, error) {
	if o == nil {
		return nil, nil, fmt.Errorf("MomentValueMatrix: %w", ErrNilOracle)
	}
	n := len(b.monomials)
	vm := newValueMatrix(n)
	reg := newRegistry()

	var err error
	if b.workers > 1 {
		err = b.evaluateParallel(ctx, o, vm, reg)
	} else {
		err = b.evaluateSerial(ctx, o, vm, reg)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("MomentValueMatrix: %w", err)
	}

	b.logger.Debug("moment matrix evaluated",
		"scenario", b.s.String(),
		"depth", b.depth,
		"size", n,
		"variables", reg.Len())

	return vm, reg, nil
}

// evaluateCell returns the numeric cell of a known entry.
func evaluateCell(i, j int, e monomial.Monomial, o monomial.Oracle) (Cell, error) {
	v, err := monomial.Evaluate(e, o)
	if err != nil {
		return Cell{}, fmt.Errorf("cell (%d,%d): %w", i, j, err)
	}

	return Known(v), nil
}

func (b *Builder) evaluateSerial(ctx context.Context, o monomial.Oracle, vm *ValueMatrix, reg *Registry) error {
	n := len(b.monomials)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j <= i; j++ {
			e := b.gamma[i*n+j]
			if e.IsVariable() {
				vm.set(i, j, Free(reg.resolve(e)))
				continue
			}
			c, err := evaluateCell(i, j, e, o)
			if err != nil {
				return err
			}
			vm.set(i, j, c)
		}
	}

	return nil
}

// evaluateParallel fills every variable cell in one serial pass, then
// evaluates the numeric cells row by row on up to b.workers goroutines.
// Rows write disjoint cells: row i owns (i, j) and (j, i) for j ≤ i.
func (b *Builder) evaluateParallel(ctx context.Context, o monomial.Oracle, vm *ValueMatrix, reg *Registry) error {
	n := len(b.monomials)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if e := b.gamma[i*n+j]; e.IsVariable() {
				vm.set(i, j, Free(reg.resolve(e)))
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := 0; j <= i; j++ {
				e := b.gamma[i*n+j]
				if e.IsVariable() {
					continue
				}
				c, err := evaluateCell(i, j, e, o)
				if err != nil {
					return err
				}
				vm.set(i, j, c)
			}

			return nil
		})
	}

	return g.Wait()
}
