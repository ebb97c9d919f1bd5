// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/npa/monomial"
	"github.com/katalvlaran/npa/scenario"
)

// Builder owns the monomial list and symbolic moment matrix of one
// (scenario, depth). It is read-only after New.
type Builder struct {
	s         scenario.Scenario
	depth     int
	monomials []monomial.Monomial
	index     map[string]int      // monomial key → position in monomials
	gamma     []monomial.Monomial // n×n row-major, gamma[i*n+j] = conj(m_i)·m_j
	workers   int
	logger    *slog.Logger
}

// New enumerates the hierarchy monomials of s up to depth and precomputes
// the symbolic moment matrix.
//
// Stage 1 (Validate): scenario counts and depth.
// Stage 2 (Generate): breadth-first expansion, first-seen dedup.
// Stage 3 (Gamma): conj(m_i)·m_j for every ordered (i, j).
//
// Errors: scenario.ErrInvalidScenario, ErrInvalidDepth. No partial
// builder is returned on failure.
// Complexity: O(n²·w) time and memory for n monomials of length ≤ w.
func New(s scenario.Scenario, depth int, opts ...Option) (*Builder, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("hierarchy.New: %w", err)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("hierarchy.New: depth=%d: %w", depth, ErrInvalidDepth)
	}
	o := gatherOptions(opts...)

	b := &Builder{s: s, depth: depth, workers: o.workers, logger: o.logger}
	b.monomials, b.index = generate(s, depth)
	b.gamma = symbolic(b.monomials)

	b.logger.Debug("hierarchy built",
		"scenario", s.String(),
		"depth", depth,
		"monomials", len(b.monomials))

	return b, nil
}

// alphabet returns the single-event monomials in expansion order:
// (E(a|x); I) for x, then a; followed by (I; E(b|m)) for m, then b.
func alphabet(s scenario.Scenario) []monomial.Monomial {
	out := make([]monomial.Monomial, 0, s.NA*s.NX+s.NB*s.NM)
	for x := 0; x < s.NX; x++ {
		for a := 0; a < s.NA; a++ {
			p, _ := monomial.OfA(a, x) // indices are non-negative by construction
			out = append(out, p)
		}
	}
	for m := 0; m < s.NM; m++ {
		for b := 0; b < s.NB; b++ {
			p, _ := monomial.OfB(b, m)
			out = append(out, p)
		}
	}

	return out
}

// generate expands level by level from (I; I). Level k+1 is built only from
// the monomials first seen at level k: a monomial already seen earlier has
// all of its descendants at earlier levels too, so skipping it leaves the
// first-seen order of the full enumeration unchanged.
func generate(s scenario.Scenario, depth int) ([]monomial.Monomial, map[string]int) {
	letters := alphabet(s)

	root := monomial.Identity()
	out := []monomial.Monomial{root}
	index := map[string]int{root.Key(): 0}
	frontier := []monomial.Monomial{root}

	var next []monomial.Monomial
	for level := 1; level <= depth && len(frontier) > 0; level++ {
		next = nil
		for _, p := range frontier {
			for _, l := range letters {
				c := monomial.Concat(p, l)
				k := c.Key()
				if _, seen := index[k]; seen {
					continue
				}
				index[k] = len(out)
				out = append(out, c)
				next = append(next, c)
			}
		}
		frontier = next
	}

	return out, index
}

// symbolic builds the row-major n×n matrix of conj(m_i)·m_j.
func symbolic(ms []monomial.Monomial) []monomial.Monomial {
	n := len(ms)
	conj := make([]monomial.Monomial, n)
	for i, m := range ms {
		conj[i] = monomial.Conj(m)
	}
	gamma := make([]monomial.Monomial, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			gamma[i*n+j] = monomial.Concat(conj[i], ms[j])
		}
	}

	return gamma
}

// Scenario returns the scenario the builder was created for.
func (b *Builder) Scenario() scenario.Scenario { return b.s }

// Depth returns the hierarchy depth.
func (b *Builder) Depth() int { return b.depth }

// MonomialCount returns n, the side of the moment matrix.
func (b *Builder) MonomialCount() int { return len(b.monomials) }

// Monomials returns a copy of the monomial list in matrix order.
func (b *Builder) Monomials() []monomial.Monomial {
	return append([]monomial.Monomial(nil), b.monomials...)
}

// Monomial returns the i-th monomial.
// Errors: ErrOutOfRange.
func (b *Builder) Monomial(i int) (monomial.Monomial, error) {
	if i < 0 || i >= len(b.monomials) {
		return monomial.Monomial{}, fmt.Errorf("Monomial(%d): %w", i, ErrOutOfRange)
	}

	return b.monomials[i], nil
}

// IndexOf returns the matrix index of m, if m is a hierarchy monomial.
func (b *Builder) IndexOf(m monomial.Monomial) (int, bool) {
	i, ok := b.index[m.Key()]
	return i, ok
}

// Entry returns the symbolic moment conj(m_i)·m_j.
// Errors: ErrOutOfRange.
func (b *Builder) Entry(i, j int) (monomial.Monomial, error) {
	n := len(b.monomials)
	if i < 0 || i >= n || j < 0 || j >= n {
		return monomial.Monomial{}, fmt.Errorf("Entry(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return b.gamma[i*n+j], nil
}
