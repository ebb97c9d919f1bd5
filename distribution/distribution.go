// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/npa/scenario"
)

// Distribution is an immutable joint probability table p(a,b|x,m).
// vals is row-major over (a, b, x, m).
type Distribution struct {
	s      scenario.Scenario
	vals   []float64
	prior  [2][]float64 // indexed by scenario.Party
	eps    float64
	warn   *NormalizationWarning
	logger *slog.Logger
}

// New builds a Distribution from a row-major (a, b, x, m) table.
//
// Stage 1 (Validate): scenario, table length, finite non-negative entries,
// priors. Stage 2 (Diagnose): normalisation per (x, m), logged once.
//
// Errors: scenario.ErrInvalidScenario, ErrShapeMismatch,
// ErrInvalidProbability, ErrInvalidPrior, scenario.ErrUnsupportedParty.
// Complexity: O(NA·NB·NX·NM).
func New(s scenario.Scenario, values []float64, opts ...Option) (*Distribution, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("distribution.New: %w", err)
	}
	if len(values) != s.Cells() {
		return nil, fmt.Errorf("distribution.New: %d values for scenario %s (want %d): %w",
			len(values), s, s.Cells(), ErrShapeMismatch)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("distribution.New: entry %d = %g: %w", i, v, ErrInvalidProbability)
		}
	}

	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, fmt.Errorf("distribution.New: %w", o.err)
	}

	d := &Distribution{
		s:      s,
		vals:   append([]float64(nil), values...),
		eps:    o.eps,
		logger: o.logger,
	}
	explicit := false
	for _, p := range []scenario.Party{scenario.PartyA, scenario.PartyB} {
		w, given, err := resolvePrior(s, p, o)
		if err != nil {
			return nil, fmt.Errorf("distribution.New: %w", err)
		}
		d.prior[p] = w
		explicit = explicit || given
	}

	if !explicit && (s.NX != 2 || s.NM != 2) {
		d.logger.Warn("non-binary settings: marginals use a uniform setting prior",
			"scenario", s.String())
	}

	d.warn = d.normalization()
	if d.warn != nil {
		d.logger.Warn("distribution not normalized",
			"scenario", s.String(),
			"x", d.warn.X,
			"m", d.warn.M,
			"sum", d.warn.Sum,
			"violations", d.warn.Violations)
	}

	return d, nil
}

// FromFunc builds a Distribution by sampling f over every (a, b, x, m).
func FromFunc(s scenario.Scenario, f func(a, b, x, m int) float64, opts ...Option) (*Distribution, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("distribution.FromFunc: %w", err)
	}
	vals := make([]float64, 0, s.Cells())
	for a := 0; a < s.NA; a++ {
		for b := 0; b < s.NB; b++ {
			for x := 0; x < s.NX; x++ {
				for m := 0; m < s.NM; m++ {
					vals = append(vals, f(a, b, x, m))
				}
			}
		}
	}

	return New(s, vals, opts...)
}

// Uniform returns p(a,b|x,m) = 1/(NA·NB).
func Uniform(s scenario.Scenario, opts ...Option) (*Distribution, error) {
	return FromFunc(s, func(_, _, _, _ int) float64 {
		return 1 / float64(s.NA*s.NB)
	}, opts...)
}

// index maps (a, b, x, m) to the flat offset, or ErrOutOfRange.
func (d *Distribution) index(a, b, x, m int) (int, error) {
	s := d.s
	if a < 0 || a >= s.NA || b < 0 || b >= s.NB || x < 0 || x >= s.NX || m < 0 || m >= s.NM {
		return 0, fmt.Errorf("(a=%d,b=%d,x=%d,m=%d) in %s: %w", a, b, x, m, s, ErrOutOfRange)
	}

	return ((a*s.NB+b)*s.NX+x)*s.NM + m, nil
}

// at reads an in-range cell without checks.
func (d *Distribution) at(a, b, x, m int) float64 {
	s := d.s
	return d.vals[((a*s.NB+b)*s.NX+x)*s.NM+m]
}

// Scenario returns the scenario the table is defined over.
func (d *Distribution) Scenario() scenario.Scenario { return d.s }

// Epsilon returns the numeric tolerance in use.
func (d *Distribution) Epsilon() float64 { return d.eps }

// Prior returns a copy of party p's setting prior.
func (d *Distribution) Prior(p scenario.Party) ([]float64, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("Prior(%s): %w", p, scenario.ErrUnsupportedParty)
	}

	return append([]float64(nil), d.prior[p]...), nil
}

// Table returns a copy of the row-major (a, b, x, m) table.
func (d *Distribution) Table() []float64 { return append([]float64(nil), d.vals...) }

// Joint returns p(a,b|x,m).
// Errors: ErrOutOfRange.
func (d *Distribution) Joint(a, b, x, m int) (float64, error) {
	i, err := d.index(a, b, x, m)
	if err != nil {
		return 0, fmt.Errorf("Joint: %w", err)
	}

	return d.vals[i], nil
}

// Marginal returns the single-party probability of (output|input) for
// party, weighting the other party's settings by their prior.
// Errors: scenario.ErrUnsupportedParty, ErrOutOfRange.
// Complexity: O(N_other_outcomes · N_other_settings).
func (d *Distribution) Marginal(output, input int, party scenario.Party) (float64, error) {
	s := d.s
	var sum float64
	switch party {
	case scenario.PartyA:
		if output < 0 || output >= s.NA || input < 0 || input >= s.NX {
			return 0, fmt.Errorf("Marginal(%d,%d,A) in %s: %w", output, input, s, ErrOutOfRange)
		}
		w := d.prior[scenario.PartyB]
		for b := 0; b < s.NB; b++ {
			for m := 0; m < s.NM; m++ {
				sum += w[m] * d.at(output, b, input, m)
			}
		}
	case scenario.PartyB:
		if output < 0 || output >= s.NB || input < 0 || input >= s.NM {
			return 0, fmt.Errorf("Marginal(%d,%d,B) in %s: %w", output, input, s, ErrOutOfRange)
		}
		w := d.prior[scenario.PartyA]
		for a := 0; a < s.NA; a++ {
			for x := 0; x < s.NX; x++ {
				sum += w[x] * d.at(a, output, x, input)
			}
		}
	default:
		return 0, fmt.Errorf("Marginal(%d,%d,%s): %w", output, input, party, scenario.ErrUnsupportedParty)
	}

	return sum, nil
}

// normalization scans every (x, m) and returns nil when all sums are 1
// within eps.
func (d *Distribution) normalization() *NormalizationWarning {
	s := d.s
	var w *NormalizationWarning
	for x := 0; x < s.NX; x++ {
		for m := 0; m < s.NM; m++ {
			var sum float64
			for a := 0; a < s.NA; a++ {
				for b := 0; b < s.NB; b++ {
					sum += d.at(a, b, x, m)
				}
			}
			if math.Abs(sum-1) <= d.eps {
				continue
			}
			if w == nil {
				w = &NormalizationWarning{X: x, M: m, Sum: sum}
			}
			w.Violations++
		}
	}

	return w
}

// Warning returns the normalisation diagnostic recorded at construction, or
// nil. A non-nil result matches ErrNotNormalized.
func (d *Distribution) Warning() error {
	if d.warn == nil {
		return nil
	}

	return d.warn
}

// IsNormalized reports whether every (x, m) block sums to 1 within eps.
func (d *Distribution) IsNormalized() bool { return d.warn == nil }

// IsSignaling reports whether one party's marginal depends on the other
// party's setting beyond eps.
// Complexity: O(NA·NX·NM²·NB + NB·NM·NX²·NA).
func (d *Distribution) IsSignaling() bool {
	s := d.s
	for a := 0; a < s.NA; a++ {
		for x := 0; x < s.NX; x++ {
			for m0 := 0; m0 < s.NM; m0++ {
				for m1 := m0 + 1; m1 < s.NM; m1++ {
					var p0, p1 float64
					for b := 0; b < s.NB; b++ {
						p0 += d.at(a, b, x, m0)
						p1 += d.at(a, b, x, m1)
					}
					if math.Abs(p0-p1) > d.eps {
						return true
					}
				}
			}
		}
	}
	for b := 0; b < s.NB; b++ {
		for m := 0; m < s.NM; m++ {
			for x0 := 0; x0 < s.NX; x0++ {
				for x1 := x0 + 1; x1 < s.NX; x1++ {
					var p0, p1 float64
					for a := 0; a < s.NA; a++ {
						p0 += d.at(a, b, x0, m)
						p1 += d.at(a, b, x1, m)
					}
					if math.Abs(p0-p1) > d.eps {
						return true
					}
				}
			}
		}
	}

	return false
}

// CHSH returns the CHSH winning probability ¼·Σ_{x,m} Σ_{a⊕b = x·m} p(a,b|x,m).
// Local strategies reach at most ¾, quantum ones cos²(π/8).
// Errors: scenario.ErrInvalidScenario unless the scenario is (2,2,2,2).
func (d *Distribution) CHSH() (float64, error) {
	if !d.s.IsBinary() {
		return 0, fmt.Errorf("CHSH: scenario %s is not binary: %w", d.s, scenario.ErrInvalidScenario)
	}
	var score float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for x := 0; x < 2; x++ {
				for m := 0; m < 2; m++ {
					if a^b == x*m {
						score += d.at(a, b, x, m)
					}
				}
			}
		}
	}

	return score / 4, nil
}

// Add returns the entrywise sum d + other, using d's options.
// Errors: ErrShapeMismatch if the scenarios differ.
func (d *Distribution) Add(other *Distribution) (*Distribution, error) {
	if other == nil || other.s != d.s {
		return nil, fmt.Errorf("Add: %w", ErrShapeMismatch)
	}
	vals := make([]float64, len(d.vals))
	for i := range vals {
		vals[i] = d.vals[i] + other.vals[i]
	}

	return New(d.s, vals, optionsOf(d)...)
}

// Scale returns alpha·d, using d's options.
// Errors: ErrInvalidProbability if alpha is negative or not finite.
func (d *Distribution) Scale(alpha float64) (*Distribution, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < 0 {
		return nil, fmt.Errorf("Scale(%g): %w", alpha, ErrInvalidProbability)
	}
	vals := make([]float64, len(d.vals))
	for i, v := range d.vals {
		vals[i] = alpha * v
	}

	return New(d.s, vals, optionsOf(d)...)
}

// Mix returns w·d + (1-w)·other for w ∈ [0,1].
func (d *Distribution) Mix(other *Distribution, w float64) (*Distribution, error) {
	if math.IsNaN(w) || w < 0 || w > 1 {
		return nil, fmt.Errorf("Mix(%g): %w", w, ErrInvalidProbability)
	}
	if other == nil || other.s != d.s {
		return nil, fmt.Errorf("Mix: %w", ErrShapeMismatch)
	}
	vals := make([]float64, len(d.vals))
	for i := range vals {
		vals[i] = w*d.vals[i] + (1-w)*other.vals[i]
	}

	return New(d.s, vals, optionsOf(d)...)
}
