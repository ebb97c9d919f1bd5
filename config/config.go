// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/npa/distribution"
	"github.com/katalvlaran/npa/hierarchy"
	"github.com/katalvlaran/npa/scenario"
)

// ErrInvalidConfig wraps every decoding, schema and range failure.
var ErrInvalidConfig = errors.New("config: invalid problem file")

// Problem is one decoded problem file.
type Problem struct {
	Scenario scenario.Scenario `yaml:"scenario" json:"scenario"`
	Depth    int               `yaml:"depth" json:"depth"`
	Epsilon  *float64          `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
	Prior    *Prior            `yaml:"prior,omitempty" json:"prior,omitempty"`
	Table    []Cell            `yaml:"table,omitempty" json:"table,omitempty"`
}

// Prior holds optional setting weights per party.
type Prior struct {
	A []float64 `yaml:"a,omitempty" json:"a,omitempty"`
	B []float64 `yaml:"b,omitempty" json:"b,omitempty"`
}

// Cell is one p(a,b|x,m) entry.
type Cell struct {
	A int     `yaml:"a" json:"a"`
	B int     `yaml:"b" json:"b"`
	X int     `yaml:"x" json:"x"`
	M int     `yaml:"m" json:"m"`
	P float64 `yaml:"p" json:"p"`
}

// LoadFile reads and parses the problem file at path.
func LoadFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadFile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config.LoadFile(%s): %w", path, err)
	}

	return p, nil
}

// Parse decodes data and validates it.
//
// Stage 1 (Decode): yaml.v3 with KnownFields, so misspelt keys fail.
// Stage 2 (Finite): epsilon, priors and probabilities must be finite.
// Stage 3 (Schema): CUE #Problem, concrete.
// Stage 4 (Range): every cell inside the scenario, no cell twice.
//
// Errors: ErrInvalidConfig, joined with the underlying cause.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("config.Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := p.checkFinite(); err != nil {
		return nil, fmt.Errorf("config.Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := validateSchema(&p); err != nil {
		return nil, fmt.Errorf("config.Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := p.checkRange(); err != nil {
		return nil, fmt.Errorf("config.Parse: %w: %w", ErrInvalidConfig, err)
	}

	return &p, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (p *Problem) checkFinite() error {
	if p.Epsilon != nil && !finite(*p.Epsilon) {
		return fmt.Errorf("epsilon=%v", *p.Epsilon)
	}
	if p.Prior != nil {
		for i, w := range p.Prior.A {
			if !finite(w) {
				return fmt.Errorf("prior.a[%d]=%v", i, w)
			}
		}
		for i, w := range p.Prior.B {
			if !finite(w) {
				return fmt.Errorf("prior.b[%d]=%v", i, w)
			}
		}
	}
	for i, c := range p.Table {
		if !finite(c.P) {
			return fmt.Errorf("table[%d].p=%v", i, c.P)
		}
	}

	return nil
}

func (p *Problem) checkRange() error {
	s := p.Scenario
	seen := make(map[Cell]int, len(p.Table))
	for i, c := range p.Table {
		if c.A >= s.NA || c.B >= s.NB || c.X >= s.NX || c.M >= s.NM {
			return fmt.Errorf("table[%d] (a=%d,b=%d,x=%d,m=%d) outside %s", i, c.A, c.B, c.X, c.M, s)
		}
		k := Cell{A: c.A, B: c.B, X: c.X, M: c.M}
		if j, dup := seen[k]; dup {
			return fmt.Errorf("table[%d] repeats table[%d]", i, j)
		}
		seen[k] = i
	}

	return nil
}

// Values returns the row-major (a, b, x, m) table with omitted cells 0.
func (p *Problem) Values() []float64 {
	s := p.Scenario
	vals := make([]float64, s.Cells())
	for _, c := range p.Table {
		vals[((c.A*s.NB+c.B)*s.NX+c.X)*s.NM+c.M] = c.P
	}

	return vals
}

// Distribution builds the oracle described by the file. The file's
// epsilon and priors come before opts, so opts may override them.
// Errors: those of distribution.New.
func (p *Problem) Distribution(opts ...distribution.Option) (*distribution.Distribution, error) {
	var base []distribution.Option
	if p.Epsilon != nil {
		base = append(base, distribution.WithEpsilon(*p.Epsilon))
	}
	if p.Prior != nil {
		if len(p.Prior.A) > 0 {
			base = append(base, distribution.WithPrior(scenario.PartyA, p.Prior.A))
		}
		if len(p.Prior.B) > 0 {
			base = append(base, distribution.WithPrior(scenario.PartyB, p.Prior.B))
		}
	}

	return distribution.New(p.Scenario, p.Values(), append(base, opts...)...)
}

// Builder builds the hierarchy for the file's scenario and depth.
func (p *Problem) Builder(opts ...hierarchy.Option) (*hierarchy.Builder, error) {
	return hierarchy.New(p.Scenario, p.Depth, opts...)
}
