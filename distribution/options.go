// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/npa/scenario"
)

// DefaultEpsilon is the tolerance of normalisation, signalling and prior checks.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "distribution: WithEpsilon: eps must be finite, non-negative"

// Option configures a Distribution.
type Option func(*Options)

// Options is the resolved configuration. Invalid priors are recorded in err
// and surfaced by the constructor as ErrInvalidPrior.
type Options struct {
	eps    float64
	prior  map[scenario.Party][]float64
	logger *slog.Logger
	err    error
}

// WithEpsilon sets the numeric tolerance. Panics if eps is negative or not
// finite (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrior sets the probability with which party p picks each of its
// settings. weights[i] belongs to setting i; it is used when marginalising
// the other party.
func WithPrior(p scenario.Party, weights []float64) Option {
	cp := append([]float64(nil), weights...)

	return func(o *Options) {
		if !p.Valid() {
			o.err = fmt.Errorf("WithPrior(%s): %w", p, scenario.ErrUnsupportedParty)
			return
		}
		o.prior[p] = cp
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		prior:  make(map[scenario.Party][]float64, 2),
		logger: slog.Default(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// optionsOf rebuilds Option values reproducing d's configuration, so that
// derived distributions (Add, Scale) keep the same prior, eps and logger.
func optionsOf(d *Distribution) []Option {
	return []Option{
		WithEpsilon(d.eps),
		WithLogger(d.logger),
		WithPrior(scenario.PartyA, d.prior[scenario.PartyA]),
		WithPrior(scenario.PartyB, d.prior[scenario.PartyB]),
	}
}

// resolvePrior returns the prior for party p: the configured one after
// validation, or uniform over p's settings.
func resolvePrior(s scenario.Scenario, p scenario.Party, o Options) ([]float64, bool, error) {
	n, err := s.Settings(p)
	if err != nil {
		return nil, false, err
	}
	w, ok := o.prior[p]
	if !ok {
		u := make([]float64, n)
		for i := range u {
			u[i] = 1 / float64(n)
		}

		return u, false, nil
	}
	if len(w) != n {
		return nil, true, fmt.Errorf("prior of %s has %d weights, want %d: %w", p, len(w), n, ErrInvalidPrior)
	}
	var sum float64
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, true, fmt.Errorf("prior of %s: weight %d = %g: %w", p, i, v, ErrInvalidPrior)
		}
		sum += v
	}
	if math.Abs(sum-1) > math.Max(o.eps, DefaultEpsilon) {
		return nil, true, fmt.Errorf("prior of %s sums to %g: %w", p, sum, ErrInvalidPrior)
	}

	return w, true, nil
}
