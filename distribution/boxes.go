package distribution

import (
	"math"

	"github.com/katalvlaran/npa/scenario"
)

// PRBox returns the Popescu–Rohrlich box on (2,2,2,2):
// p(a,b|x,m) = ½ if a⊕b = x·m, else 0. It is non-signalling, reaches
// CHSH = 1 and lies outside the quantum set.
func PRBox(opts ...Option) (*Distribution, error) {
	return FromFunc(scenario.Binary(), func(a, b, x, m int) float64 {
		if a^b == x*m {
			return 0.5
		}

		return 0
	}, opts...)
}

// Tsirelson returns the quantum correlations reaching Tsirelson's bound:
// p(a,b|x,m) = (1 + (-1)^{a⊕b⊕x·m}/√2)/4.
func Tsirelson(opts ...Option) (*Distribution, error) {
	return FromFunc(scenario.Binary(), func(a, b, x, m int) float64 {
		sign := 1.0
		if (a^b^(x*m))&1 == 1 {
			sign = -1
		}

		return (1 + sign/math.Sqrt2) / 4
	}, opts...)
}
