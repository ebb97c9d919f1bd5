// SPDX-License-Identifier: MIT

package monomial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npa/scenario"
	"github.com/katalvlaran/npa/word"
)

// ErrInvalidEvaluationTarget indicates Evaluate was called on a monomial
// that IsVariable classifies as unknown.
var ErrInvalidEvaluationTarget = errors.New("monomial: cannot evaluate a variable monomial")

// Oracle supplies the probabilities a known monomial resolves to.
// Implementations must answer for a∈[0,NA), b∈[0,NB), x∈[0,NX), m∈[0,NM).
type Oracle interface {
	// Joint returns p(a,b|x,m).
	Joint(a, b, x, m int) (float64, error)
	// Marginal returns the single-party probability of (outcome|setting).
	Marginal(outcome, setting int, party scenario.Party) (float64, error)
}

// Monomial is an immutable pair of words. A Null word on either side is
// always normalised to the null pair.
type Monomial struct {
	left  word.Word
	right word.Word
}

// New returns (left; right), collapsing to Null() when either side is null.
func New(left, right word.Word) Monomial {
	if left.IsNull() || right.IsNull() {
		return Null()
	}

	return Monomial{left: left, right: right}
}

// Identity returns (I; I).
func Identity() Monomial { return Monomial{left: word.Identity(), right: word.Identity()} }

// Null returns (0; 0).
func Null() Monomial { return Monomial{left: word.Null(), right: word.Null()} }

// OfA returns (E(a|x); I).
func OfA(a, x int) (Monomial, error) {
	w, err := word.New(a, x)
	if err != nil {
		return Monomial{}, fmt.Errorf("OfA: %w", err)
	}

	return Monomial{left: w, right: word.Identity()}, nil
}

// OfB returns (I; E(b|m)).
func OfB(b, m int) (Monomial, error) {
	w, err := word.New(b, m)
	if err != nil {
		return Monomial{}, fmt.Errorf("OfB: %w", err)
	}

	return Monomial{left: word.Identity(), right: w}, nil
}

// Left returns the party-A word.
func (p Monomial) Left() word.Word { return p.left }

// Right returns the party-B word.
func (p Monomial) Right() word.Word { return p.right }

// IsIdentity reports whether p is (I; I).
func (p Monomial) IsIdentity() bool { return p.left.IsIdentity() && p.right.IsIdentity() }

// IsNull reports whether p is the null pair.
func (p Monomial) IsNull() bool { return p.left.IsNull() }

// Concat multiplies componentwise; a null side annihilates the pair.
// Complexity: O(len of the four words).
func Concat(p, q Monomial) Monomial {
	return New(word.Concat(p.left, q.left), word.Concat(p.right, q.right))
}

// Conj returns the adjoint, conjugating each side independently.
func Conj(p Monomial) Monomial {
	return Monomial{left: word.Conj(p.left), right: word.Conj(p.right)}
}

// Equal reports pairwise word equality.
func Equal(p, q Monomial) bool {
	return word.Equal(p.left, q.left) && word.Equal(p.right, q.right)
}

// IsVariable reports whether p has no value fixed by the distribution.
// Known shapes are the identity pair, the null pair, a single event on one
// side with identity on the other, and a single event on both sides.
func (p Monomial) IsVariable() bool {
	l, r := p.left, p.right
	switch {
	case p.IsNull(), p.IsIdentity():
		return false
	case l.IsIdentity() && r.IsSingle():
		return false
	case r.IsIdentity() && l.IsSingle():
		return false
	case l.IsSingle() && r.IsSingle():
		return false
	}

	return true
}

// Evaluate resolves a known monomial through o.
// Errors: ErrInvalidEvaluationTarget for variable monomials; oracle errors
// are wrapped and returned.
func Evaluate(p Monomial, o Oracle) (float64, error) {
	switch {
	case p.IsNull():
		return 0, nil
	case p.IsIdentity():
		return 1, nil
	case p.IsVariable():
		return 0, fmt.Errorf("Evaluate(%s): %w", p, ErrInvalidEvaluationTarget)
	}

	l, lok := p.left.First()
	r, rok := p.right.First()

	var (
		v   float64
		err error
	)
	switch {
	case lok && rok:
		v, err = o.Joint(l.Outcome, r.Outcome, l.Setting, r.Setting)
	case lok:
		v, err = o.Marginal(l.Outcome, l.Setting, scenario.PartyA)
	default:
		v, err = o.Marginal(r.Outcome, r.Setting, scenario.PartyB)
	}
	if err != nil {
		return 0, fmt.Errorf("Evaluate(%s): %w", p, err)
	}

	return v, nil
}

// Key returns the canonical text of p; equal monomials share a key.
func (p Monomial) Key() string { return p.String() }

// String formats p as "(left; right)".
func (p Monomial) String() string { return "(" + p.left.String() + "; " + p.right.String() + ")" }
