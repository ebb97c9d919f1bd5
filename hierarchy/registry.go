package hierarchy

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/npa/monomial"
)

// Variable is a free moment of the semidefinite program. ID is dense in
// [0, Registry.Len()) and follows allocation order; Key is the canonical
// key of the entry that allocated it.
type Variable struct {
	ID       int
	Key      string
	Monomial monomial.Monomial
}

// String formats the variable as "v<ID>".
func (v *Variable) String() string { return "v" + strconv.Itoa(v.ID) }

// Registry maps canonical monomial keys to variables. A monomial and its
// adjoint always resolve to the same Variable.
type Registry struct {
	byKey map[string]*Variable
	vars  []*Variable
}

func newRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Variable)}
}

// resolve returns the variable of e or of conj(e), allocating a new one
// registered under e's own key when neither is known.
func (r *Registry) resolve(e monomial.Monomial) *Variable {
	k := e.Key()
	if v, ok := r.byKey[k]; ok {
		return v
	}
	if v, ok := r.byKey[monomial.Conj(e).Key()]; ok {
		return v
	}
	v := &Variable{ID: len(r.vars), Key: k, Monomial: e}
	r.byKey[k] = v
	r.vars = append(r.vars, v)

	return v
}

// Len returns the number of distinct variables.
func (r *Registry) Len() int { return len(r.vars) }

// Lookup returns the variable registered under key exactly.
func (r *Registry) Lookup(key string) (*Variable, bool) {
	v, ok := r.byKey[key]
	return v, ok
}

// Find returns the variable standing for m, trying m's key and then the
// key of its adjoint.
func (r *Registry) Find(m monomial.Monomial) (*Variable, bool) {
	if v, ok := r.byKey[m.Key()]; ok {
		return v, true
	}
	v, ok := r.byKey[monomial.Conj(m).Key()]

	return v, ok
}

// Variables returns the variables in ID order.
func (r *Registry) Variables() []*Variable { return append([]*Variable(nil), r.vars...) }

// Keys returns the registered keys in ID order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.vars))
	for i, v := range r.vars {
		out[i] = v.Key
	}

	return out
}

// Assign returns an assignment reading values[v.ID] for every variable of r.
// Errors: ErrAssignmentLength when len(values) ≠ r.Len().
func (r *Registry) Assign(values []float64) (func(*Variable) float64, error) {
	if len(values) != len(r.vars) {
		return nil, fmt.Errorf("Assign: %d values for %d variables: %w", len(values), len(r.vars), ErrAssignmentLength)
	}
	cp := append([]float64(nil), values...)

	return func(v *Variable) float64 { return cp[v.ID] }, nil
}
