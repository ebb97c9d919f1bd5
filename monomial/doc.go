// Package monomial implements two-party NPA monomials: a pair of projector
// words (left for party A, right for party B) whose operators commute
// across parties.
//
// A Monomial stands for the joint moment ⟨ψ| L ⊗ R |ψ⟩. Only a handful of
// shapes have a value fixed by the observed distribution:
//
//	(I; I)           → 1
//	(0; 0)           → 0
//	(E(a|x); I)      → p_A(a|x)
//	(I; E(b|m))      → p_B(b|m)
//	(E(a|x); E(b|m)) → p(a,b|x,m)
//
// Every other monomial is a free variable of the semidefinite program;
// IsVariable separates the two classes and Evaluate resolves the first one
// through an Oracle.
package monomial
