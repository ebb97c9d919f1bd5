// Package npa builds the inputs of the NPA hierarchy: the semidefinite
// relaxations that bound the correlations two parties can produce in a
// Bell experiment.
//
// 🚀 Pipeline:
//
//	scenario.Scenario(NA, NB, NX, NM)
//	  → word/monomial    projector words and their reduction algebra
//	  → hierarchy.New    deduplicated monomials + symbolic Γ = conj(m_i)·m_j
//	  → distribution     p(a,b|x,m), marginals, CHSH, canonical boxes
//	  → MomentValueMatrix numeric cells + shared free variables (Registry)
//	  → matrix           dense storage and Jacobi eigenvalues for PSD checks
//
// Under the hood the module is organized as:
//
//	scenario/     Bell scenario tuple and party enum
//	word/         single-party projector words (Identity | Null | Sequence)
//	monomial/     party pairs, adjoint, evaluation against an Oracle
//	distribution/ joint tables, setting priors, normalisation diagnostics
//	hierarchy/    monomial generation, moment matrices, builder cache
//	matrix/       dense symmetric matrices and eigen decomposition
//	config/       YAML problem files validated with CUE
//
// Solving the semidefinite program is out of scope: callers hand the value
// matrix and registry to a solver of their choice.
//
//	go get github.com/katalvlaran/npa
package npa
