// Package hierarchy builds the NPA moment (gamma) matrix of a two-party
// Bell scenario at a given hierarchy depth.
//
// 🚀 Pipeline:
//
//	New(scenario, depth)
//	  → monomials: every reduced product of ≤ depth single-event projectors,
//	    deduplicated in first-seen order (index 0 is always (I; I))
//	  → symbolic Γ[i][j] = conj(m_i) · m_j
//	MomentValueMatrix(oracle)
//	  → numeric cells for moments fixed by the distribution,
//	    shared *Variable cells for all others, and the Registry
//
// The value matrix is symmetric by construction: only the lower triangle
// is evaluated and mirrored. Two cells whose symbolic entries are adjoint
// to one another always carry the same *Variable.
//
// A Builder is immutable after New and safe for concurrent use; every
// MomentValueMatrix call gets a fresh Registry. Cache shares builders
// across callers.
//
// Cost grows combinatorially with depth and with NX·NA + NM·NB; callers
// must bound depth themselves (practical values are 1–4).
package hierarchy
