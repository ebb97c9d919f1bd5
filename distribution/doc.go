// Package distribution holds a joint probability table p(a,b|x,m) over a
// two-party Bell scenario and answers the joint and marginal queries the
// NPA hierarchy evaluates known moments against.
//
// A Distribution implements monomial.Oracle. Marginals weight the other
// party's settings with a per-setting prior:
//
//	p_A(a|x) = Σ_b Σ_m prior_B[m] · p(a,b|x,m)
//	p_B(b|m) = Σ_a Σ_x prior_A[x] · p(a,b|x,m)
//
// The default prior is uniform (½ per setting in the CHSH scenario). Use
// WithPrior to supply another one.
//
// Construction never fails on a non-normalised table: the mismatch is
// logged once through slog at Warn and kept as a *NormalizationWarning
// available from Warning.
package distribution
