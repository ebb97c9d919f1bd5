// Package word implements the single-party projector-word algebra used by
// the NPA hierarchy.
//
// A Word is one of three variants:
//
//	Identity  – the neutral element 𝟙 (zero value of Word)
//	Null      – the absorbing element 0
//	Sequence  – an ordered product E(a₁|x₁)·E(a₂|x₂)·…·E(aₖ|xₖ)
//
// where E(a|x) is the projector onto outcome a of measurement setting x.
// Order is significant: projectors of different settings do not commute.
//
// Concat applies the projector reduction rules exactly once at the
// boundary of two already-reduced operands:
//
//	E(a|x)·E(a|x) = E(a|x)        (idempotent)
//	E(a|x)·E(a'|x) = 0, a ≠ a'    (orthogonal outcomes of one setting)
//	E(a|x)·E(b|y)  kept, x ≠ y    (plain append)
//
// Conj reverses the sequence (projectors are Hermitian). Words are
// immutable values; every operation returns a new Word.
package word
