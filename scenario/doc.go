// Package scenario describes a two-party Bell scenario: the number of
// outcomes and measurement settings available to each party.
//
// A Scenario is the tuple (NA, NB, NX, NM):
//
//	NA – outcomes of party A      NX – settings of party A
//	NB – outcomes of party B      NM – settings of party B
//
// Every other package (word, monomial, distribution, hierarchy) indexes
// events and probabilities over these ranges, so Validate is the single
// gate that rejects malformed tuples before any allocation happens.
package scenario
