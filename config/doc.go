// Package config loads NPA problem files.
//
// A problem file is YAML:
//
//	scenario: {na: 2, nb: 2, nx: 2, nm: 2}
//	depth: 2
//	epsilon: 1e-9        # optional
//	prior:               # optional, per-setting weights
//	  b: [0.5, 0.5]
//	table:               # omitted cells are 0
//	  - {a: 0, b: 0, x: 0, m: 0, p: 0.5}
//
// Parse decodes strictly (unknown keys are errors), checks the document
// against the #Problem CUE schema, then checks every table cell against
// the declared scenario. Problem.Distribution and Problem.Builder turn a
// loaded file into the inputs of hierarchy evaluation.
package config
