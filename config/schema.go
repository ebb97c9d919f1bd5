// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const schemaSource = `
#Cell: {
	a: int & >=0
	b: int & >=0
	x: int & >=0
	m: int & >=0
	p: number & >=0 & <=1
}

#Problem: {
	scenario: {
		na: int & >=1
		nb: int & >=1
		nx: int & >=1
		nm: int & >=1
	}
	depth:    int & >=1
	epsilon?: number & >=0
	prior?: {
		a?: [...(number & >=0)]
		b?: [...(number & >=0)]
	}
	table?: [...#Cell]
}
`

// validateSchema unifies p with #Problem and requires a concrete result.
// A fresh cue.Context is used per call: contexts are not safe for
// concurrent use.
func validateSchema(p *Problem) error {
	ctx := cuecontext.New()
	root := ctx.CompileString(schemaSource)
	if err := root.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	schema := root.LookupPath(cue.ParsePath("#Problem"))

	doc := ctx.Encode(p)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	return schema.Unify(doc).Validate(cue.Concrete(true))
}
