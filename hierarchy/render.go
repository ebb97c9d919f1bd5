// SPDX-License-Identifier: MIT

package hierarchy

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes the monomial list and the symbolic moment matrix to w:
//
//	scenario=(2,2,2,2) depth=1 monomials=9
//	monomials:
//	0	(I; I)
//	...
//	gamma:
//	0	(I; I)	(0|0; I)	...
//
// Output depends only on (scenario, depth).
func (b *Builder) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := len(b.monomials)
	fmt.Fprintf(bw, "scenario=%s depth=%d monomials=%d\n", b.s, b.depth, n)
	bw.WriteString("monomials:\n")
	for i, m := range b.monomials {
		fmt.Fprintf(bw, "%d\t%s\n", i, m)
	}
	bw.WriteString("gamma:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "%d", i)
		for j := 0; j < n; j++ {
			bw.WriteByte('\t')
			bw.WriteString(b.gamma[i*n+j].Key())
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// RenderValues writes the evaluated matrix row by row followed by the
// variable table of reg.
func RenderValues(w io.Writer, vm *ValueMatrix, reg *Registry) error {
	bw := bufio.NewWriter(w)
	known, free := vm.Counts()
	fmt.Fprintf(bw, "size=%d known=%d free=%d variables=%d\n", vm.n, known, free, reg.Len())
	for i := 0; i < vm.n; i++ {
		fmt.Fprintf(bw, "%d", i)
		for j := 0; j < vm.n; j++ {
			bw.WriteByte('\t')
			bw.WriteString(vm.cells[i*vm.n+j].String())
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("variables:\n")
	for _, v := range reg.vars {
		fmt.Fprintf(bw, "%s\t%s\n", v, v.Key)
	}

	return bw.Flush()
}
