package hierarchy_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/npa/distribution"
	"github.com/katalvlaran/npa/hierarchy"
	"github.com/katalvlaran/npa/scenario"
)

// ExampleBuilder_MomentValueMatrix evaluates the CHSH depth-1 matrix
// against the uniform distribution.
func ExampleBuilder_MomentValueMatrix() {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	b, err := hierarchy.New(scenario.Binary(), 1, hierarchy.WithLogger(l))
	if err != nil {
		fmt.Println(err)
		return
	}
	d, _ := distribution.Uniform(scenario.Binary(), distribution.WithLogger(l))

	vm, reg, err := b.MomentValueMatrix(d)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, _ := vm.At(3, 1)
	fmt.Println(b.MonomialCount(), reg.Len())
	fmt.Println(c, c.Variable().Key)
	// Output:
	// 9 8
	// v0 (0|1 0|0; I)
}
