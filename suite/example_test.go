// SPDX-License-Identifier: MIT

package suite_test

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/suite"
)

func ExampleGroup() {
	add := op.NewBinary(op.Plus, func(a, b int) int { return (a + b) % 3 })
	neg := op.NewUnary(op.Minus, func(a int) int { return (3 - a) % 3 })
	dom := law.On(rapid.IntRange(0, 2), eq.Default[int](), nil)

	g, err := suite.Group(suite.GroupOps[int]{Op: add, Identity: 0, Inverse: neg}, dom)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)
	// Output:
	// Group (+)
	//   associativity (+)
	//   two-sided identity (+)
	//   invertibility (+)
	//   totality (+) (full)
	//   inverse involution (-) (full)
	//   two-sided cancellativity (+) (full)
	//   totality (-) (full)
}
