// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/kosmos/matrix"
)

// ExampleMul shows that a strictly upper-triangular 3×3 matrix is
// nilpotent of index 3.
func ExampleMul() {
	n, _ := matrix.FromRows([][]int64{
		{0, 1, 2},
		{0, 0, 3},
		{0, 0, 0},
	})
	n2 := matrix.MustMul(n, n)
	n3 := matrix.MustMul(n2, n)
	fmt.Println(n2)
	fmt.Println(matrix.IsZero(n3))
	// Output:
	// [[0 0 3] [0 0 0] [0 0 0]]
	// true
}
