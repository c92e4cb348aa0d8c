package matrix_test

import (
	"fmt"

	"github.com/NirBendov/symnmf/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleRowSums builds a diagonal degree matrix from row sums.
func ExampleRowSums() {
	a, _ := matrix.NewDenseFrom([][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})

	sums, _ := matrix.RowSums(a)
	d, _ := matrix.Diag(sums)
	fmt.Print(d)

	// Output:
	// [3, 0, 0]
	// [0, 4, 0]
	// [0, 0, 5]
}

// ExampleSquareMul shows the shape guard on non-square operands.
func ExampleSquareMul() {
	a, _ := matrix.NewDense(2, 3)
	_, err := matrix.SquareMul(a, a)
	fmt.Println(err != nil)

	// Output:
	// true
}
