package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleMul multiplies two 2×2 matrices and prints the rendered result.
func ExampleMul() {
	a, _ := matrix.NewDense(2, 2, [][]float64{{1, 2}, {3, 4}})

	c, err := matrix.Mul(a, a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// 7 10
	// 15 22
}

// ExampleDense_Transpose shows that transposing allocates a new matrix.
func ExampleDense_Transpose() {
	a, _ := matrix.NewDense(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})

	fmt.Print(a.Transpose())
	fmt.Print(a)

	// Output:
	// 1 4
	// 2 5
	// 3 6
	// 1 2 3
	// 4 5 6
}

// ExampleMax searches a vector; ties keep the first occurrence.
func ExampleMax() {
	v, _ := matrix.NewVector(5, 9, 9)

	hi, _ := matrix.Max(v)
	lo, _ := matrix.Min(v)
	fmt.Println(hi, lo)

	// Output:
	// 9 5
}
