package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/corank/matrix"
)

// ExampleNewDenseFrom builds a dissimilarity matrix from literal rows and
// checks it before use.
func ExampleNewDenseFrom() {
	d, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(matrix.ValidateSquareNonNil(d), matrix.ValidateNonNegative(d))
	for i := 0; i < d.Rows(); i++ {
		row, _ := d.Row(i)
		fmt.Println(row)
	}

	// Output:
	// <nil> <nil>
	// [0 1 2]
	// [1 0 3]
	// [2 3 0]
}
