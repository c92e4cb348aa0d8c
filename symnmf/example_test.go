package symnmf_test

import (
	"fmt"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/NirBendov/symnmf/symnmf"
)

// ExampleOptimize runs the update on a 1×1 problem whose solution is H = 2.
func ExampleOptimize() {
	w, _ := matrix.NewDenseFrom([][]float64{{4}})
	h, _ := matrix.NewDenseFrom([][]float64{{1}})

	cfg := symnmf.DefaultConfig()
	cfg.OnIteration = func(iter int, delta float64) {
		if iter <= 2 {
			fmt.Printf("iter %d: delta %.4f\n", iter, delta)
		}
	}
	res, err := symnmf.Optimize(h, w, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := h.At(0, 0)
	fmt.Printf("converged=%v h=%.2f\n", res.Converged, v)

	// Output:
	// iter 1: delta 2.2500
	// iter 2: delta 0.2025
	// converged=true h=2.00
}
