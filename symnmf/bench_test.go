package symnmf_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/NirBendov/symnmf/symnmf"
)

var sinkRes symnmf.Result

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{30, 60, 120} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, err := matrix.NewDense(n, 4)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < n; i++ {
				for j := 0; j < 4; j++ {
					_ = x.Set(i, j, math.Cos(float64(i*4+j))*3)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := symnmf.Factorize(x, 3, symnmf.DefaultConfig(), symnmf.DefaultSeed)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = f.Result
			}
		})
	}
}
