package engine

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/ib-77/densemul/pkg/dense"
)

func BenchmarkMultiply(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	for _, size := range []int{16, 64} {
		x := randomMatrix(r, size, size)
		y := randomMatrix(r, size, size)

		b.Run(fmt.Sprintf("sequential/%d", size), func(b *testing.B) {
			for b.Loop() {
				if _, err := dense.Multiply(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
		for _, w := range []int{1, 4, 8} {
			b.Run(fmt.Sprintf("parallel/%d/w%d", size, w), func(b *testing.B) {
				for b.Loop() {
					if _, err := Multiply(x, y, w); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
