package dense

import (
	"fmt"

	"github.com/ib-77/densemul/pkg/num"
)

// CheckProduct returns num.ErrDimensionMismatch, wrapped with both sizes,
// unless a.Cols() == b.Rows().
func CheckProduct[T num.Number](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return fmt.Errorf("invalid matrix size: a.col-%d != b.row-%d: %w",
			a.cols, b.rows, num.ErrDimensionMismatch)
	}
	return nil
}

// Multiply computes a×b on the calling goroutine. The shape check runs
// before any allocation.
func Multiply[T num.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := CheckProduct(a, b); err != nil {
		return nil, err
	}

	data := make([]T, a.rows*b.cols)
	for i := 0; i < a.rows; i++ {
		row := a.Row(i)
		for j := 0; j < b.cols; j++ {
			v, err := num.Dot(row, b.Col(j))
			if err != nil {
				return nil, err
			}
			data[i*b.cols+j] = v
		}
	}

	return wrap(data, a.rows, b.cols), nil
}
