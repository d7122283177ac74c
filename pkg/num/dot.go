package num

import "fmt"

// Dot returns the sum of a[i]*b[i], folded from the zero value in index
// order. Two empty vectors give zero.
func Dot[T Number](a, b Vector[T]) (T, error) {
	var sum T
	if len(a.data) != len(b.data) {
		return sum, fmt.Errorf("invalid vector size: a.len-%d != b.len-%d: %w",
			len(a.data), len(b.data), ErrDimensionMismatch)
	}

	for i, x := range a.data {
		sum += x * b.data[i]
	}
	return sum, nil
}
