package num

import (
	"fmt"
	"strings"
)

// Vector is a fixed-length sequence of T. It is never written after
// construction, so one Vector may be shared between goroutines.
type Vector[T Number] struct {
	data []T
}

// NewVector copies data into an owned buffer.
func NewVector[T Number](data []T) Vector[T] {
	owned := make([]T, len(data))
	copy(owned, data)
	return Vector[T]{data: owned}
}

// View wraps data without copying. The caller must not write to data while
// the Vector is in use.
func View[T Number](data []T) Vector[T] {
	return Vector[T]{data: data}
}

func (v Vector[T]) Len() int {
	return len(v.data)
}

func (v Vector[T]) At(i int) T {
	return v.data[i]
}

// Values returns a copy of the elements.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// String renders the vector as {1, 2, 3}.
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte('}')
	return sb.String()
}
