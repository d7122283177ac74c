package dense

import (
	"fmt"

	"github.com/ib-77/densemul/pkg/num"
)

// Matrix is a rows×cols matrix stored row-major in a flat buffer.
// len(data) == rows*cols holds for every Matrix built by NewChecked or
// returned by a multiplication.
type Matrix[T num.Number] struct {
	data []T
	rows int
	cols int
}

// New copies data into a rows×cols matrix. It does not check the buffer
// length; a buffer that disagrees with rows*cols gives a matrix whose
// accessors may panic. Use NewChecked for untrusted input.
func New[T num.Number](data []T, rows, cols int) *Matrix[T] {
	owned := make([]T, len(data))
	copy(owned, data)
	return &Matrix[T]{data: owned, rows: rows, cols: cols}
}

// NewChecked is New with the shape validated first.
func NewChecked[T num.Number](data []T, rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("rows=%d cols=%d: %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("len(data)=%d != %d*%d: %w", len(data), rows, cols, ErrBadShape)
	}
	return New(data, rows, cols), nil
}

// wrap adopts data without copying. Only for buffers nobody else holds.
func wrap[T num.Number](data []T, rows, cols int) *Matrix[T] {
	return &Matrix[T]{data: data, rows: rows, cols: cols}
}

func (m *Matrix[T]) Rows() int {
	return m.rows
}

func (m *Matrix[T]) Cols() int {
	return m.cols
}

// At returns the element at (i, j).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	return m.data[i*m.cols+j], nil
}

// Data returns a copy of the row-major buffer.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// Row returns row i as a view over the contiguous range [i*cols, (i+1)*cols).
func (m *Matrix[T]) Row(i int) num.Vector[T] {
	start := i * m.cols
	return num.View(m.data[start : start+m.cols : start+m.cols])
}

// Col returns column j, every cols-th element starting at offset j.
func (m *Matrix[T]) Col(j int) num.Vector[T] {
	col := make([]T, 0, m.rows)
	if m.cols == 0 {
		return num.View(col)
	}
	for k := j; k < len(m.data); k += m.cols {
		col = append(col, m.data[k])
	}
	return num.View(col)
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for i, x := range m.data {
		if x != other.data[i] {
			return false
		}
	}
	return true
}
