package dense

import (
	"fmt"
	"strings"
)

// String renders the matrix as {a b, c d}.
func (m *Matrix[T]) String() string {
	return m.render("%v")
}

// render writes every element with the element format elem.
func (m *Matrix[T]) render(elem string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, elem, m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteByte(' ')
			}
		}
		if i < m.rows-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// Format prints String for %v and %s, and the shape-tagged debug form
// Matrix(row=R, col=C, {...}) for %+v and %#v. Any other verb, with its
// flags, width and precision, is applied to each element: %.2f gives
// {1.00 2.00, 3.00 4.00}.
func (m *Matrix[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			fmt.Fprintf(f, "Matrix(row=%d, col=%d, %s)", m.rows, m.cols, m.String())
			return
		}
		fallthrough
	case 's':
		_, _ = f.Write([]byte(m.String()))
	default:
		_, _ = f.Write([]byte(m.render(fmt.FormatString(f, verb))))
	}
}
