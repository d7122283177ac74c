package dense

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChecked(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		data       []int
		rows, cols int
		wantErr    bool
	}{
		{"exact", []int{1, 2, 3, 4, 5, 6}, 2, 3, false},
		{"empty", nil, 0, 0, false},
		{"zero rows", nil, 0, 4, false},
		{"short buffer", []int{1, 2, 3}, 2, 2, true},
		{"long buffer", []int{1, 2, 3, 4, 5}, 2, 2, true},
		{"negative rows", nil, -1, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewChecked(tc.data, tc.rows, tc.cols)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrBadShape)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
		})
	}
}

func TestNew_CopiesBuffer(t *testing.T) {
	t.Parallel()

	src := []int{1, 2, 3, 4}
	m := New(src, 2, 2)
	src[0] = 42

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	data := m.Data()
	data[3] = 42
	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	m := New([]int{1, 2, 3, 4}, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
	}
}

func TestRowCol(t *testing.T) {
	t.Parallel()

	m := New([]int{1, 2, 3, 4, 5, 6}, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, m.Row(0).Values())
	assert.Equal(t, []int{4, 5, 6}, m.Row(1).Values())
	assert.Equal(t, []int{1, 4}, m.Col(0).Values())
	assert.Equal(t, []int{2, 5}, m.Col(1).Values())
	assert.Equal(t, []int{3, 6}, m.Col(2).Values())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := New([]int{1, 2, 3, 4}, 2, 2)
	assert.True(t, a.Equal(New([]int{1, 2, 3, 4}, 2, 2)))
	assert.False(t, a.Equal(New([]int{1, 2, 3, 5}, 2, 2)))
	assert.False(t, a.Equal(New([]int{1, 2, 3, 4}, 1, 4)))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{1 2 3, 4 5 6}", New([]int{1, 2, 3, 4, 5, 6}, 2, 3).String())
	assert.Equal(t, "{7 10, 15 22}", New([]int{7, 10, 15, 22}, 2, 2).String())
	assert.Equal(t, "{1, 2, 3}", New([]int{1, 2, 3}, 3, 1).String())
	assert.Equal(t, "{}", New([]int{}, 0, 0).String())
	assert.Equal(t, "{0.5 1.25}", New([]float64{0.5, 1.25}, 1, 2).String())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	m := New([]int{22, 28, 49, 64}, 2, 2)

	assert.Equal(t, "{22 28, 49 64}", fmt.Sprintf("%v", m))
	assert.Equal(t, "{22 28, 49 64}", fmt.Sprintf("%s", m))
	assert.Equal(t, "Matrix(row=2, col=2, {22 28, 49 64})", fmt.Sprintf("%+v", m))
	assert.Equal(t, "Matrix(row=2, col=2, {22 28, 49 64})", fmt.Sprintf("%#v", m))

	assert.Equal(t, "{22 28, 49 64}", fmt.Sprintf("%d", m))
	assert.Equal(t, "{16 1c, 31 40}", fmt.Sprintf("%x", m))
	assert.Equal(t, "{  22   28,   49   64}", fmt.Sprintf("%4d", m))

	f := New([]float64{1, 2.5, 0.25, 4}, 2, 2)
	assert.Equal(t, "{1.00 2.50, 0.25 4.00}", fmt.Sprintf("%.2f", f))
	assert.Equal(t, "{1.000000e+00 2.500000e+00, 2.500000e-01 4.000000e+00}", fmt.Sprintf("%e", f))
}

func TestConstructors_DoNotAlias(t *testing.T) {
	t.Parallel()

	src := []int{7, 10, 15, 22}
	unchecked := New(src, 2, 2)
	checked, err := NewChecked(src, 2, 2)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, "{7 10, 15 22}", unchecked.String())
	assert.Equal(t, "{7 10, 15 22}", checked.String())

	product, err := Multiply(New([]int{1, 2, 3, 4}, 2, 2), New([]int{1, 2, 3, 4}, 2, 2))
	require.NoError(t, err)
	data := product.Data()
	data[0] = 99
	assert.Equal(t, "{7 10, 15 22}", product.String())
}
