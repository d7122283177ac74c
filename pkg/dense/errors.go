package dense

import "errors"

var (
	// ErrBadShape is returned by NewChecked when the buffer length does not
	// equal rows*cols or a count is negative.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("dense: index out of range")
)
