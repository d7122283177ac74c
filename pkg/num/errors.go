package num

import "errors"

// ErrDimensionMismatch reports operands whose lengths or contraction
// dimensions disagree.
var ErrDimensionMismatch = errors.New("num: dimension mismatch")
