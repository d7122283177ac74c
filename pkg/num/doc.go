// Package num provides the numeric element constraint shared by the engine
// and a fixed-length Vector with its dot product.
//
// Arithmetic is exactly the element type's own: no overflow checks, no NaN
// handling, no rounding control.
//
// ErrDimensionMismatch is the single error kind of the engine. Packages
// built on num wrap it, so errors.Is(err, num.ErrDimensionMismatch) holds for
// every shape error they return.
package num
