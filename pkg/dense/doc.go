// Package dense provides an immutable row-major Matrix and the sequential
// reference multiplication.
//
// A Matrix never changes after construction. Row and Col hand out read-only
// num.Vector values, so the same Matrix can be read from many goroutines
// without locking. Multiply is the correctness baseline for the parallel
// engine in package engine.
//
// Textual form:
//
//	{1 2 3, 4 5 6}
//
// elements of a row separated by a space, rows by ", ", wrapped in braces.
package dense
