// Package rop holds the Result type exchanged between producers and
// consumers: a value or an error, stamped with an id and a creation time.
//
// Subpackage solo lifts plain functions over a Result.
package rop
