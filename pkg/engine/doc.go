// Package engine multiplies dense matrices on a fixed pool of workers.
//
// Every output cell k = i*b.Cols()+j becomes one task carrying row i of a and
// column j of b. Task k goes to worker k mod W, so a given cell always lands
// on the same worker for given shapes. The caller's goroutine is the only
// writer of the result buffer: it waits for each reply in the order the
// tasks were issued and stores the value at the index the reply carries.
//
// Shape errors are reported before any worker starts. While waiting, the
// caller also watches for a failed worker, the context, and an optional
// per-reply timeout, so a reply that will never come turns into an error
// instead of a hang.
package engine
