// Package solo provides synchronous helpers over a single rop.Result:
// constructing one, running a fallible step on it, and collapsing it.
package solo
