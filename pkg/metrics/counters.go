package metrics

import "errors"

var ErrUnknownKey = errors.New("metrics: key not found")

// Counters is a table of named integers safe for concurrent use.
// Inc and Dec return the value after the update.
type Counters interface {
	Inc(key string) (int64, error)
	Dec(key string) (int64, error)
	Snapshot() map[string]int64
}
