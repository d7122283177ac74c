package metrics

import (
	"fmt"
	"sync/atomic"
)

// AtomicTable holds one atomic counter per key fixed at construction.
// The map itself is never written after NewAtomicTable returns.
type AtomicTable struct {
	table map[string]*atomic.Int64
}

func NewAtomicTable(keys ...string) *AtomicTable {
	table := make(map[string]*atomic.Int64, len(keys))
	for _, k := range keys {
		table[k] = new(atomic.Int64)
	}
	return &AtomicTable{table: table}
}

func (t *AtomicTable) Inc(key string) (int64, error) {
	return t.add(key, 1)
}

func (t *AtomicTable) Dec(key string) (int64, error) {
	return t.add(key, -1)
}

func (t *AtomicTable) add(key string, delta int64) (int64, error) {
	c, ok := t.table[key]
	if !ok {
		return 0, fmt.Errorf("key %s: %w", key, ErrUnknownKey)
	}
	return c.Add(delta), nil
}

// Snapshot copies the current values. Counters updated while the copy is
// taken may be read before or after the update.
func (t *AtomicTable) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(t.table))
	for k, c := range t.table {
		out[k] = c.Load()
	}
	return out
}
