package metrics

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// StripedTable is a counter map sharded over cmap.SHARD_COUNT independently
// locked stripes, so updates to keys in different stripes do not contend.
// Keys appear on first use.
type StripedTable struct {
	values cmap.ConcurrentMap[string, int64]
}

func NewStripedTable() *StripedTable {
	return &StripedTable{values: cmap.New[int64]()}
}

func (t *StripedTable) Inc(key string) (int64, error) {
	return t.add(key, 1), nil
}

func (t *StripedTable) Dec(key string) (int64, error) {
	return t.add(key, -1), nil
}

// add updates key under its stripe lock and returns the stored value.
func (t *StripedTable) add(key string, delta int64) int64 {
	return t.values.Upsert(key, delta, func(exists bool, current, delta int64) int64 {
		if !exists {
			return delta
		}
		return current + delta
	})
}

// Snapshot copies every stripe in turn; it is not a single atomic cut.
func (t *StripedTable) Snapshot() map[string]int64 {
	return t.values.Items()
}
