// Package metrics provides concurrent counter tables keyed by name.
//
// Two interchangeable implementations satisfy Counters:
//
//   - AtomicTable: a fixed key set chosen up front, one atomic integer per
//     key. Unknown keys are an error.
//   - StripedTable: keys appear on first use; the key space is split over
//     a number of independently locked shards.
//
// The engine uses a Counters value to count tasks per worker.
package metrics
