// Package metrics provides lock-free counters for session observability.
//
// Counters are stored in cache-line-padded uint64 slots and incremented
// atomically. The write path is allocation-free; Snapshot produces a deep copy
// for exporters and tests.
//
// # What this package must NOT do
//
//   - Perform I/O or network calls.
//   - Import the root package or any sibling package.
//   - Expose global metric registries.
package metrics
