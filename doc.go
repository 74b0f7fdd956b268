// Package clock implements a [Cache] using the CLOCK (second-chance) replacement algorithm.
//
// CLOCK approximates LRU with a circular scan and a single reference bit
// per slot instead of a fully ordered recency list, trading a small loss
// of recency precision for O(1) accesses with no relinking on every hit.
// The algorithm was first described in the [Multics paging experiment].
//
// Glossary and invariants:
//
//   - Slot
//
//     One cell of the fixed-size arena. Holds an occupancy flag,
//     a reference bit, and (while occupied) a key-value pair.
//     Slots are allocated once at construction and reused for
//     the cache's lifetime.
//
//   - Reference bit
//
//     Set whenever the entry is accessed: on every Get hit, on Set of
//     a resident key, and on insertion. Cleared only when the clock
//     hand passes over the slot without evicting it.
//
//   - Clock hand
//
//     The cursor marking the next slot an eviction sweep examines.
//     Always within [0, capacity); advances only during sweeps, and by
//     exactly one step past the slot it ultimately evicts.
//
//   - Eviction sweep
//
//     The scan that frees exactly one slot for a new entry. Referenced
//     slots under the hand are given a second chance (bit cleared, hand
//     advanced); the first unreferenced slot in hand order is the victim.
//     Every referenced slot is cleared before the hand moves past it, so
//     the sweep terminates within one clearing revolution plus selection.
//
//   - Index
//
//     Maps each live key to the slot position holding it. For every
//     occupied slot i with key k the index maps k to i, and every index
//     entry's target slot is occupied with that exact key; all mutation
//     paths update both before returning.
//
// The cache is a purely sequential structure: no internal locking,
// no I/O, no background work. Concurrent access must be guarded by
// the caller.
//
// [Multics paging experiment]: http://multicians.org/paging-experiment.pdf
package clock
