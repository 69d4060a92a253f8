// Package frontier provides the three frontier disciplines used by the
// search package: a FIFO Queue, a LIFO Stack and a min-cost PriorityQueue.
//
// Queue and Stack are thin typed adapters over the cookiejar collections and
// share the Frontier interface. PriorityQueue is a binary min-heap keyed by a
// float64 priority; equal priorities are ordered by a caller-supplied
// tie-break so runs are reproducible. It never deduplicates: pushing the same
// value twice keeps both entries (lazy deletion is left to the caller).
//
// Complexity:
//
//   - Queue, Stack: O(1) amortised Push/Pop.
//   - PriorityQueue: O(log n) Push/Pop.
package frontier
