// SPDX-License-Identifier: MIT

package matrix

// Partition splits Count consecutive indices starting at Offset into
// Threads contiguous ranges. Every worker gets PerThread indices and the
// first ModThread workers get one more. When there are more workers than
// indices the tail workers get empty ranges.
//
// A Partition is a value: engines compute it fresh for every call (and the LU
// engine for every pivot step) and pass it around by copy.
type Partition struct {
	Offset    int // first index covered
	Count     int // number of indices covered
	Threads   int // number of workers (>= 1)
	PerThread int // max(1, Count/Threads)
	ModThread int // indices left over after PerThread*Threads, spread over the first workers
}

// NewPartition computes the partition of [offset, offset+count) among
// threads workers. threads < 1 is treated as 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewPartition(offset, count, threads int) Partition {
	threads = max(threads, 1)
	count = max(count, 0)
	per := max(1, count/threads)

	return Partition{
		Offset:    offset,
		Count:     count,
		Threads:   threads,
		PerThread: per,
		ModThread: count - min(per*threads, count),
	}
}

// Range returns the half-open index range [start, end) owned by worker.
// Ranges of distinct workers never overlap and together cover the partition.
//
// Complexity:
//   - Time O(1), Space O(1).
func (p Partition) Range(worker int) (start, end int) {
	limit := p.Offset + p.Count
	start = p.Offset + p.PerThread*worker + min(p.ModThread, worker)
	end = start + p.PerThread
	if worker < p.ModThread {
		end++
	}

	return min(start, limit), min(end, limit)
}
