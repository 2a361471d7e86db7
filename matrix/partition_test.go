// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvdet/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewPartition_Fields(t *testing.T) {
	p := matrix.NewPartition(2, 7, 3)
	require.Equal(t, matrix.Partition{Offset: 2, Count: 7, Threads: 3, PerThread: 2, ModThread: 1}, p)

	// more workers than indices: one index each, nothing left over
	p = matrix.NewPartition(0, 3, 5)
	require.Equal(t, 1, p.PerThread)
	require.Equal(t, 0, p.ModThread)

	// clamped worker count
	p = matrix.NewPartition(0, 4, 0)
	require.Equal(t, 1, p.Threads)
	require.Equal(t, 4, p.PerThread)
}

func TestPartition_Range(t *testing.T) {
	p := matrix.NewPartition(0, 5, 2)
	s, e := p.Range(0)
	require.Equal(t, [2]int{0, 3}, [2]int{s, e})
	s, e = p.Range(1)
	require.Equal(t, [2]int{3, 5}, [2]int{s, e})

	p = matrix.NewPartition(1, 3, 5)
	want := [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 4}, {4, 4}}
	for w, r := range want {
		s, e := p.Range(w)
		require.Equal(t, r, [2]int{s, e}, "worker %d", w)
	}

	p = matrix.NewPartition(4, 0, 3)
	for w := 0; w < 3; w++ {
		s, e := p.Range(w)
		require.Equal(t, s, e)
	}
}

// Ranges are contiguous, ordered, disjoint and cover [Offset, Offset+Count).
func TestPartition_CoversExactly(t *testing.T) {
	for _, offset := range []int{0, 3} {
		for count := 0; count <= 20; count++ {
			for threads := 1; threads <= 16; threads++ {
				t.Run(fmt.Sprintf("o=%d/c=%d/k=%d", offset, count, threads), func(t *testing.T) {
					p := matrix.NewPartition(offset, count, threads)
					next := offset
					for w := 0; w < threads; w++ {
						s, e := p.Range(w)
						require.LessOrEqual(t, s, e)
						if s < e {
							require.Equal(t, next, s, "worker %d leaves a gap or overlaps", w)
							next = e
						}
					}
					require.Equal(t, offset+count, next)
				})
			}
		}
	}
}
