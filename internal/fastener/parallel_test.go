package fastener

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor_CoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 255, 256, 1000, 4097} {
		hits := make([]int32, n)
		ParallelFor(n, 64, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}
