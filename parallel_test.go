package bwm

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor(t *testing.T) {
	tests := []struct {
		n, workers int
	}{
		{0, 4},
		{1, 4},
		{10, 1},
		{10, 3},
		{1000, 8},
	}
	for _, tc := range tests {
		t.Run("cover", func(tt *testing.T) {
			hits := make([]atomic.Int32, tc.n)
			parallelFor(tc.n, tc.workers, func(start, end int) {
				for i := start; i < end; i += 1 {
					hits[i].Add(1)
				}
			})
			for i := range hits {
				if v := hits[i].Load(); v != 1 {
					tt.Errorf("n=%d workers=%d index %d visited %d times", tc.n, tc.workers, i, v)
				}
			}
		})
	}
	t.Run("channels", func(tt *testing.T) {
		var seen [numChannels]atomic.Bool
		eachChannel(func(ch int) {
			seen[ch].Store(true)
		})
		for ch := range seen {
			if seen[ch].Load() != true {
				tt.Errorf("channel %d not visited", ch)
			}
		}
	})
}
