package bwm

import (
	"golang.org/x/sync/errgroup"
)

const chunksPerWorker = 4

// parallelFor runs fn over [0, n) in contiguous chunks on at most workers goroutines.
func parallelFor(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers = min(workers, n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := max(1, (n+workers*chunksPerWorker-1)/(workers*chunksPerWorker))

	eg := new(errgroup.Group)
	eg.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		eg.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	eg.Wait()
}

func eachChannel(fn func(ch int)) {
	eg := new(errgroup.Group)
	for ch := 0; ch < numChannels; ch += 1 {
		eg.Go(func() error {
			fn(ch)
			return nil
		})
	}
	eg.Wait()
}
