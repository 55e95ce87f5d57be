package raster

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// defaultWorkers overrides the pool size used when a caller passes
// workers <= 0. Set once at startup from configuration.
var defaultWorkers int

// SetDefaultWorkers sets the process-wide default row-band pool size.
// n <= 0 restores the GOMAXPROCS default.
func SetDefaultWorkers(n int) {
	defaultWorkers = n
}

// ForEachRowBand partitions rows [0, height) into contiguous bands and runs fn
// on each band across a worker pool. Every stage's per-pixel math depends only
// on the input buffer, so banding is a throughput optimization with no effect
// on output. workers <= 0 selects the configured default, then GOMAXPROCS.
func ForEachRowBand(height, workers int, fn func(y0, y1 int)) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers
	var g errgroup.Group
	for y0 := 0; y0 < height; y0 += band {
		start := y0
		end := y0 + band
		if end > height {
			end = height
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	// Workers only run the supplied closure; there is nothing to fail.
	_ = g.Wait()
}
