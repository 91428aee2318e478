package philox

import (
	"runtime"
	"sync"

	"github.com/zeebo/philox/internal/debug"
	"github.com/zeebo/philox/internal/mon"
)

var fillTimes mon.Histogram // timing for each fill chunk

// FillStats describes the chunks run by the Fill methods.
type FillStats struct {
	Chunks  int64   // chunks completed
	Running int64   // chunks currently executing
	Average float64 // average nanoseconds of the most recent chunks
}

// Stats returns timing information about the chunks run by Fill.
func Stats() FillStats {
	return FillStats{
		Chunks:  fillTimes.Total(),
		Running: fillTimes.Current(),
		Average: fillTimes.Average(),
	}
}

// Fill writes the blocks for counters start, start+1, ... into dst,
// truncating the final block if len(dst) is not a multiple of 2. The blocks
// are split between workers goroutines, or GOMAXPROCS if workers < 1. The
// output does not depend on the number of workers.
func (p T2[W]) Fill(start Counter2[W], dst []W, workers int) {
	fill(len(dst), len(start), workers, func(lo, hi int) {
		ctr := start
		ctr.Add(uint64(lo))
		for b := lo; b < hi; b++ {
			out := p.Generate(ctr)
			copy(dst[b*len(out):], out[:])
			ctr.Add(1)
		}
	})
}

// Fill writes the blocks for counters start, start+1, ... into dst,
// truncating the final block if len(dst) is not a multiple of 4. The blocks
// are split between workers goroutines, or GOMAXPROCS if workers < 1. The
// output does not depend on the number of workers.
func (p T4[W]) Fill(start Counter4[W], dst []W, workers int) {
	fill(len(dst), len(start), workers, func(lo, hi int) {
		ctr := start
		ctr.Add(uint64(lo))
		for b := lo; b < hi; b++ {
			out := p.Generate(ctr)
			copy(dst[b*len(out):], out[:])
			ctr.Add(1)
		}
	})
}

// fill partitions the blocks covering words into contiguous chunks and calls
// fn with each chunk's block range [lo, hi) on its own goroutine.
func fill(words, lanes, workers int, fn func(lo, hi int)) {
	blocks := (words + lanes - 1) / lanes
	if blocks == 0 {
		return
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > blocks {
		workers = blocks
	}
	per := (blocks + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < blocks; lo += per {
		hi := lo + per
		if hi > blocks {
			hi = blocks
		}
		debug.Assert("fill chunk in range", func() bool { return lo < hi && hi*lanes-words < lanes })

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()

			timer := fillTimes.Start()
			fn(lo, hi)
			timer.Stop()
		}(lo, hi)
	}
	wg.Wait()
}
