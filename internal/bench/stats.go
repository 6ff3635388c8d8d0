package bench

import (
	"sort"
	"time"
)

// computeStats summarizes the non-GC-affected samples. It returns nil
// when no clean sample exists, so callers can distinguish "no data"
// from "zero duration".
func computeStats(samples []Sample) *Stats {
	var clean []Sample
	for _, s := range samples {
		if !s.GCHit {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		return nil
	}

	durs := make([]time.Duration, len(clean))
	var sum time.Duration
	var alloc uint64
	for i, s := range clean {
		durs[i] = s.Elapsed
		sum += s.Elapsed
		alloc += s.AllocBytes
	}
	sort.Slice(durs, func(i, j int) bool { return durs[i] < durs[j] })

	return &Stats{
		Min:        durs[0],
		Median:     median(durs),
		Mean:       sum / time.Duration(len(durs)),
		Max:        durs[len(durs)-1],
		AllocBytes: alloc / uint64(len(clean)),
	}
}

func median(sorted []time.Duration) time.Duration {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
