package bench

import (
	"runtime"
	"time"
)

// ProgressFunc is called after each completed iteration. It must be
// cheap; it runs between timed iterations, never inside one.
type ProgressFunc func(candidate string, iteration int, sample Sample)

// Mark runs every candidate's operation repeatedly and returns one
// Result per candidate, in input order.
//
// Each candidate executes once unconditionally as a warm-up; that run
// also captures the output value used for equivalence checking. Timed
// iterations then continue until the cumulative elapsed time reaches
// opts.MinTime or the iteration count reaches opts.MaxIterations,
// whichever happens first, with a floor of one timed iteration.
//
// Candidates run strictly sequentially. An iteration during which a GC
// cycle completed is recorded but excluded from summary statistics.
//
// On an equivalence mismatch or a candidate error, Mark returns no
// results at all.
func Mark(candidates []Candidate, opts Options) ([]Result, error) {
	return mark(candidates, opts, nil)
}

// MarkWithProgress is Mark with a per-iteration progress callback, used
// by the sweep TUI and the metrics exporter.
func MarkWithProgress(candidates []Candidate, opts Options, progress ProgressFunc) ([]Result, error) {
	return mark(candidates, opts, progress)
}

func mark(candidates []Candidate, opts Options, progress ProgressFunc) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, &ConfigurationError{Reason: "no candidates"}
	}
	if opts.MinTime <= 0 {
		return nil, &ConfigurationError{Reason: "min_time must be positive"}
	}
	if opts.MaxIterations <= 0 {
		return nil, &ConfigurationError{Reason: "max_iterations must be positive"}
	}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c.Fn == nil {
			return nil, &ConfigurationError{Reason: "candidate " + c.Name + " has no operation"}
		}
		if _, dup := seen[c.Name]; dup {
			return nil, &ConfigurationError{Reason: "duplicate candidate name " + c.Name}
		}
		seen[c.Name] = struct{}{}
	}

	results := make([]Result, 0, len(candidates))
	outputs := make([]any, 0, len(candidates))

	for _, c := range candidates {
		// Warm-up run, also captures the equivalence reference output.
		out, err := c.Fn()
		if err != nil {
			return nil, &ExecutionError{Candidate: c.Name, Err: err}
		}
		outputs = append(outputs, out)

		res := Result{Name: c.Name}
		var cumulative time.Duration
		var ms runtime.MemStats

		for {
			runtime.ReadMemStats(&ms)
			allocBefore, gcBefore := ms.TotalAlloc, ms.NumGC

			start := time.Now()
			_, err := c.Fn()
			elapsed := time.Since(start)

			if err != nil {
				return nil, &ExecutionError{Candidate: c.Name, Err: err}
			}

			runtime.ReadMemStats(&ms)
			s := Sample{
				Elapsed:    elapsed,
				AllocBytes: ms.TotalAlloc - allocBefore,
				GCHit:      ms.NumGC > gcBefore,
			}
			res.Samples = append(res.Samples, s)
			res.Iterations++
			if s.GCHit {
				res.GCAffected++
			}
			cumulative += elapsed

			if progress != nil {
				progress(c.Name, res.Iterations, s)
			}

			if cumulative >= opts.MinTime || res.Iterations >= opts.MaxIterations {
				break
			}
		}

		results = append(results, res)
	}

	if opts.CheckEquivalence {
		ref := outputs[0]
		for i := 1; i < len(outputs); i++ {
			if eq, reason := outputsEqual(ref, outputs[i]); !eq {
				return nil, &EquivalenceError{
					Reference: candidates[0].Name,
					Offender:  candidates[i].Name,
					Reason:    reason,
				}
			}
		}
	}

	for i := range results {
		results[i].Stats = computeStats(results[i].Samples)
	}

	return results, nil
}
