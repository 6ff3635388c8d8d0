package bench

import "time"

// Candidate is one named operation under benchmark comparison.
// The operation's return value is used only for equivalence checking
// between candidates; it is never inspected otherwise.
type Candidate struct {
	Name string
	Fn   func() (any, error)
}

// Func is a convenience constructor for a Candidate.
func Func(name string, fn func() (any, error)) Candidate {
	return Candidate{Name: name, Fn: fn}
}

// Sample is one timed execution of a Candidate.
type Sample struct {
	Elapsed    time.Duration `json:"elapsed_ns"`
	AllocBytes uint64        `json:"alloc_bytes"`
	GCHit      bool          `json:"gc_hit"` // a GC cycle completed during this iteration
}

// Stats holds summary statistics over the non-GC-affected samples of one
// candidate. Elapsed statistics are wall-clock durations.
type Stats struct {
	Min        time.Duration `json:"min_ns"`
	Median     time.Duration `json:"median_ns"`
	Mean       time.Duration `json:"mean_ns"`
	Max        time.Duration `json:"max_ns"`
	AllocBytes uint64        `json:"alloc_bytes"`
}

// Result aggregates all samples for one candidate within one Mark call.
// Stats is nil when every sample was GC-affected; callers must treat
// that as "no statistics available", not as zeroes.
type Result struct {
	Name       string   `json:"name"`
	Samples    []Sample `json:"samples"`
	Stats      *Stats   `json:"stats,omitempty"`
	Iterations int      `json:"iterations"`
	GCAffected int      `json:"gc_affected"`
}

// Options controls the execution loop of Mark.
type Options struct {
	// MinTime is the cumulative wall-clock budget per candidate. Once the
	// summed elapsed time of a candidate's samples meets or exceeds it,
	// the loop stops.
	MinTime time.Duration
	// MaxIterations is a hard cap on timed iterations per candidate.
	MaxIterations int
	// CheckEquivalence compares every candidate's output against the
	// first candidate's after all loops complete.
	CheckEquivalence bool
}

// DefaultOptions mirrors the config defaults used by the CLI.
func DefaultOptions() Options {
	return Options{
		MinTime:          500 * time.Millisecond,
		MaxIterations:    10000,
		CheckEquivalence: true,
	}
}
