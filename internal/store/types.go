package store

import (
	"time"

	"benchpress/internal/bench"
	"benchpress/internal/sweep"
)

// Record is one flattened summary row of a saved run: candidate ×
// grid point. Sample-level data is not persisted; history exists for
// regression tracking, not replotting.
type Record struct {
	Params     string        `json:"params,omitempty"`
	Candidate  string        `json:"candidate"`
	Median     time.Duration `json:"median_ns"`
	Mean       time.Duration `json:"mean_ns"`
	Min        time.Duration `json:"min_ns"`
	Max        time.Duration `json:"max_ns"`
	AllocBytes uint64        `json:"alloc_bytes"`
	Iterations int           `json:"iterations"`
	GCAffected int           `json:"gc_affected"`
	// StatsAbsent marks rows whose every sample was GC-affected.
	StatsAbsent bool `json:"stats_absent,omitempty"`
}

// Key identifies a record across runs.
func (r Record) Key() string {
	if r.Params == "" {
		return r.Candidate
	}
	return r.Params + "/" + r.Candidate
}

// Run is one saved benchmark invocation.
type Run struct {
	Timestamp time.Time `json:"timestamp"`
	Workload  string    `json:"workload,omitempty"`
	Commit    string    `json:"commit,omitempty"` // Git commit hash
	Records   []Record  `json:"records"`
}

// Store is the persistence interface for benchmark history.
type Store interface {
	Save(run Run) error
	LoadLatest() (*Run, error)
	LoadAll() ([]Run, error)
	Close() error
}

// FlattenResults converts Mark output into records.
func FlattenResults(results []bench.Result) []Record {
	records := make([]Record, 0, len(results))
	for _, r := range results {
		records = append(records, flatten("", r))
	}
	return records
}

// FlattenSweep converts a sweep result into grid-tagged records.
func FlattenSweep(sr *sweep.SweepResult) []Record {
	records := make([]Record, 0, len(sr.Rows))
	for _, row := range sr.Rows {
		records = append(records, flatten(row.Point.Label(), row.Result))
	}
	return records
}

func flatten(params string, r bench.Result) Record {
	rec := Record{
		Params:     params,
		Candidate:  r.Name,
		Iterations: r.Iterations,
		GCAffected: r.GCAffected,
	}
	if r.Stats == nil {
		rec.StatsAbsent = true
		return rec
	}
	rec.Min = r.Stats.Min
	rec.Median = r.Stats.Median
	rec.Mean = r.Stats.Mean
	rec.Max = r.Stats.Max
	rec.AllocBytes = r.Stats.AllocBytes
	return rec
}
