package sweep

import (
	"fmt"

	"benchpress/internal/bench"
)

// Builder maps one grid point to the candidates and options for a Mark
// invocation. The point's bound values are passed explicitly; builders
// must not rely on captured loop state.
type Builder func(p Point) ([]bench.Candidate, bench.Options)

// Row is one candidate's result tagged with its originating grid point.
type Row struct {
	Point  Point
	Result bench.Result
}

// SweepResult is the concatenation of all tagged rows, in grid order.
type SweepResult struct {
	Grid *Grid
	Rows []Row
}

// SweepError wraps the first Mark failure with its originating point so
// the caller can reproduce the failing combination directly.
type SweepError struct {
	Point Point
	Err   error
}

func (e *SweepError) Error() string {
	return fmt.Sprintf("sweep failed at %s: %v", e.Point.Label(), e.Err)
}

func (e *SweepError) Unwrap() error { return e.Err }

// PointProgress is invoked before each grid point runs, for UIs and
// metrics. index is zero-based; total is the grid size.
type PointProgress func(index, total int, p Point)

// Press runs the builder's Mark invocation for every point of the grid,
// row-major, and concatenates the tagged results. The first inner
// failure aborts the whole sweep; no partial result is returned.
func Press(grid *Grid, build Builder) (*SweepResult, error) {
	return press(grid, build, nil, nil)
}

// PressWithProgress is Press with per-point and per-iteration callbacks.
func PressWithProgress(grid *Grid, build Builder, onPoint PointProgress, onIter bench.ProgressFunc) (*SweepResult, error) {
	return press(grid, build, onPoint, onIter)
}

func press(grid *Grid, build Builder, onPoint PointProgress, onIter bench.ProgressFunc) (*SweepResult, error) {
	if grid == nil || grid.Size() == 0 {
		return nil, &bench.ConfigurationError{Reason: "empty parameter grid"}
	}
	if build == nil {
		return nil, &bench.ConfigurationError{Reason: "nil benchmark builder"}
	}

	points := grid.Points()
	sr := &SweepResult{Grid: grid}

	for i, p := range points {
		if onPoint != nil {
			onPoint(i, len(points), p)
		}
		candidates, opts := build(p)
		results, err := bench.MarkWithProgress(candidates, opts, onIter)
		if err != nil {
			return nil, &SweepError{Point: p, Err: err}
		}
		for _, r := range results {
			sr.Rows = append(sr.Rows, Row{Point: p, Result: r})
		}
	}

	return sr, nil
}
