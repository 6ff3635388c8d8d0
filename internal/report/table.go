package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"benchpress/internal/bench"
	"benchpress/internal/sweep"
)

// WriteTable prints one summary row per candidate.
func WriteTable(w io.Writer, results []bench.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "CANDIDATE\tMIN\tMEDIAN\tMEAN\tMAX\tALLOC\tITER\tGC")
	for _, r := range results {
		writeRow(tw, "", r)
	}
	tw.Flush()
}

// WriteSweepTable prints one row per candidate per grid point, tagged
// with the point's parameter values.
func WriteSweepTable(w io.Writer, sr *sweep.SweepResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "PARAMS\tCANDIDATE\tMIN\tMEDIAN\tMEAN\tMAX\tALLOC\tITER\tGC")
	for _, row := range sr.Rows {
		writeRow(tw, row.Point.Label(), row.Result)
	}
	tw.Flush()
}

func writeRow(tw *tabwriter.Writer, pointLabel string, r bench.Result) {
	cols := make([]string, 0, 9)
	if pointLabel != "" {
		cols = append(cols, pointLabel)
	}
	cols = append(cols, r.Name)
	if r.Stats == nil {
		// Every sample was GC-affected; statistics are undefined.
		cols = append(cols, "-", "-", "-", "-", "-")
	} else {
		cols = append(cols,
			fmtDuration(r.Stats.Min),
			fmtDuration(r.Stats.Median),
			fmtDuration(r.Stats.Mean),
			fmtDuration(r.Stats.Max),
			fmtBytes(r.Stats.AllocBytes),
		)
	}
	cols = append(cols, fmt.Sprintf("%d", r.Iterations), fmt.Sprintf("%d", r.GCAffected))
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

// fmtDuration rounds to a readable precision without losing sub-µs
// results entirely.
func fmtDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d >= time.Microsecond:
		return d.Round(10 * time.Nanosecond).String()
	default:
		return d.String()
	}
}

func fmtBytes(b uint64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%dB", b)
	}
}
