package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"benchpress/internal/bench"
	"benchpress/internal/sweep"
)

// Markdown renders a sweep result as a GitHub-style markdown table.
func Markdown(sr *sweep.SweepResult) string {
	var b strings.Builder
	b.WriteString("# Benchmark Sweep\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().Format(time.RFC3339))
	b.WriteString("| Params | Candidate | Min | Median | Mean | Max | Alloc | Iter | GC |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	for _, row := range sr.Rows {
		writeMarkdownRow(&b, row.Point.Label(), row.Result)
	}
	return b.String()
}

// MarkdownResults is Markdown for a plain Mark result set.
func MarkdownResults(results []bench.Result) string {
	var b strings.Builder
	b.WriteString("# Benchmark\n\n")
	b.WriteString("| Candidate | Min | Median | Mean | Max | Alloc | Iter | GC |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, r := range results {
		writeMarkdownRow(&b, "", r)
	}
	return b.String()
}

func writeMarkdownRow(b *strings.Builder, pointLabel string, r bench.Result) {
	cells := make([]string, 0, 9)
	if pointLabel != "" {
		cells = append(cells, pointLabel)
	}
	cells = append(cells, r.Name)
	if r.Stats == nil {
		cells = append(cells, "-", "-", "-", "-", "-")
	} else {
		cells = append(cells,
			fmtDuration(r.Stats.Min),
			fmtDuration(r.Stats.Median),
			fmtDuration(r.Stats.Mean),
			fmtDuration(r.Stats.Max),
			fmtBytes(r.Stats.AllocBytes),
		)
	}
	cells = append(cells, fmt.Sprintf("%d", r.Iterations), fmt.Sprintf("%d", r.GCAffected))
	fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
}

// RenderMarkdown pretty-prints markdown for the terminal. It falls back
// to the raw source when no color terminal is attached or rendering
// fails.
func RenderMarkdown(md string) string {
	if termenv.ColorProfile() == termenv.Ascii {
		return md
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
