package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"benchpress/internal/bench"
	"benchpress/internal/sweep"
)

func TestMarkdownResults(t *testing.T) {
	md := MarkdownResults([]bench.Result{sampleResult("quick")})

	assert.Contains(t, md, "| Candidate |")
	assert.Contains(t, md, "| quick |")
	assert.Contains(t, md, "1ms")
}

func TestMarkdownSweep(t *testing.T) {
	sr := &sweep.SweepResult{
		Rows: []sweep.Row{
			{Point: sweep.NewPoint([]string{"n"}, []any{1000}), Result: sampleResult("a")},
		},
	}

	md := Markdown(sr)
	assert.Contains(t, md, "| Params |")
	assert.Contains(t, md, "n=1000")
}

func TestMarkdownAbsentStats(t *testing.T) {
	r := bench.Result{Name: "gc-bound", Iterations: 3, GCAffected: 3}
	md := MarkdownResults([]bench.Result{r})
	assert.Contains(t, md, "| gc-bound | - | - | - | - | - | 3 | 3 |")
}

func TestRenderMarkdownFallback(t *testing.T) {
	// With an ASCII profile the raw markdown passes through untouched.
	md := "# Title\n"
	assert.Equal(t, md, RenderMarkdown(md))
}
