package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchpress/internal/bench"
	"benchpress/internal/sweep"
)

func sampleResult(name string) bench.Result {
	return bench.Result{
		Name: name,
		Samples: []bench.Sample{
			{Elapsed: time.Millisecond, AllocBytes: 100},
			{Elapsed: 2 * time.Millisecond, AllocBytes: 100},
		},
		Stats: &bench.Stats{
			Min:        time.Millisecond,
			Median:     1500 * time.Microsecond,
			Mean:       1500 * time.Microsecond,
			Max:        2 * time.Millisecond,
			AllocBytes: 100,
		},
		Iterations: 2,
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []bench.Result{sampleResult("quick"), sampleResult("slow")})

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE")
	assert.Contains(t, out, "MEDIAN")
	assert.Contains(t, out, "quick")
	assert.Contains(t, out, "slow")
	assert.Contains(t, out, "1ms")
}

func TestWriteTableAbsentStats(t *testing.T) {
	r := bench.Result{
		Name:       "gc-bound",
		Samples:    []bench.Sample{{Elapsed: time.Millisecond, GCHit: true}},
		Iterations: 1,
		GCAffected: 1,
	}

	var buf bytes.Buffer
	WriteTable(&buf, []bench.Result{r})

	// Absent statistics render as dashes, never as zeroes.
	line := ""
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "gc-bound") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	assert.Contains(t, line, "-")
	assert.NotContains(t, line, "0s")
}

func TestWriteSweepTable(t *testing.T) {
	sr := &sweep.SweepResult{
		Rows: []sweep.Row{
			{Point: sweep.NewPoint([]string{"n"}, []any{1000}), Result: sampleResult("a")},
			{Point: sweep.NewPoint([]string{"n"}, []any{2000}), Result: sampleResult("a")},
		},
	}

	var buf bytes.Buffer
	WriteSweepTable(&buf, sr)

	out := buf.String()
	assert.Contains(t, out, "PARAMS")
	assert.Contains(t, out, "n=1000")
	assert.Contains(t, out, "n=2000")
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "1.5s", fmtDuration(1500*time.Millisecond))
	assert.Equal(t, "1.5ms", fmtDuration(1500*time.Microsecond))
	assert.Equal(t, "1.5µs", fmtDuration(1500*time.Nanosecond))
	assert.Equal(t, "100ns", fmtDuration(100*time.Nanosecond))
}

func TestFmtBytes(t *testing.T) {
	assert.Equal(t, "512B", fmtBytes(512))
	assert.Equal(t, "2.0KB", fmtBytes(2048))
	assert.Equal(t, "3.0MB", fmtBytes(3*1<<20))
}
