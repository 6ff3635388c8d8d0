package report

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchpress/internal/bench"
)

func init() {
	// Strip ANSI sequences so assertions see plain glyphs.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func distResult(name string, gcEvery int) bench.Result {
	r := bench.Result{Name: name}
	for i := 0; i < 40; i++ {
		s := bench.Sample{Elapsed: time.Duration(i+1) * 100 * time.Microsecond}
		if gcEvery > 0 && i%gcEvery == 0 {
			s.GCHit = true
			r.GCAffected++
		}
		r.Samples = append(r.Samples, s)
	}
	r.Iterations = len(r.Samples)
	return r
}

func TestParseLayout(t *testing.T) {
	for _, l := range Layouts() {
		parsed, err := ParseLayout(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}

func TestParseLayoutUnsupported(t *testing.T) {
	_, err := ParseLayout("pie")

	var layoutErr *bench.UnsupportedLayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, "pie", layoutErr.Layout)
}

func TestPlotAllLayouts(t *testing.T) {
	results := []bench.Result{distResult("a", 0), distResult("b", 7)}

	for _, layout := range Layouts() {
		t.Run(string(layout), func(t *testing.T) {
			out, err := Plot(results, layout, 60)
			require.NoError(t, err)
			assert.Contains(t, out, "a")
			assert.Contains(t, out, "b")
			assert.NotEmpty(t, out)
		})
	}
}

func TestPlotUnsupportedLayout(t *testing.T) {
	_, err := Plot([]bench.Result{distResult("a", 0)}, Layout("donut"), 60)

	var layoutErr *bench.UnsupportedLayoutError
	assert.ErrorAs(t, err, &layoutErr)
}

func TestPlotDeterministic(t *testing.T) {
	results := []bench.Result{distResult("a", 5)}

	for _, layout := range Layouts() {
		first, err := Plot(results, layout, 60)
		require.NoError(t, err)
		second, err := Plot(results, layout, 60)
		require.NoError(t, err)
		assert.Equal(t, first, second, "layout %s must render identically for identical data", layout)
	}
}

func TestPlotMarksGCSamples(t *testing.T) {
	results := []bench.Result{distResult("a", 4)}

	out, err := Plot(results, LayoutBeeswarm, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "×")
	assert.Contains(t, out, "•")

	out, err = Plot(results, LayoutJitter, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "×")
}

func TestPlotDensityAnnotatesGCExclusion(t *testing.T) {
	results := []bench.Result{distResult("a", 4)}

	out, err := Plot(results, LayoutRidge, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "gc-affected excluded")
}

func TestPlotNoSamples(t *testing.T) {
	out, err := Plot([]bench.Result{{Name: "empty"}}, LayoutBoxplot, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "no samples")
}

func TestPlotAllGCAffected(t *testing.T) {
	r := bench.Result{
		Name: "gc-bound",
		Samples: []bench.Sample{
			{Elapsed: time.Millisecond, GCHit: true},
			{Elapsed: 2 * time.Millisecond, GCHit: true},
		},
		Iterations: 2,
		GCAffected: 2,
	}

	for _, layout := range []Layout{LayoutRidge, LayoutBoxplot, LayoutViolin} {
		out, err := Plot([]bench.Result{r}, layout, 60)
		require.NoError(t, err)
		assert.Contains(t, out, "all samples gc-affected")
	}
}

func TestPlotBoxplotDegenerateDistribution(t *testing.T) {
	// All samples identical: every glyph lands in one column, and the
	// whisker end must still be drawn.
	r := bench.Result{Name: "flat"}
	for i := 0; i < 5; i++ {
		r.Samples = append(r.Samples, bench.Sample{Elapsed: time.Millisecond})
	}
	r.Iterations = 5

	out, err := Plot([]bench.Result{r}, LayoutBoxplot, 40)
	require.NoError(t, err)
	assert.Contains(t, out, "┤")
}

func TestPlotBoxplotMedianAtWhisker(t *testing.T) {
	// Median collides with the left cap; both ends must stay visible.
	r := bench.Result{
		Name: "skew",
		Samples: []bench.Sample{
			{Elapsed: time.Millisecond},
			{Elapsed: time.Millisecond},
			{Elapsed: time.Millisecond},
			{Elapsed: 100 * time.Millisecond},
		},
		Iterations: 4,
	}

	out, err := Plot([]bench.Result{r}, LayoutBoxplot, 40)
	require.NoError(t, err)
	assert.Contains(t, out, "├")
	assert.Contains(t, out, "┤")
}

func TestQuartiles(t *testing.T) {
	durs := []time.Duration{50, 10, 40, 20, 30}
	q := quartiles(durs)

	assert.Equal(t, time.Duration(10), q.min)
	assert.Equal(t, time.Duration(20), q.q1)
	assert.Equal(t, time.Duration(30), q.median)
	assert.Equal(t, time.Duration(40), q.q3)
	assert.Equal(t, time.Duration(50), q.max)
}
