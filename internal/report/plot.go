package report

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"

	"benchpress/internal/bench"
)

// Layout selects how the per-sample distribution is drawn.
type Layout string

const (
	LayoutBeeswarm Layout = "beeswarm"
	LayoutJitter   Layout = "jitter"
	LayoutRidge    Layout = "ridge"
	LayoutBoxplot  Layout = "boxplot"
	LayoutViolin   Layout = "violin"
)

// Layouts lists the supported layouts in display order.
func Layouts() []Layout {
	return []Layout{LayoutBeeswarm, LayoutJitter, LayoutRidge, LayoutBoxplot, LayoutViolin}
}

// ParseLayout validates a user-supplied layout name.
func ParseLayout(s string) (Layout, error) {
	for _, l := range Layouts() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", &bench.UnsupportedLayoutError{Layout: s}
}

const (
	beeswarmMaxRows = 6
	jitterRows      = 4
)

var densityGlyphs = []rune(" ▁▂▃▄▅▆▇█")
var mirrorGlyphs = []rune(" ▔▀█")

// Plot renders the sample distributions of all candidates as a terminal
// chart sharing one horizontal time axis. Point layouts (beeswarm,
// jitter) draw GC-affected samples as a red ×; density layouts exclude
// them and annotate the excluded count instead.
func Plot(results []bench.Result, layout Layout, width int) (string, error) {
	if _, err := ParseLayout(string(layout)); err != nil {
		return "", err
	}
	if width < 20 {
		width = 20
	}

	lo, hi, ok := elapsedRange(results)
	if !ok {
		return absentStyle.Render("no samples to plot"), nil
	}

	var b strings.Builder
	for _, r := range results {
		b.WriteString(labelStyle.Render(r.Name))
		if r.GCAffected > 0 && layout != LayoutBeeswarm && layout != LayoutJitter {
			b.WriteString(absentStyle.Render(fmt.Sprintf("  (%d gc-affected excluded)", r.GCAffected)))
		}
		b.WriteByte('\n')

		switch layout {
		case LayoutBeeswarm:
			b.WriteString(plotBeeswarm(r, lo, hi, width))
		case LayoutJitter:
			b.WriteString(plotJitter(r, lo, hi, width))
		case LayoutRidge:
			b.WriteString(plotRidge(r, lo, hi, width))
		case LayoutBoxplot:
			b.WriteString(plotBoxplot(r, lo, hi, width))
		case LayoutViolin:
			b.WriteString(plotViolin(r, lo, hi, width))
		}
		b.WriteByte('\n')
	}

	b.WriteString(axisLine(lo, hi, width))
	return b.String(), nil
}

func elapsedRange(results []bench.Result) (lo, hi time.Duration, ok bool) {
	first := true
	for _, r := range results {
		for _, s := range r.Samples {
			if first {
				lo, hi, first = s.Elapsed, s.Elapsed, false
				continue
			}
			if s.Elapsed < lo {
				lo = s.Elapsed
			}
			if s.Elapsed > hi {
				hi = s.Elapsed
			}
		}
	}
	return lo, hi, !first
}

func column(d, lo, hi time.Duration, width int) int {
	if hi == lo {
		return 0
	}
	col := int(float64(d-lo) / float64(hi-lo) * float64(width-1))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

func plotBeeswarm(r bench.Result, lo, hi time.Duration, width int) string {
	// Stack colliding points upward, capped; overflow collapses into
	// the top cell.
	type cell struct{ gc bool }
	bins := make([][]cell, width)
	for _, s := range r.Samples {
		c := column(s.Elapsed, lo, hi, width)
		if len(bins[c]) < beeswarmMaxRows {
			bins[c] = append(bins[c], cell{gc: s.GCHit})
		}
	}
	height := 0
	for _, bin := range bins {
		if len(bin) > height {
			height = len(bin)
		}
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		for _, bin := range bins {
			switch {
			case len(bin) <= row:
				b.WriteByte(' ')
			case bin[row].gc:
				b.WriteString(gcPointStyle.Render("×"))
			default:
				b.WriteString(cleanPointStyle.Render("•"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func plotJitter(r bench.Result, lo, hi time.Duration, width int) string {
	// Deterministic jitter: the row offset is seeded from the candidate
	// name so repeated renders of the same data are identical.
	h := fnv.New64a()
	h.Write([]byte(r.Name))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	type mark int
	const (
		markNone mark = iota
		markClean
		markGC
	)
	grid := make([][]mark, jitterRows)
	for i := range grid {
		grid[i] = make([]mark, width)
	}
	for _, s := range r.Samples {
		row := rng.Intn(jitterRows)
		col := column(s.Elapsed, lo, hi, width)
		if s.GCHit {
			grid[row][col] = markGC
		} else if grid[row][col] != markGC {
			grid[row][col] = markClean
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for _, m := range row {
			switch m {
			case markGC:
				b.WriteString(gcPointStyle.Render("×"))
			case markClean:
				b.WriteString(cleanPointStyle.Render("·"))
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func density(r bench.Result, lo, hi time.Duration, width int) ([]int, int) {
	counts := make([]int, width)
	peak := 0
	for _, s := range r.Samples {
		if s.GCHit {
			continue
		}
		c := column(s.Elapsed, lo, hi, width)
		counts[c]++
		if counts[c] > peak {
			peak = counts[c]
		}
	}
	return counts, peak
}

func plotRidge(r bench.Result, lo, hi time.Duration, width int) string {
	counts, peak := density(r, lo, hi, width)
	if peak == 0 {
		return absentStyle.Render("all samples gc-affected") + "\n"
	}
	var b strings.Builder
	for _, c := range counts {
		idx := c * (len(densityGlyphs) - 1) / peak
		b.WriteRune(densityGlyphs[idx])
	}
	return cleanPointStyle.Render(b.String()) + "\n"
}

func plotViolin(r bench.Result, lo, hi time.Duration, width int) string {
	counts, peak := density(r, lo, hi, width)
	if peak == 0 {
		return absentStyle.Render("all samples gc-affected") + "\n"
	}
	var top, bottom strings.Builder
	for _, c := range counts {
		top.WriteRune(densityGlyphs[c*(len(densityGlyphs)-1)/peak])
		bottom.WriteRune(mirrorGlyphs[c*(len(mirrorGlyphs)-1)/peak])
	}
	return cleanPointStyle.Render(top.String()) + "\n" + cleanPointStyle.Render(bottom.String()) + "\n"
}

func plotBoxplot(r bench.Result, lo, hi time.Duration, width int) string {
	var clean []time.Duration
	for _, s := range r.Samples {
		if !s.GCHit {
			clean = append(clean, s.Elapsed)
		}
	}
	if len(clean) == 0 {
		return absentStyle.Render("all samples gc-affected") + "\n"
	}
	q := quartiles(clean)

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	minC := column(q.min, lo, hi, width)
	maxC := column(q.max, lo, hi, width)
	q1C := column(q.q1, lo, hi, width)
	q3C := column(q.q3, lo, hi, width)
	medC := column(q.median, lo, hi, width)

	for i := minC; i <= maxC && i < width; i++ {
		row[i] = '─'
	}
	for i := q1C; i <= q3C && i < width; i++ {
		row[i] = '▇'
	}
	// Caps last: on narrow widths the median column can coincide with a
	// whisker end, and the whisker ends must stay visible.
	row[medC] = '┃'
	row[minC] = '├'
	row[maxC] = '┤'

	return cleanPointStyle.Render(string(row)) + "\n"
}

type quartileSet struct {
	min, q1, median, q3, max time.Duration
}

func quartiles(durs []time.Duration) quartileSet {
	sorted := make([]time.Duration, len(durs))
	copy(sorted, durs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	at := func(f float64) time.Duration {
		idx := int(f * float64(len(sorted)-1))
		return sorted[idx]
	}
	return quartileSet{
		min:    sorted[0],
		q1:     at(0.25),
		median: at(0.5),
		q3:     at(0.75),
		max:    sorted[len(sorted)-1],
	}
}

func axisLine(lo, hi time.Duration, width int) string {
	left := fmtDuration(lo)
	right := fmtDuration(hi)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return axisStyle.Render(left + strings.Repeat(" ", pad) + right)
}
