// Package workload provides the built-in operations the CLI can
// benchmark. Arbitrary Go functions cannot cross a process boundary,
// so the run and sweep commands pick candidates from this registry.
package workload

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strings"

	"benchpress/internal/bench"
	"benchpress/internal/sweep"
)

// Workload is a named family of candidates parameterized by a grid
// point. All candidates of one family produce equal outputs, so the
// equivalence check holds by construction.
type Workload struct {
	Name        string
	Description string
	// DefaultGrid is the grid used by sweep when the user gives no
	// --param flags, and its first point is used by a plain run.
	DefaultGrid func() *sweep.Grid
	Build       func(p sweep.Point) []bench.Candidate
}

var registry = []Workload{
	{
		Name:        "sort",
		Description: "sort.Ints vs sort.Slice vs slices.Sort on n random ints",
		DefaultGrid: func() *sweep.Grid {
			return sweep.NewGrid().Add("n", 1000, 10000, 100000)
		},
		Build: buildSort,
	},
	{
		Name:        "fib",
		Description: "recursive vs iterative Fibonacci of n",
		DefaultGrid: func() *sweep.Grid {
			return sweep.NewGrid().Add("n", 10, 20, 25)
		},
		Build: buildFib,
	},
	{
		Name:        "concat",
		Description: "string concatenation: += vs strings.Builder vs strings.Join over k parts",
		DefaultGrid: func() *sweep.Grid {
			return sweep.NewGrid().Add("k", 10, 100, 1000)
		},
		Build: buildConcat,
	},
	{
		Name:        "alloc",
		Description: "preallocated vs grown slice of n ints",
		DefaultGrid: func() *sweep.Grid {
			return sweep.NewGrid().Add("n", 1000, 100000)
		},
		Build: buildAlloc,
	},
}

// Names lists the registered workload names.
func Names() []string {
	names := make([]string, len(registry))
	for i, w := range registry {
		names[i] = w.Name
	}
	return names
}

// Lookup finds a workload by name.
func Lookup(name string) (Workload, error) {
	for _, w := range registry {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("unknown workload %q (available: %s)", name, strings.Join(Names(), ", "))
}

// randomInts is deterministic so every candidate sorts the same input.
func randomInts(n int) []int {
	r := rand.New(rand.NewSource(42))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Int()
	}
	return data
}

func buildSort(p sweep.Point) []bench.Candidate {
	n := p.Int("n")
	input := randomInts(n)
	work := func(sortFn func([]int)) func() (any, error) {
		return func() (any, error) {
			buf := make([]int, len(input))
			copy(buf, input)
			sortFn(buf)
			return buf, nil
		}
	}
	return []bench.Candidate{
		bench.Func("sort.Ints", work(sort.Ints)),
		bench.Func("sort.Slice", work(func(s []int) {
			sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
		})),
		bench.Func("slices.Sort", work(func(s []int) { slices.Sort(s) })),
	}
}

func fibRecursive(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fibRecursive(n-1) + fibRecursive(n-2)
}

func fibIterative(n int) uint64 {
	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func buildFib(p sweep.Point) []bench.Candidate {
	n := p.Int("n")
	return []bench.Candidate{
		bench.Func("recursive", func() (any, error) { return fibRecursive(n), nil }),
		bench.Func("iterative", func() (any, error) { return fibIterative(n), nil }),
	}
}

func buildConcat(p sweep.Point) []bench.Candidate {
	k := p.Int("k")
	parts := make([]string, k)
	for i := range parts {
		parts[i] = fmt.Sprintf("part-%d", i)
	}
	return []bench.Candidate{
		bench.Func("plus", func() (any, error) {
			s := ""
			for _, p := range parts {
				s += p
			}
			return s, nil
		}),
		bench.Func("builder", func() (any, error) {
			var b strings.Builder
			for _, p := range parts {
				b.WriteString(p)
			}
			return b.String(), nil
		}),
		bench.Func("join", func() (any, error) {
			return strings.Join(parts, ""), nil
		}),
	}
}

func buildAlloc(p sweep.Point) []bench.Candidate {
	n := p.Int("n")
	return []bench.Candidate{
		bench.Func("prealloc", func() (any, error) {
			s := make([]int, 0, n)
			for i := 0; i < n; i++ {
				s = append(s, i)
			}
			return s, nil
		}),
		bench.Func("grow", func() (any, error) {
			var s []int
			for i := 0; i < n; i++ {
				s = append(s, i)
			}
			return s, nil
		}),
	}
}
