package workload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchpress/internal/bench"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		w, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, w.Name)
		assert.NotNil(t, w.Build)
		assert.Positive(t, w.DefaultGrid().Size())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown workload")
}

// Every workload's candidates must produce equal outputs at every
// default grid point, otherwise the equivalence check would reject
// them at runtime.
func TestWorkloadsPassEquivalence(t *testing.T) {
	opts := bench.Options{
		MinTime:          time.Microsecond,
		MaxIterations:    1,
		CheckEquivalence: true,
	}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			w, err := Lookup(name)
			require.NoError(t, err)
			for _, p := range w.DefaultGrid().Points() {
				// fib n=25 recursively is slow; one iteration is enough here.
				results, err := bench.Mark(w.Build(p), opts)
				require.NoError(t, err, "point %s", p.Label())
				assert.NotEmpty(t, results)
			}
		})
	}
}

func TestFibImplementationsAgree(t *testing.T) {
	for n := 0; n < 15; n++ {
		assert.Equal(t, fibIterative(n), fibRecursive(n), "n=%d", n)
	}
}

func TestRandomIntsDeterministic(t *testing.T) {
	assert.Equal(t, randomInts(100), randomInts(100))
}
