package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRowMajorOrder(t *testing.T) {
	grid := NewGrid().
		Add("n", 1, 2).
		Add("k", "x", "y")

	points := grid.Points()
	require.Len(t, points, 4)

	// Last parameter varies fastest.
	assert.Equal(t, "n=1 k=x", points[0].Label())
	assert.Equal(t, "n=1 k=y", points[1].Label())
	assert.Equal(t, "n=2 k=x", points[2].Label())
	assert.Equal(t, "n=2 k=y", points[3].Label())
}

func TestGridSize(t *testing.T) {
	assert.Equal(t, 0, NewGrid().Size())
	assert.Equal(t, 3, NewGrid().Add("n", 1, 2, 3).Size())
	assert.Equal(t, 6, NewGrid().Add("n", 1, 2, 3).Add("k", 4, 5).Size())
}

func TestGridDeterministicEnumeration(t *testing.T) {
	grid := NewGrid().Add("n", 10, 20).Add("m", 1, 2, 3)

	first := grid.Points()
	second := grid.Points()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Label(), second[i].Label())
	}
}

func TestGridReAddReplacesValues(t *testing.T) {
	grid := NewGrid().Add("n", 1, 2).Add("n", 5)
	points := grid.Points()
	require.Len(t, points, 1)
	assert.Equal(t, 5, points[0].Int("n"))
}

func TestPointAccessors(t *testing.T) {
	p := NewPoint([]string{"n", "name"}, []any{100, "quick"})

	assert.Equal(t, 100, p.Int("n"))
	assert.Equal(t, "quick", p.String("name"))
	assert.Equal(t, "100", p.String("n"))
	assert.Equal(t, 0, p.Int("missing"))

	v, ok := p.Value("n")
	assert.True(t, ok)
	assert.Equal(t, 100, v)

	_, ok = p.Value("missing")
	assert.False(t, ok)
}

func TestPointIntCoercions(t *testing.T) {
	p := NewPoint([]string{"a", "b", "c"}, []any{int64(7), 3.0, "nope"})
	assert.Equal(t, 7, p.Int("a"))
	assert.Equal(t, 3, p.Int("b"))
	assert.Equal(t, 0, p.Int("c"))
}

func TestPointParamsCopy(t *testing.T) {
	p := NewPoint([]string{"n"}, []any{1})
	names, values := p.Params()
	names[0] = "mutated"
	values[0] = 99

	assert.Equal(t, "n=1", p.Label())
}
