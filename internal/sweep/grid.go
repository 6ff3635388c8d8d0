package sweep

import (
	"fmt"
	"strings"
)

// Grid is an ordered set of named parameter value lists. Order matters:
// point enumeration is row-major over the parameters in declaration
// order, with the last parameter varying fastest.
type Grid struct {
	names  []string
	values map[string][]any
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{values: make(map[string][]any)}
}

// Add appends a parameter and its value list. Re-adding a name replaces
// its values but keeps its original position.
func (g *Grid) Add(name string, values ...any) *Grid {
	if _, ok := g.values[name]; !ok {
		g.names = append(g.names, name)
	}
	g.values[name] = values
	return g
}

// Names returns the parameter names in declaration order.
func (g *Grid) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Size returns the number of points in the cartesian product.
func (g *Grid) Size() int {
	if len(g.names) == 0 {
		return 0
	}
	n := 1
	for _, name := range g.names {
		n *= len(g.values[name])
	}
	return n
}

// Points enumerates the cartesian product deterministically. The
// returned points are independent copies.
func (g *Grid) Points() []Point {
	if g.Size() == 0 {
		return nil
	}
	points := []Point{{}}
	for _, name := range g.names {
		var next []Point
		for _, p := range points {
			for _, v := range g.values[name] {
				np := p.clone()
				np.names = append(np.names, name)
				np.bound = append(np.bound, v)
				next = append(next, np)
			}
		}
		points = next
	}
	return points
}

// Point is one combination of swept parameter values.
type Point struct {
	names []string
	bound []any
}

// NewPoint builds a Point from parallel name/value slices, mainly for
// tests and builders that synthesize points directly.
func NewPoint(names []string, values []any) Point {
	p := Point{}
	p.names = append(p.names, names...)
	p.bound = append(p.bound, values...)
	return p
}

func (p Point) clone() Point {
	np := Point{
		names: make([]string, len(p.names), len(p.names)+1),
		bound: make([]any, len(p.bound), len(p.bound)+1),
	}
	copy(np.names, p.names)
	copy(np.bound, p.bound)
	return np
}

// Value returns the bound value for a parameter name.
func (p Point) Value(name string) (any, bool) {
	for i, n := range p.names {
		if n == name {
			return p.bound[i], true
		}
	}
	return nil, false
}

// Int returns the bound value coerced to int, or 0 when absent or not
// an integer. Sweep parameters are overwhelmingly sizes and counts, so
// this is the common accessor.
func (p Point) Int(name string) int {
	v, ok := p.Value(name)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// String returns the bound value coerced to string.
func (p Point) String(name string) string {
	v, ok := p.Value(name)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Label renders the point as "n=1000 k=4", in parameter order.
func (p Point) Label() string {
	parts := make([]string, len(p.names))
	for i, n := range p.names {
		parts[i] = fmt.Sprintf("%s=%v", n, p.bound[i])
	}
	return strings.Join(parts, " ")
}

// Params returns the bindings as an ordered list of name/value pairs.
func (p Point) Params() ([]string, []any) {
	names := make([]string, len(p.names))
	values := make([]any, len(p.bound))
	copy(names, p.names)
	copy(values, p.bound)
	return names, values
}
