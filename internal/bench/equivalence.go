package bench

import (
	"fmt"
	"math"
	"reflect"
)

// FloatTolerance is the relative tolerance used when comparing float
// outputs of two candidates. Exact bit-equality would flag
// mathematically equivalent formulations (sqrt(x) vs x^0.5) as
// mismatches, so a small relative epsilon is used instead.
const FloatTolerance = 1e-9

// outputsEqual reports whether two candidate outputs are equivalent.
// Floats are compared with a relative tolerance, everything else falls
// through to deep equality. Values of different dynamic types are never
// equivalent.
func outputsEqual(a, b any) (bool, string) {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return true, ""
		}
		return false, "one output is nil"
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false, fmt.Sprintf("incomparable types %T and %T", a, b)
	}

	if eq, checked := floatsEqual(va, vb); checked {
		if !eq {
			return false, fmt.Sprintf("%v != %v", a, b)
		}
		return true, ""
	}

	if !deepEqualTolerant(va, vb, make(map[visit]bool)) {
		return false, fmt.Sprintf("%v != %v", a, b)
	}
	return true, ""
}

// floatsEqual handles the scalar float case. The bool result reports
// whether the values were floats at all.
func floatsEqual(va, vb reflect.Value) (eq, checked bool) {
	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatClose(va.Float(), vb.Float()), true
	}
	return false, false
}

func floatClose(x, y float64) bool {
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	diff := math.Abs(x - y)
	scale := math.Max(math.Abs(x), math.Abs(y))
	return diff <= FloatTolerance*scale
}

// visit records a pair of references already under comparison, the way
// reflect.DeepEqual does, so cyclic values terminate instead of
// overflowing the stack.
type visit struct {
	a, b uintptr
	typ  reflect.Type
}

// deepEqualTolerant walks slices, arrays, maps and structs applying the
// float tolerance at the leaves. Anything it does not special-case is
// delegated to reflect.DeepEqual.
func deepEqualTolerant(va, vb reflect.Value, seen map[visit]bool) bool {
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if !va.IsNil() && !vb.IsNil() {
			v := visit{va.Pointer(), vb.Pointer(), va.Type()}
			if seen[v] {
				// Both sides re-entered the same pair; assume equal
				// here and let the rest of the walk decide.
				return true
			}
			seen[v] = true
		}
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatClose(va.Float(), vb.Float())
	case reflect.Slice, reflect.Array:
		if va.Kind() == reflect.Slice && (va.IsNil() != vb.IsNil()) {
			return false
		}
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !deepEqualTolerant(va.Index(i), vb.Index(i), seen) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.IsNil() != vb.IsNil() || va.Len() != vb.Len() {
			return false
		}
		for _, k := range va.MapKeys() {
			mv := vb.MapIndex(k)
			if !mv.IsValid() || !deepEqualTolerant(va.MapIndex(k), mv, seen) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !va.Type().Field(i).IsExported() {
				return reflect.DeepEqual(va.Interface(), vb.Interface())
			}
			if !deepEqualTolerant(va.Field(i), vb.Field(i), seen) {
				return false
			}
		}
		return true
	case reflect.Interface, reflect.Pointer:
		if va.IsNil() != vb.IsNil() {
			return false
		}
		if va.IsNil() {
			return true
		}
		return deepEqualTolerant(va.Elem(), vb.Elem(), seen)
	default:
		return reflect.DeepEqual(va.Interface(), vb.Interface())
	}
}
