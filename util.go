package huffman

import (
	"math"
	"reflect"
)

// isAbsent reports whether a stream handle is missing: either a nil interface
// or an interface holding a nil pointer, map, slice, chan or func.
func isAbsent(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
