package deep

import (
	"reflect"
)

// Same reports whether a and b are the same value. Maps, slices, functions,
// pointers and channels are compared by reference, everything else with ==.
// Values that are not comparable are never the same.
//
// Two empty slices of the same type can share their data pointer even when
// they were made separately, so they are reported as the same. Storing a
// fresh empty slice over an empty one is therefore a no-op.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
