// ABOUTME: Comparable keys for Go types taken from the runtime type pointer
// ABOUTME: Cheaper than reflect.Type for per-instantiation cache lookups

package rtti

import "unsafe"

// typeKey identifies a Go type by its runtime type pointer
type typeKey uintptr

// eface mirrors the runtime layout of an empty interface
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKeyOf returns the key of *T, which exists for every T and never
// allocates when boxed as a nil pointer
func typeKeyOf[T any]() typeKey {
	var zero *T
	var i any = zero
	return typeKey(uintptr((*eface)(unsafe.Pointer(&i)).typ))
}
