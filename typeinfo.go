// ABOUTME: Immutable per-type descriptor holding name, identity and hierarchy blob
// ABOUTME: Resolves casts by walking the blob from a most-derived object address

package rtti

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/prateek/rtti/blob"
)

// TypeInfo describes one registered type. It is built once and never
// modified afterwards, so it can be read from any goroutine.
type TypeInfo struct {
	name  string
	id    TypeID
	typ   reflect.Type
	data  blob.Blob
	bases []BaseInfo

	// headers are the offsets of every Object header inside a value of this
	// type, one per blob block
	headers []uintptr
}

// BaseInfo is a direct base of a registered type
type BaseInfo struct {
	Info   *TypeInfo
	Offset uintptr // Offset of the base inside the derived type
}

// Name returns the display name given at registration
func (ti *TypeInfo) Name() string { return ti.name }

// ID returns the type's identity
func (ti *TypeInfo) ID() TypeID { return ti.id }

// Type returns the registered Go type
func (ti *TypeInfo) Type() reflect.Type { return ti.typ }

// Data returns the type's hierarchy blob. Callers must not modify it.
func (ti *TypeInfo) Data() blob.Blob { return ti.data }

// Bases returns the direct bases in declaration order
func (ti *TypeInfo) Bases() []BaseInfo { return ti.bases }

// Equal reports whether both descriptors describe the same type
func (ti *TypeInfo) Equal(other *TypeInfo) bool {
	if ti == nil || other == nil {
		return ti == other
	}
	return ti.id == other.id
}

// String returns the name and identity
func (ti *TypeInfo) String() string {
	return fmt.Sprintf("%s(%d)", ti.name, ti.id)
}

// CastTo returns the address of the target subobject inside the object at p,
// which must point to the start of a value of this type. It returns nil when
// the type does not contain target.
func (ti *TypeInfo) CastTo(p unsafe.Pointer, target TypeID) unsafe.Pointer {
	if p == nil {
		return nil
	}
	off, ok := ti.data.Find(uint32(target))
	if !ok {
		return nil
	}
	return unsafe.Add(p, int(off))
}

// Contains reports whether target is this type or one of its ancestors
func (ti *TypeInfo) Contains(target TypeID) bool {
	_, ok := ti.data.Find(uint32(target))
	return ok
}

// Init writes the object headers of the value at p, which must point to the
// start of a value of this type
func (ti *TypeInfo) Init(p unsafe.Pointer) {
	for _, off := range ti.headers {
		h := (*Object)(unsafe.Add(p, int(off)))
		h.info = ti
		h.offset = off
		h.self = h
	}
}
