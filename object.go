// ABOUTME: Per-object header carrying the dynamic type of the enclosing object
// ABOUTME: Provides the dispatch hooks every registered type exposes

package rtti

import (
	"reflect"
	"unsafe"
)

// Polymorphic is implemented by handles to registered objects. *Object
// implements it, and so does every registered type that reaches exactly one
// Object through embedding.
type Polymorphic interface {
	// TypeInfo returns the descriptor of the most-derived type
	TypeInfo() *TypeInfo

	// TypeID returns the identity of the most-derived type
	TypeID() TypeID

	// TypeName returns the display name of the most-derived type
	TypeName() string

	// CastTo returns the address of the subobject of the given type, or nil
	CastTo(id TypeID) unsafe.Pointer
}

// Object is the header every root type embeds as its first field. Init
// points each header inside a value at the value's own descriptor and records
// where the header sits, so any base handle can find the whole object.
//
// A header is bound to the address Init wrote it at. A copy of the value, or
// of any base inside it, reads as uninitialized until Init runs on the copy.
type Object struct {
	info   *TypeInfo
	offset uintptr
	self   *Object
}

var _ Polymorphic = (*Object)(nil)

// TypeInfo returns the descriptor of the most-derived type, or nil if the
// object was never initialized
func (o *Object) TypeInfo() *TypeInfo {
	if o == nil || o.self != o {
		return nil
	}
	return o.info
}

// TypeID returns the identity of the most-derived type, or 0
func (o *Object) TypeID() TypeID {
	if info := o.TypeInfo(); info != nil {
		return info.id
	}
	return 0
}

// TypeName returns the display name of the most-derived type, or ""
func (o *Object) TypeName() string {
	if info := o.TypeInfo(); info != nil {
		return info.name
	}
	return ""
}

// CastTo resolves id against the whole object this header belongs to
func (o *Object) CastTo(id TypeID) unsafe.Pointer {
	if o == nil || o.self != o || o.info == nil {
		return nil
	}
	return o.info.CastTo(unsafe.Add(unsafe.Pointer(o), -int(o.offset)), id)
}

// header returns the Object at the start of *p. T must be registered.
func header[T any](p *T) *Object {
	return (*Object)(unsafe.Pointer(p))
}

// objectInfo returns the descriptor of T, which must itself be a registered
// struct type rather than a pointer to one
func objectInfo[T any]() *TypeInfo {
	info := TypeInfoOf[T]()
	if t := reflect.TypeFor[T](); t != info.typ {
		panic("rtti: " + t.String() + " is not a registered struct type")
	}
	return info
}

// Init writes the headers of *p and returns p. Values created without Init or
// New, and copies of initialized values, only support upcasts until Init runs
// on them.
func Init[T any](p *T) *T {
	if p == nil {
		return nil
	}
	objectInfo[T]().Init(unsafe.Pointer(p))
	return p
}

// New allocates and initializes a T
func New[T any]() *T {
	return Init(new(T))
}

// HooksOf returns the dispatch hooks of the object p points into. It returns
// nil for a nil pointer.
func HooksOf[T any](p *T) Polymorphic {
	if p == nil {
		return nil
	}
	objectInfo[T]()
	return header(p)
}

// TypeInfoOfValue returns the descriptor of the most-derived type of the
// object p points into, or nil for nil or uninitialized objects
func TypeInfoOfValue[T any](p *T) *TypeInfo {
	if p == nil {
		return nil
	}
	objectInfo[T]()
	return header(p).TypeInfo()
}
