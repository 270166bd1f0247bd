// ABOUTME: Registry of polymorphic types and their lazily built descriptors
// ABOUTME: Each descriptor is built once, after its bases, on first access

package rtti

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/prateek/rtti/blob"
)

var (
	// ErrNotRegistered is reported when a type was never registered
	ErrNotRegistered = errors.New("type not registered")

	// ErrDuplicate is returned when a type is registered twice
	ErrDuplicate = errors.New("type already registered")
)

var log = commonlog.GetLogger("rtti")

// Base names a direct base at registration
type Base struct {
	typ reflect.Type
}

// BaseOf returns the base declaration for type B
func BaseOf[B any]() Base {
	return Base{typ: normalize(reflect.TypeFor[B]())}
}

// BaseType returns the base declaration for t
func BaseType(t reflect.Type) Base {
	return Base{typ: normalize(t)}
}

// Entry is a registration snapshot
type Entry struct {
	Type  reflect.Type
	Name  string
	Bases []reflect.Type
}

// entry holds the builder inputs for one type
type entry struct {
	name  string
	typ   reflect.Type
	bases []baseField

	once sync.Once
	info *TypeInfo
	err  error
}

// Registry maps Go types to their descriptors
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*entry
	order   []*entry

	// resolved caches built descriptors for lock-free lookups
	resolved sync.Map
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[reflect.Type]*entry),
	}
}

// DefaultRegistry backs the package-level generic functions
var DefaultRegistry = NewRegistry()

// Register records t and its direct bases in declaration order. Bases do not
// need to be registered yet; they are resolved when t's descriptor is first
// requested. An empty name defaults to the Go type name.
//
// Omitting a direct base is not detected and makes casts through it fail.
func (r *Registry) Register(t reflect.Type, name string, bases ...Base) error {
	t = normalize(t)
	if t == nil {
		return fmt.Errorf("registering nil type: %w", ErrNotStruct)
	}

	baseTypes := make([]reflect.Type, len(bases))
	for i, b := range bases {
		baseTypes[i] = b.typ
	}
	fields, err := layoutOf(t, baseTypes)
	if err != nil {
		return fmt.Errorf("registering %s: %w", t, err)
	}

	if name == "" {
		name = t.String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[t]; ok {
		return fmt.Errorf("registering %s: %w", t, ErrDuplicate)
	}
	e := &entry{name: name, typ: t, bases: fields}
	r.entries[t] = e
	r.order = append(r.order, e)

	log.Debugf("registered %s with %d bases", name, len(fields))
	return nil
}

// TypeInfo returns the descriptor of t, building it and its bases on first
// use. The same pointer is returned on every call.
func (r *Registry) TypeInfo(t reflect.Type) (*TypeInfo, error) {
	t = normalize(t)
	if v, ok := r.resolved.Load(t); ok {
		return v.(*TypeInfo), nil
	}

	r.mu.RLock()
	e := r.entries[t]
	r.mu.RUnlock()
	if e == nil {
		return nil, fmt.Errorf("%v: %w", t, ErrNotRegistered)
	}

	e.once.Do(func() {
		e.info, e.err = r.build(e)
		if e.err == nil {
			r.resolved.Store(t, e.info)
		}
	})
	return e.info, e.err
}

// mustTypeInfo is TypeInfo for callers that treat a missing registration as a
// programming error
func (r *Registry) mustTypeInfo(t reflect.Type) *TypeInfo {
	info, err := r.TypeInfo(t)
	if err != nil {
		panic("rtti: " + err.Error())
	}
	return info
}

// build creates the descriptor of e after building every base
func (r *Registry) build(e *entry) (*TypeInfo, error) {
	bases := make([]BaseInfo, len(e.bases))
	parts := make([]blob.Base, len(e.bases))
	for i, b := range e.bases {
		info, err := r.TypeInfo(b.typ)
		if err != nil {
			return nil, fmt.Errorf("building %s: base %w", e.name, err)
		}
		bases[i] = BaseInfo{Info: info, Offset: b.offset}
		parts[i] = blob.Base{Data: info.data, Offset: int64(b.offset)}
	}

	id := allocateID()
	var data blob.Blob
	if len(parts) == 0 {
		data = blob.Root(uint32(id))
	} else {
		var err error
		data, err = blob.Derive(uint32(id), parts)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", e.name, err)
		}
	}

	blocks, err := data.Blocks()
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", e.name, err)
	}
	headers := make([]uintptr, len(blocks))
	for i, blk := range blocks {
		headers[i] = uintptr(blk.Offset)
	}

	if dups := data.Duplicates(); len(dups) > 0 {
		log.Warningf("%s inherits %d ancestors through more than one path; casts to them use the first path", e.name, len(dups))
	}
	log.Debugf("built %s: id %d, %d blocks, %d bytes", e.name, id, len(blocks), len(data))

	return &TypeInfo{
		name:    e.name,
		id:      id,
		typ:     e.typ,
		data:    data,
		bases:   bases,
		headers: headers,
	}, nil
}

// Entries returns the registrations in registration order
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.order))
	for i, e := range r.order {
		bases := make([]reflect.Type, len(e.bases))
		for j, b := range e.bases {
			bases[j] = b.typ
		}
		out[i] = Entry{Type: e.typ, Name: e.name, Bases: bases}
	}
	return out
}

// Len returns the number of registered types
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Register records T in the default registry. See Registry.Register.
func Register[T any](name string, bases ...Base) error {
	return DefaultRegistry.Register(reflect.TypeFor[T](), name, bases...)
}

// RegisterIn records T in r
func RegisterIn[T any](r *Registry, name string, bases ...Base) error {
	return r.Register(reflect.TypeFor[T](), name, bases...)
}

// MustRegister is like Register but panics on error
func MustRegister[T any](name string, bases ...Base) {
	if err := Register[T](name, bases...); err != nil {
		panic("rtti: " + err.Error())
	}
}

// TypeInfoOf returns the descriptor of T from the default registry. T, *T and
// **T share one descriptor. It panics if T was never registered.
func TypeInfoOf[T any]() *TypeInfo {
	return DefaultRegistry.mustTypeInfo(reflect.TypeFor[T]())
}

// TypeIDOf returns the identity of T. It panics if T was never registered.
func TypeIDOf[T any]() TypeID {
	return TypeInfoOf[T]().id
}
