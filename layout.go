// ABOUTME: Computes and validates embedded base offsets of registered structs
// ABOUTME: Uses reflect field offsets rather than measuring live objects

package rtti

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotStruct is returned when registering a non-struct type
	ErrNotStruct = errors.New("registered type must be a struct")

	// ErrLayout is returned when a type's fields break the embedding rules
	ErrLayout = errors.New("invalid base layout")
)

var objectType = reflect.TypeFor[Object]()

// baseField is a direct base resolved against the derived struct
type baseField struct {
	typ    reflect.Type
	offset uintptr
}

// normalize strips pointer indirections so *T and T share a descriptor
func normalize(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// layoutOf resolves every base of t to its embedded field. The first base must
// be t's first field; other bases must not sit at offset 0. A type without
// bases must start with an embedded Object.
func layoutOf(t reflect.Type, bases []reflect.Type) ([]baseField, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotStruct, t, t.Kind())
	}

	if len(bases) == 0 {
		if t.NumField() == 0 {
			return nil, fmt.Errorf("%w: %s has no fields, want rtti.Object first", ErrLayout, t)
		}
		f := t.Field(0)
		if !f.Anonymous || f.Type != objectType {
			return nil, fmt.Errorf("%w: first field of %s is %s, want embedded rtti.Object", ErrLayout, t, f.Name)
		}
		return nil, nil
	}

	fields := make([]baseField, 0, len(bases))
	seen := make(map[reflect.Type]bool, len(bases))
	for i, b := range bases {
		if seen[b] {
			return nil, fmt.Errorf("%w: %s lists base %s twice", ErrLayout, t, b)
		}
		seen[b] = true

		f, ok := embeddedField(t, b)
		if !ok {
			return nil, fmt.Errorf("%w: %s does not embed %s by value", ErrLayout, t, b)
		}
		if i == 0 && (f.Index[0] != 0 || f.Offset != 0) {
			return nil, fmt.Errorf("%w: primary base %s must be the first field of %s", ErrLayout, b, t)
		}
		if i > 0 && f.Offset == 0 {
			return nil, fmt.Errorf("%w: base %s of %s sits at offset 0", ErrLayout, b, t)
		}
		fields = append(fields, baseField{typ: b, offset: f.Offset})
	}
	return fields, nil
}

// embeddedField finds the anonymous field of t whose type is b
func embeddedField(t, b reflect.Type) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == b {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
