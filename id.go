// ABOUTME: Process-wide allocation of type identities
// ABOUTME: Hands out a unique, never reused identity per registered type

package rtti

import (
	"strconv"
	"sync/atomic"
)

// TypeID identifies a registered type within one process. Identities are only
// comparable for equality and are never stable across runs.
type TypeID uint32

// String returns a debug form of the identity
func (id TypeID) String() string {
	return "TypeID(" + strconv.FormatUint(uint64(id), 10) + ")"
}

var lastID atomic.Uint32

// allocateID returns the next unused identity, starting at 1
func allocateID() TypeID {
	return TypeID(lastID.Add(1))
}
