// ABOUTME: Core data types for the type hierarchy graph
// ABOUTME: Defines Node and Path structures keyed by type identity

package hierarchy

import "github.com/prateek/rtti"

// Node represents a registered type
type Node struct {
	ID      rtti.TypeID   // Type identity
	Name    string        // Display name
	Size    uintptr       // Size of a value in bytes
	Bases   []rtti.TypeID // Direct bases in declaration order
	Offsets []uintptr     // Offset of each direct base
}

// Path is a chain of direct-base edges from a type to one of its ancestors
type Path struct {
	IDs []rtti.TypeID // Sequence of type IDs from the derived type to the ancestor
}
