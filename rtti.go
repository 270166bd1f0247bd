// ABOUTME: Main rtti package providing runtime type identification and safe casts
// ABOUTME: Declares the package documentation and version information

// Package rtti provides compact runtime type identification and checked casts
// between registered struct types that embed one another.
//
// A registered type lists its direct bases, which it must embed by value in
// declaration order: the first base as its first field, every further base at
// a non-zero offset. Types without bases embed Object as their first field.
//
//	type Shape struct {
//		rtti.Object
//		X, Y float64
//	}
//
//	type Named struct {
//		rtti.Object
//		Name string
//	}
//
//	type Label struct {
//		Shape
//		Named
//	}
//
//	rtti.MustRegister[Shape]("Shape")
//	rtti.MustRegister[Named]("Named")
//	rtti.MustRegister[Label]("Label", rtti.BaseOf[Shape](), rtti.BaseOf[Named]())
//
//	l := rtti.New[Label]()
//	n := &l.Named                   // a handle to one base
//	s := rtti.Cast[Shape](n)        // cross-cast through the object header
//	back := rtti.Cast[Label](s)     // downcast, back == l
//
// Each type's descriptor is built once, on first use, from its bases'
// descriptors. Casts walk that descriptor and never allocate.
//
// Object headers are bound to the value Init wrote them into. A copied value,
// or a base copied out of one, supports only upcasts until Init runs on it.
package rtti

// Version is the semantic version of the rtti module
const Version = "0.1.0-dev"
