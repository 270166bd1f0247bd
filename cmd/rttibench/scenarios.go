// ABOUTME: Cast scenarios over the fixture hierarchy with native baselines
// ABOUTME: Each scenario times rtti.Cast against a Go type assertion or switch

package main

import (
	"time"

	"github.com/prateek/rtti"
	fx "github.com/prateek/rtti/rttitest"
)

// Scenario builds an object vector and times casts over it
type Scenario struct {
	Name    string
	Prepare func(iterations int) *Vector
}

// Vector holds base handles and the matching most-derived values. The cast
// runs over handles; the native check runs over values.
type Vector struct {
	size   int
	cast   func(loops int) int
	native func(loops int) int
}

// Result is the outcome of one scenario
type Result struct {
	Name       string
	Objects    int
	Cast       time.Duration // Per loop
	Native     time.Duration // Per loop
	CastHits   int
	NativeHits int
}

// Run times both passes of v
func (v *Vector) Run(name string, loops int) Result {
	r := Result{Name: name, Objects: v.size}

	start := time.Now()
	r.CastHits = v.cast(loops)
	r.Cast = time.Since(start) / time.Duration(loops)

	start = time.Now()
	r.NativeHits = v.native(loops)
	r.Native = time.Since(start) / time.Duration(loops)

	return r
}

// maker creates one initialized object and returns a handle to its B
// subobject together with the most-derived pointer
type maker[B any] func() (*B, any)

func obj[T, B any]() maker[B] {
	return func() (*B, any) {
		t := rtti.New[T]()
		return rtti.Cast[B](t), t
	}
}

// vector casts B handles to D; native decides the same question for values
func vector[D, B any](native func(any) bool, makers ...maker[B]) func(int) *Vector {
	return func(iterations int) *Vector {
		handles := make([]*B, 0, iterations*len(makers))
		values := make([]any, 0, iterations*len(makers))
		for i := 0; i < iterations; i++ {
			for _, mk := range makers {
				h, v := mk()
				handles = append(handles, h)
				values = append(values, v)
			}
		}
		return newVector[D](handles, values, native)
	}
}

func newVector[D, B any](handles []*B, values []any, native func(any) bool) *Vector {
	return &Vector{
		size: len(handles),
		cast: func(loops int) int {
			hits := 0
			for l := 0; l < loops; l++ {
				for _, h := range handles {
					if rtti.Cast[D](h) != nil {
						hits++
					}
				}
			}
			return hits
		},
		native: func(loops int) int {
			hits := 0
			for l := 0; l < loops; l++ {
				for _, v := range values {
					if native(v) {
						hits++
					}
				}
			}
			return hits
		},
	}
}

// assert is the native downcast: a type assertion to the exact type
func assert[D any](v any) bool {
	_, ok := v.(*D)
	return ok
}

// nullVector holds nil handles only
func nullVector(iterations int) *Vector {
	n := iterations * 3
	return newVector[fx.Multi1A](make([]*fx.Base1, n), make([]any, n), assert[fx.Multi1A])
}

var scenarios = []Scenario{
	{"single1-up", vector[fx.Base1](upTo1(1), obj[fx.Derived1A, fx.Base1](), obj[fx.Derived1B, fx.Base1](), obj[fx.Derived1C, fx.Base1]())},
	{"single1-down", vector[fx.Derived1A](assert[fx.Derived1A], obj[fx.Derived1A, fx.Base1](), obj[fx.Derived1B, fx.Base1](), obj[fx.Derived1C, fx.Base1]())},
	{"single3-up", vector[fx.Base1](upTo1(3), obj[fx.Derived3A, fx.Base1](), obj[fx.Derived3B, fx.Base1](), obj[fx.Derived3C, fx.Base1]())},
	{"single3-down", vector[fx.Derived3A](assert[fx.Derived3A], obj[fx.Derived3A, fx.Base1](), obj[fx.Derived3B, fx.Base1](), obj[fx.Derived3C, fx.Base1]())},
	{"single7-up", vector[fx.Base1](upTo1(7), obj[fx.Derived7A, fx.Base1](), obj[fx.Derived7B, fx.Base1](), obj[fx.Derived7C, fx.Base1]())},
	{"single7-down", vector[fx.Derived7A](assert[fx.Derived7A], obj[fx.Derived7A, fx.Base1](), obj[fx.Derived7B, fx.Base1](), obj[fx.Derived7C, fx.Base1]())},
	{"wrong1", vector[fx.Multi1A](assert[fx.Multi1A], obj[fx.Derived1A, fx.Base1](), obj[fx.Derived1B, fx.Base1](), obj[fx.Derived1C, fx.Base1]())},
	{"wrong3", vector[fx.Multi1A](assert[fx.Multi1A], obj[fx.Derived3A, fx.Base1](), obj[fx.Derived3B, fx.Base1](), obj[fx.Derived3C, fx.Base1]())},
	{"wrong7", vector[fx.Multi1A](assert[fx.Multi1A], obj[fx.Derived7A, fx.Base1](), obj[fx.Derived7B, fx.Base1](), obj[fx.Derived7C, fx.Base1]())},
	{"nil", nullVector},
	{"multi-base1-up", vector[fx.Base1](isMulti1A, obj[fx.Multi1A, fx.Base1]())},
	{"multi-base1-down", vector[fx.Multi1A](assert[fx.Multi1A], obj[fx.Multi1A, fx.Base1]())},
	{"multi-base2-up", vector[fx.Base2](isMulti1A, obj[fx.Multi1A, fx.Base2]())},
	{"multi-base2-down", vector[fx.Multi1A](assert[fx.Multi1A], obj[fx.Multi1A, fx.Base2]())},
}

// Scenarios returns every scenario in suite order
func Scenarios() []Scenario {
	return scenarios
}

func findScenario(name string) *Scenario {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i]
		}
	}
	return nil
}

// upTo1 is the native upcast to Base1: a switch over the chain types at the
// given depth
func upTo1(depth int) func(any) bool {
	switch depth {
	case 1:
		return func(v any) bool {
			switch v.(type) {
			case *fx.Derived1A, *fx.Derived1B, *fx.Derived1C:
				return true
			}
			return false
		}
	case 3:
		return func(v any) bool {
			switch v.(type) {
			case *fx.Derived3A, *fx.Derived3B, *fx.Derived3C:
				return true
			}
			return false
		}
	default:
		return func(v any) bool {
			switch v.(type) {
			case *fx.Derived7A, *fx.Derived7B, *fx.Derived7C:
				return true
			}
			return false
		}
	}
}

func isMulti1A(v any) bool {
	return assert[fx.Multi1A](v)
}
