// ABOUTME: Standard fixture hierarchy shared by tests, benchmarks and tools
// ABOUTME: Covers deep single chains, multiple, diamond and nested inheritance

// Package rttitest provides a registered hierarchy of test types: six root
// types, six single-inheritance chains seven levels deep, types combining two
// chains, diamond types combining all six, and nested multiple inheritance in
// three base orders.
package rttitest

import (
	"sync"

	"github.com/prateek/rtti"
)

// Root types
type (
	Base1 struct {
		rtti.Object
		ValueBase1 int
	}

	Base2 struct {
		rtti.Object
		ValueBase2 int
	}

	Base3 struct {
		rtti.Object
		ValueBase3 int
	}

	Base4 struct {
		rtti.Object
		ValueBase4 int
	}

	Base5 struct {
		rtti.Object
		ValueBase5 int
	}

	Base6 struct {
		rtti.Object
		ValueBase6 int
	}
)

// Chain A, rooted at Base1
type (
	Derived1A struct {
		Base1
		Value1A int
	}

	Derived2A struct {
		Derived1A
		Value2A int
	}

	Derived3A struct {
		Derived2A
		Value3A int
	}

	Derived4A struct {
		Derived3A
		Value4A int
	}

	Derived5A struct {
		Derived4A
		Value5A int
	}

	Derived6A struct {
		Derived5A
		Value6A int
	}

	Derived7A struct {
		Derived6A
		Value7A int
	}
)

// Chain B, rooted at Base1
type (
	Derived1B struct {
		Base1
		Value1B int
	}

	Derived2B struct {
		Derived1B
		Value2B int
	}

	Derived3B struct {
		Derived2B
		Value3B int
	}

	Derived4B struct {
		Derived3B
		Value4B int
	}

	Derived5B struct {
		Derived4B
		Value5B int
	}

	Derived6B struct {
		Derived5B
		Value6B int
	}

	Derived7B struct {
		Derived6B
		Value7B int
	}
)

// Chain C, rooted at Base1
type (
	Derived1C struct {
		Base1
		Value1C int
	}

	Derived2C struct {
		Derived1C
		Value2C int
	}

	Derived3C struct {
		Derived2C
		Value3C int
	}

	Derived4C struct {
		Derived3C
		Value4C int
	}

	Derived5C struct {
		Derived4C
		Value5C int
	}

	Derived6C struct {
		Derived5C
		Value6C int
	}

	Derived7C struct {
		Derived6C
		Value7C int
	}
)

// Chain D, rooted at Base2
type (
	Derived1D struct {
		Base2
		Value1D int
	}

	Derived2D struct {
		Derived1D
		Value2D int
	}

	Derived3D struct {
		Derived2D
		Value3D int
	}

	Derived4D struct {
		Derived3D
		Value4D int
	}

	Derived5D struct {
		Derived4D
		Value5D int
	}

	Derived6D struct {
		Derived5D
		Value6D int
	}

	Derived7D struct {
		Derived6D
		Value7D int
	}
)

// Chain E, rooted at Base2
type (
	Derived1E struct {
		Base2
		Value1E int
	}

	Derived2E struct {
		Derived1E
		Value2E int
	}

	Derived3E struct {
		Derived2E
		Value3E int
	}

	Derived4E struct {
		Derived3E
		Value4E int
	}

	Derived5E struct {
		Derived4E
		Value5E int
	}

	Derived6E struct {
		Derived5E
		Value6E int
	}

	Derived7E struct {
		Derived6E
		Value7E int
	}
)

// Chain F, rooted at Base2
type (
	Derived1F struct {
		Base2
		Value1F int
	}

	Derived2F struct {
		Derived1F
		Value2F int
	}

	Derived3F struct {
		Derived2F
		Value3F int
	}

	Derived4F struct {
		Derived3F
		Value4F int
	}

	Derived5F struct {
		Derived4F
		Value5F int
	}

	Derived6F struct {
		Derived5F
		Value6F int
	}

	Derived7F struct {
		Derived6F
		Value7F int
	}
)

// Two chains at the same depth
type (
	Multi1A struct {
		Base1
		Base2
		ValueMulti1A int
	}

	Multi2A struct {
		Derived1A
		Derived1D
		ValueMulti2A int
	}

	Multi3A struct {
		Derived2A
		Derived2D
		ValueMulti3A int
	}

	Multi4A struct {
		Derived3A
		Derived3D
		ValueMulti4A int
	}

	Multi5A struct {
		Derived4A
		Derived4D
		ValueMulti5A int
	}

	Multi6A struct {
		Derived5A
		Derived5D
		ValueMulti6A int
	}

	Multi7A struct {
		Derived6A
		Derived6D
		ValueMulti7A int
	}
)

// All six chains at the same depth. Base1 and Base2 are reachable through
// three paths each.
type (
	Multi1B struct {
		Derived1A
		Derived1B
		Derived1C
		Derived1D
		Derived1E
		Derived1F
		ValueMulti1B int
	}

	Multi3B struct {
		Derived3A
		Derived3B
		Derived3C
		Derived3D
		Derived3E
		Derived3F
		ValueMulti3B int
	}

	Multi7B struct {
		Derived7A
		Derived7B
		Derived7C
		Derived7D
		Derived7E
		Derived7F
		ValueMulti7B int
	}
)

// Nested multiple inheritance
type (
	Multi1C struct {
		Base1
		Base2
		ValueMulti1C int
	}

	Multi2C struct {
		Base3
		Base4
		ValueMulti2C int
	}

	Multi3C struct {
		Base5
		Base6
		ValueMulti3C int
	}

	Multi4C struct {
		Multi1C
		Multi2C
		Multi3C
		ValueMulti4C int
	}

	Multi5C struct {
		Multi2C
		Multi3C
		Multi1C
		ValueMulti5C int
	}

	Multi6C struct {
		Multi3C
		Multi1C
		Multi2C
		ValueMulti6C int
	}
)

// Forward is unrelated to every other fixture type
type Forward struct {
	rtti.Object
	Value int
}

var (
	regOnce sync.Once
	regErr  error
)

// Register adds the fixture hierarchy to rtti.DefaultRegistry. It is safe to
// call more than once; later calls return the first call's result.
func Register() error {
	regOnce.Do(func() {
		regErr = RegisterIn(rtti.DefaultRegistry)
	})
	return regErr
}

// MustRegister is like Register but panics on error
func MustRegister() {
	if err := Register(); err != nil {
		panic(err)
	}
}

// RegisterIn adds the fixture hierarchy to r. The nested types are registered
// before their bases, which are only resolved on first use.
func RegisterIn(r *rtti.Registry) error {
	regs := []func(*rtti.Registry) error{
		reg[Forward]("Forward"),
		reg[Multi4C]("Multi4C", rtti.BaseOf[Multi1C](), rtti.BaseOf[Multi2C](), rtti.BaseOf[Multi3C]()),
		reg[Multi5C]("Multi5C", rtti.BaseOf[Multi2C](), rtti.BaseOf[Multi3C](), rtti.BaseOf[Multi1C]()),
		reg[Multi6C]("Multi6C", rtti.BaseOf[Multi3C](), rtti.BaseOf[Multi1C](), rtti.BaseOf[Multi2C]()),
		reg[Multi1C]("Multi1C", rtti.BaseOf[Base1](), rtti.BaseOf[Base2]()),
		reg[Multi2C]("Multi2C", rtti.BaseOf[Base3](), rtti.BaseOf[Base4]()),
		reg[Multi3C]("Multi3C", rtti.BaseOf[Base5](), rtti.BaseOf[Base6]()),
		reg[Base1]("Base1"),
		reg[Base2]("Base2"),
		reg[Base3]("Base3"),
		reg[Base4]("Base4"),
		reg[Base5]("Base5"),
		reg[Base6]("Base6"),
		reg[Derived1A]("Derived1A", rtti.BaseOf[Base1]()),
		reg[Derived2A]("Derived2A", rtti.BaseOf[Derived1A]()),
		reg[Derived3A]("Derived3A", rtti.BaseOf[Derived2A]()),
		reg[Derived4A]("Derived4A", rtti.BaseOf[Derived3A]()),
		reg[Derived5A]("Derived5A", rtti.BaseOf[Derived4A]()),
		reg[Derived6A]("Derived6A", rtti.BaseOf[Derived5A]()),
		reg[Derived7A]("Derived7A", rtti.BaseOf[Derived6A]()),
		reg[Derived1B]("Derived1B", rtti.BaseOf[Base1]()),
		reg[Derived2B]("Derived2B", rtti.BaseOf[Derived1B]()),
		reg[Derived3B]("Derived3B", rtti.BaseOf[Derived2B]()),
		reg[Derived4B]("Derived4B", rtti.BaseOf[Derived3B]()),
		reg[Derived5B]("Derived5B", rtti.BaseOf[Derived4B]()),
		reg[Derived6B]("Derived6B", rtti.BaseOf[Derived5B]()),
		reg[Derived7B]("Derived7B", rtti.BaseOf[Derived6B]()),
		reg[Derived1C]("Derived1C", rtti.BaseOf[Base1]()),
		reg[Derived2C]("Derived2C", rtti.BaseOf[Derived1C]()),
		reg[Derived3C]("Derived3C", rtti.BaseOf[Derived2C]()),
		reg[Derived4C]("Derived4C", rtti.BaseOf[Derived3C]()),
		reg[Derived5C]("Derived5C", rtti.BaseOf[Derived4C]()),
		reg[Derived6C]("Derived6C", rtti.BaseOf[Derived5C]()),
		reg[Derived7C]("Derived7C", rtti.BaseOf[Derived6C]()),
		reg[Derived1D]("Derived1D", rtti.BaseOf[Base2]()),
		reg[Derived2D]("Derived2D", rtti.BaseOf[Derived1D]()),
		reg[Derived3D]("Derived3D", rtti.BaseOf[Derived2D]()),
		reg[Derived4D]("Derived4D", rtti.BaseOf[Derived3D]()),
		reg[Derived5D]("Derived5D", rtti.BaseOf[Derived4D]()),
		reg[Derived6D]("Derived6D", rtti.BaseOf[Derived5D]()),
		reg[Derived7D]("Derived7D", rtti.BaseOf[Derived6D]()),
		reg[Derived1E]("Derived1E", rtti.BaseOf[Base2]()),
		reg[Derived2E]("Derived2E", rtti.BaseOf[Derived1E]()),
		reg[Derived3E]("Derived3E", rtti.BaseOf[Derived2E]()),
		reg[Derived4E]("Derived4E", rtti.BaseOf[Derived3E]()),
		reg[Derived5E]("Derived5E", rtti.BaseOf[Derived4E]()),
		reg[Derived6E]("Derived6E", rtti.BaseOf[Derived5E]()),
		reg[Derived7E]("Derived7E", rtti.BaseOf[Derived6E]()),
		reg[Derived1F]("Derived1F", rtti.BaseOf[Base2]()),
		reg[Derived2F]("Derived2F", rtti.BaseOf[Derived1F]()),
		reg[Derived3F]("Derived3F", rtti.BaseOf[Derived2F]()),
		reg[Derived4F]("Derived4F", rtti.BaseOf[Derived3F]()),
		reg[Derived5F]("Derived5F", rtti.BaseOf[Derived4F]()),
		reg[Derived6F]("Derived6F", rtti.BaseOf[Derived5F]()),
		reg[Derived7F]("Derived7F", rtti.BaseOf[Derived6F]()),
		reg[Multi1A]("Multi1A", rtti.BaseOf[Base1](), rtti.BaseOf[Base2]()),
		reg[Multi2A]("Multi2A", rtti.BaseOf[Derived1A](), rtti.BaseOf[Derived1D]()),
		reg[Multi3A]("Multi3A", rtti.BaseOf[Derived2A](), rtti.BaseOf[Derived2D]()),
		reg[Multi4A]("Multi4A", rtti.BaseOf[Derived3A](), rtti.BaseOf[Derived3D]()),
		reg[Multi5A]("Multi5A", rtti.BaseOf[Derived4A](), rtti.BaseOf[Derived4D]()),
		reg[Multi6A]("Multi6A", rtti.BaseOf[Derived5A](), rtti.BaseOf[Derived5D]()),
		reg[Multi7A]("Multi7A", rtti.BaseOf[Derived6A](), rtti.BaseOf[Derived6D]()),
		reg[Multi1B]("Multi1B", rtti.BaseOf[Derived1A](), rtti.BaseOf[Derived1B](), rtti.BaseOf[Derived1C](), rtti.BaseOf[Derived1D](), rtti.BaseOf[Derived1E](), rtti.BaseOf[Derived1F]()),
		reg[Multi3B]("Multi3B", rtti.BaseOf[Derived3A](), rtti.BaseOf[Derived3B](), rtti.BaseOf[Derived3C](), rtti.BaseOf[Derived3D](), rtti.BaseOf[Derived3E](), rtti.BaseOf[Derived3F]()),
		reg[Multi7B]("Multi7B", rtti.BaseOf[Derived7A](), rtti.BaseOf[Derived7B](), rtti.BaseOf[Derived7C](), rtti.BaseOf[Derived7D](), rtti.BaseOf[Derived7E](), rtti.BaseOf[Derived7F]()),
	}

	for _, register := range regs {
		if err := register(r); err != nil {
			return err
		}
	}
	return nil
}

// reg defers registering T until the registry is known
func reg[T any](name string, bases ...rtti.Base) func(*rtti.Registry) error {
	return func(r *rtti.Registry) error {
		return rtti.RegisterIn[T](r, name, bases...)
	}
}
