// ABOUTME: Benchmarks for checked casts over the fixture hierarchy
// ABOUTME: Compares static, dynamic and failing casts at several depths

package rtti_test

import (
	"testing"

	"github.com/prateek/rtti"
	fx "github.com/prateek/rtti/rttitest"
)

var sinkBase1 *fx.Base1

func BenchmarkCast(b *testing.B) {
	d7 := rtti.New[fx.Derived7A]()
	m := rtti.New[fx.Multi1A]()
	m7 := rtti.New[fx.Multi7B]()

	// Upcasts resolve from the cached per-pair plan and never touch the
	// header or a blob; they should stay close to a plain pointer offset
	b.Run("upcast/depth7", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBase1 = rtti.Cast[fx.Base1](d7)
		}
	})

	b.Run("downcast/depth7", func(b *testing.B) {
		base := &d7.Base1
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if rtti.Cast[fx.Derived7A](base) == nil {
				b.Fatal("cast failed")
			}
		}
	})

	b.Run("wrong/depth7", func(b *testing.B) {
		base := &d7.Base1
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if rtti.Cast[fx.Multi1A](base) != nil {
				b.Fatal("cast succeeded")
			}
		}
	})

	b.Run("cross/multi", func(b *testing.B) {
		base := &m.Base2
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBase1 = rtti.Cast[fx.Base1](base)
		}
	})

	b.Run("cross/six-chains", func(b *testing.B) {
		base := &m7.Derived7F.Base2
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBase1 = rtti.Cast[fx.Base1](base)
		}
	})

	b.Run("nil", func(b *testing.B) {
		var base *fx.Base1
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if rtti.Cast[fx.Multi1A](base) != nil {
				b.Fatal("cast succeeded")
			}
		}
	})
}

func BenchmarkNew(b *testing.B) {
	b.Run("Derived7A", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = rtti.New[fx.Derived7A]()
		}
	})
	b.Run("Multi7B", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = rtti.New[fx.Multi7B]()
		}
	})
}
