// ABOUTME: Property tests casting every fixture type to every ancestor and back
// ABOUTME: Cross-checks header resolution against descriptor containment

package rtti_test

import (
	"math/rand"
	"reflect"
	"testing"
	"unsafe"

	"github.com/prateek/rtti"
)

// fixtureInfos returns the descriptors of every type in the default registry
func fixtureInfos(t *testing.T) []*rtti.TypeInfo {
	t.Helper()
	var infos []*rtti.TypeInfo
	for _, e := range rtti.DefaultRegistry.Entries() {
		info, err := rtti.DefaultRegistry.TypeInfo(e.Type)
		if err != nil {
			t.Fatalf("TypeInfo(%s) error = %v", e.Name, err)
		}
		infos = append(infos, info)
	}
	return infos
}

func TestPropertyRoundTrip(t *testing.T) {
	infos := fixtureInfos(t)

	for _, info := range infos {
		p := reflect.New(info.Type()).UnsafePointer()
		info.Init(p)

		blocks, err := info.Data().Blocks()
		if err != nil {
			t.Fatalf("%s: Blocks() error = %v", info.Name(), err)
		}

		for _, blk := range blocks {
			for _, id := range blk.IDs {
				sub := info.CastTo(p, rtti.TypeID(id))
				if sub == nil {
					t.Errorf("%s: ancestor %d not found", info.Name(), id)
					continue
				}

				// Every subobject leads back to the whole object through a header
				// found at the start of its block
				hdr := (*rtti.Object)(unsafe.Add(p, int(blk.Offset)))
				if got := hdr.CastTo(info.ID()); got != p {
					t.Errorf("%s: header at %d resolves to %p, want %p", info.Name(), blk.Offset, got, p)
				}
				if got := hdr.TypeName(); got != info.Name() {
					t.Errorf("%s: header at %d names %q", info.Name(), blk.Offset, got)
				}
			}
		}
	}
}

func TestPropertyContainment(t *testing.T) {
	infos := fixtureInfos(t)
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		from := infos[r.Intn(len(infos))]
		to := infos[r.Intn(len(infos))]

		p := reflect.New(from.Type()).UnsafePointer()
		from.Init(p)

		hdr := (*rtti.Object)(p)
		got := hdr.CastTo(to.ID())
		if from.Contains(to.ID()) != (got != nil) {
			t.Errorf("%s -> %s: Contains = %v, CastTo = %p", from.Name(), to.Name(), from.Contains(to.ID()), got)
		}
		if got != nil {
			// The subobject lies inside the object
			off := uintptr(got) - uintptr(p)
			if off+to.Type().Size() > from.Type().Size() {
				t.Errorf("%s -> %s: subobject at %d overruns %d bytes", from.Name(), to.Name(), off, from.Type().Size())
			}
			if to.Type() != from.Type() && off == 0 && !isPrimaryChain(from, to) {
				t.Errorf("%s -> %s: secondary base at offset 0", from.Name(), to.Name())
			}
		}
	}
}

// isPrimaryChain reports whether to is reached from from through first bases only
func isPrimaryChain(from, to *rtti.TypeInfo) bool {
	for cur := from; cur != nil; {
		if cur.Equal(to) {
			return true
		}
		bases := cur.Bases()
		if len(bases) == 0 {
			return false
		}
		cur = bases[0].Info
	}
	return false
}
