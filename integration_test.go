// ABOUTME: Integration tests for the complete rtti system
// ABOUTME: Validates registration, casts and hierarchy inspection end to end

package rtti_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/prateek/rtti"
	"github.com/prateek/rtti/hierarchy"
	"github.com/prateek/rtti/rttitest"
)

func TestEndToEndPrivateRegistry(t *testing.T) {
	r := rtti.NewRegistry()
	if err := rttitest.RegisterIn(r); err != nil {
		t.Fatalf("RegisterIn() error = %v", err)
	}

	// A second registration of the same hierarchy is rejected
	if err := rttitest.RegisterIn(r); err == nil {
		t.Error("registering the fixtures twice should fail")
	}

	g, err := hierarchy.FromRegistry(r)
	if err != nil {
		t.Fatalf("FromRegistry() error = %v", err)
	}
	if g.NumNodes() != r.Len() {
		t.Errorf("NumNodes() = %d, want %d", g.NumNodes(), r.Len())
	}

	// Private descriptors are distinct from the default registry's
	private, err := r.TypeInfo(reflect.TypeFor[rttitest.Multi4C]())
	if err != nil {
		t.Fatal(err)
	}
	if private == rtti.TypeInfoOf[rttitest.Multi4C]() {
		t.Error("private registry shares the default descriptor")
	}

	// Every derived edge leads to a type containing the base
	reverse := hierarchy.BuildDerivedEdges(g)
	for base, derived := range reverse {
		for _, d := range derived {
			paths := hierarchy.PathsToAncestor(g, d, base, 1)
			if len(paths) != 1 {
				t.Errorf("%s -> %s: no path", g.Name(d), g.Name(base))
			}
		}
	}
}

func TestEndToEndDescriptorsMatchCasts(t *testing.T) {
	g, err := hierarchy.FromRegistry(rtti.DefaultRegistry)
	if err != nil {
		t.Fatalf("FromRegistry() error = %v", err)
	}

	m := rtti.New[rttitest.Multi7B]()
	info := rtti.TypeInfoOfValue(&m.Derived7E.Base2)
	if info != rtti.TypeInfoOf[rttitest.Multi7B]() {
		t.Fatalf("TypeInfoOfValue() = %v, want Multi7B", info)
	}

	amb := hierarchy.Ambiguous(g, info.ID())
	want := []rtti.TypeID{rtti.TypeIDOf[rttitest.Base1](), rtti.TypeIDOf[rttitest.Base2]()}
	if want[0] > want[1] {
		want[0], want[1] = want[1], want[0]
	}
	if !reflect.DeepEqual(amb, want) {
		t.Errorf("Ambiguous(Multi7B) = %v, want %v", amb, want)
	}

	dot := hierarchy.DOT(g, "fixtures")
	if !strings.Contains(dot, "Multi7B") {
		t.Error("DOT output missing Multi7B")
	}
}
