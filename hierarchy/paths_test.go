// ABOUTME: Tests for inheritance path search
// ABOUTME: Covers chains, diamonds, limits and cycles in hand-built graphs

package hierarchy

import (
	"reflect"
	"testing"

	"github.com/prateek/rtti"
	"github.com/prateek/rtti/rttitest"
)

func TestPathsToAncestor(t *testing.T) {
	g := diamond()

	tests := []struct {
		name     string
		from, to rtti.TypeID
		maxPaths int
		want     []Path
	}{
		{"self", 4, 4, 5, []Path{{IDs: []rtti.TypeID{4}}}},
		{"direct base", 4, 3, 5, []Path{{IDs: []rtti.TypeID{4, 3}}}},
		{"diamond", 4, 1, 5, []Path{
			{IDs: []rtti.TypeID{4, 2, 1}},
			{IDs: []rtti.TypeID{4, 3, 1}},
		}},
		{"limited", 4, 1, 1, []Path{{IDs: []rtti.TypeID{4, 2, 1}}}},
		{"not an ancestor", 2, 3, 5, nil},
		{"upwards only", 1, 4, 5, nil},
		{"zero limit", 4, 1, 0, nil},
		{"unknown", 99, 1, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PathsToAncestor(g, tt.from, tt.to, tt.maxPaths)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PathsToAncestor(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPathsToAncestorCycle(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: 1, Bases: []rtti.TypeID{2}})
	g.AddNode(&Node{ID: 2, Bases: []rtti.TypeID{1, 3}})
	g.AddNode(&Node{ID: 3})

	got := PathsToAncestor(g, 1, 3, 10)
	want := []Path{{IDs: []rtti.TypeID{1, 2, 3}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PathsToAncestor() = %v, want %v", got, want)
	}
}

func TestPathsToAncestorShortestFirst(t *testing.T) {
	// 5 -> {4, 1}, 4 -> 1
	g := NewGraph()
	g.AddNode(&Node{ID: 1})
	g.AddNode(&Node{ID: 4, Bases: []rtti.TypeID{1}})
	g.AddNode(&Node{ID: 5, Bases: []rtti.TypeID{4, 1}})

	got := PathsToAncestor(g, 5, 1, 10)
	if len(got) != 2 {
		t.Fatalf("got %d paths, want 2", len(got))
	}
	if len(got[0].IDs) > len(got[1].IDs) {
		t.Errorf("paths not ordered by length: %v", got)
	}
}

func TestPathsToAncestorFixture(t *testing.T) {
	r, g := fixtureGraph(t)

	id := func(t2 reflect.Type) rtti.TypeID {
		info, err := r.TypeInfo(t2)
		if err != nil {
			t.Fatal(err)
		}
		return info.ID()
	}

	from := id(reflect.TypeFor[rttitest.Derived7A]())
	to := id(reflect.TypeFor[rttitest.Base1]())
	paths := PathsToAncestor(g, from, to, 10)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if n := len(paths[0].IDs); n != 8 {
		t.Errorf("path length = %d, want 8", n)
	}

	from = id(reflect.TypeFor[rttitest.Multi1B]())
	if got := len(PathsToAncestor(g, from, to, 10)); got != 3 {
		t.Errorf("Multi1B reaches Base1 through %d paths, want 3", got)
	}
}
