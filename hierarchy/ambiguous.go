// ABOUTME: Detects ancestors reachable through more than one inheritance path
// ABOUTME: Counts paths per ancestor with a memoized walk over base edges

package hierarchy

import (
	"sort"

	"github.com/prateek/rtti"
)

// Ambiguous returns, in ascending order, the ancestors of from that are
// reachable through more than one chain of direct bases. Each of them appears
// several times in from's hierarchy blob and casts resolve to the first.
func Ambiguous(g *Graph, from rtti.TypeID) []rtti.TypeID {
	counts := PathCounts(g, from)
	var out []rtti.TypeID
	for id, c := range counts {
		if c > 1 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PathCounts returns, for from and every ancestor, the number of distinct
// base chains leading to it from from. Unknown types yield an empty map.
func PathCounts(g *Graph, from rtti.TypeID) map[rtti.TypeID]int {
	memo := make(map[rtti.TypeID]map[rtti.TypeID]int)
	visiting := make(map[rtti.TypeID]bool)

	var walk func(id rtti.TypeID) map[rtti.TypeID]int
	walk = func(id rtti.TypeID) map[rtti.TypeID]int {
		if m, ok := memo[id]; ok {
			return m
		}
		n := g.Node(id)
		if n == nil || visiting[id] {
			return nil
		}
		visiting[id] = true

		m := map[rtti.TypeID]int{id: 1}
		for _, base := range n.Bases {
			for anc, c := range walk(base) {
				m[anc] += c
			}
		}

		visiting[id] = false
		memo[id] = m
		return m
	}

	if m := walk(from); m != nil {
		return m
	}
	return map[rtti.TypeID]int{}
}
