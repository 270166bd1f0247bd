// ABOUTME: Computes immediate dominators over the base edges of one type
// ABOUTME: Uses the iterative intersect algorithm on a reverse postorder

package hierarchy

import (
	"sort"

	"github.com/prateek/rtti"
)

// Dominators computes, for every proper ancestor of from, the immediate
// dominator: the closest type that every chain of direct bases from from to
// the ancestor passes through. For an ancestor inherited through several paths
// it is the type where those paths join. Returns nil for unknown types.
func Dominators(g *Graph, from rtti.TypeID) map[rtti.TypeID]rtti.TypeID {
	if g.Node(from) == nil {
		return nil
	}

	// Postorder over base edges
	var post []rtti.TypeID
	postNum := make(map[rtti.TypeID]int)
	visited := make(map[rtti.TypeID]bool)
	preds := make(map[rtti.TypeID][]rtti.TypeID)

	var dfs func(id rtti.TypeID)
	dfs = func(id rtti.TypeID) {
		visited[id] = true
		if n := g.Node(id); n != nil {
			for _, base := range n.Bases {
				preds[base] = append(preds[base], id)
				if !visited[base] {
					dfs(base)
				}
			}
		}
		postNum[id] = len(post)
		post = append(post, id)
	}
	dfs(from)

	idom := map[rtti.TypeID]rtti.TypeID{from: from}

	intersect := func(a, b rtti.TypeID) rtti.TypeID {
		for a != b {
			for postNum[a] < postNum[b] {
				a = idom[a]
			}
			for postNum[b] < postNum[a] {
				b = idom[b]
			}
		}
		return a
	}

	for changed := true; changed; {
		changed = false

		// Reverse postorder, skipping from
		for i := len(post) - 2; i >= 0; i-- {
			id := post[i]

			var newIdom rtti.TypeID
			found := false
			for _, p := range preds[id] {
				if _, ok := idom[p]; !ok {
					continue
				}
				if !found {
					newIdom, found = p, true
				} else {
					newIdom = intersect(p, newIdom)
				}
			}

			if found && idom[id] != newIdom {
				idom[id] = newIdom
				changed = true
			}
		}
	}

	delete(idom, from)
	return idom
}

// DominatorTree inverts immediate dominators into a tree from each type to
// the types it immediately dominates, in ascending order
func DominatorTree(idom map[rtti.TypeID]rtti.TypeID) map[rtti.TypeID][]rtti.TypeID {
	tree := make(map[rtti.TypeID][]rtti.TypeID)
	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}
	for _, children := range tree {
		sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	}
	return tree
}
