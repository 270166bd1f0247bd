// ABOUTME: BFS search for inheritance paths from a type to an ancestor
// ABOUTME: Returns shortest paths first with cycle detection

package hierarchy

import "github.com/prateek/rtti"

// PathsToAncestor finds up to maxPaths paths from a type to one of its
// ancestors by following direct-base edges breadth first. A type is its own
// ancestor through the single-element path.
func PathsToAncestor(g *Graph, from, to rtti.TypeID, maxPaths int) []Path {
	if maxPaths <= 0 || g.Node(from) == nil {
		return nil
	}

	if from == to {
		return []Path{{IDs: []rtti.TypeID{from}}}
	}

	type searchNode struct {
		id   rtti.TypeID
		path []rtti.TypeID
	}

	var result []Path
	queue := []searchNode{{id: from, path: []rtti.TypeID{from}}}

	for len(queue) > 0 && len(result) < maxPaths {
		node := queue[0]
		queue = queue[1:]

		n := g.Node(node.id)
		if n == nil {
			continue
		}

		for _, base := range n.Bases {
			// Registries reject self-embedding, but hand-built graphs may loop
			if inPath(node.path, base) {
				continue
			}

			newPath := make([]rtti.TypeID, len(node.path)+1)
			copy(newPath, node.path)
			newPath[len(node.path)] = base

			if base == to {
				result = append(result, Path{IDs: newPath})
				if len(result) >= maxPaths {
					break
				}
				continue
			}
			queue = append(queue, searchNode{id: base, path: newPath})
		}
	}

	return result
}

func inPath(path []rtti.TypeID, id rtti.TypeID) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}
	return false
}
