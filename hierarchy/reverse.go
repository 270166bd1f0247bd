// ABOUTME: Builds reverse edges from bases to their derived types
// ABOUTME: Used to list every type that directly derives from a base

package hierarchy

import "github.com/prateek/rtti"

// DerivedEdges maps each type to the types that list it as a direct base
type DerivedEdges map[rtti.TypeID][]rtti.TypeID

// BuildDerivedEdges creates the reverse of the base edges
func BuildDerivedEdges(g *Graph) DerivedEdges {
	reverse := make(DerivedEdges)

	g.ForEachNode(func(n *Node) {
		for _, base := range n.Bases {
			reverse[base] = append(reverse[base], n.ID)
		}
	})

	return reverse
}
