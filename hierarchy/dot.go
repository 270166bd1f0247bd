// ABOUTME: Renders the type hierarchy as a Graphviz DOT document
// ABOUTME: Edges point from each derived type to its direct bases

package hierarchy

import (
	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"
)

// Lattice converts the graph to a lattice graph keyed by type name. Each
// direct base becomes an edge from the derived type to the base.
func Lattice(g *Graph) *lattice.Graph {
	lg := &lattice.Graph{}
	g.ForEachNode(func(n *Node) {
		lg.Nodes = append(lg.Nodes, n.Name)
		for _, base := range n.Bases {
			lg.Edges = append(lg.Edges, lattice.Edge{
				Caller: n.Name,
				Callee: g.Name(base),
			})
		}
	})
	lg.Dedup()
	return lg
}

// DOT renders the graph with the given title
func DOT(g *Graph, title string) string {
	lg := Lattice(g)
	log.Debugf("rendering %s: %d nodes, %d edges", title, len(lg.Nodes), len(lg.Edges))
	return render.DOT(lg, title)
}
