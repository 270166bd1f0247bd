// ABOUTME: In-memory graph of registered types and their direct bases
// ABOUTME: Built from a registry snapshot for inspection and diagnostics

package hierarchy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/prateek/rtti"
)

var log = commonlog.GetLogger("rtti.hierarchy")

// Graph holds registered types keyed by identity
type Graph struct {
	mu    sync.RWMutex
	nodes map[rtti.TypeID]*Node
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[rtti.TypeID]*Node),
	}
}

// FromRegistry builds the graph of every type registered in r. Building it
// forces every descriptor to be constructed.
func FromRegistry(r *rtti.Registry) (*Graph, error) {
	g := NewGraph()
	for _, e := range r.Entries() {
		info, err := r.TypeInfo(e.Type)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", e.Name, err)
		}
		g.AddType(info)
	}
	log.Debugf("loaded %d types", g.NumNodes())
	return g, nil
}

// AddType adds a descriptor as a node
func (g *Graph) AddType(info *rtti.TypeInfo) {
	node := &Node{
		ID:   info.ID(),
		Name: info.Name(),
		Size: info.Type().Size(),
	}
	for _, b := range info.Bases() {
		node.Bases = append(node.Bases, b.Info.ID())
		node.Offsets = append(node.Offsets, b.Offset)
	}
	g.AddNode(node)
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(node *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[node.ID] = node
}

// Node retrieves a node by ID
func (g *Graph) Node(id rtti.TypeID) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[id]
}

// Name returns the display name of id, or its numeric form when unknown
func (g *Graph) Name(id rtti.TypeID) string {
	if n := g.Node(id); n != nil {
		return n.Name
	}
	return id.String()
}

// NumNodes returns the total number of nodes
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// ForEachNode iterates over all nodes in ascending ID order
func (g *Graph) ForEachNode(fn func(*Node)) {
	g.mu.RLock()
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	g.mu.RUnlock()

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	for _, n := range nodes {
		fn(n)
	}
}
