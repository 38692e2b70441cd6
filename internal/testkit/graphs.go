// Package testkit provides graph fixtures: a ports.Graph implementation that
// can be built by hand, plus random generators for the template binary and
// tests.
package testkit

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/network-cards/network-cards/domain/core"
	"github.com/network-cards/network-cards/ports"
)

// Graph is an edge-list implementation of ports.Graph.
type Graph struct {
	name     string
	directed bool
	weighted bool
	nodes    []int64
	seen     map[int64]bool
	edges    []ports.Edge
}

// NewGraph returns an empty graph with the given capabilities.
func NewGraph(name string, directed, weighted bool) *Graph {
	return &Graph{
		name:     name,
		directed: directed,
		weighted: weighted,
		seen:     make(map[int64]bool),
	}
}

// AddNode registers a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id int64) {
	if g.seen[id] {
		return
	}
	g.seen[id] = true
	g.nodes = append(g.nodes, id)
}

// AddEdge adds a link, registering endpoints as needed. Self-loops are
// allowed.
func (g *Graph) AddEdge(from, to int64) {
	g.AddWeightedEdge(from, to, 0)
}

// AddWeightedEdge adds a link with a weight attribute value.
func (g *Graph) AddWeightedEdge(from, to int64, weight float64) {
	g.AddNode(from)
	g.AddNode(to)
	g.edges = append(g.edges, ports.Edge{From: from, To: to, Weight: weight})
}

// SetName renames the graph.
func (g *Graph) SetName(name string) { g.name = name }

func (g *Graph) Name() string { return g.name }
func (g *Graph) Directed() bool { return g.directed }
func (g *Graph) Weighted() bool { return g.weighted }

func (g *Graph) Nodes() []int64 {
	return append([]int64(nil), g.nodes...)
}

func (g *Graph) Edges() []ports.Edge {
	return append([]ports.Edge(nil), g.edges...)
}

// Path returns the undirected path graph on n nodes (0-1, 1-2, ...).
func Path(n int) *Graph {
	g := NewGraph(fmt.Sprintf("path-%d", n), false, false)
	for i := int64(0); i < int64(n); i++ {
		g.AddNode(i)
	}
	for i := int64(1); i < int64(n); i++ {
		g.AddEdge(i-1, i)
	}
	return g
}

// Gnp returns an Erdos-Renyi G(n, p) undirected graph, generated by gonum.
func Gnp(n int, p float64) (*Graph, error) {
	dst := simple.NewUndirectedGraph()
	if err := gen.Gnp(dst, n, p, nil); err != nil {
		return nil, fmt.Errorf("gnp generation failed: %w", err)
	}

	g := NewGraph(fmt.Sprintf("gnp-%d-%s", n, core.NewID().Short()), false, false)
	nodes := dst.Nodes()
	for nodes.Next() {
		g.AddNode(nodes.Node().ID())
	}
	edges := dst.Edges()
	for edges.Next() {
		e := edges.Edge()
		g.AddEdge(e.From().ID(), e.To().ID())
	}
	return g, nil
}

// GnpWeighted returns a G(n, p) graph with integer weights drawn uniformly
// from [0, 10].
func GnpWeighted(n int, p float64, seed int64) (*Graph, error) {
	g, err := Gnp(n, p)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	g.weighted = true
	for i := range g.edges {
		g.edges[i].Weight = float64(rng.Intn(11))
	}
	return g, nil
}

// DirectedDiamond returns the four-node digraph 0->1, 0->2, 2->3, 3->2. One
// unordered pair is bidirectional, so a quarter of its links are.
func DirectedDiamond() *Graph {
	g := NewGraph("directed-diamond", false, false)
	g.directed = true
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)
	return g
}

// DirectedDiamondWeighted is DirectedDiamond with random [0, 10] weights.
func DirectedDiamondWeighted(seed int64) *Graph {
	g := DirectedDiamond()
	rng := rand.New(rand.NewSource(seed))
	g.weighted = true
	for i := range g.edges {
		g.edges[i].Weight = float64(rng.Intn(11))
	}
	return g
}
