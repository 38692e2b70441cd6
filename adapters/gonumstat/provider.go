// Package gonumstat implements ports.GraphStatsPort on top of gonum's graph
// algorithms. All heavy lifting (connectivity, traversal, correlation) is
// delegated to gonum; this adapter only translates between the card system's
// graph capability interface and gonum's structures.
package gonumstat

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/stat"

	"github.com/network-cards/network-cards/domain/core"
	"github.com/network-cards/network-cards/ports"
)

// Provider computes graph statistics for one ports.Graph. Construction walks
// the graph once; the individual statistics run on the prebuilt gonum
// structures.
type Provider struct {
	src ports.Graph

	nodes []int64
	edges []ports.Edge
	loops int

	// undirected view, self-loops dropped; the directed structure is only
	// built for directed inputs.
	undirected *simple.UndirectedGraph
	directed   *simple.DirectedGraph

	deg map[int64]int
	in  map[int64]int
	out map[int64]int
}

// New builds a provider for g.
func New(g ports.Graph) *Provider {
	p := &Provider{
		src:        g,
		nodes:      g.Nodes(),
		edges:      g.Edges(),
		undirected: simple.NewUndirectedGraph(),
		deg:        make(map[int64]int),
		in:         make(map[int64]int),
		out:        make(map[int64]int),
	}
	if g.Directed() {
		p.directed = simple.NewDirectedGraph()
	}

	for _, id := range p.nodes {
		if p.undirected.Node(id) == nil {
			p.undirected.AddNode(simple.Node(id))
		}
		if p.directed != nil && p.directed.Node(id) == nil {
			p.directed.AddNode(simple.Node(id))
		}
	}

	for _, e := range p.edges {
		p.deg[e.From]++
		p.deg[e.To]++
		p.out[e.From]++
		p.in[e.To]++

		if e.From == e.To {
			// simple graphs reject self-loops; count them separately.
			p.loops++
			continue
		}
		if !p.undirected.HasEdgeBetween(e.From, e.To) {
			p.undirected.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}
		if p.directed != nil && !p.directed.HasEdgeFromTo(e.From, e.To) {
			p.directed.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}
	}
	return p
}

func (p *Provider) Name() string     { return p.src.Name() }
func (p *Provider) IsDirected() bool { return p.src.Directed() }
func (p *Provider) IsWeighted() bool { return p.src.Weighted() }

// IsNegativelyWeighted reports whether any link carries a negative weight.
// An unweighted graph is never negatively weighted, whatever its Edge.Weight
// zero values say.
func (p *Provider) IsNegativelyWeighted() bool {
	if !p.src.Weighted() {
		return false
	}
	for _, e := range p.edges {
		if e.Weight < 0 {
			return true
		}
	}
	return false
}

func (p *Provider) NumNodes() int     { return len(p.nodes) }
func (p *Provider) NumEdges() int     { return len(p.edges) }
func (p *Provider) NumSelfLoops() int { return p.loops }

func (p *Provider) Degrees() []int    { return p.degreeSlice(p.deg) }
func (p *Provider) InDegrees() []int  { return p.degreeSlice(p.in) }
func (p *Provider) OutDegrees() []int { return p.degreeSlice(p.out) }

func (p *Provider) degreeSlice(m map[int64]int) []int {
	degs := make([]int, len(p.nodes))
	for i, id := range p.nodes {
		degs[i] = m[id]
	}
	return degs
}

// BidirectionalShare returns the percentage of directed links whose reverse
// also exists: (m - unordered pairs with at least one link) / m, times 100.
func (p *Provider) BidirectionalShare() (float64, error) {
	if len(p.edges) == 0 {
		return 0, core.ErrNoLinks
	}
	pairs := make(map[[2]int64]struct{}, len(p.edges))
	for _, e := range p.edges {
		lo, hi := e.From, e.To
		if lo > hi {
			lo, hi = hi, lo
		}
		pairs[[2]int64{lo, hi}] = struct{}{}
	}
	m := float64(len(p.edges))
	return 100 * (m - float64(len(pairs))) / m, nil
}

// AverageClustering returns the mean local clustering coefficient over the
// undirected view. An empty graph yields zero rather than a division error.
func (p *Provider) AverageClustering() float64 {
	if len(p.nodes) == 0 {
		return 0
	}
	var sum float64
	for _, id := range p.nodes {
		sum += p.localClustering(id)
	}
	return sum / float64(len(p.nodes))
}

func (p *Provider) localClustering(id int64) float64 {
	var neighbors []int64
	it := p.undirected.From(id)
	for it.Next() {
		neighbors = append(neighbors, it.Node().ID())
	}
	k := len(neighbors)
	if k < 2 {
		return 0
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if p.undirected.HasEdgeBetween(neighbors[i], neighbors[j]) {
				links++
			}
		}
	}
	return 2 * float64(links) / float64(k*(k-1))
}

// DegreeAssortativity returns the Pearson correlation of degrees across link
// endpoints: out-degree against in-degree for directed graphs, and the plain
// degree at both ends (each link counted in both orientations) otherwise.
// The result is NaN when every degree is identical.
func (p *Provider) DegreeAssortativity() (float64, error) {
	if len(p.edges) == 0 {
		return 0, core.ErrNoLinks
	}
	var xs, ys []float64
	for _, e := range p.edges {
		if p.src.Directed() {
			xs = append(xs, float64(p.out[e.From]))
			ys = append(ys, float64(p.in[e.To]))
			continue
		}
		xs = append(xs, float64(p.deg[e.From]), float64(p.deg[e.To]))
		ys = append(ys, float64(p.deg[e.To]), float64(p.deg[e.From]))
	}
	return stat.Correlation(xs, ys, nil), nil
}

// ComponentSizes returns connected-component sizes, largest first. Directed
// graphs are measured by weak connectivity.
func (p *Provider) ComponentSizes() []int {
	comps := p.components()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	return sizes
}

// components returns the undirected-view components, largest first.
func (p *Provider) components() [][]graph.Node {
	comps := topo.ConnectedComponents(p.undirected)
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})
	return comps
}

// Diameter returns the longest shortest path in hops. Directed graphs must
// be strongly connected, undirected graphs connected.
func (p *Provider) Diameter() (int, error) {
	if len(p.nodes) == 0 {
		return 0, core.ErrEmptyGraph
	}
	if p.src.Directed() {
		if !p.IsStronglyConnected() {
			return 0, core.ErrDisconnected
		}
		return p.eccentricityMax(p.directed, p.graphNodes(p.directed)), nil
	}
	if !p.IsWeaklyConnected() {
		return 0, core.ErrDisconnected
	}
	return p.eccentricityMax(p.undirected, p.graphNodes(p.undirected)), nil
}

// LargestComponentDiameter returns the diameter of the induced subgraph on
// the largest (weak) component.
func (p *Provider) LargestComponentDiameter() (int, error) {
	if len(p.nodes) == 0 {
		return 0, core.ErrEmptyGraph
	}
	comps := p.components()
	// BFS from inside a component never leaves it, so no subgraph copy is
	// needed.
	return p.eccentricityMax(p.undirected, comps[0]), nil
}

func (p *Provider) IsStronglyConnected() bool {
	if p.directed == nil {
		return p.IsWeaklyConnected()
	}
	return len(p.nodes) > 0 && len(topo.TarjanSCC(p.directed)) == 1
}

func (p *Provider) IsWeaklyConnected() bool {
	return len(p.nodes) > 0 && len(p.components()) == 1
}

// eccentricityMax runs a breadth-first search from every listed node and
// returns the deepest level reached, the graph's diameter when the nodes
// span one component.
func (p *Provider) eccentricityMax(g graph.Graph, from []graph.Node) int {
	var bf traverse.BreadthFirst
	diameter := 0
	for _, n := range from {
		bf.Reset()
		bf.Walk(g, n, func(_ graph.Node, depth int) bool {
			if depth > diameter {
				diameter = depth
			}
			return false
		})
	}
	return diameter
}

func (p *Provider) graphNodes(g graph.Graph) []graph.Node {
	var nodes []graph.Node
	it := g.Nodes()
	for it.Next() {
		nodes = append(nodes, it.Node())
	}
	return nodes
}
