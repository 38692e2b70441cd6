package testkit

import (
	"strings"
	"testing"
)

// TestGraphBuilding tests node registration and edge-list accumulation
func TestGraphBuilding(t *testing.T) {
	g := NewGraph("hand", false, false)
	g.AddNode(0)
	g.AddNode(0)
	g.AddEdge(0, 1)
	g.AddEdge(1, 1)

	nodes := g.Nodes()
	if len(nodes) != 2 {
		t.Errorf("Expected 2 nodes after duplicate AddNode, got %v", nodes)
	}
	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("Expected 2 edges, got %d", len(edges))
	}
	if edges[1].From != 1 || edges[1].To != 1 {
		t.Errorf("Self-loop not preserved: %+v", edges[1])
	}

	// Accessors return copies.
	nodes[0] = 99
	if g.Nodes()[0] == 99 {
		t.Error("Nodes() leaked internal storage")
	}
}

func TestPath(t *testing.T) {
	g := Path(4)
	if g.Name() != "path-4" {
		t.Errorf("Unexpected name %q", g.Name())
	}
	if g.Directed() || g.Weighted() {
		t.Error("Path graphs are undirected and unweighted")
	}
	if len(g.Nodes()) != 4 || len(g.Edges()) != 3 {
		t.Errorf("Expected 4 nodes and 3 edges, got %d and %d", len(g.Nodes()), len(g.Edges()))
	}
}

// TestGnp tests the generated graph's shape and naming
func TestGnp(t *testing.T) {
	g, err := Gnp(50, 0.2)
	if err != nil {
		t.Fatalf("Gnp failed: %v", err)
	}
	if len(g.Nodes()) != 50 {
		t.Errorf("Expected 50 nodes, got %d", len(g.Nodes()))
	}
	if !strings.HasPrefix(g.Name(), "gnp-50-") {
		t.Errorf("Unexpected name %q", g.Name())
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			t.Errorf("Gnp should not generate self-loops: %+v", e)
		}
	}
}

// TestGnpWeighted tests seeded weight assignment
func TestGnpWeighted(t *testing.T) {
	g, err := GnpWeighted(30, 0.3, 7)
	if err != nil {
		t.Fatalf("GnpWeighted failed: %v", err)
	}
	if !g.Weighted() {
		t.Error("Expected a weighted graph")
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 || e.Weight > 10 {
			t.Errorf("Weight out of range: %v", e.Weight)
		}
	}
}

func TestDirectedDiamond(t *testing.T) {
	g := DirectedDiamond()
	if !g.Directed() {
		t.Error("Expected a directed graph")
	}
	if len(g.Nodes()) != 4 || len(g.Edges()) != 4 {
		t.Errorf("Expected 4 nodes and 4 edges, got %d and %d", len(g.Nodes()), len(g.Edges()))
	}

	w := DirectedDiamondWeighted(42)
	if !w.Weighted() {
		t.Error("Expected a weighted diamond")
	}
	again := DirectedDiamondWeighted(42)
	for i, e := range w.Edges() {
		if again.Edges()[i].Weight != e.Weight {
			t.Error("Same seed should give identical weights")
			break
		}
	}
}
