package gridmap

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridpath/grid"
)

// NodeID returns the gonum node ID used by ToGraph for p (its row-major index).
func (gm *GridMap) NodeID(p grid.Position) int64 {
	return int64(p.Index(gm.Width))
}

// ToGraph converts the GridMap into a weighted, directed gonum graph.
// Each passable cell becomes a node whose ID is its row-major index; each
// neighbor transition becomes an edge weighted by its step cost. Terrain
// weights make costs asymmetric, hence the directed graph. Obstacles are
// left out entirely.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gm *GridMap) ToGraph() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	// Add all passable vertices
	for i, blocked := range gm.obstacles {
		if !blocked {
			g.AddNode(simple.Node(int64(i)))
		}
	}
	// Add edges for each neighbor pair
	var buf []grid.Neighbor
	for i, blocked := range gm.obstacles {
		if blocked {
			continue
		}
		p := grid.FromIndex(i, gm.Width)
		buf = gm.Neighbors(p, buf)
		for _, n := range buf {
			g.SetWeightedEdge(g.NewWeightedEdge(
				simple.Node(int64(i)), simple.Node(gm.NodeID(n.Pos)), n.Cost,
			))
		}
	}

	return g
}
