package flow

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// CutEdge is an arc crossing a minimum cut from the source side to the sink
// side.
type CutEdge[T Capacity] struct {
	From, To int
	Capacity T
}

// Cut is a minimum source/sink cut of a solved network.
type Cut[T Capacity] struct {
	// SourceSide lists, in ascending order, the vertices reachable from the
	// source in the final residual graph.
	SourceSide []int

	// Edges lists the arcs with positive capacity leaving SourceSide,
	// ordered by (From, To) since adjacency lists are sorted by head.
	Edges []CutEdge[T]

	// Capacity is the sum of Edges' capacities. It equals the max-flow value.
	Capacity T
}

// Residual exports the current residual graph as a gonum weighted directed
// graph. Node IDs are vertex indices; every arc with positive remaining
// capacity becomes an edge weighted by that capacity. All n vertices are
// present even when isolated. The topology is frozen if it was not already.
//
// Weights are float64, so integer remainders above 2^53 are rounded. Use
// Edges for exact values.
//
// Complexity: O(V + E).
func (g *Network[T]) Residual() *simple.WeightedDirectedGraph {
	g.finalize()

	rg := simple.NewWeightedDirectedGraph(0, 0)
	for u := 0; u < g.n; u++ {
		rg.AddNode(simple.Node(u))
	}
	for u, arcs := range g.adj {
		for _, e := range arcs {
			if e.Remaining <= 0 {
				continue
			}
			rg.SetWeightedEdge(rg.NewWeightedEdge(simple.Node(u), simple.Node(e.To), float64(e.Remaining)))
		}
	}

	return rg
}

// MinCut solves the network if needed and returns a minimum cut: the source
// side is everything reachable from the source through arcs with remaining
// capacity.
//
// Complexity: O(V + E) on top of Solve.
func (g *Network[T]) MinCut() Cut[T] {
	g.Solve()

	reach := make([]bool, g.n)
	reach[g.Source()] = true
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) { reach[n.ID()] = true },
	}
	bf.Walk(g.Residual(), simple.Node(g.Source()), nil)

	var cut Cut[T]
	for u := 0; u < g.n; u++ {
		if !reach[u] {
			continue
		}
		cut.SourceSide = append(cut.SourceSide, u)
		for _, e := range g.adj[u] {
			if reach[e.To] || e.Capacity <= 0 {
				continue
			}
			cut.Edges = append(cut.Edges, CutEdge[T]{From: u, To: e.To, Capacity: e.Capacity})
			cut.Capacity += e.Capacity
		}
	}

	return cut
}
