package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/flow"
)

// arc is one Connect request.
type arc struct {
	u, v int
	c    int64
}

// buildRandomArcs returns roughly p·n² arcs u→v (u≠v) with capacities in
// [1, maxCap]. When oneWay is set only u<v arcs are produced, so no ordered
// pair has a capacitated reverse.
func buildRandomArcs(n int, p float64, maxCap int64, oneWay bool, seed int64) []arc {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	var arcs []arc
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (oneWay && u > v) {
				continue
			}
			if r.Float64() < p {
				arcs = append(arcs, arc{u: u, v: v, c: r.Int63n(maxCap) + 1})
			}
		}
	}

	return arcs
}

// newNetwork builds an int64 network from arcs, failing the test on error.
func newNetwork(t testing.TB, n int, arcs []arc, opts ...flow.Option) *flow.Network[int64] {
	t.Helper()
	g, err := flow.New[int64](n, opts...)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, g.Connect(a.u, a.v, a.c))
	}

	return g
}

// referenceMaxFlow is a plain Edmonds–Karp on a dense capacity matrix, used
// as an oracle for randomized comparisons.
func referenceMaxFlow(n int, arcs []arc) int64 {
	capacity := make([][]int64, n)
	for i := range capacity {
		capacity[i] = make([]int64, n)
	}
	for _, a := range arcs {
		if a.u != a.v {
			capacity[a.u][a.v] += a.c
		}
	}

	source, sink := 0, n-1
	var total int64
	parent := make([]int, n)
	for {
		// BFS for the shortest augmenting path.
		for i := range parent {
			parent[i] = -1
		}
		parent[source] = source
		queue := []int{source}
		for len(queue) > 0 && parent[sink] == -1 {
			u := queue[0]
			queue = queue[1:]
			for v := 0; v < n; v++ {
				if parent[v] == -1 && capacity[u][v] > 0 {
					parent[v] = u
					queue = append(queue, v)
				}
			}
		}
		if parent[sink] == -1 {
			return total
		}

		// Bottleneck, then augment.
		bottle := int64(1) << 62
		for v := sink; v != source; v = parent[v] {
			bottle = min(bottle, capacity[parent[v]][v])
		}
		for v := sink; v != source; v = parent[v] {
			capacity[parent[v]][v] -= bottle
			capacity[v][parent[v]] += bottle
		}
		total += bottle
	}
}

// snapshot copies every adjacency list of a finalized network.
func snapshot[T flow.Capacity](t testing.TB, g *flow.Network[T]) [][]flow.Edge[T] {
	t.Helper()
	out := make([][]flow.Edge[T], g.Len())
	for u := range out {
		edges, err := g.Edges(u)
		require.NoError(t, err)
		out[u] = edges
	}

	return out
}

// assertResidualIntegrity validates the residual invariants of a solved
// network whose max-flow value is total:
//   - every arc's Rev points back at it;
//   - Remaining stays within [0, Capacity+rev.Capacity] and the pair sum is
//     preserved;
//   - arcs without reverse capacity carry 0 ≤ Flow ≤ Capacity;
//   - net outflow is total at the source, -total at the sink, 0 elsewhere.
func assertResidualIntegrity[T flow.Capacity](t testing.TB, g *flow.Network[T], total T) {
	t.Helper()
	adj := snapshot(t, g)
	for u, edges := range adj {
		var net T
		for i, e := range edges {
			rev := adj[e.To][e.Rev]
			require.Equal(t, u, rev.To, "paired arc of %d→%d must point back", u, e.To)
			require.Equal(t, i, rev.Rev, "paired arc of %d→%d must link back", u, e.To)
			require.GreaterOrEqual(t, e.Remaining, T(0), "remaining on %d→%d", u, e.To)
			require.Equal(t, e.Capacity+rev.Capacity, e.Remaining+rev.Remaining,
				"pair sum on %d→%d", u, e.To)
			if rev.Capacity == 0 {
				require.GreaterOrEqual(t, e.Flow(), T(0), "flow on %d→%d", u, e.To)
				require.LessOrEqual(t, e.Flow(), e.Capacity, "flow on %d→%d", u, e.To)
			}
			net += e.Flow()
		}
		switch u {
		case g.Source():
			require.Equal(t, total, net, "source outflow")
		case g.Sink():
			require.Equal(t, -total, net, "sink inflow")
		default:
			require.Equal(t, T(0), net, "conservation at %d", u)
		}
	}
}
