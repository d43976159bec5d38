package flow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRandomNetworksAgainstReference solves seeded random networks and checks
// the value against Edmonds–Karp, the residual invariants, min-cut duality
// and idempotence.
func TestRandomNetworksAgainstReference(t *testing.T) {
	cases := []struct {
		n      int
		p      float64
		maxCap int64
		oneWay bool
	}{
		{n: 2, p: 1, maxCap: 10},
		{n: 5, p: 0.5, maxCap: 3},
		{n: 8, p: 0.4, maxCap: 1, oneWay: true},
		{n: 12, p: 0.3, maxCap: 20},
		{n: 20, p: 0.2, maxCap: 100, oneWay: true},
		{n: 40, p: 0.1, maxCap: 1000},
		{n: 60, p: 0.08, maxCap: 1},
	}

	for _, tc := range cases {
		for seed := int64(1); seed <= 10; seed++ {
			tc, seed := tc, seed
			t.Run(fmt.Sprintf("n=%d/p=%g/cap=%d/seed=%d", tc.n, tc.p, tc.maxCap, seed), func(t *testing.T) {
				arcs := buildRandomArcs(tc.n, tc.p, tc.maxCap, tc.oneWay, seed)
				want := referenceMaxFlow(tc.n, arcs)

				g := newNetwork(t, tc.n, arcs)
				got := g.Solve()
				require.Equal(t, want, got)
				assertResidualIntegrity(t, g, got)

				cut := g.MinCut()
				require.Equal(t, got, cut.Capacity, "max-flow must equal min-cut")
				require.Contains(t, cut.SourceSide, g.Source())
				require.NotContains(t, cut.SourceSide, g.Sink())

				before := snapshot(t, g)
				require.Equal(t, got, g.Solve())
				require.Equal(t, before, snapshot(t, g))
			})
		}
	}
}

// TestRandomDuplicateRequests: splitting every arc into two requests must not
// change the answer.
func TestRandomDuplicateRequests(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		arcs := buildRandomArcs(15, 0.25, 9, false, seed)
		var split []arc
		for _, a := range arcs {
			half := a.c / 2
			split = append(split, arc{a.u, a.v, half}, arc{a.u, a.v, a.c - half})
		}

		require.Equal(t, newNetwork(t, 15, arcs).Solve(), newNetwork(t, 15, split).Solve(), "seed %d", seed)
	}
}
