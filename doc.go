// Package cpkit collects algorithmic building blocks for contest problems.
//
// Packages:
//
//	flow/       — Dinic maximum flow on integer vertices, generic capacities,
//	              residual export and minimum cut
//	matching/   — maximum bipartite matching via unit-capacity flow
//	cmd/        — judge drivers: cp-maxflow, cp-matching
//	internal/   — judge integer I/O and console logging
//
// Quick example:
//
//	g, _ := flow.New[int64](4)
//	_ = g.Connect(0, 1, 3)
//	_ = g.Connect(1, 3, 2)
//	fmt.Println(g.Solve()) // 2
package cpkit
