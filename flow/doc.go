// Package flow implements a single-shot maximum-flow engine on integer-indexed
// vertices using Dinic's algorithm, generic over the capacity type.
//
// Model:
//
//   - Vertices are the integers [0, n). Vertex 0 is the source, n-1 the sink.
//   - Connect(u, v, c) accumulates capacity on the ordered pair (u, v); the
//     paired reverse arc v→u is created with capacity 0 unless Connect(v, u, ·)
//     supplies one. Parallel requests merge into one arc.
//   - The first Solve (or Edges/Residual/MinCut) freezes the topology into
//     exactly-sized adjacency arrays. Each arc stores the index of its paired
//     arc, so pushing flow updates both sides in O(1).
//
// Algorithm:
//
//   - BFS from the source layers vertices by residual distance, stopping as
//     soon as the sink is layered.
//   - The level graph keeps arcs that go one layer deeper, plus arcs into the
//     sink.
//   - Repeated DFS from the source pushes one augmenting path at a time. Arcs
//     are consumed from the back of each level list and popped once exhausted
//     or proven useless; vertices without arcs are marked dead for the phase.
//
// Complexity:
//
//	Time:   O(V²·E) general, O(V·E) unit capacities,
//	        O(√V·E) unit-capacity bipartite networks.
//	Memory: O(V + E). BFS queue, level lists, dead marks and the visit list
//	        are allocated once and reused across phases.
//
// Capacity types are any integer or float type (see Capacity). The initial
// DFS bottleneck is Infinity[T](), roughly half of T's maximum.
//
// Errors:
//
//	ErrTooFewVertices   - New with n < 2.
//	ErrVertexOutOfRange - Connect/Edges with an index outside [0, n).
//	ErrNegativeCapacity - Connect with c < 0.
//	ErrInvalidCapacity  - Connect with a NaN or +Inf float capacity.
//	ErrFinalized        - Connect after the topology was frozen.
//
// Range and capacity failures are returned as *EdgeError wrapping the
// sentinel, so both errors.Is and errors.As work.
//
// Integration:
//
//   - Residual exports the residual graph as a gonum simple.WeightedDirectedGraph.
//   - MinCut derives a minimum cut from the residual graph with gonum's
//     traverse.BreadthFirst.
//   - WithLogger attaches a zerolog.Logger for per-phase diagnostics.
package flow
