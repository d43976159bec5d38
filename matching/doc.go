// Package matching computes maximum-cardinality bipartite matchings by
// reduction to unit-capacity maximum flow.
//
// Layout of the underlying flow.Network:
//
//	0                  super-source
//	1 .. L             left vertices   (source→left, capacity 1)
//	L+1 .. L+R         right vertices  (right→sink, capacity 1)
//	L+R+1              super-sink
//
// Dinic's algorithm solves this in O(√V·E).
package matching
