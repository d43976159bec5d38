package flow

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Network is a directed flow network on vertices [0, n) with source 0 and
// sink n-1, solved by Dinic's algorithm.
//
// Lifecycle:
//  1. New allocates per-vertex storage.
//  2. Connect accumulates capacities per ordered pair.
//  3. The first call to Solve, SolveContext, Edges, Residual or MinCut
//     freezes the topology into fixed adjacency arrays; Connect then fails
//     with ErrFinalized.
//  4. Solve mutates Remaining on every arc to describe a maximum flow and
//     caches the total.
//
// A Network is not safe for concurrent use.
type Network[T Capacity] struct {
	n    int
	sink int
	inf  T
	log  zerolog.Logger

	// pending[u][v] accumulates Connect(u, v, ·) until finalization.
	pending []map[int]T
	adj     [][]Edge[T]

	// Per-phase scratch, reused across phases.
	level   [][]int32 // level[u] holds indices into adj[u]
	dist    []int
	queue   []int
	dead    []bool
	visited []int

	finalized bool
	solved    bool
	total     T
}

// New returns an empty network with n vertices.
//
// Complexity: O(n).
func New[T Capacity](n int, opts ...Option) (*Network[T], error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Network[T]{
		n:       n,
		sink:    n - 1,
		inf:     Infinity[T](),
		log:     o.logger,
		pending: make([]map[int]T, n),
		adj:     make([][]Edge[T], n),
		level:   make([][]int32, n),
		dist:    make([]int, n),
		queue:   make([]int, 0, n),
		dead:    make([]bool, n),
		visited: make([]int, 0, 2*n),
	}
	for i := range g.dist {
		g.dist[i] = -1
	}

	return g, nil
}

// Len returns the number of vertices.
func (g *Network[T]) Len() int { return g.n }

// Source returns the source vertex, always 0.
func (g *Network[T]) Source() int { return 0 }

// Sink returns the sink vertex, always Len()-1.
func (g *Network[T]) Sink() int { return g.sink }

// Connect requests an arc u→v with capacity c. Repeated requests for the same
// ordered pair accumulate; a request for v→u fills the paired reverse arc.
// Self-loops are validated and then dropped since they never carry flow.
//
// Complexity: O(1) expected.
func (g *Network[T]) Connect(u, v int, c T) error {
	if g.finalized {
		return ErrFinalized
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return &EdgeError{From: u, To: v, Err: ErrVertexOutOfRange}
	}
	if c < 0 {
		return &EdgeError{From: u, To: v, Err: ErrNegativeCapacity}
	}
	// Non-zero only for NaN and +Inf; always zero for integers.
	if c-c != 0 {
		return &EdgeError{From: u, To: v, Err: ErrInvalidCapacity}
	}
	if u == v {
		return nil
	}

	if g.pending[u] == nil {
		g.pending[u] = make(map[int]T)
	}
	if g.pending[v] == nil {
		g.pending[v] = make(map[int]T)
	}
	g.pending[u][v] += c
	if _, ok := g.pending[v][u]; !ok {
		g.pending[v][u] = 0
	}

	return nil
}

// Edges returns a copy of u's residual adjacency list. It freezes the
// topology if that has not happened yet.
func (g *Network[T]) Edges(u int) ([]Edge[T], error) {
	if u < 0 || u >= g.n {
		return nil, &EdgeError{From: u, To: u, Err: ErrVertexOutOfRange}
	}
	g.finalize()

	return slices.Clone(g.adj[u]), nil
}

// finalize emits one forward/reverse pair per accumulated ordered pair u<v
// into exactly-sized adjacency arrays. Partners are visited in ascending
// order so that every adjacency list ends up sorted by head vertex.
//
// Complexity: O(V + E log E).
func (g *Network[T]) finalize() {
	if g.finalized {
		return
	}
	g.finalized = true

	for u := range g.adj {
		g.adj[u] = make([]Edge[T], 0, len(g.pending[u]))
	}

	arcs := 0
	for u := 0; u < g.n; u++ {
		partners := maps.Keys(g.pending[u])
		slices.Sort(partners)
		for _, v := range partners {
			if u > v {
				continue
			}
			fwd, rev := len(g.adj[u]), len(g.adj[v])
			g.adj[u] = append(g.adj[u], Edge[T]{To: v, Rev: rev, Capacity: g.pending[u][v], Remaining: g.pending[u][v]})
			g.adj[v] = append(g.adj[v], Edge[T]{To: u, Rev: fwd, Capacity: g.pending[v][u], Remaining: g.pending[v][u]})
			arcs += 2
		}
	}

	for u := range g.level {
		g.level[u] = make([]int32, 0, len(g.adj[u]))
	}
	g.pending = nil

	g.log.Trace().Int("vertices", g.n).Int("arcs", arcs).Msg("flow: topology finalized")
}
