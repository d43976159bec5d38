package flow

import (
	"context"
)

// Solve computes the maximum flow from Source to Sink and returns its value.
// See SolveContext.
func (g *Network[T]) Solve() T {
	total, _ := g.SolveContext(context.Background())
	return total
}

// SolveContext computes the maximum flow from Source to Sink using Dinic's
// algorithm (BFS level graph + DFS blocking flow).
//
// Steps:
//  1. Freeze the topology (first call only).
//  2. Repeat until the sink is unreachable in the residual graph:
//     a. Check ctx for cancellation.
//     b. BFS from the source to layer vertices, stopping at the sink's depth.
//     c. Keep only arcs going one layer deeper (or into the sink).
//     d. Push blocking flow with repeated DFS from the source, pruning
//     exhausted arcs and marking dead ends.
//  3. Cache the total.
//
// Once a solve has completed, further calls return the cached total and do
// not touch the residual graph. If ctx is cancelled between phases the flow
// pushed so far is kept, returned alongside ctx.Err(), and a later call
// resumes from it.
//
// Complexity:
//
//	Time:   O(V²·E) in general, O(V·E) with unit capacities,
//	        O(√V·E) on unit-capacity bipartite networks.
//	Memory: O(V + E), allocated once and reused by every phase.
func (g *Network[T]) SolveContext(ctx context.Context) (T, error) {
	g.finalize()
	if g.solved {
		return g.total, nil
	}

	for phase := 1; ; phase++ {
		if err := ctx.Err(); err != nil {
			return g.total, err
		}
		if !g.buildLevels() {
			break
		}
		pushed := g.blockingFlow()
		g.total += pushed
		g.log.Debug().
			Int("phase", phase).
			Int("depth", g.dist[g.sink]).
			Interface("pushed", pushed).
			Interface("total", g.total).
			Msg("flow: phase done")
	}
	g.solved = true

	return g.total, nil
}

// buildLevels layers the vertices reachable from the source and rebuilds the
// level graph. It reports false when the sink is unreachable.
//
// Only the vertices queued by the previous phase carry stale state, so they
// are the only ones reset.
//
// Complexity: O(V' + E') over the vertices touched.
func (g *Network[T]) buildLevels() bool {
	for _, u := range g.queue {
		g.dist[u] = -1
		g.level[u] = g.level[u][:0]
	}

	sink := g.sink
	g.queue = append(g.queue[:0], 0)
	g.dist[0] = 0
	for qi := 0; qi < len(g.queue); qi++ {
		u := g.queue[qi]
		for _, e := range g.adj[u] {
			if e.Remaining <= 0 || g.dist[e.To] != -1 {
				continue
			}
			g.dist[e.To] = g.dist[u] + 1
			g.queue = append(g.queue, e.To)
			if e.To == sink {
				break
			}
		}
		if g.dist[sink] != -1 {
			break
		}
	}
	if g.dist[sink] == -1 {
		return false
	}

	for _, u := range g.queue {
		for i, e := range g.adj[u] {
			if e.Remaining <= 0 || g.dist[u] >= g.dist[e.To] {
				continue
			}
			if e.To != sink && g.dist[e.To] >= g.dist[sink] {
				continue
			}
			g.level[u] = append(g.level[u], int32(i))
		}
	}

	return true
}

// blockingFlow saturates the current level graph and clears the dead marks
// of every vertex the DFS touched.
//
// Complexity: O(V'·E'), O(E') with unit capacities.
func (g *Network[T]) blockingFlow() T {
	var total T
	for {
		pushed := g.augment(0, g.inf)
		if pushed <= 0 {
			break
		}
		total += pushed
	}

	for _, u := range g.visited {
		g.dead[u] = false
	}
	g.visited = g.visited[:0]

	return total
}

// augment finds one path from u to the sink in the level graph carrying at
// most limit, pushes the bottleneck along it and returns it. Arcs are tried
// from the back of level[u]; any arc that is exhausted, leads to a dead
// vertex, or yields nothing is popped for the rest of the phase. A vertex
// whose list runs empty is marked dead.
//
// Recursion depth is bounded by the sink's BFS depth.
func (g *Network[T]) augment(u int, limit T) T {
	g.visited = append(g.visited, u)
	if u == g.sink {
		return limit
	}

	lv := g.level[u]
	for i := len(lv) - 1; i >= 0; i-- {
		e := &g.adj[u][lv[i]]
		if e.Remaining <= 0 || g.dead[e.To] {
			lv = lv[:i]
			continue
		}
		pushed := g.augment(e.To, min(e.Remaining, limit))
		if pushed > 0 {
			e.Remaining -= pushed
			g.adj[e.To][e.Rev].Remaining += pushed
			if e.Remaining <= 0 {
				lv = lv[:i]
				if len(lv) == 0 {
					g.dead[u] = true
				}
			}
			g.level[u] = lv
			return pushed
		}
		lv = lv[:i]
	}
	g.level[u] = lv
	g.dead[u] = true

	return 0
}
