package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cpkit/flow"
)

// ErrNegativeSize indicates a negative side size passed to New.
var ErrNegativeSize = errors.New("matching: negative side size")

// Pair is one matched (left, right) couple, 0-indexed on each side.
type Pair struct {
	Left, Right int
}

// Matcher finds a maximum matching between a left side of size L and a right
// side of size R. It is single-shot like the flow.Network it wraps.
type Matcher struct {
	left, right int
	net         *flow.Network[int]
}

// New builds a matcher with the given side sizes. opts are forwarded to the
// underlying flow.Network.
func New(left, right int, opts ...flow.Option) (*Matcher, error) {
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrNegativeSize, left, right)
	}
	net, err := flow.New[int](left+right+2, opts...)
	if err != nil {
		return nil, err
	}

	m := &Matcher{left: left, right: right, net: net}
	for i := 0; i < left; i++ {
		if err := net.Connect(net.Source(), m.leftVertex(i), 1); err != nil {
			return nil, err
		}
	}
	for j := 0; j < right; j++ {
		if err := net.Connect(m.rightVertex(j), net.Sink(), 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Matcher) leftVertex(i int) int  { return 1 + i }
func (m *Matcher) rightVertex(j int) int { return 1 + m.left + j }

// Left returns the size of the left side.
func (m *Matcher) Left() int { return m.left }

// Right returns the size of the right side.
func (m *Matcher) Right() int { return m.right }

// Connect allows left vertex i to be matched with right vertex j. Repeated
// calls for the same pair are harmless.
func (m *Matcher) Connect(i, j int) error {
	if i < 0 || i >= m.left {
		return fmt.Errorf("matching: left vertex %d not in [0, %d): %w", i, m.left, flow.ErrVertexOutOfRange)
	}
	if j < 0 || j >= m.right {
		return fmt.Errorf("matching: right vertex %d not in [0, %d): %w", j, m.right, flow.ErrVertexOutOfRange)
	}
	if err := m.net.Connect(m.leftVertex(i), m.rightVertex(j), 1); err != nil {
		return fmt.Errorf("matching: connect %d-%d: %w", i, j, err)
	}

	return nil
}

// Solve returns the size of a maximum matching.
func (m *Matcher) Solve() int {
	return m.net.Solve()
}

// SolveContext is Solve with cancellation between flow phases.
func (m *Matcher) SolveContext(ctx context.Context) (int, error) {
	return m.net.SolveContext(ctx)
}

// Matching solves if needed and returns a maximum matching ordered by left
// vertex. A pair is reported for every left→right arc carrying flow; flow
// rather than saturation is checked because duplicate Connect calls merge
// into a capacity the unit flow never saturates.
func (m *Matcher) Matching() []Pair {
	size := m.Solve()
	pairs := make([]Pair, 0, size)
	lo, hi := m.rightVertex(0), m.rightVertex(m.right)
	for i := 0; i < m.left; i++ {
		edges, _ := m.net.Edges(m.leftVertex(i)) // always in range
		for _, e := range edges {
			if e.To < lo || e.To >= hi || e.Flow() <= 0 {
				continue
			}
			pairs = append(pairs, Pair{Left: i, Right: e.To - lo})
		}
	}

	return pairs
}
