package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for network construction.
var (
	// ErrTooFewVertices indicates a network without distinct source and sink.
	ErrTooFewVertices = errors.New("flow: network needs at least 2 vertices")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrNegativeCapacity indicates a negative capacity passed to Connect.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrInvalidCapacity indicates a NaN or +Inf capacity passed to Connect.
	// An infinite arc can never be saturated, so Solve would not terminate.
	ErrInvalidCapacity = errors.New("flow: non-finite capacity")

	// ErrFinalized indicates Connect was called after the topology was frozen.
	ErrFinalized = errors.New("flow: network already finalized")
)

// EdgeError reports a rejected Connect request. Err is one of the sentinel
// errors above and is reachable through errors.Is.
type EdgeError struct {
	From, To int
	Err      error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: edge %d→%d: %v", e.From, e.To, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }

// Capacity is the set of numeric types a Network can carry.
type Capacity interface {
	constraints.Integer | constraints.Float
}

// Edge is one arc of the residual graph.
//
// Every arc u→v stored in u's adjacency list has a paired arc v→u stored at
// index Rev of v's adjacency list. Pushing f along an arc decreases its
// Remaining by f and increases the paired arc's Remaining by f, so
// Remaining(e)+Remaining(rev) never changes.
type Edge[T Capacity] struct {
	// To is the head vertex.
	To int

	// Rev is the index of the paired arc in the adjacency list of To.
	Rev int

	// Capacity is the accumulated capacity requested through Connect.
	Capacity T

	// Remaining is the unused capacity in the residual graph.
	Remaining T
}

// Flow returns Capacity - Remaining. It is negative when the paired arc
// carries net flow in the opposite direction.
func (e Edge[T]) Flow() T { return e.Capacity - e.Remaining }

// Saturated reports whether no residual capacity is left on the arc.
func (e Edge[T]) Saturated() bool { return e.Remaining <= 0 }

// Infinity returns the sentinel used as the initial DFS bottleneck: the
// largest power of two whose double still fits in T. For signed integers and
// floats this is about max/2, which leaves headroom for min-taking.
func Infinity[T Capacity]() T {
	v := T(1)
	for {
		next := T(v * 2)
		// Integer overflow wraps to a value <= v; float overflow yields +Inf,
		// for which next/2 != v.
		if next <= v || next/2 != v {
			return v
		}
		v = next
	}
}

// Option configures a Network.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger routes finalization and per-phase diagnostics to l.
// Phases are logged at debug level, finalization at trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
