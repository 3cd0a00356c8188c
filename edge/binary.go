// SPDX-License-Identifier: MIT
//
// binary.go — the plain binary kinds: Undirected and Directed.

package edge

import "github.com/katalvlaran/grafo/core"

// Compile-time contract checks.
var (
	_ core.Edge[int] = Undirected[int]{}
	_ core.Edge[int] = Directed[int]{}
)

// Undirected is a plain 2-ary edge whose ends compare as a multiset:
// NewUndirected(a, b) and NewUndirected(b, a) are structurally equal.
type Undirected[N comparable] struct {
	ends [2]N
}

// NewUndirected returns the undirected edge {a, b}. a == b is a loop.
func NewUndirected[N comparable](a, b N) Undirected[N] {
	return Undirected[N]{ends: [2]N{a, b}}
}

// Ends returns the two ends in construction order.
func (e Undirected[N]) Ends() []N { return e.ends[:] }

// Ordered reports false: end order is not part of identity.
func (e Undirected[N]) Ordered() bool { return false }

// Directed is a 2-ary edge from Source to Target. Opposite orientations
// over the same ends are distinct edges.
type Directed[N comparable] struct {
	ends [2]N
}

// NewDirected returns the directed edge from -> to.
func NewDirected[N comparable](from, to N) Directed[N] {
	return Directed[N]{ends: [2]N{from, to}}
}

// Source returns the tail end.
func (e Directed[N]) Source() N { return e.ends[0] }

// Target returns the head end.
func (e Directed[N]) Target() N { return e.ends[1] }

// Ends returns [source, target].
func (e Directed[N]) Ends() []N { return e.ends[:] }

// Ordered reports true: orientation is part of identity.
func (e Directed[N]) Ordered() bool { return true }
