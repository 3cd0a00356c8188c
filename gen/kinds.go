// SPDX-License-Identifier: MIT
//
// kinds.go — edge kind descriptors: arity bounds, loop policy and the
// constructor the generator invokes once the ends are chosen.

package gen

import (
	"math/rand"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/edge"
)

// EdgeKind describes one shape of edge the generator may emit.
//
// The generator picks a kind uniformly per attempt, draws an arity in
// [MinArity, MaxArity] (clamped by how many ends are available), fills
// the ends slice and hands it to Build. Build owns any extra randomness
// the kind needs, such as a weight.
type EdgeKind[N comparable] struct {
	// Name tags the kind in error messages. It never reaches the edges
	// themselves and has no effect on identity.
	Name string

	// MinArity and MaxArity bound the number of ends, inclusive.
	// MinArity must be at least 2 and MaxArity at least MinArity.
	MinArity int
	MaxArity int

	// AllowLoops permits the same node to appear in more than one end
	// position. Off by default in every stock kind.
	AllowLoops bool

	// Build constructs the edge over the chosen ends. len(ends) is
	// within the arity bounds; the slice is scratch and must be copied
	// if retained (the stock edge constructors already copy).
	Build func(r *rand.Rand, ends []N) (core.Edge[N], error)
}

// UndirectedKind emits plain unordered 2-ary edges.
func UndirectedKind[N comparable]() EdgeKind[N] {
	return EdgeKind[N]{
		Name:     "undirected",
		MinArity: 2,
		MaxArity: 2,
		Build: func(_ *rand.Rand, ends []N) (core.Edge[N], error) {
			return edge.NewUndirected(ends[0], ends[1]), nil
		},
	}
}

// DirectedKind emits ordered 2-ary edges, oriented ends[0] -> ends[1].
func DirectedKind[N comparable]() EdgeKind[N] {
	return EdgeKind[N]{
		Name:     "directed",
		MinArity: 2,
		MaxArity: 2,
		Build: func(_ *rand.Rand, ends []N) (core.Edge[N], error) {
			return edge.NewDirected(ends[0], ends[1]), nil
		},
	}
}

// WeightedKind emits undirected 2-ary edges carrying a uniform random
// weight in [1, maxWeight]. Distinct weights keep same-ends edges
// distinct, so this kind can densify a pair beyond a single edge.
// Panics if maxWeight < 1.
func WeightedKind[N comparable](maxWeight int64) EdgeKind[N] {
	if maxWeight < 1 {
		panic("gen: WeightedKind(maxWeight<1)")
	}

	return EdgeKind[N]{
		Name:     "weighted",
		MinArity: 2,
		MaxArity: 2,
		Build: func(r *rand.Rand, ends []N) (core.Edge[N], error) {
			return edge.NewWeighted(ends[0], ends[1], 1+r.Int63n(maxWeight)), nil
		},
	}
}

// HyperKind emits unordered hyperedges with arity in [2, maxArity].
// Panics if maxArity < 2.
func HyperKind[N comparable](maxArity int) EdgeKind[N] {
	if maxArity < 2 {
		panic("gen: HyperKind(maxArity<2)")
	}

	return EdgeKind[N]{
		Name:     "hyper",
		MinArity: 2,
		MaxArity: maxArity,
		Build: func(_ *rand.Rand, ends []N) (core.Edge[N], error) {
			return edge.NewHyper(ends...)
		},
	}
}

// DiHyperKind emits ordered hyperedges with arity in [2, maxArity].
// Panics if maxArity < 2.
func DiHyperKind[N comparable](maxArity int) EdgeKind[N] {
	if maxArity < 2 {
		panic("gen: DiHyperKind(maxArity<2)")
	}

	return EdgeKind[N]{
		Name:     "dihyper",
		MinArity: 2,
		MaxArity: maxArity,
		Build: func(_ *rand.Rand, ends []N) (core.Edge[N], error) {
			return edge.NewDiHyper(ends...)
		},
	}
}

// TripleKind emits ordered 3-ary statements in subject, predicate,
// object position order.
func TripleKind[N comparable]() EdgeKind[N] {
	return EdgeKind[N]{
		Name:     "triple",
		MinArity: 3,
		MaxArity: 3,
		Build: func(_ *rand.Rand, ends []N) (core.Edge[N], error) {
			return edge.NewTriple(ends[0], ends[1], ends[2]), nil
		},
	}
}
