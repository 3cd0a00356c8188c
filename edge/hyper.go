// SPDX-License-Identifier: MIT
//
// hyper.go — the n-ary kinds: Hyper and DiHyper.

package edge

import (
	"fmt"

	"github.com/katalvlaran/grafo/core"
)

// Compile-time contract checks.
var (
	_ core.Edge[int] = Hyper[int]{}
	_ core.Edge[int] = DiHyper[int]{}
)

// minArity is the smallest end count an n-ary kind accepts.
const minArity = 2

// Hyper is an unordered n-ary edge (n >= 2): its ends compare as a
// multiset, so any permutation of the same ends is the same edge.
type Hyper[N comparable] struct {
	ends []N
}

// NewHyper returns the hyperedge over ends. The input is copied, so the
// edge never aliases caller storage. Fewer than 2 ends is a wrapped
// core.ErrMalformedEdge.
func NewHyper[N comparable](ends ...N) (Hyper[N], error) {
	if len(ends) < minArity {
		return Hyper[N]{}, fmt.Errorf("NewHyper: arity %d < %d: %w",
			len(ends), minArity, core.ErrMalformedEdge)
	}
	own := make([]N, len(ends))
	copy(own, ends)

	return Hyper[N]{ends: own}, nil
}

// Ends returns the ends in construction order. Callers must not mutate
// the returned slice.
func (e Hyper[N]) Ends() []N { return e.ends }

// Ordered reports false: end order is not part of identity.
func (e Hyper[N]) Ordered() bool { return false }

// DiHyper is an ordered n-ary edge (n >= 2): the full end sequence,
// including duplicates and their positions, is part of identity.
type DiHyper[N comparable] struct {
	ends []N
}

// NewDiHyper returns the ordered hyperedge over ends. The input is
// copied. Fewer than 2 ends is a wrapped core.ErrMalformedEdge.
func NewDiHyper[N comparable](ends ...N) (DiHyper[N], error) {
	if len(ends) < minArity {
		return DiHyper[N]{}, fmt.Errorf("NewDiHyper: arity %d < %d: %w",
			len(ends), minArity, core.ErrMalformedEdge)
	}
	own := make([]N, len(ends))
	copy(own, ends)

	return DiHyper[N]{ends: own}, nil
}

// Ends returns the ends in sequence order. Callers must not mutate the
// returned slice.
func (e DiHyper[N]) Ends() []N { return e.ends }

// Ordered reports true: the sequence is part of identity.
func (e DiHyper[N]) Ordered() bool { return true }
