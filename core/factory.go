// SPDX-License-Identifier: MIT
//
// factory.go — the factory protocol: Empty, Apply, From, FromSeq, Fill.
//
// Every factory yields a finished graph in one call; the Mutable twins
// yield the editable front-end instead. Option slices come first, payload
// last. All factories share one pair of guarantees: element-wise silent
// dedup, and end auto-insertion for every edge. For a given payload the
// resulting node/edge sets are independent of element order; only which
// duplicate "wins" depends on it, and duplicates are indistinguishable.

package core

import (
	"fmt"
	"iter"
)

// Factory method names used as error-context prefixes.
const (
	methodApply          = "Apply"
	methodApplyMutable   = "ApplyMutable"
	methodFrom           = "From"
	methodFromMutable    = "FromMutable"
	methodFromSeq        = "FromSeq"
	methodFromSeqMutable = "FromSeqMutable"
	methodFill           = "Fill"
	methodFillMutable    = "FillMutable"
)

// Empty returns a finished graph with no nodes and no edges.
func Empty[N comparable](opts ...Option) *Graph[N] {
	return &Graph[N]{view: newView[N](newConfig(opts...))}
}

// EmptyMutable returns an editable graph with no nodes and no edges.
func EmptyMutable[N comparable](opts ...Option) *MutableGraph[N] {
	return &MutableGraph[N]{view: newView[N](newConfig(opts...))}
}

// Apply builds a graph from a literal mixed sequence of node and edge
// parameters, equivalent to feeding each into a fresh Builder and calling
// Result. Errors only on malformed edge params, with the failing index.
func Apply[N comparable](opts []Option, params ...Param[N]) (*Graph[N], error) {
	st, err := applyView(opts, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodApply, err)
	}

	return &Graph[N]{view: st}, nil
}

// ApplyMutable is Apply yielding the editable front-end.
func ApplyMutable[N comparable](opts []Option, params ...Param[N]) (*MutableGraph[N], error) {
	st, err := applyView(opts, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodApplyMutable, err)
	}

	return &MutableGraph[N]{view: st}, nil
}

// From builds a graph from node and edge slices. Isolated nodes must
// appear in nodes; edge ends are auto-inserted, so listing them is
// optional. Either slice may be nil.
func From[N comparable](nodes []N, edges []Edge[N], opts ...Option) (*Graph[N], error) {
	st, err := fromView(nodes, edges, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFrom, err)
	}

	return &Graph[N]{view: st}, nil
}

// FromMutable is From yielding the editable front-end.
func FromMutable[N comparable](nodes []N, edges []Edge[N], opts ...Option) (*MutableGraph[N], error) {
	st, err := fromView(nodes, edges, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromMutable, err)
	}

	return &MutableGraph[N]{view: st}, nil
}

// FromSeq builds a graph from node and edge streams alongside literal
// slices. Every sequence is drained to exhaustion exactly once; literals
// merge in afterwards. Streams that repeat non-isolated nodes are
// harmless. Any slice may be nil; a nil sequence inside a slice is
// ErrNilSeq.
func FromSeq[N comparable](
	nodeSeqs []iter.Seq[N], nodes []N,
	edgeSeqs []iter.Seq[Edge[N]], edges []Edge[N],
	opts ...Option,
) (*Graph[N], error) {
	st, err := fromSeqView(nodeSeqs, nodes, edgeSeqs, edges, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromSeq, err)
	}

	return &Graph[N]{view: st}, nil
}

// FromSeqMutable is FromSeq yielding the editable front-end.
func FromSeqMutable[N comparable](
	nodeSeqs []iter.Seq[N], nodes []N,
	edgeSeqs []iter.Seq[Edge[N]], edges []Edge[N],
	opts ...Option,
) (*MutableGraph[N], error) {
	st, err := fromSeqView(nodeSeqs, nodes, edgeSeqs, edges, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromSeqMutable, err)
	}

	return &MutableGraph[N]{view: st}, nil
}

// Fill builds a graph by invoking next exactly n times (i = 0..n-1) and
// feeding each returned parameter into the accumulating sets, so a
// parameter source can populate a graph without materializing an
// intermediate collection. n must be >= 0 and next non-nil.
func Fill[N comparable](n int, next func(i int) Param[N], opts ...Option) (*Graph[N], error) {
	st, err := fillView(n, next, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFill, err)
	}

	return &Graph[N]{view: st}, nil
}

// FillMutable is Fill yielding the editable front-end.
func FillMutable[N comparable](n int, next func(i int) Param[N], opts ...Option) (*MutableGraph[N], error) {
	st, err := fillView(n, next, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFillMutable, err)
	}

	return &MutableGraph[N]{view: st}, nil
}

// applyView accumulates a literal parameter sequence.
func applyView[N comparable](opts []Option, params []Param[N]) (view[N], error) {
	st := newView[N](newConfig(opts...))
	for i, p := range params {
		if _, err := applyParam(&st, p); err != nil {
			return view[N]{}, fmt.Errorf("param %d: %w", i, err)
		}
	}

	return st, nil
}

// fromView accumulates node and edge slices, nodes first.
func fromView[N comparable](nodes []N, edges []Edge[N], opts []Option) (view[N], error) {
	st := newView[N](newConfig(opts...))
	st.nodes.grow(len(nodes))
	st.edges.grow(len(edges))
	for _, n := range nodes {
		st.nodes.Insert(n)
	}
	for i, e := range edges {
		if _, err := st.edges.Insert(e); err != nil {
			return view[N]{}, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return st, nil
}

// fromSeqView drains streams, then merges literals, nodes before edges.
func fromSeqView[N comparable](
	nodeSeqs []iter.Seq[N], nodes []N,
	edgeSeqs []iter.Seq[Edge[N]], edges []Edge[N],
	opts []Option,
) (view[N], error) {
	st := newView[N](newConfig(opts...))
	for i, sq := range nodeSeqs {
		if sq == nil {
			return view[N]{}, fmt.Errorf("node stream %d: %w", i, ErrNilSeq)
		}
		for n := range sq {
			st.nodes.Insert(n)
		}
	}
	st.nodes.grow(len(nodes))
	for _, n := range nodes {
		st.nodes.Insert(n)
	}
	for i, sq := range edgeSeqs {
		if sq == nil {
			return view[N]{}, fmt.Errorf("edge stream %d: %w", i, ErrNilSeq)
		}
		for e := range sq {
			if _, err := st.edges.Insert(e); err != nil {
				return view[N]{}, fmt.Errorf("edge stream %d: %w", i, err)
			}
		}
	}
	st.edges.grow(len(edges))
	for i, e := range edges {
		if _, err := st.edges.Insert(e); err != nil {
			return view[N]{}, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return st, nil
}

// fillView invokes the parameter generator n times.
func fillView[N comparable](n int, next func(i int) Param[N], opts []Option) (view[N], error) {
	if n < 0 {
		return view[N]{}, fmt.Errorf("n=%d: %w", n, ErrBadFillCount)
	}
	if next == nil {
		return view[N]{}, ErrNilFillFunc
	}
	st := newView[N](newConfig(opts...))
	for i := 0; i < n; i++ {
		if _, err := applyParam(&st, next(i)); err != nil {
			return view[N]{}, fmt.Errorf("param %d: %w", i, err)
		}
	}

	return st, nil
}
