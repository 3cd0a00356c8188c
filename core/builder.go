// SPDX-License-Identifier: MIT
//
// builder.go — incremental accumulator with a single-use Result terminal.

package core

import "fmt"

// Method names used as error-context prefixes.
const (
	methodAdd     = "Add"
	methodAddNode = "AddNode"
	methodAddEdge = "AddEdge"
	methodResult  = "Result"
)

// Builder accumulates nodes and edges one element at a time and
// materializes them into an immutable Graph with Result. Elements obey
// the same rules as every other construction path: silent dedup, end
// auto-insertion, malformed-input errors.
//
// Result seals the builder. Every accumulating call on a sealed builder,
// and a repeated Result, fails with ErrBuilderSealed; reuse is checked,
// never undefined. A Builder is not safe for concurrent use.
type Builder[N comparable] struct {
	st     view[N]
	sealed bool
}

// NewBuilder returns an empty builder configured by opts.
func NewBuilder[N comparable](opts ...Option) *Builder[N] {
	return &Builder[N]{st: newView[N](newConfig(opts...))}
}

// Add routes one parameter to the node or edge path and reports whether
// the underlying set changed.
func (b *Builder[N]) Add(p Param[N]) (bool, error) {
	if b.sealed {
		return false, fmt.Errorf("%s: %w", methodAdd, ErrBuilderSealed)
	}

	return applyParam(&b.st, p)
}

// AddNode inserts a bare node and reports whether the node set changed.
func (b *Builder[N]) AddNode(n N) (bool, error) {
	if b.sealed {
		return false, fmt.Errorf("%s: %w", methodAddNode, ErrBuilderSealed)
	}

	return b.st.nodes.Insert(n), nil
}

// AddEdge inserts an edge, auto-inserting absent ends, and reports
// whether the edge set changed.
func (b *Builder[N]) AddEdge(e Edge[N]) (bool, error) {
	if b.sealed {
		return false, fmt.Errorf("%s: %w", methodAddEdge, ErrBuilderSealed)
	}

	return b.st.edges.Insert(e)
}

// SizeHint reserves capacity for about nodes more nodes and edges more
// edges. Pre-allocation only; results never depend on it. Non-positive
// hints and hints on a sealed builder are ignored.
func (b *Builder[N]) SizeHint(nodes, edges int) {
	if b.sealed {
		return
	}
	b.st.nodes.grow(nodes)
	b.st.edges.grow(edges)
}

// Result materializes the accumulated sets into an immutable Graph and
// seals the builder. Storage moves without copying, so Result is O(1);
// the sealed builder keeps no path to it.
func (b *Builder[N]) Result() (*Graph[N], error) {
	if b.sealed {
		return nil, fmt.Errorf("%s: %w", methodResult, ErrBuilderSealed)
	}
	b.sealed = true
	g := &Graph[N]{view: b.st}
	b.st = view[N]{}

	return g, nil
}

// applyParam inserts one parameter into st, reporting set change.
// Shared by Builder.Add and the factory protocol.
func applyParam[N comparable](st *view[N], p Param[N]) (bool, error) {
	if p.isEdge {
		return st.edges.Insert(p.edge)
	}

	return st.nodes.Insert(p.node), nil
}
