// SPDX-License-Identifier: MIT
//
// graph.go — shared storage/read surface and the immutable Graph front-end.

package core

// view bundles the resolved configuration with the paired node and edge
// sets, and carries the whole read surface. Graph and MutableGraph embed
// it; Builder holds one privately. All methods are read-only.
type view[N comparable] struct {
	cfg   Config
	nodes *NodeSet[N]
	edges *EdgeSet[N]
}

// newView allocates empty storage sized per cfg hints.
func newView[N comparable](cfg Config) view[N] {
	nodes := NewNodeSet[N](cfg.OrderHint)

	return view[N]{
		cfg:   cfg,
		nodes: nodes,
		edges: NewEdgeSet[N](nodes, cfg.SizeHint),
	}
}

// cloneView returns an independent deep copy. Complexity: O(V + E).
func (v *view[N]) cloneView() view[N] {
	nodes := v.nodes.clone()

	return view[N]{
		cfg:   v.cfg,
		nodes: nodes,
		edges: v.edges.clone(nodes),
	}
}

// Order returns the number of nodes. Complexity: O(1).
func (v *view[N]) Order() int {
	return v.nodes.Len()
}

// GraphSize returns the number of edges. Complexity: O(1).
func (v *view[N]) GraphSize() int {
	return v.edges.Len()
}

// TotalDegree returns the sum of edge arities, which equals the sum of
// Degree over all nodes. Complexity: O(1).
func (v *view[N]) TotalDegree() int {
	return v.edges.totalDegree()
}

// Degree returns the number of edge-end occurrences attached to n,
// counting multiplicity (a binary self-loop contributes 2). Absent nodes
// have degree 0. Complexity: O(1).
func (v *view[N]) Degree(n N) int {
	return v.edges.degreeOf(n)
}

// HasNode reports whether n is in the node set. Complexity: O(1).
func (v *view[N]) HasNode(n N) bool {
	return v.nodes.Contains(n)
}

// HasEdge reports whether a structural equal of e is stored. Kind name
// never matters: any edge with the same ordering policy, ends, and
// extended key matches. Nil is never stored. Complexity: O(a log a).
func (v *view[N]) HasEdge(e Edge[N]) bool {
	return v.edges.Contains(e)
}

// Nodes returns the nodes in insertion order as a fresh slice.
// Complexity: O(V).
func (v *view[N]) Nodes() []N {
	return v.nodes.Values()
}

// Edges returns the edges in insertion order as a fresh slice.
// Complexity: O(E).
func (v *view[N]) Edges() []Edge[N] {
	return v.edges.Values()
}

// NeighborsOf returns the distinct co-ends of n across its incident
// edges, first-seen order, excluding n itself. Orientation is ignored.
// Complexity: O(sum of incident arities).
func (v *view[N]) NeighborsOf(n N) []N {
	return v.edges.neighborsOf(n)
}

// IncidentEdges returns the edges having n among their ends, insertion
// order. Complexity: O(Degree(n)).
func (v *view[N]) IncidentEdges(n N) []Edge[N] {
	return v.edges.incidentTo(n)
}

// Config returns the configuration the graph was constructed with.
func (v *view[N]) Config() Config {
	return v.cfg
}

// Graph is an immutable graph value: a deduplicated node set plus a
// deduplicated edge set in which every edge end is guaranteed to be a
// member of the node set. No method mutates it, so a *Graph may be shared
// across goroutines without locking. Edit paths start from Mutable.
type Graph[N comparable] struct {
	view[N]
}

// Mutable returns a deep copy of g behind the mutating front-end.
// Later edits to the copy never reach g. Complexity: O(V + E).
func (g *Graph[N]) Mutable() *MutableGraph[N] {
	return &MutableGraph[N]{view: g.cloneView()}
}
