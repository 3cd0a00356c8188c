// SPDX-License-Identifier: MIT
//
// mutable.go — the add/remove front-end over graph storage.

package core

// MutableGraph is the editable counterpart of Graph: the same storage and
// read surface plus add/remove operations. Dedup and auto-insertion apply
// per element exactly as at construction time, so every invariant of the
// immutable form holds after each mutation.
//
// Not internally synchronized: concurrent mutators (or a mutator racing
// readers) need external locking. That is a caller obligation.
type MutableGraph[N comparable] struct {
	view[N]
}

// AddNode inserts n and reports whether the node set changed.
// Re-inserting a present node is a silent no-op. Complexity: O(1).
func (m *MutableGraph[N]) AddNode(n N) bool {
	return m.nodes.Insert(n)
}

// AddEdge inserts e, auto-inserting any absent ends first, and reports
// whether the edge set changed. A structural duplicate is a silent no-op
// that still reports false with a nil error. Errors only on malformed
// input: ErrNilEdge, ErrMalformedEdge. Complexity: O(a log a) for arity a.
func (m *MutableGraph[N]) AddEdge(e Edge[N]) (bool, error) {
	return m.edges.Insert(e)
}

// RemoveEdge deletes the structural equal of e and reports whether the
// edge set changed. The ends stay in the node set even when the deleted
// edge was their last incidence. Complexity: O(a log a + Degree of ends).
func (m *MutableGraph[N]) RemoveEdge(e Edge[N]) bool {
	return m.edges.remove(e)
}

// RemoveNode deletes n together with every edge incident to it and
// reports whether the graph changed. Complexity: O(sum of incident
// arities and end degrees).
func (m *MutableGraph[N]) RemoveNode(n N) bool {
	if !m.nodes.Contains(n) {
		return false
	}
	m.edges.dropIncident(n)

	return m.nodes.remove(n)
}

// Freeze returns an immutable deep-copy snapshot of the current state.
// The mutable graph stays usable; later edits never reach the snapshot.
// Complexity: O(V + E).
func (m *MutableGraph[N]) Freeze() *Graph[N] {
	return &Graph[N]{view: m.cloneView()}
}
