// Package core provides the construction engine for generic graph values:
// deduplicated node/edge sets, an incremental Builder, and the factory
// protocol (Empty, Apply, From, FromSeq, Fill) that turns arbitrary,
// possibly duplicate-laden collections of nodes and edges into a
// well-formed Graph.
//
// What
//
//   - Graph[N] — an immutable graph value over caller-defined node values
//     (any comparable type N). Node identity is value equality.
//   - MutableGraph[N] — the same data model plus in-place Add/Remove,
//     backed by the identical set implementation.
//   - NodeSet[N] / EdgeSet[N] — deduplicated containers keyed by structural
//     identity; inserting an edge auto-inserts its ends as nodes.
//   - Builder[N] — single-use accumulator behind every factory entry point.
//   - Edge[N] — the capability contract every edge variant satisfies
//     (end sequence, ordering policy, optional extended key).
//
// Identity
//
//	Two edges are the same graph element iff their end sequences are equal
//	under the edge's ordering policy (ordered kinds compare positionally,
//	unordered kinds compare as multisets) and their extended keys are equal.
//	Identity is realized as a BLAKE3 digest over an unambiguous binary
//	encoding of the interned end slots, so arbitrary node types never need
//	an injective string form. Inserting a structural duplicate is a no-op,
//	never an error.
//
// Invariants
//
//   - Every end of every stored edge is present in the node set
//     (auto-insertion at construction time, never rejection).
//   - Order() == |nodes|, GraphSize() == |edges|,
//     TotalDegree() == Σ over edges of arity == Σ over nodes of Degree.
//   - For a given input collection, the resulting node/edge sets are
//     independent of supply order; only iteration order may differ.
//
// Concurrency
//
//	Graph values are frozen after construction and safe to share across
//	goroutines without synchronization. MutableGraph and Builder are not
//	internally synchronized; concurrent mutators need external locking.
//
// Usage
//
//	g, err := core.From(
//	    []string{"isolated"},
//	    []core.Edge[string]{edge.NewUndirected("a", "b")},
//	)
//	// g.Order() == 3, g.GraphSize() == 1
package core
