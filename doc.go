// Package grafo is an in-memory construction and synthesis engine for
// graph-valued data: deduplicated node and edge sets, capability-based
// edge kinds up to n-ary hyperedges and RDF-style triples, and a
// randomized generator for property-based testing.
//
// 🚀 What is grafo?
//
//	A generic, value-oriented graph toolkit that brings together:
//		• Core containers: deduplicated node & edge sets, edge ends
//		  auto-inserted as nodes, duplicates silently collapsed
//		• Capability edges: undirected, directed, hyper, ordered hyper,
//		  weighted, labeled and subject/predicate/object triples
//		• Construction: an incremental Builder plus a factory protocol
//		  (Empty, Apply, From, FromSeq, Fill) in immutable & mutable twins
//		• Synthesis: a randomized generator honoring order, degree-range
//		  and connectivity constraints, checked by tolerance-bearing Metrics
//		• Traversal: BFS with hooks, weak components, connectivity
//
// ✨ Why choose grafo?
//
//   - Structural identity: equal values mean equal elements, whatever
//     the construction path
//   - Hard guarantees: exact order, single component on request, bounded
//     retries surfacing sentinel errors instead of silent degradation
//   - Generic API: any comparable node type; edge kinds are small
//     interfaces, so domain-specific kinds plug in next to the stock ones
//   - Deterministic: a seeded generator replays the identical graph
//
// Everything is organized under four subpackages:
//
//	core/ — node/edge sets, Graph & MutableGraph, Builder, factory protocol
//	edge/ — the stock edge kinds and their constructors
//	gen/  — the randomized constrained generator and its Metrics
//	bfs/  — breadth-first traversal, components, connectivity
//
// Quick ASCII example:
//
//	    s1 ─p→ o1
//	    s2 ─p→ o2
//
//	two triple statements sharing one predicate: five nodes, two edges.
//
//	go get github.com/katalvlaran/grafo
package grafo
