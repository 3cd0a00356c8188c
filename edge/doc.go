// SPDX-License-Identifier: MIT

// Package edge ships the concrete edge kinds used with grafo graphs:
//
//   - Undirected / Directed: the binary kinds, arity fixed at 2.
//   - Hyper / DiHyper: n-ary kinds (n >= 2), unordered resp. ordered.
//   - Triple: an ordered 3-ary kind with subject/predicate/object views.
//   - Weighted / Labeled: undirected binary kinds whose weight resp.
//     label participates in structural identity via the extended key.
//
// Every kind is a small immutable value satisfying core.Edge[N]; the
// key-extended kinds additionally satisfy core.Keyed. Kind names never
// participate in identity: a Directed edge and a 2-ary DiHyper over the
// same ends are the same graph element.
//
// Adding a kind needs no support from this module. Implement core.Edge[N]
// (plus core.Keyed when extra bytes should distinguish otherwise equal
// edges) and the graph containers treat it like any shipped kind.
//
// Constructors of fixed-arity kinds cannot fail. The variadic kinds
// return a wrapped core.ErrMalformedEdge for arity < 2, so a malformed
// edge is rejected before any graph sees it.
package edge
