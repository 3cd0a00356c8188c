// SPDX-License-Identifier: MIT

// Package gen synthesizes random graphs under structural constraints,
// primarily as input material for property-based tests.
//
// What
//
//   - A Generator produces graphs with an exact node count (order), node
//     degrees inside a requested range, and optionally exactly one
//     weakly connected component.
//   - Node values come from a caller-supplied Domain (IntRange, UUIDs,
//     Strings, or anything implementing Sample).
//   - Edges are drawn from a pool of EdgeKind descriptions (undirected,
//     directed, weighted, hyper, ordered hyper, triple); arity and ends
//     are sampled per edge.
//   - Metrics describes the generated population with its tolerances and
//     delivers the Admit verdict for a measured graph, so tests can
//     assert "close enough" instead of chasing exact distributions.
//
// Why
//
//	Property tests need many structurally varied graphs whose gross shape
//	is still predictable. The generator guarantees the hard constraints
//	(order, connectivity), keeps soft ones (degrees) within published
//	tolerances, and never loops forever: every stochastic step has a
//	bounded attempt budget and fails with a sentinel error instead of
//	hanging.
//
// Determinism
//
//	All randomness flows through one *rand.Rand supplied via WithSeed or
//	WithRand. A fixed seed replays the identical graph.
//
// Algorithm (Generate)
//
//  1. Rejection-sample `order` distinct node values from the Domain
//     within a draw budget; exhaustion is ErrOrderUnreachable.
//  2. If connectivity is requested, thread a random spanning structure
//     through all nodes (each spanning edge joins at least one new node
//     to the already spanned part), fixing one component.
//  3. Degree fill: repeatedly take a minimum-degree node from a degree
//     ladder and attach a freshly drawn edge whose co-ends are biased
//     toward other low-degree nodes, skipping duplicates, until every
//     node reaches the minimum degree (or, with WithEdgeCount, until
//     the sampled edge budget is spent) or all attempts are exhausted.
//  4. Emit the accumulated sets through the factory protocol.
//
// Usage
//
//	g, err := gen.New(gen.IntRange(0, 999),
//	    gen.WithOrder[int](50),
//	    gen.WithDegrees[int](2, 5),
//	    gen.WithSeed[int](42),
//	)
//	if err != nil { ... }
//	graph, err := g.Generate()
//	if err != nil { ... }
//	if err := g.Metrics().Admit(gen.Measure(graph)); err != nil { ... }
//
// Errors
//
//   - ErrNilDomain, ErrOrderRange, ErrDegreeRange, ErrNoKinds,
//     ErrKindArity: rejected by New.
//   - ErrNeedRandSource: Generate without WithSeed/WithRand.
//   - ErrOrderUnreachable, ErrSpanFailed: attempt budgets exhausted.
//   - ErrMetricsViolated: the Admit verdict.
package gen
