// SPDX-License-Identifier: MIT
//
// options.go — functional options resolving into the generator config.

package gen

import (
	"math/rand"
)

// genConfig is the resolved generator configuration. New validates it
// once; Generate only reads it.
type genConfig[N comparable] struct {
	order      int
	minDeg     int
	maxDeg     int
	kinds      []EdgeKind[N]
	connected  bool
	rng        *rand.Rand
	extraEdges func(r *rand.Rand) int
}

// GenOption mutates the generator config before validation.
type GenOption[N comparable] func(*genConfig[N])

// newGenConfig applies opts over the defaults: degree range [1, 4],
// connected output, an undirected kind pool and no RNG (the seed is the
// caller's choice, so there is no default source).
func newGenConfig[N comparable](opts ...GenOption[N]) genConfig[N] {
	cfg := genConfig[N]{
		minDeg:    1,
		maxDeg:    4,
		kinds:     []EdgeKind[N]{UndirectedKind[N]()},
		connected: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrder sets the exact number of nodes. Required; there is no
// default. Panics if n < 1.
func WithOrder[N comparable](n int) GenOption[N] {
	if n < 1 {
		panic("gen: WithOrder(n<1)")
	}

	return func(c *genConfig[N]) { c.order = n }
}

// WithDegrees sets the target degree range [lo, hi], inclusive.
// Panics if lo < 0 or hi < lo.
func WithDegrees[N comparable](lo, hi int) GenOption[N] {
	if lo < 0 || hi < lo {
		panic("gen: WithDegrees(lo<0 || hi<lo)")
	}

	return func(c *genConfig[N]) {
		c.minDeg = lo
		c.maxDeg = hi
	}
}

// WithKinds replaces the edge kind pool. The pool is validated by New,
// not here: an empty pool fails with ErrNoKinds, a malformed descriptor
// with ErrKindArity.
func WithKinds[N comparable](kinds ...EdgeKind[N]) GenOption[N] {
	return func(c *genConfig[N]) { c.kinds = kinds }
}

// WithConnected toggles the spanning step. When false the output may
// fall apart into several components.
func WithConnected[N comparable](connected bool) GenOption[N] {
	return func(c *genConfig[N]) { c.connected = connected }
}

// WithRand supplies the random source. Reusing one *rand.Rand across
// generators makes their outputs sequence-dependent; use WithSeed for
// independent reproducible runs. Panics if r is nil.
func WithRand[N comparable](r *rand.Rand) GenOption[N] {
	if r == nil {
		panic("gen: WithRand(nil)")
	}

	return func(c *genConfig[N]) { c.rng = r }
}

// WithSeed supplies a fresh random source seeded with seed. Same seed,
// same options, same graph.
func WithSeed[N comparable](seed int64) GenOption[N] {
	return func(c *genConfig[N]) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeCount switches the degree fill to a sized budget: dist is
// drawn once per Generate and yields the number of edges to add beyond
// the spanning structure (negative draws count as zero). Without it the
// fill runs until every node reaches the minimum degree.
// Panics if dist is nil.
func WithEdgeCount[N comparable](dist func(r *rand.Rand) int) GenOption[N] {
	if dist == nil {
		panic("gen: WithEdgeCount(nil)")
	}

	return func(c *genConfig[N]) { c.extraEdges = dist }
}
