// SPDX-License-Identifier: MIT
//
// generator.go — randomized graph synthesis under order, degree and
// connectivity constraints. Every random choice is bounded: exhausted
// budgets surface as errors, never as silently degraded output.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/grafo/core"
)

// Method names used as error-wrapping context.
const (
	methodNew      = "New"
	methodGenerate = "Generate"
)

const (
	// nodeDrawFactor scales the node rejection-sampling budget:
	// order * nodeDrawFactor draws before distinctness is declared
	// unreachable.
	nodeDrawFactor = 64

	// maxEdgeDraws bounds the attempts to place any single edge.
	maxEdgeDraws = 32

	// windowSlack scales the co-end candidate window: need*windowSlack
	// + windowSlack lowest-degree slots compete for each draw.
	windowSlack = 4
)

// Generator synthesizes random graphs over a node domain. It is
// immutable after New; Generate may be called repeatedly and draws
// fresh randomness from the configured source on every call.
type Generator[N comparable] struct {
	domain Domain[N]
	cfg    genConfig[N]
	met    Metrics
}

// New resolves opts and validates the configuration.
//
// Failures: ErrNilDomain, ErrOrderRange (order unset or below one),
// ErrDegreeRange (inverted range, or connectivity with zero max
// degree), ErrNoKinds, ErrKindArity.
func New[N comparable](d Domain[N], opts ...GenOption[N]) (*Generator[N], error) {
	if d == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilDomain)
	}
	cfg := newGenConfig(opts...)
	if cfg.order < 1 {
		return nil, fmt.Errorf("%s: order %d: %w", methodNew, cfg.order, ErrOrderRange)
	}
	if cfg.minDeg < 0 || cfg.maxDeg < cfg.minDeg {
		return nil, fmt.Errorf("%s: degrees [%d, %d]: %w",
			methodNew, cfg.minDeg, cfg.maxDeg, ErrDegreeRange)
	}
	if cfg.connected && cfg.order > 1 && cfg.maxDeg < 1 {
		return nil, fmt.Errorf("%s: connected output needs max degree >= 1: %w",
			methodNew, ErrDegreeRange)
	}
	if len(cfg.kinds) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNoKinds)
	}
	for _, k := range cfg.kinds {
		if k.Build == nil || k.MinArity < 2 || k.MaxArity < k.MinArity {
			return nil, fmt.Errorf("%s: kind %q: %w", methodNew, k.Name, ErrKindArity)
		}
	}

	return &Generator[N]{
		domain: d,
		cfg:    cfg,
		met: Metrics{
			Order:        cfg.order,
			Connected:    cfg.connected,
			NodeDegrees:  DegreeRange{Min: cfg.minDeg, Max: cfg.maxDeg},
			DegreeExcess: degreeExcess(cfg.kinds),
		},
	}, nil
}

// Metrics returns the tolerance contract this generator promises its
// outputs satisfy. Verify a result with Metrics().Admit(Measure(g)).
func (g *Generator[N]) Metrics() Metrics {
	return g.met
}

// Generate draws one graph.
//
// Failures: ErrNeedRandSource when neither WithRand nor WithSeed was
// given, ErrOrderUnreachable when the domain cannot yield enough
// distinct values, ErrSpanFailed when a connecting edge cannot be
// placed within budget. Degree targets are never a hard failure: on
// exhausted edge retries the realized graph is returned as is, subject
// to the Metrics tolerance.
func (g *Generator[N]) Generate() (*core.Graph[N], error) {
	r := g.cfg.rng
	if r == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	// 1. Sample exactly order distinct node values.
	values, seen, err := g.sampleNodes(r)
	if err != nil {
		return nil, err
	}

	st := newRun(g.cfg, values, seen)

	// 2. Spanning pass: tie every node into one component.
	if g.cfg.connected && g.cfg.order > 1 {
		if err = st.span(r); err != nil {
			return nil, err
		}
	}

	// 3. Degree fill, bounded by the floor or the sampled edge budget.
	st.fill(r)

	// 4. Hand the realized sets to the factory.
	edges := st.es.Values()
	out, err := core.From(values, edges,
		core.WithOrderHint(len(values)), core.WithSizeHint(len(edges)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return out, nil
}

// sampleNodes rejection-samples the domain until order distinct values
// are on hand. Small or heavily colliding domains exhaust the draw
// budget and fail; the order is never quietly reduced.
func (g *Generator[N]) sampleNodes(r *rand.Rand) ([]N, *core.NodeSet[N], error) {
	var (
		order  = g.cfg.order
		budget = nodeDrawFactor * order
		seen   = core.NewNodeSet[N](order)
		values = make([]N, 0, order)
	)
	for draw := 0; draw < budget && len(values) < order; draw++ {
		if v := g.domain.Sample(r); seen.Insert(v) {
			values = append(values, v)
		}
	}
	if len(values) < order {
		return nil, nil, fmt.Errorf("%s: %d/%d distinct values after %d draws: %w",
			methodGenerate, len(values), order, budget, ErrOrderUnreachable)
	}

	return values, seen, nil
}

// run is the working state of one Generate call. Candidate nodes are
// addressed by slot (index into values); the edge set dedups candidate
// edges by structural identity and the ladder tracks running degrees.
type run[N comparable] struct {
	cfg    genConfig[N]
	values []N
	es     *core.EdgeSet[N]
	lad    *ladder
	inSpan []bool
	win    []int
	ends   []int
	vals   []N
}

func newRun[N comparable](cfg genConfig[N], values []N, seen *core.NodeSet[N]) *run[N] {
	return &run[N]{
		cfg:    cfg,
		values: values,
		es:     core.NewEdgeSet(seen, (len(values)*(cfg.minDeg+cfg.maxDeg)+3)/4),
		lad:    newLadder(len(values)),
		inSpan: make([]bool, len(values)),
	}
}

// span ties the candidate set into a single component. perm fixes a
// random join order; every accepted edge pulls at least one node out of
// the frontier, so the loop advances or fails, never spins.
func (st *run[N]) span(r *rand.Rand) error {
	perm := r.Perm(len(st.values))
	st.inSpan[perm[0]] = true
	for s := 1; s < len(perm); {
		take, ok := st.placeSpanning(r, perm, s)
		if !ok {
			return fmt.Errorf("%s: node %v unreachable after %d attempts: %w",
				methodGenerate, st.values[perm[s]], maxEdgeDraws, ErrSpanFailed)
		}
		for i := 0; i < take; i++ {
			st.inSpan[perm[s+i]] = true
		}
		s += take
	}

	return nil
}

// placeSpanning lands one edge joining take frontier nodes (perm[s:])
// to already spanned ones and returns take. Spanned co-ends come from
// the low end of the degree ladder; the max-degree line is crossed only
// when connectivity leaves no candidate under it.
func (st *run[N]) placeSpanning(r *rand.Rand, perm []int, s int) (int, bool) {
	for attempt := 0; attempt < maxEdgeDraws; attempt++ {
		kind := st.cfg.kinds[r.Intn(len(st.cfg.kinds))]
		arity := drawArity(r, kind.MinArity, kind.MaxArity, len(perm))
		if arity == 0 {
			continue
		}
		take := arity - 1
		if u := len(perm) - s; take > u {
			take = u
		}
		need := arity - take

		st.win = st.win[:0]
		limit := windowSlack*need + windowSlack
		st.lad.scan(func(e degreeEntry) bool {
			if !st.inSpan[e.slot] {
				return true
			}
			if e.deg >= st.cfg.maxDeg && len(st.win) >= need {
				return false
			}
			st.win = append(st.win, e.slot)

			return len(st.win) < limit
		})
		if len(st.win) < need {
			continue
		}

		st.ends = append(st.ends[:0], perm[s:s+take]...)
		st.ends = append(st.ends, sampleSlots(r, st.win, need)...)
		r.Shuffle(len(st.ends), func(i, j int) {
			st.ends[i], st.ends[j] = st.ends[j], st.ends[i]
		})
		if st.insert(r, kind, st.ends) {
			return take, true
		}
	}

	return 0, false
}

// fill raises degrees from the bottom of the ladder. Without an edge
// budget it stops once every node reaches the degree floor; with one it
// keeps spending until the budget runs out or the pool saturates at the
// max degree. Nodes that cannot take another edge are marked stuck and
// skipped, so every iteration either places an edge or retires a node.
func (st *run[N]) fill(r *rand.Rand) {
	var (
		sized  = st.cfg.extraEdges != nil
		budget int
		stop   = st.cfg.minDeg
		stuck  = make(map[int]struct{})
	)
	if sized {
		if budget = st.cfg.extraEdges(r); budget < 0 {
			budget = 0
		}
		stop = st.cfg.maxDeg
	}
	for {
		if sized && budget == 0 {
			return
		}
		focus, ok := st.lad.minSkip(stuck)
		if !ok || focus.deg >= stop {
			return
		}
		if st.placeFill(r, focus.slot) {
			if sized {
				budget--
			}
		} else {
			stuck[focus.slot] = struct{}{}
		}
	}
}

// placeFill tries to land one more edge on focus within maxEdgeDraws
// attempts. False means focus is stuck for this run: no permitted kind
// found co-ends under the max degree and a fresh identity.
func (st *run[N]) placeFill(r *rand.Rand, focus int) bool {
	for attempt := 0; attempt < maxEdgeDraws; attempt++ {
		kind := st.cfg.kinds[r.Intn(len(st.cfg.kinds))]
		avail := len(st.values)
		if kind.AllowLoops {
			// Ends may repeat, so the distinct-node count does not cap arity.
			avail = kind.MaxArity
		}
		arity := drawArity(r, kind.MinArity, kind.MaxArity, avail)
		if arity == 0 {
			continue
		}
		need := arity - 1

		st.win = st.win[:0]
		limit := windowSlack*need + windowSlack
		st.lad.scan(func(e degreeEntry) bool {
			if e.deg >= st.cfg.maxDeg {
				return false
			}
			if e.slot == focus && !kind.AllowLoops {
				return true
			}
			st.win = append(st.win, e.slot)

			return len(st.win) < limit
		})

		st.ends = append(st.ends[:0], focus)
		if kind.AllowLoops {
			if len(st.win) == 0 {
				continue
			}
			for i := 0; i < need; i++ {
				st.ends = append(st.ends, st.win[r.Intn(len(st.win))])
			}
		} else {
			if len(st.win) < need {
				continue
			}
			st.ends = append(st.ends, sampleSlots(r, st.win, need)...)
		}
		r.Shuffle(len(st.ends), func(i, j int) {
			st.ends[i], st.ends[j] = st.ends[j], st.ends[i]
		})
		if st.insert(r, kind, st.ends) {
			return true
		}
	}

	return false
}

// insert materializes ends into node values, builds the edge and offers
// it to the dedup oracle. True only when a brand-new edge landed; the
// ladder is then bumped once per end occurrence.
func (st *run[N]) insert(r *rand.Rand, kind EdgeKind[N], ends []int) bool {
	st.vals = st.vals[:0]
	for _, slot := range ends {
		st.vals = append(st.vals, st.values[slot])
	}
	e, err := kind.Build(r, st.vals)
	if err != nil {
		return false
	}
	changed, err := st.es.Insert(e)
	if err != nil || !changed {
		return false
	}
	for _, slot := range ends {
		st.lad.bump(slot)
	}

	return true
}

// drawArity draws a permitted arity for a kind given avail distinct
// candidates; 0 means the kind cannot fit this draw.
func drawArity(r *rand.Rand, minA, maxA, avail int) int {
	if maxA > avail {
		maxA = avail
	}
	if maxA < minA {
		return 0
	}

	return minA + r.Intn(maxA-minA+1)
}

// sampleSlots picks k distinct elements by partially shuffling pool in
// place. Pool order carries no meaning, so the mutation is free.
func sampleSlots(r *rand.Rand, pool []int, k int) []int {
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
