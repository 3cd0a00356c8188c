// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the gen package.
//
// Only package-level sentinels are exposed; callers branch with
// errors.Is. Implementations attach context via %w wrapping. Validation
// panics are confined to option constructors.

package gen

import "errors"

// ErrNilDomain indicates New was called without a node value domain.
var ErrNilDomain = errors.New("gen: nil domain")

// ErrOrderRange indicates the requested order is missing or < 1.
// Usage: if errors.Is(err, ErrOrderRange) { /* set WithOrder */ }.
var ErrOrderRange = errors.New("gen: order out of range")

// ErrDegreeRange indicates the degree range cannot be satisfied as
// configured (e.g. a connected graph of order > 1 with max degree 0).
var ErrDegreeRange = errors.New("gen: unsatisfiable degree range")

// ErrNoKinds indicates the edge kind pool resolved empty.
var ErrNoKinds = errors.New("gen: no edge kinds")

// ErrKindArity indicates an EdgeKind carries an invalid arity window or
// a nil Build function.
var ErrKindArity = errors.New("gen: invalid edge kind")

// ErrNeedRandSource indicates a stochastic operation was started without
// a rand source; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrOrderUnreachable indicates the domain could not yield the requested
// number of distinct node values within the draw budget. The order is a
// hard guarantee, so generation fails rather than degrade it.
// Usage: if errors.Is(err, ErrOrderUnreachable) { /* widen the domain */ }.
var ErrOrderUnreachable = errors.New("gen: cannot realize requested order")

// ErrSpanFailed indicates the connectivity pass could not place a
// spanning edge within its attempt budget (e.g. every kind in the pool
// needs more ends than nodes exist).
var ErrSpanFailed = errors.New("gen: spanning step failed")

// ErrMetricsViolated is the Admit verdict for a measured graph outside
// the published tolerances.
var ErrMetricsViolated = errors.New("gen: metrics tolerance violated")
