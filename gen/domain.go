// SPDX-License-Identifier: MIT
//
// domain.go — node value domains the generator samples from.

package gen

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// Domain yields node values for the generator. Sample must be a pure
// function of the RNG state so a fixed seed replays the same values.
//
// The domain's size bounds the realizable order: requesting more
// distinct values than the domain holds ends in ErrOrderUnreachable.
type Domain[N comparable] interface {
	Sample(r *rand.Rand) N
}

// intRange samples integers uniformly from a closed interval.
type intRange struct {
	lo   int
	span int
}

// IntRange returns a Domain over [lo, hi], both ends included.
// Panics if hi < lo.
func IntRange(lo, hi int) Domain[int] {
	if hi < lo {
		panic("gen: IntRange(hi<lo)")
	}

	return intRange{lo: lo, span: hi - lo + 1}
}

func (d intRange) Sample(r *rand.Rand) int {
	return d.lo + r.Intn(d.span)
}

// uuidDomain samples version-4 UUID strings; for practical purposes the
// draws never collide, so any order is reachable.
type uuidDomain struct{}

// UUIDs returns a collision-free string Domain. Randomness is taken from
// the generator's own source, so seeded runs stay reproducible.
func UUIDs() Domain[string] {
	return uuidDomain{}
}

func (uuidDomain) Sample(r *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// math/rand sources never fail reads.
		return uuid.Nil.String()
	}

	return id.String()
}

// stringPool samples from the finite pool prefix+"0" .. prefix+"<n-1>".
type stringPool struct {
	prefix string
	n      int
}

// Strings returns a Domain over n prefixed labels ("v0".."v<n-1>" for
// prefix "v"). Handy for forcing duplicate draws in rejection-sampling
// tests. Panics if n < 1.
func Strings(prefix string, n int) Domain[string] {
	if n < 1 {
		panic("gen: Strings(n<1)")
	}

	return stringPool{prefix: prefix, n: n}
}

func (d stringPool) Sample(r *rand.Rand) string {
	return d.prefix + strconv.Itoa(r.Intn(d.n))
}
