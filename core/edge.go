// SPDX-License-Identifier: MIT
//
// edge.go — the edge capability contract and structural identity hashing.
//
// Design:
//   - Edge[N] is the only thing the rest of the package knows about an edge
//     variant: its end sequence and its ordering policy. The optional Keyed
//     capability folds extra bytes (weight, label, ...) into identity.
//   - Identity is computed against a graph's interning table (node -> slot),
//     then hashed with BLAKE3 over a length-prefixed binary encoding. No
//     injective string form of N is ever required, and key bytes cannot
//     collide with slot bytes by construction.

package core

import (
	"encoding/binary"
	"sort"

	"lukechampine.com/blake3"
)

// Edge is the capability contract every edge variant satisfies.
// Concrete kinds (undirected, directed, hyper, triple, weighted, labeled)
// live in the edge package; new kinds are added by implementing this
// interface — no other component inspects edge internals.
type Edge[N comparable] interface {
	// Ends returns the end sequence, arity >= 1 for any well-formed edge
	// (>= 2 for every kind this module ships). Callers must not mutate
	// the returned slice.
	Ends() []N

	// Ordered reports whether sequence order participates in structural
	// identity: true for directed and triple kinds, false for undirected
	// kinds, whose ends compare as a multiset.
	Ordered() bool
}

// Keyed is the optional extended-key capability: non-endpoint data folded
// into an edge's structural identity (e.g., a weight or a label). Edges
// without this capability carry an empty key. Only the bytes count: two
// kinds yielding byte-equal keys over the same ends name the same graph
// element (a label spelling out a weight's 8 big-endian bytes merges with
// that weighted edge).
type Keyed interface {
	// ExtendedKey returns the key bytes; nil means "no key".
	ExtendedKey() []byte
}

// Param is one graph parameter: either a bare node or an edge. Apply and
// Fill consume mixed Param sequences; construct one with NodeParam or
// EdgeParam. The zero Param is a node param carrying the zero value of N.
type Param[N comparable] struct {
	edge   Edge[N]
	node   N
	isEdge bool
}

// NodeParam wraps a bare node value as a graph parameter.
func NodeParam[N comparable](v N) Param[N] {
	return Param[N]{node: v}
}

// EdgeParam wraps an edge as a graph parameter. A nil e is preserved and
// rejected with ErrNilEdge when the param is consumed, not here.
func EdgeParam[N comparable](e Edge[N]) Param[N] {
	return Param[N]{edge: e, isEdge: true}
}

// digest is the structural identity key of an edge within one graph: a
// BLAKE3 hash over the canonical encoding of (ordering policy, interned
// end slots, extended key).
type digest [32]byte

// Ordering policy discriminators for the identity encoding. The policy
// byte keeps ordered and unordered edges over the same ends distinct.
const (
	policyUnordered byte = 0
	policyOrdered   byte = 1
)

// extendedKeyOf extracts the key bytes of e, or nil when e does not carry
// the Keyed capability.
func extendedKeyOf[N comparable](e Edge[N]) []byte {
	if k, ok := e.(Keyed); ok {
		return k.ExtendedKey()
	}

	return nil
}

// identityDigest hashes the canonical identity encoding of an edge whose
// ends are already interned to slots. Unordered edges normalize by sorting
// the slot sequence; the caller must pass a scratch slice this function may
// reorder. Every field is length- or count-prefixed, so distinct inputs
// produce distinct encodings.
// Complexity: O(a log a) for arity a (the unordered sort), O(a) otherwise.
func identityDigest(ordered bool, slots []int, key []byte) digest {
	if !ordered {
		sort.Ints(slots)
	}

	buf := make([]byte, 0, 1+binary.MaxVarintLen64*(len(slots)+2)+len(key))
	if ordered {
		buf = append(buf, policyOrdered)
	} else {
		buf = append(buf, policyUnordered)
	}
	buf = binary.AppendUvarint(buf, uint64(len(slots)))
	for _, s := range slots {
		buf = binary.AppendUvarint(buf, uint64(s))
	}
	buf = binary.AppendUvarint(buf, uint64(len(key)))
	buf = append(buf, key...)

	return blake3.Sum256(buf)
}
