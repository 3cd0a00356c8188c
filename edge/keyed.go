// SPDX-License-Identifier: MIT
//
// keyed.go — key-extended binary kinds: Weighted and Labeled.
//
// The extended key folds non-endpoint bytes into structural identity, so
// two edges over the same ends with different weights (or labels) are
// distinct graph elements, while equal-key duplicates still collapse.

package edge

import (
	"encoding/binary"

	"github.com/katalvlaran/grafo/core"
)

// Compile-time contract checks.
var (
	_ core.Edge[int] = Weighted[int]{}
	_ core.Keyed     = Weighted[int]{}
	_ core.Edge[int] = Labeled[int]{}
	_ core.Keyed     = Labeled[int]{}
)

// Weighted is an undirected 2-ary edge carrying an int64 weight that
// participates in identity.
type Weighted[N comparable] struct {
	ends   [2]N
	weight int64
}

// NewWeighted returns the undirected edge {a, b} with weight w.
func NewWeighted[N comparable](a, b N, w int64) Weighted[N] {
	return Weighted[N]{ends: [2]N{a, b}, weight: w}
}

// Weight returns the edge weight.
func (e Weighted[N]) Weight() int64 { return e.weight }

// Ends returns the two ends in construction order.
func (e Weighted[N]) Ends() []N { return e.ends[:] }

// Ordered reports false: end order is not part of identity.
func (e Weighted[N]) Ordered() bool { return false }

// ExtendedKey returns the weight as 8 big-endian bytes.
func (e Weighted[N]) ExtendedKey() []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(e.weight))

	return k[:]
}

// Labeled is an undirected 2-ary edge carrying a string label that
// participates in identity.
type Labeled[N comparable] struct {
	ends  [2]N
	label string
}

// NewLabeled returns the undirected edge {a, b} labeled label.
func NewLabeled[N comparable](a, b N, label string) Labeled[N] {
	return Labeled[N]{ends: [2]N{a, b}, label: label}
}

// Label returns the edge label.
func (e Labeled[N]) Label() string { return e.label }

// Ends returns the two ends in construction order.
func (e Labeled[N]) Ends() []N { return e.ends[:] }

// Ordered reports false: end order is not part of identity.
func (e Labeled[N]) Ordered() bool { return false }

// ExtendedKey returns the label bytes; an empty label means no key.
func (e Labeled[N]) ExtendedKey() []byte {
	if e.label == "" {
		return nil
	}

	return []byte(e.label)
}
