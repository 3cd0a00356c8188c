// SPDX-License-Identifier: MIT
//
// triple.go — the RDF-style statement kind.

package edge

import "github.com/katalvlaran/grafo/core"

var _ core.Edge[string] = Triple[string]{}

// Triple is an ordered 3-ary edge read as a subject-predicate-object
// statement. The predicate is a node like any other end, so statements
// sharing a predicate share that node. Identity is the ordered-sequence
// rule; the named accessors are read convenience over positions 0..2.
type Triple[N comparable] struct {
	ends [3]N
}

// NewTriple returns the statement (subject, predicate, object). The typed
// signature fixes arity 3, so construction cannot fail.
func NewTriple[N comparable](subject, predicate, object N) Triple[N] {
	return Triple[N]{ends: [3]N{subject, predicate, object}}
}

// Subject returns end 0.
func (t Triple[N]) Subject() N { return t.ends[0] }

// Predicate returns end 1.
func (t Triple[N]) Predicate() N { return t.ends[1] }

// Object returns end 2.
func (t Triple[N]) Object() N { return t.ends[2] }

// Ends returns [subject, predicate, object].
func (t Triple[N]) Ends() []N { return t.ends[:] }

// Ordered reports true: position is meaning here.
func (t Triple[N]) Ordered() bool { return true }
