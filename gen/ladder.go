// SPDX-License-Identifier: MIT
//
// ladder.go — ordered (degree, slot) index over the candidate nodes.
// The fill loop asks it for the current minimum-degree node and for a
// window of under-capacity co-end candidates without rescanning all
// degrees on every draw.

package gen

import (
	"github.com/tidwall/btree"
)

// degreeEntry orders candidate nodes by degree first, slot second.
type degreeEntry struct {
	deg  int
	slot int
}

func lessDegree(a, b degreeEntry) bool {
	if a.deg != b.deg {
		return a.deg < b.deg
	}

	return a.slot < b.slot
}

// ladder keeps every candidate slot keyed by its running degree.
// degs mirrors the tree for O(1) point reads.
type ladder struct {
	tr   *btree.BTreeG[degreeEntry]
	degs []int
}

// newLadder seeds n slots at degree zero.
func newLadder(n int) *ladder {
	l := &ladder{
		tr:   btree.NewBTreeG(lessDegree),
		degs: make([]int, n),
	}
	for slot := 0; slot < n; slot++ {
		l.tr.Set(degreeEntry{deg: 0, slot: slot})
	}

	return l
}

// bump moves slot one degree up. Called once per end occurrence, so a
// repeated end advances its slot repeatedly.
func (l *ladder) bump(slot int) {
	l.tr.Delete(degreeEntry{deg: l.degs[slot], slot: slot})
	l.degs[slot]++
	l.tr.Set(degreeEntry{deg: l.degs[slot], slot: slot})
}

// minSkip returns the minimum-degree entry whose slot is not in skip,
// or ok=false when every slot is skipped.
func (l *ladder) minSkip(skip map[int]struct{}) (degreeEntry, bool) {
	var (
		found bool
		min   degreeEntry
	)
	l.tr.Scan(func(e degreeEntry) bool {
		if _, stuck := skip[e.slot]; stuck {
			return true
		}
		min, found = e, true

		return false
	})

	return min, found
}

// scan visits every entry in (degree, slot) order; visit returning
// false stops the walk early.
func (l *ladder) scan(visit func(e degreeEntry) bool) {
	l.tr.Scan(visit)
}
