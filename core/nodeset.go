// SPDX-License-Identifier: MIT
//
// nodeset.go — deduplicated node container with slot interning.
//
// Slots are monotonically increasing and never reused: removing a node
// tombstones its slot, which keeps every previously computed edge identity
// digest valid. Re-inserting an equal value claims a fresh slot.

package core

// NodeSet is a deduplicated container of node values keyed by value
// equality. Insertion is idempotent; insertion order is preserved for
// iteration but carries no semantic weight.
type NodeSet[N comparable] struct {
	slots  map[N]int // live value -> slot
	values []N       // slot -> value, including dead slots
	live   []bool    // slot liveness
	n      int       // live count
}

// NewNodeSet returns an empty NodeSet pre-sized for hint nodes (0 = none).
func NewNodeSet[N comparable](hint int) *NodeSet[N] {
	return &NodeSet[N]{
		slots:  make(map[N]int, hint),
		values: make([]N, 0, hint),
		live:   make([]bool, 0, hint),
	}
}

// Insert adds v to the set and reports whether the set changed
// (false = structural duplicate, a silent no-op). Complexity: O(1) amortized.
func (s *NodeSet[N]) Insert(v N) bool {
	if _, ok := s.slots[v]; ok {
		return false
	}
	s.slots[v] = len(s.values)
	s.values = append(s.values, v)
	s.live = append(s.live, true)
	s.n++

	return true
}

// Contains reports whether v is in the set. Complexity: O(1).
func (s *NodeSet[N]) Contains(v N) bool {
	_, ok := s.slots[v]

	return ok
}

// Len returns the number of live nodes. Complexity: O(1).
func (s *NodeSet[N]) Len() int {
	return s.n
}

// Values returns the live node values in insertion order as a fresh slice.
// Complexity: O(n).
func (s *NodeSet[N]) Values() []N {
	out := make([]N, 0, s.n)
	for slot, v := range s.values {
		if s.live[slot] {
			out = append(out, v)
		}
	}

	return out
}

// slot returns the interned slot of v, if present.
func (s *NodeSet[N]) slot(v N) (int, bool) {
	i, ok := s.slots[v]

	return i, ok
}

// intern inserts v if absent and returns its slot either way.
func (s *NodeSet[N]) intern(v N) int {
	if i, ok := s.slots[v]; ok {
		return i
	}
	i := len(s.values)
	s.slots[v] = i
	s.values = append(s.values, v)
	s.live = append(s.live, true)
	s.n++

	return i
}

// remove tombstones v's slot and reports whether v was present. The slot
// number is retired, never reused. Complexity: O(1).
func (s *NodeSet[N]) remove(v N) bool {
	i, ok := s.slots[v]
	if !ok {
		return false
	}
	delete(s.slots, v)
	s.live[i] = false
	s.n--

	return true
}

// valueAt returns the value stored at slot i. Valid for live and dead
// slots alike; callers guard liveness where it matters.
func (s *NodeSet[N]) valueAt(i int) N {
	return s.values[i]
}

// grow reserves capacity for hint additional nodes. A pure performance
// hint with no observable effect.
func (s *NodeSet[N]) grow(hint int) {
	if hint <= 0 {
		return
	}
	if free := cap(s.values) - len(s.values); free < hint {
		values := make([]N, len(s.values), len(s.values)+hint)
		copy(values, s.values)
		s.values = values
		live := make([]bool, len(s.live), len(s.live)+hint)
		copy(live, s.live)
		s.live = live
	}
}

// clone returns a deep copy sharing no state with s.
func (s *NodeSet[N]) clone() *NodeSet[N] {
	out := &NodeSet[N]{
		slots:  make(map[N]int, len(s.slots)),
		values: make([]N, len(s.values)),
		live:   make([]bool, len(s.live)),
		n:      s.n,
	}
	for v, i := range s.slots {
		out.slots[v] = i
	}
	copy(out.values, s.values)
	copy(out.live, s.live)

	return out
}
