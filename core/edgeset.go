// SPDX-License-Identifier: MIT
//
// edgeset.go — deduplicated edge container with end auto-insertion.
//
// The set is paired with a NodeSet: inserting an edge interns every end
// first (auto-insertion), computes the identity digest over the interned
// slots, and drops structural duplicates silently. Incidence and degree
// bookkeeping is maintained per slot so graphs answer Degree/NeighborsOf
// without scanning the whole edge catalog. Removal tombstones positions;
// insertion order of the survivors is preserved.

package core

// EdgeSet is a deduplicated container of edges keyed by structural
// identity (ordering policy + end multiset/sequence + extended key).
type EdgeSet[N comparable] struct {
	nodes *NodeSet[N]

	index map[digest]int // identity -> position
	edges []Edge[N]      // position -> edge, including dead positions
	keys  []digest       // position -> identity
	dead  []bool         // position tombstones
	count int            // live edge count

	incidence [][]int // slot -> live positions (one entry per incident edge)
	degrees   []int   // slot -> degree, counting end multiplicity
	total     int     // sum of live-edge arities
}

// NewEdgeSet returns an empty EdgeSet bound to nodes, pre-sized for hint
// edges (0 = none). The binding is permanent: every insert auto-inserts
// edge ends into the bound NodeSet.
func NewEdgeSet[N comparable](nodes *NodeSet[N], hint int) *EdgeSet[N] {
	return &EdgeSet[N]{
		nodes: nodes,
		index: make(map[digest]int, hint),
		edges: make([]Edge[N], 0, hint),
		keys:  make([]digest, 0, hint),
		dead:  make([]bool, 0, hint),
	}
}

// Insert adds e to the set and reports whether the set changed
// (false = structural duplicate, a silent no-op). The ends of e are
// interned into the bound NodeSet first, so the node set grows by exactly
// the ends not already present. Returns ErrNilEdge or ErrMalformedEdge for
// inputs no edge constructor of this module produces.
// Complexity: O(a log a) for arity a.
func (s *EdgeSet[N]) Insert(e Edge[N]) (bool, error) {
	if e == nil {
		return false, ErrNilEdge
	}
	ends := e.Ends()
	if len(ends) == 0 {
		return false, ErrMalformedEdge
	}

	// 1) Auto-insert ends; record interned slots in end order.
	slots := make([]int, len(ends))
	for i, v := range ends {
		slots[i] = s.nodes.intern(v)
	}

	// 2) Identity over a scratch copy: unordered kinds sort it.
	scratch := make([]int, len(slots))
	copy(scratch, slots)
	d := identityDigest(e.Ordered(), scratch, extendedKeyOf(e))

	// 3) Structural duplicate: keep the stored winner, report no change.
	if _, dup := s.index[d]; dup {
		return false, nil
	}

	// 4) Store and index the new edge.
	pos := len(s.edges)
	s.edges = append(s.edges, e)
	s.keys = append(s.keys, d)
	s.dead = append(s.dead, false)
	s.index[d] = pos
	s.count++

	// 5) Degree per end occurrence; incidence once per distinct end.
	for _, slot := range slots {
		s.ensureSlot(slot)
		s.degrees[slot]++
		s.total++
		if inc := s.incidence[slot]; len(inc) == 0 || inc[len(inc)-1] != pos {
			s.incidence[slot] = append(inc, pos)
		}
	}

	return true, nil
}

// Contains reports whether a structural equal of e is in the set.
// Never interns: an edge whose ends are absent cannot be present.
// Complexity: O(a log a).
func (s *EdgeSet[N]) Contains(e Edge[N]) bool {
	_, ok := s.lookup(e)

	return ok
}

// lookup resolves e to its live position, when present.
func (s *EdgeSet[N]) lookup(e Edge[N]) (int, bool) {
	if e == nil {
		return 0, false
	}
	ends := e.Ends()
	if len(ends) == 0 {
		return 0, false
	}
	slots := make([]int, len(ends))
	for i, v := range ends {
		slot, ok := s.nodes.slot(v)
		if !ok {
			return 0, false
		}
		slots[i] = slot
	}
	pos, ok := s.index[identityDigest(e.Ordered(), slots, extendedKeyOf(e))]

	return pos, ok
}

// Len returns the number of live edges. Complexity: O(1).
func (s *EdgeSet[N]) Len() int {
	return s.count
}

// Values returns the live edges in insertion order as a fresh slice.
// Complexity: O(stored positions).
func (s *EdgeSet[N]) Values() []Edge[N] {
	out := make([]Edge[N], 0, s.count)
	for pos, e := range s.edges {
		if !s.dead[pos] {
			out = append(out, e)
		}
	}

	return out
}

// degreeOf returns the multiplicity-counted degree of v (0 if absent).
func (s *EdgeSet[N]) degreeOf(v N) int {
	slot, ok := s.nodes.slot(v)
	if !ok || slot >= len(s.degrees) {
		return 0
	}

	return s.degrees[slot]
}

// totalDegree returns the sum of live-edge arities.
func (s *EdgeSet[N]) totalDegree() int {
	return s.total
}

// incidentTo returns the live edges incident to v in insertion order.
func (s *EdgeSet[N]) incidentTo(v N) []Edge[N] {
	slot, ok := s.nodes.slot(v)
	if !ok || slot >= len(s.incidence) {
		return nil
	}
	positions := s.incidence[slot]
	out := make([]Edge[N], 0, len(positions))
	for _, pos := range positions {
		out = append(out, s.edges[pos])
	}

	return out
}

// neighborsOf returns the distinct co-ends of v across its incident edges,
// in first-seen order, excluding v itself.
func (s *EdgeSet[N]) neighborsOf(v N) []N {
	slot, ok := s.nodes.slot(v)
	if !ok || slot >= len(s.incidence) {
		return nil
	}
	seen := make(map[N]struct{})
	var out []N
	for _, pos := range s.incidence[slot] {
		for _, end := range s.edges[pos].Ends() {
			if end == v {
				continue
			}
			if _, dup := seen[end]; dup {
				continue
			}
			seen[end] = struct{}{}
			out = append(out, end)
		}
	}

	return out
}

// remove deletes the structural equal of e and reports whether the set
// changed. Ends remain in the node set. Complexity: O(a log a + deg).
func (s *EdgeSet[N]) remove(e Edge[N]) bool {
	pos, ok := s.lookup(e)
	if !ok {
		return false
	}
	s.removeAt(pos)

	return true
}

// dropIncident removes every edge incident to v (the node-removal cascade).
func (s *EdgeSet[N]) dropIncident(v N) {
	slot, ok := s.nodes.slot(v)
	if !ok || slot >= len(s.incidence) {
		return
	}
	positions := make([]int, len(s.incidence[slot]))
	copy(positions, s.incidence[slot])
	for _, pos := range positions {
		s.removeAt(pos)
	}
}

// removeAt tombstones the edge at pos and unwinds its bookkeeping.
func (s *EdgeSet[N]) removeAt(pos int) {
	e := s.edges[pos]
	delete(s.index, s.keys[pos])
	s.dead[pos] = true
	s.count--

	prev := -1
	for _, end := range e.Ends() {
		slot, _ := s.nodes.slot(end)
		s.degrees[slot]--
		s.total--
		if slot == prev {
			continue // multiplicity repeats share one incidence entry
		}
		prev = slot
		s.incidence[slot] = cutPosition(s.incidence[slot], pos)
	}
}

// cutPosition removes the first occurrence of pos, preserving order.
func cutPosition(inc []int, pos int) []int {
	for i, p := range inc {
		if p == pos {
			return append(inc[:i], inc[i+1:]...)
		}
	}

	return inc
}

// ensureSlot grows per-slot bookkeeping up to and including slot.
func (s *EdgeSet[N]) ensureSlot(slot int) {
	for len(s.degrees) <= slot {
		s.degrees = append(s.degrees, 0)
		s.incidence = append(s.incidence, nil)
	}
}

// grow reserves capacity for hint additional edges. A pure performance
// hint with no observable effect.
func (s *EdgeSet[N]) grow(hint int) {
	if hint <= 0 {
		return
	}
	if free := cap(s.edges) - len(s.edges); free < hint {
		edges := make([]Edge[N], len(s.edges), len(s.edges)+hint)
		copy(edges, s.edges)
		s.edges = edges
		keys := make([]digest, len(s.keys), len(s.keys)+hint)
		copy(keys, s.keys)
		s.keys = keys
		dead := make([]bool, len(s.dead), len(s.dead)+hint)
		copy(dead, s.dead)
		s.dead = dead
	}
}

// clone returns a deep copy bound to the given (already cloned) NodeSet.
func (s *EdgeSet[N]) clone(nodes *NodeSet[N]) *EdgeSet[N] {
	out := &EdgeSet[N]{
		nodes: nodes,
		index: make(map[digest]int, len(s.index)),
		edges: make([]Edge[N], len(s.edges)),
		keys:  make([]digest, len(s.keys)),
		dead:  make([]bool, len(s.dead)),
		count: s.count,

		incidence: make([][]int, len(s.incidence)),
		degrees:   make([]int, len(s.degrees)),
		total:     s.total,
	}
	for d, pos := range s.index {
		out.index[d] = pos
	}
	copy(out.edges, s.edges)
	copy(out.keys, s.keys)
	copy(out.dead, s.dead)
	copy(out.degrees, s.degrees)
	for slot, inc := range s.incidence {
		if len(inc) == 0 {
			continue
		}
		cp := make([]int, len(inc))
		copy(cp, inc)
		out.incidence[slot] = cp
	}

	return out
}
