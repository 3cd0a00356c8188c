// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order, plus
// the component queries (Components, Connected) built on top of it.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start
//     node. Works for any node type N and any edge kind: the neighbor
//     relation is "co-end of an incident edge", so hyperedges connect all
//     their ends pairwise and orientation is ignored.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node to its distance (edges) from start
//   - Parent: map from node to its predecessor in the BFS tree
//   - Supports functional hooks (OnEnqueue, OnDequeue, OnVisit),
//     neighbor filtering, a depth limit, and context cancellation.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Decide connectivity and enumerate components, which is how randomly
//     generated graphs are verified.
//
// Determinism
//
//	NeighborsOf lists co-ends in first-seen (insertion) order and BFS
//	enqueues them in that order, so the visit sequence is reproducible
//	for a given graph construction history.
//
// Complexity (V = nodes, E = sum of edge arities)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, maps, and visited set
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation,
//	    // a cancelled context, or a wrapped OnVisit error
//	}
//	path, err := res.PathTo(dest)
//
// Options
//
//   - WithContext(ctx):       cancellation for long walks.
//   - WithMaxDepth(d):        stop exploring beyond depth d (> 0); 0 = no limit.
//   - WithFilterNeighbor(fn): skip steps for which fn(curr, next) == false.
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): stage hooks;
//     an OnVisit error aborts the walk.
//
// Connectivity is taken in the weak sense throughout: a directed edge
// joins its ends for component purposes regardless of orientation.
package bfs
