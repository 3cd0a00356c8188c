// Component queries on top of the walker. These are what generated
// graphs are verified with, so they stay allocation-light and need no
// options: plain full-graph sweeps.

package bfs

import "github.com/katalvlaran/grafo/core"

// Components returns the weakly connected components of g, each listed in
// BFS visit order, components ordered by their first node's insertion
// position. A nil or empty graph has no components.
// Complexity: O(V + E).
func Components[N comparable](g *core.Graph[N]) [][]N {
	if g == nil || g.Order() == 0 {
		return nil
	}

	visited := make(map[N]bool, g.Order())
	var comps [][]N
	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}
		comp := sweep(g, start, visited)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether g has at most one weakly connected component.
// The empty graph is connected vacuously; a nil graph counts as empty.
// Complexity: O(V + E), short-circuiting after the first component.
func Connected[N comparable](g *core.Graph[N]) bool {
	if g == nil || g.Order() == 0 {
		return true
	}

	visited := make(map[N]bool, g.Order())
	comp := sweep(g, g.Nodes()[0], visited)

	return len(comp) == g.Order()
}

// sweep runs a bare queue walk from start, marking and collecting every
// reachable node. Shared visited state lets Components resume where the
// previous sweep stopped.
func sweep[N comparable](g *core.Graph[N], start N, visited map[N]bool) []N {
	visited[start] = true
	queue := []N{start}
	order := make([]N, 0, 8)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, nbr := range g.NeighborsOf(cur) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return order
}
