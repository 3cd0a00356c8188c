// SPDX-License-Identifier: MIT

// Degree accounting, neighbor queries, mutate/freeze round-trips, and
// shared-read safety of the graph front-ends.
package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/edge"
)

func TestGraph_DegreeCountsMultiplicity(t *testing.T) {
	loop := edge.NewUndirected("z", "z")
	hyper, err := edge.NewHyper("a", "a", "b")
	require.NoError(t, err)

	g, err := core.From(nil, []core.Edge[string]{loop, hyper})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Degree("z"), "a binary self-loop contributes 2")
	assert.Equal(t, 2, g.Degree("a"), "hyperedge multiplicity counts per occurrence")
	assert.Equal(t, 1, g.Degree("b"))
	assert.Equal(t, 0, g.Degree("missing"))
}

func TestGraph_TotalDegreeIsAritySum(t *testing.T) {
	h, err := edge.NewHyper(1, 2, 3, 4)
	require.NoError(t, err)
	g, err := core.From([]int{9}, []core.Edge[int]{
		edge.NewUndirected(1, 2),
		edge.NewDirected(2, 3),
		h,
	})
	require.NoError(t, err)

	assert.Equal(t, 2+2+4, g.TotalDegree())

	sum := 0
	for _, n := range g.Nodes() {
		sum += g.Degree(n)
	}
	assert.Equal(t, g.TotalDegree(), sum, "TotalDegree equals the degree sum")
}

func TestGraph_NeighborsOf(t *testing.T) {
	tr := edge.NewTriple("s", "p", "o")
	g, err := core.From(nil, []core.Edge[string]{
		edge.NewUndirected("s", "x"),
		tr,
		edge.NewUndirected("s", "s"), // self-loop adds no neighbor
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "p", "o"}, g.NeighborsOf("s"),
		"distinct co-ends, first-seen order, self excluded")
	assert.Equal(t, []string{"s", "o"}, g.NeighborsOf("p"))
	assert.Nil(t, g.NeighborsOf("missing"))
}

func TestGraph_IncidentEdges(t *testing.T) {
	e1 := edge.NewUndirected("a", "b")
	e2 := edge.NewDirected("b", "c")
	g, err := core.From(nil, []core.Edge[string]{e1, e2})
	require.NoError(t, err)

	inc := g.IncidentEdges("b")
	require.Len(t, inc, 2)
	assert.Equal(t, core.Edge[string](e1), inc[0])
	assert.Equal(t, core.Edge[string](e2), inc[1])
	assert.Empty(t, g.IncidentEdges("missing"))
}

func TestMutableGraph_AddRemove(t *testing.T) {
	m := core.EmptyMutable[string]()

	require.True(t, m.AddNode("a"))
	require.False(t, m.AddNode("a"))

	changed, err := m.AddEdge(edge.NewUndirected("a", "b"))
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 2, m.Order())

	// Edge removal keeps the ends.
	require.True(t, m.RemoveEdge(edge.NewUndirected("b", "a")))
	assert.Equal(t, 0, m.GraphSize())
	assert.True(t, m.HasNode("b"), "removing an edge never removes nodes")
	assert.Equal(t, 0, m.Degree("a"))
	assert.False(t, m.RemoveEdge(edge.NewUndirected("a", "b")), "already gone")

	// The same edge can come back after removal.
	changed, err = m.AddEdge(edge.NewUndirected("a", "b"))
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestMutableGraph_RemoveNodeCascades(t *testing.T) {
	h, err := edge.NewHyper("a", "b", "c")
	require.NoError(t, err)
	m, err := core.FromMutable(nil, []core.Edge[string]{
		h,
		edge.NewDirected("a", "d"),
		edge.NewUndirected("c", "d"),
	})
	require.NoError(t, err)

	require.True(t, m.RemoveNode("a"))
	assert.False(t, m.HasNode("a"))
	assert.Equal(t, 1, m.GraphSize(), "both edges touching a are gone")
	assert.True(t, m.HasEdge(edge.NewUndirected("c", "d")))
	assert.Equal(t, 0, m.Degree("b"), "b lost its only incidence")
	assert.True(t, m.HasNode("b"), "co-ends of dropped edges stay")

	assert.False(t, m.RemoveNode("a"), "second removal is a no-op")

	// Re-adding the node does not resurrect dropped edges.
	require.True(t, m.AddNode("a"))
	assert.Equal(t, 0, m.Degree("a"))
	assert.Equal(t, 1, m.GraphSize())

	// And the dropped edge can be inserted afresh.
	changed, err := m.AddEdge(edge.NewDirected("a", "d"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, m.GraphSize())
}

func TestGraph_MutableFreezeIsolation(t *testing.T) {
	g, err := core.From(nil, []core.Edge[int]{edge.NewUndirected(1, 2)})
	require.NoError(t, err)

	m := g.Mutable()
	require.True(t, m.AddNode(3))
	_, err = m.AddEdge(edge.NewUndirected(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Order(), "the immutable source never changes")
	assert.Equal(t, 1, g.GraphSize())
	assert.Equal(t, 3, m.Order())

	frozen := m.Freeze()
	require.True(t, m.RemoveNode(1))
	assert.Equal(t, 3, frozen.Order(), "snapshots are isolated from later edits")
	assert.Equal(t, 2, frozen.GraphSize())
	assert.Equal(t, 2, m.Order())
}

func TestGraph_ConcurrentReaders(t *testing.T) {
	m := core.EmptyMutable[string]()
	for i := 0; i < 64; i++ {
		_, err := m.AddEdge(edge.NewUndirected("hub", fmt.Sprintf("v%d", i)))
		require.NoError(t, err)
	}
	g := m.Freeze()

	var eg errgroup.Group
	for r := 0; r < 32; r++ {
		eg.Go(func() error {
			if got := g.Degree("hub"); got != 64 {
				return fmt.Errorf("Degree(hub) = %d, want 64", got)
			}
			if got := len(g.NeighborsOf("hub")); got != 64 {
				return fmt.Errorf("NeighborsOf(hub) = %d values, want 64", got)
			}
			if got := g.Mutable().Order(); got != 65 {
				return fmt.Errorf("clone Order = %d, want 65", got)
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
