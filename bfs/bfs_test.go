package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/grafo/bfs"
	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/edge"
)

// path builds an undirected path graph over ids, in order.
func path(t *testing.T, ids ...string) *core.Graph[string] {
	t.Helper()
	edges := make([]core.Edge[string], 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		edges = append(edges, edge.NewUndirected(ids[i], ids[i+1]))
	}
	g, err := core.From(ids, edges)
	if err != nil {
		t.Fatalf("building path graph: %v", err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start node not found
	g := core.Empty[string]()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := path(t, "A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	g := path(t, "A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Error("the start node must not have a Parent entry")
	}
}

// TestBFS_CycleDepths checks layer depths on an undirected 4-cycle.
func TestBFS_CycleDepths(t *testing.T) {
	g, err := core.From(nil, []core.Edge[string]{
		edge.NewUndirected("A", "B"),
		edge.NewUndirected("B", "C"),
		edge.NewUndirected("C", "D"),
		edge.NewUndirected("D", "A"),
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != "A" {
		t.Errorf("first node = %s; want A", res.Order[0])
	}
	layer1 := map[string]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1["B"] || !layer1["D"] {
		t.Errorf("depth-1 layer = %v; want {B,D}", res.Order[1:3])
	}
	if res.Order[3] != "C" {
		t.Errorf("last node = %s; want C", res.Order[3])
	}
	for n, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[n]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", n, got, want)
		}
	}
}

// TestBFS_Disconnected ensures BFS explores only the start component.
func TestBFS_Disconnected(t *testing.T) {
	g, err := core.From(nil, []core.Edge[string]{
		edge.NewUndirected("X", "Y"),
		edge.NewUndirected("P", "Q"),
	})
	if err != nil {
		t.Fatal(err)
	}

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("from X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("from P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies the depth limit and the explicit no-limit zero.
func TestBFS_MaxDepth(t *testing.T) {
	g := path(t, "A", "B", "C")

	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth[string](1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("depth 1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth[string](0)); len(res.Order) != 3 {
		t.Errorf("depth 0 means no limit: got %v", res.Order)
	}
}

// TestBFS_OrientationIgnored: a directed edge still joins its ends.
func TestBFS_OrientationIgnored(t *testing.T) {
	g, err := core.From(nil, []core.Edge[string]{edge.NewDirected("A", "B")})
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "B")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"B", "A"}) {
		t.Errorf("weak traversal from B: got %v; want [B A]", res.Order)
	}
}

// TestBFS_HyperedgeFansOut: one hyperedge connects all its ends pairwise.
func TestBFS_HyperedgeFansOut(t *testing.T) {
	h, err := edge.NewHyper("hub", "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	g, err := core.From(nil, []core.Edge[string]{h})
	if err != nil {
		t.Fatal(err)
	}

	res, err := bfs.BFS(g, "hub")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 4 {
		t.Fatalf("visited %d nodes; want 4", len(res.Order))
	}
	for _, n := range []string{"a", "b", "c"} {
		if res.Depth[n] != 1 {
			t.Errorf("Depth[%s] = %d; want 1", n, res.Depth[n])
		}
	}
}

// TestBFS_FilterNeighbor prunes a branch.
func TestBFS_FilterNeighbor(t *testing.T) {
	g, err := core.From(nil, []core.Edge[string]{
		edge.NewUndirected("A", "B"),
		edge.NewUndirected("A", "skip"),
	})
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "skip"
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("filtered walk: got %v; want [A B]", res.Order)
	}
}

// TestBFS_Hooks exercises all three stages and the abort path.
func TestBFS_Hooks(t *testing.T) {
	g := path(t, "A", "B", "C")

	var enq, deq, vis int
	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(string, int) { enq++ }),
		bfs.WithOnDequeue(func(string, int) { deq++ }),
		bfs.WithOnVisit(func(string, int) error { vis++; return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if enq != 3 || deq != 3 || vis != 3 {
		t.Errorf("hook counts enq=%d deq=%d vis=%d; want 3 each", enq, deq, vis)
	}

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(n string, _ int) error {
		if n == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit abort: want wrapped boom, got %v", err)
	}
}

// TestBFS_ContextCancelled stops the walk up front.
func TestBFS_ContextCancelled(t *testing.T) {
	g := path(t, "A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext[string](ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo reconstructs shortest paths and rejects unreachable ones.
func TestResult_PathTo(t *testing.T) {
	g := path(t, "A", "B", "C", "D")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	p, err := res.PathTo("D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(p, want) {
		t.Errorf("PathTo(D) = %v; want %v", p, want)
	}
	if _, err = res.PathTo("Z"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(Z): want ErrNoPath, got %v", err)
	}
}

// TestComponents enumerates weak components in discovery order.
func TestComponents(t *testing.T) {
	g, err := core.From([]string{"lone"}, []core.Edge[string]{
		edge.NewUndirected("a", "b"),
		edge.NewDirected("c", "d"),
	})
	if err != nil {
		t.Fatal(err)
	}

	comps := bfs.Components(g)
	if len(comps) != 3 {
		t.Fatalf("got %d components; want 3", len(comps))
	}
	if !reflect.DeepEqual(comps[0], []string{"lone"}) {
		t.Errorf("components[0] = %v; want [lone]", comps[0])
	}
	if !reflect.DeepEqual(comps[1], []string{"a", "b"}) {
		t.Errorf("components[1] = %v; want [a b]", comps[1])
	}
	if !reflect.DeepEqual(comps[2], []string{"c", "d"}) {
		t.Errorf("components[2] = %v; want [c d]", comps[2])
	}

	if bfs.Components[string](nil) != nil {
		t.Error("nil graph has no components")
	}
}

// TestConnected covers the vacuous, single, and split cases.
func TestConnected(t *testing.T) {
	if !bfs.Connected(core.Empty[int]()) {
		t.Error("empty graph is connected vacuously")
	}
	if !bfs.Connected[int](nil) {
		t.Error("nil graph counts as empty")
	}

	g := path(t, "a", "b", "c")
	if !bfs.Connected(g) {
		t.Error("path graph must be connected")
	}

	m := g.Mutable()
	m.AddNode("floating")
	if bfs.Connected(m.Freeze()) {
		t.Error("an isolated node splits connectivity")
	}
}
