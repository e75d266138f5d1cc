package depgraph

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubProvider resolves neighbors from a static map, counting calls per name.
type stubProvider struct {
	deps  map[string][]string
	calls map[string]int
	fail  string // name whose resolution fails, if non-empty
}

func newStub(deps map[string][]string) *stubProvider {
	return &stubProvider{deps: deps, calls: map[string]int{}}
}

var errStub = errors.New("stub failure")

func (p *stubProvider) Neighbors(_ context.Context, name string) ([]string, error) {
	p.calls[name]++
	if p.fail != "" && name == p.fail {
		return nil, errStub
	}
	return p.deps[name], nil
}

func TestBuild_AcyclicClosure(t *testing.T) {
	p := newStub(map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"E"},
	})

	g, revisits, err := Build(context.Background(), p, "A")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []string{"A", "B", "C", "D", "E"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if len(revisits) != 0 {
		t.Errorf("revisits = %v, want none", revisits.Sorted())
	}

	// Leaves reached only as dependencies still have entries.
	for _, leaf := range []string{"D", "E"} {
		if _, ok := g[leaf]; !ok {
			t.Errorf("leaf %q missing from graph keys", leaf)
		}
		if len(g[leaf]) != 0 {
			t.Errorf("leaf %q has deps %v, want none", leaf, g.Deps(leaf))
		}
	}
}

func TestBuild_TriangleHasNoRevisits(t *testing.T) {
	// C is both a direct dependency of the root and of its sibling B. B's
	// edge into C lands while C sits unvisited in the same frontier, so it
	// is not a revisit.
	p := newStub(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {},
	})

	g, revisits, err := Build(context.Background(), p, "A")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(revisits) != 0 {
		t.Errorf("revisits = %v, want none", revisits.Sorted())
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Nodes() = %v, want [A B C]", got)
	}
	if p.calls["C"] != 1 {
		t.Errorf("C resolved %d times, want 1", p.calls["C"])
	}
}

func TestBuild_DiamondRecordsSecondEdge(t *testing.T) {
	p := newStub(map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
	})

	g, revisits, err := Build(context.Background(), p, "A")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// B precedes C in the frontier, so C's edge into D is discovered second.
	want := []Edge{{From: "C", To: "D"}}
	if got := revisits.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("revisits = %v, want %v", got, want)
	}

	if deps := g.Deps("C"); !reflect.DeepEqual(deps, []string{"D"}) {
		t.Errorf("Deps(C) = %v, want [D]", deps)
	}
}

func TestBuild_CycleTerminates(t *testing.T) {
	p := newStub(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})

	g, revisits, err := Build(context.Background(), p, "A")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []Edge{{From: "B", To: "A"}}
	if got := revisits.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("revisits = %v, want %v", got, want)
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Nodes() = %v, want [A B]", got)
	}
}

func TestBuild_SelfDependency(t *testing.T) {
	p := newStub(map[string][]string{
		"A": {"A"},
	})

	g, revisits, err := Build(context.Background(), p, "A")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if !g["A"].Has("A") {
		t.Error("self edge missing from graph")
	}
	want := []Edge{{From: "A", To: "A"}}
	if got := revisits.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("revisits = %v, want %v", got, want)
	}
}

func TestBuild_EmptyRoots(t *testing.T) {
	g, revisits, err := Build(context.Background(), newStub(nil))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(g) != 0 {
		t.Errorf("graph = %v, want empty", g)
	}
	if len(revisits) != 0 {
		t.Errorf("revisits = %v, want empty", revisits.Sorted())
	}
}

func TestBuild_DuplicateRoots(t *testing.T) {
	p := newStub(map[string][]string{"A": {"B"}})

	g, _, err := Build(context.Background(), p, "A", "A")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if p.calls["A"] != 1 {
		t.Errorf("A resolved %d times, want 1", p.calls["A"])
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Nodes() = %v, want [A B]", got)
	}
}

func TestBuild_EachNodeResolvedOnce(t *testing.T) {
	p := newStub(map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {},
	})

	if _, _, err := Build(context.Background(), p, "A"); err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	for name, n := range p.calls {
		if n != 1 {
			t.Errorf("%s resolved %d times, want 1", name, n)
		}
	}
}

func TestBuild_ProviderErrorAborts(t *testing.T) {
	p := newStub(map[string][]string{
		"A": {"B"},
		"B": {"C"},
	})
	p.fail = "B"

	g, revisits, err := Build(context.Background(), p, "A")
	if !errors.Is(err, errStub) {
		t.Fatalf("Build() error = %v, want %v", err, errStub)
	}
	if g != nil || revisits != nil {
		t.Error("Build() returned a partial graph on failure")
	}
}

func TestEdgeSet_Sorted(t *testing.T) {
	s := EdgeSet{}
	s.Add(Edge{From: "B", To: "A"})
	s.Add(Edge{From: "A", To: "C"})
	s.Add(Edge{From: "A", To: "B"})

	want := []Edge{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "A"}}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}
