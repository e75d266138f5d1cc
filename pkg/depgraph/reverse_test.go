package depgraph

import (
	"context"
	"reflect"
	"testing"
)

func graphFrom(adj map[string][]string) Graph {
	g := Graph{}
	for node, deps := range adj {
		g.ensure(node)
		for _, dep := range deps {
			g.Add(node, dep)
		}
	}
	return g
}

func TestReverse(t *testing.T) {
	g := graphFrom(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {},
	})

	rev := Reverse(g)

	tests := []struct {
		node string
		want []string
	}{
		{"A", nil},
		{"B", []string{"A"}},
		{"C", []string{"A", "B"}},
	}
	for _, tt := range tests {
		got := rev.Deps(tt.node)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Reverse()[%s] = %v, want %v", tt.node, got, tt.want)
		}
	}

	// Nodes with no dependents still have entries.
	if _, ok := rev["A"]; !ok {
		t.Error("node A missing from reversed graph")
	}
}

func TestDependents_Diamond(t *testing.T) {
	g := graphFrom(map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {},
	})

	deps, err := Dependents(context.Background(), g, "D")
	if err != nil {
		t.Fatalf("Dependents() failed: %v", err)
	}

	want := []string{"A", "B", "C"}
	if got := deps.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Dependents(D) = %v, want %v", got, want)
	}
}

func TestDependents_ExcludesRoot(t *testing.T) {
	g := graphFrom(map[string][]string{
		"A": {"B"},
		"B": {},
	})

	deps, err := Dependents(context.Background(), g, "B")
	if err != nil {
		t.Fatalf("Dependents() failed: %v", err)
	}
	if deps.Has("B") {
		t.Error("Dependents() contains the root itself")
	}
}

func TestDependents_CyclicGraphTerminates(t *testing.T) {
	g := graphFrom(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})

	deps, err := Dependents(context.Background(), g, "A")
	if err != nil {
		t.Fatalf("Dependents() failed: %v", err)
	}
	if got := deps.Sorted(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Dependents(A) = %v, want [B]", got)
	}
}

func TestDependents_NoDependents(t *testing.T) {
	g := graphFrom(map[string][]string{
		"A": {"B"},
		"B": {},
	})

	deps, err := Dependents(context.Background(), g, "A")
	if err != nil {
		t.Fatalf("Dependents() failed: %v", err)
	}
	if len(deps) != 0 {
		t.Errorf("Dependents(A) = %v, want none", deps.Sorted())
	}
}
