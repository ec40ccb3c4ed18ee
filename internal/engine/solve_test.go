package engine

import "testing"

func TestSolveIsDeterministic(t *testing.T) {
	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

	g1 := NewBase()
	if err := g1.Populate(puzzle); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	n1, err := g1.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	g2 := NewBase()
	if err := g2.Populate(puzzle); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	n2, err := g2.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if n1 != n2 {
		t.Fatalf("Solve() is not deterministic: got %d and %d on identical input", n1, n2)
	}
	if got1, got2 := g1.GridString(), g2.GridString(); got1 != got2 {
		t.Fatalf("Solve() produced different grids on identical input: %q vs %q", got1, got2)
	}
}

func TestSolveFromBaseReusesRulesAcrossPuzzles(t *testing.T) {
	base := NewBase()
	puzzles := []string{
		"530070000600195000098000060800060003400803001700020006060000280000419005000080079",
		"800000000003600000070090200050007000000045700000100030001000068008500010090000400",
	}

	for _, p := range puzzles {
		g := base.Clone()
		if err := g.Populate(p); err != nil {
			t.Fatalf("Populate(%q) failed: %v", p, err)
		}
		if _, err := g.Solve(); err != nil {
			t.Fatalf("Solve(%q) failed: %v", p, err)
		}
	}

	if base.ValidatedSize() != 0 {
		t.Fatalf("solving clones must never mutate the shared base grid, base ValidatedSize() = %d", base.ValidatedSize())
	}
}
