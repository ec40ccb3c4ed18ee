package engine

import "testing"

func TestBuildTrueToFalseIsSymmetric(t *testing.T) {
	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g := NewBase()
	if err := g.Populate(puzzle); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if err := g.validatePurge(); err != nil {
		t.Fatalf("validatePurge failed: %v", err)
	}

	g.buildTrueToFalse()

	for _, x := range g.trueToFalse.keys() {
		for _, y := range g.trueToFalse.get(x) {
			found := false
			if g.trueToFalse.count(y) != 0 {
				for _, back := range g.trueToFalse.get(y) {
					if back == x {
						found = true
						break
					}
				}
			}
			if !found {
				t.Fatalf("trueToFalse is not symmetric: %d -> %d but not %d -> %d", x, y, y, x)
			}
		}
	}
}

func TestMergeEnqueueDedupsAbsolutePairs(t *testing.T) {
	g := NewBase()
	if err := g.mergeEnqueue(3, -7); err != nil {
		t.Fatalf("mergeEnqueue failed: %v", err)
	}
	before := len(g.toMerge)
	if err := g.mergeEnqueue(-7, 3); err != nil {
		t.Fatalf("mergeEnqueue failed: %v", err)
	}
	if len(g.toMerge) != before {
		t.Fatalf("mergeEnqueue should not re-queue an equivalent pair regardless of order/sign")
	}
}

func TestMergeEnqueueSameColorNoop(t *testing.T) {
	g := NewBase()
	if err := g.mergeEnqueue(5, 5); err != nil {
		t.Fatalf("mergeEnqueue(5, 5) failed: %v", err)
	}
	if len(g.toMerge) != 0 {
		t.Fatalf("merging a color with itself should be a no-op, got queue %v", g.toMerge)
	}
}
