package engine

import "testing"

func TestReverseIsInvolution(t *testing.T) {
	tests := []Color{1, -1, 42, -42, numVars, -numVars}
	for _, c := range tests {
		if got := reverse(reverse(c)); got != c {
			t.Errorf("reverse(reverse(%d)) = %d, want %d", c, got, c)
		}
		if reverse(c) == c {
			t.Errorf("reverse(%d) = %d, want different value", c, reverse(c))
		}
	}
}

func TestAbsColor(t *testing.T) {
	tests := []struct {
		in   Color
		want Color
	}{
		{5, 5},
		{-5, 5},
		{1, 1},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := absColor(tt.in); got != tt.want {
			t.Errorf("absColor(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestColorToIndexDense(t *testing.T) {
	seen := make(map[int]Color)
	for c := Color(1); c <= Color(numVars); c++ {
		for _, signed := range []Color{c, -c} {
			idx := colorToIndex(signed)
			if idx < 0 || idx >= colorUniverse {
				t.Fatalf("colorToIndex(%d) = %d, out of [0, %d)", signed, idx, colorUniverse)
			}
			if prev, ok := seen[idx]; ok && prev != signed {
				t.Fatalf("colorToIndex collision: %d and %d both map to %d", prev, signed, idx)
			}
			seen[idx] = signed
		}
	}
}

func TestNodeIdCellAndCand(t *testing.T) {
	node := NodeId(5*N + 3)
	if got := node.cell(); got != 5 {
		t.Errorf("cell() = %d, want 5", got)
	}
	if got := node.cand(); got != 3 {
		t.Errorf("cand() = %d, want 3", got)
	}
}
