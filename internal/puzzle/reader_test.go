package puzzle

import (
	"strings"
	"testing"
)

func TestReadPuzzlesSplitsOnWhitespace(t *testing.T) {
	input := "111 222\n333\t444\n\n555"
	got, err := ReadPuzzles(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPuzzles failed: %v", err)
	}
	want := []string{"111", "222", "333", "444", "555"}
	if len(got) != len(want) {
		t.Fatalf("ReadPuzzles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadPuzzlesEmptyInput(t *testing.T) {
	got, err := ReadPuzzles(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadPuzzles failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadPuzzles(\"\") = %v, want empty", got)
	}
}
