package puzzle

import (
	"strings"
	"testing"
)

func TestBuildBordersCellCount(t *testing.T) {
	top, bottom, minorDiv, majorDiv := buildBorders(4, 2, 1)

	for name, row := range map[string]string{
		"top": top, "bottom": bottom, "minorDiv": minorDiv, "majorDiv": majorDiv,
	} {
		if n := strings.Count(row, "─") + strings.Count(row, "═"); n != 4 {
			t.Errorf("%s has %d cell segments, want 4: %q", name, n, row)
		}
	}

	if !strings.HasPrefix(top, "┌") || !strings.HasSuffix(top, "┐") {
		t.Errorf("top border corners wrong: %q", top)
	}
	if !strings.Contains(top, "╥") {
		t.Errorf("top border should have one major tee at the box boundary: %q", top)
	}
}

func TestCentered(t *testing.T) {
	got := centered("X", 5)
	if len(got) != 5 || !strings.Contains(got, "X") {
		t.Errorf("centered(%q, 5) = %q", "X", got)
	}
}
