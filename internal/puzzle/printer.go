package puzzle

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/kpitt/colorchain/internal/engine"
)

var (
	lockedValueColor = color.New(color.Bold, color.FgHiWhite)
	fixedValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	candidateColor   = color.HiBlackString
)

// Display pairs a solved (or partially solved) Grid with the original
// clue string, so printing can tell a given clue from a cell the engine
// placed itself — the same distinction kpitt-sudoku's Cell.IsGiven makes,
// generalized to the N x N, D x D-box grid engine.Grid actually solves.
type Display struct {
	Grid  *engine.Grid
	Given string
}

func NewDisplay(g *engine.Grid, given string) *Display {
	return &Display{Grid: g, Given: given}
}

// isGiven reports whether the clue string recognizes a clue character at
// cell index i, using the same alphabet as engine.Grid.Populate.
func (d *Display) isGiven(i int) bool {
	if i >= len(d.Given) {
		return false
	}
	c := d.Given[i]
	if engine.D == 3 {
		return c >= '1' && c <= '9'
	}
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// Print renders the grid as box-drawing art: one box of N/D x N/D cells
// per side, each cell either showing its solved value or a D x D block
// of surviving candidates. Grounded on kpitt-sudoku's printer.go, with
// the border art and cell width derived from engine.N/engine.D instead
// of hardcoded for a 9x9 board.
func (d *Display) Print() {
	n, boxD := engine.N, engine.D
	cellWidth := 2*boxD - 1

	top, bottom, minorDiv, majorDiv := buildBorders(n, boxD, cellWidth)
	color.HiWhite(top)

	solved := d.Grid.GridString()
	cands := d.Grid.CandidatesString()

	for row := 0; row < n; row++ {
		if row != 0 {
			if row%boxD == 0 {
				color.HiWhite(majorDiv)
			} else {
				color.HiWhite(minorDiv)
			}
		}
		for sub := 0; sub < boxD; sub++ {
			printCandidateRow(n, boxD, cellWidth, row, sub, solved, cands, d)
		}
	}
	color.HiWhite(bottom)
}

func printCandidateRow(n, boxD, cellWidth, row, sub int, solved, cands string, d *Display) {
	for col := 0; col < n; col++ {
		if col != 0 && col%boxD == 0 {
			fmt.Print(color.HiWhiteString("║"))
		} else {
			fmt.Print(color.HiWhiteString("│"))
		}

		cellIdx := row*n + col
		if solved[cellIdx] != '.' {
			cellColor := lockedValueColor
			if d.isGiven(cellIdx) {
				cellColor = fixedValueColor
			}
			if sub == boxD/2 {
				cellColor.Print(centered(string(solved[cellIdx]), cellWidth))
			} else {
				cellColor.Print(strings.Repeat(" ", cellWidth))
			}
			continue
		}

		base := sub * boxD
		slot := cands[cellIdx*n : cellIdx*n+n]
		var b strings.Builder
		for k := 0; k < boxD; k++ {
			if k > 0 {
				b.WriteByte(' ')
			}
			cand := base + k
			if cand < n && slot[cand] != '.' {
				b.WriteString(candidateColor("%c", slot[cand]))
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Print(b.String())
	}
	color.HiWhite("│")
}

// PrintUnsolvedCounts reports, per grid character, how many of its N
// required placements are still missing, plus the overall unsolved cell
// count. Grounded on kpitt-sudoku's Puzzle.PrintUnsolvedCounts,
// generalized from a fixed 1-9 digit range to the grid's actual
// alphabet.
func (d *Display) PrintUnsolvedCounts() {
	n := engine.N
	solved := d.Grid.GridString()

	placed := make(map[byte]int, n)
	unsolvedCells := 0
	for i := 0; i < len(solved); i++ {
		if solved[i] == '.' {
			unsolvedCells++
		} else {
			placed[solved[i]]++
		}
	}

	color.HiWhite("Unsolved:")
	for i := 0; i < n; i++ {
		ch := candChar(i)
		remaining := n - placed[ch]
		if remaining > 0 {
			fmt.Printf("%c: %d remaining\n", ch, remaining)
		} else {
			fmt.Printf("%c: complete\n", ch)
		}
	}
	fmt.Printf("\n%s %d\n", color.HiWhiteString("Total Unsolved Cells:"), unsolvedCells)
}

// candChar renders the i-th alphabet character (0-indexed), matching
// engine's internal candToChar without needing it exported.
func candChar(i int) byte {
	if engine.D == 3 {
		return byte(i) + '1'
	}
	if i < 10 {
		return byte('0' + i)
	}
	return byte('A' - 10 + i)
}

func centered(s string, width int) string {
	pad := width - len(s)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// buildBorders constructs the top, bottom, and two divider rows for an
// n x n grid made of boxD x boxD boxes, each cell cellWidth characters
// wide, using the same box-drawing glyph set as kpitt-sudoku's printer
// (light lines within a box, heavy lines at box boundaries).
func buildBorders(n, boxD, cellWidth int) (top, bottom, minorDiv, majorDiv string) {
	seg := strings.Repeat("─", cellWidth)
	hSeg := strings.Repeat("═", cellWidth)

	build := func(left, right, teeMinor, teeMajor, segment string) string {
		var b strings.Builder
		b.WriteString(left)
		for i := 0; i < n; i++ {
			b.WriteString(segment)
			switch {
			case i == n-1:
				b.WriteString(right)
			case (i+1)%boxD == 0:
				b.WriteString(teeMajor)
			default:
				b.WriteString(teeMinor)
			}
		}
		return b.String()
	}

	top = build("┌", "┐", "┬", "╥", seg)
	bottom = build("└", "┘", "┴", "╨", seg)
	minorDiv = build("├", "┤", "┼", "╫", seg)
	majorDiv = build("╞", "╡", "╪", "╬", hSeg)
	return
}
