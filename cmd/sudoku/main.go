// Command sudoku solves one or more Sudoku puzzles read from standard
// input by constraint propagation, never by backtracking search.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/colorchain/internal/engine"
	"github.com/kpitt/colorchain/internal/puzzle"
)

func main() {
	if isStdinTTY() {
		fmt.Printf("Enter one or more puzzles as whitespace-separated strings of %d characters.\n", engine.NN)
		fmt.Println("Use any character other than a valid clue for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	puzzles, err := puzzle.ReadPuzzles(os.Stdin)
	if err != nil {
		fatal(err)
	}

	base := engine.NewBase()

	start := time.Now()
	attempted, solved := 0, 0

	for _, p := range puzzles {
		g := base.Clone()
		if err := g.Populate(p); err != nil {
			fmt.Fprintf(os.Stderr, "skipping puzzle %q: %v\n", p, err)
			continue
		}
		attempted++

		if _, err := g.Solve(); err != nil {
			fatal(err)
		}

		d := puzzle.NewDisplay(g, p)
		if g.IsSolved() {
			solved++
			color.HiWhite("\nSolution:")
		} else {
			color.HiWhite("\nPartial Solution:")
		}
		d.Print()
		if !g.IsSolved() {
			fmt.Println()
			d.PrintUnsolvedCounts()
		}
	}

	elapsed := time.Since(start)
	if attempted > 1 {
		reportSummary(attempted, solved, elapsed)
	}
}

func reportSummary(attempted, solved int, elapsed time.Duration) {
	pct := 100 * float64(solved) / float64(attempted)
	perPuzzle := elapsed / time.Duration(attempted)
	fmt.Fprintf(os.Stderr, "\nsolved %d / %d %.3f%% time per puzzle %v time total %v\n",
		solved, attempted, pct, perPuzzle, elapsed)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func isStdinTTY() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
