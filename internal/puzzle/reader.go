// Package puzzle is the ambient layer around internal/engine: reading
// batches of puzzle tokens from a stream and rendering a Grid back out
// as colorized box-drawing art, the way kpitt-sudoku's internal/puzzle
// renders a Board. Unlike the teacher's single 9-line board reader, this
// reads spec.md section 6's format: one puzzle per whitespace-delimited
// token, any number of tokens per stream.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
)

// ReadPuzzles scans r for whitespace-delimited tokens and returns them
// in order. It does not validate token length or alphabet — that is
// engine.Grid.Populate's job, so a malformed token surfaces as a
// per-puzzle error the caller can skip past rather than aborting the
// whole batch.
func ReadPuzzles(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var puzzles []string
	for scanner.Scan() {
		puzzles = append(puzzles, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return puzzles, nil
}
