// Package engine implements the constraint-propagation Sudoku solver
// described in spec.md: a signed-integer "color" algebra over candidate
// placements, an exclusion-rule index, a true=>false implication graph,
// a Tarjan SCC merger, and a two-level contradiction search. It proves a
// puzzle by deriving contradictions, never by backtracking search.
package engine

import (
	"fmt"
	"strings"
)

// Grid owns all per-puzzle solving state. A Grid produced by NewBase has
// its exclusion rules populated but no clues asserted; Clone gives an
// independent deep copy so a caller can build one base grid and reuse it
// across many puzzles (spec.md section 5).
type Grid struct {
	validatedNodes []NodeId
	validatedSize  int

	colorToNodes colorVecMap[NodeId]
	colorToRules colorVecMap[int]
	rules        [][]Color

	toValidate []Color
	toMerge    []Color

	trueToFalse colorVecMap[Color]

	// constraintCount tracks, per constraint kind (cell, row*cand,
	// col*cand, box*cand), how many times a node in that slot has been
	// solved/removed. Only populated and consulted when CheckGrid is
	// true; see checkgrid.go.
	constraintCount [4][]int
}

// constraint kinds, matching kRowCol/kRowCand/kColCand/kBoxCand in the
// C original's CHECK_GRID enum.
const (
	constraintCell = 0
	constraintRow  = 1
	constraintCol  = 2
	constraintBox  = 3
)

// NewBase builds a Grid with its NN*4 exclusion rules populated and one
// singleton color per node, but no clues asserted. This is the "base
// grid" of spec.md section 5: build it once, Clone it per puzzle.
func NewBase() *Grid {
	g := &Grid{
		validatedNodes: make([]NodeId, NN),
		colorToNodes:   newColorVecMap[NodeId](),
		colorToRules:   newColorVecMap[int](),
		trueToFalse:    newColorVecMap[Color](),
		rules:          make([][]Color, numRules),
	}
	for i := range g.validatedNodes {
		g.validatedNodes[i] = naNode
	}
	if CheckGrid {
		for k := range g.constraintCount {
			g.constraintCount[k] = make([]int, NN)
		}
	}
	g.populateRules()
	return g
}

// populateRules seeds color_to_nodes with NN*N singleton colors and
// fills the 4*NN exclusion rules as four contiguous blocks of NN rules,
// in cell/column/row/box order, so rule ids stay stable.
func (g *Grid) populateRules() {
	for i := 0; i < numVars; i++ {
		g.colorToNodes.insertOne(Color(i+1), NodeId(i))
	}

	ruleIdx := 0
	for u := 0; u < numVars; u += N {
		for i := 0; i < N; i++ {
			g.rules[ruleIdx] = append(g.rules[ruleIdx], Color(u+i+1))
		}
		ruleIdx++
	}
	for cand := 0; cand < N; cand++ {
		for col := 0; col < N; col++ {
			for row := 0; row < N; row++ {
				u := (row*N + col) * N
				g.rules[ruleIdx] = append(g.rules[ruleIdx], Color(u+cand+1))
			}
			ruleIdx++
		}
	}
	for cand := 0; cand < N; cand++ {
		for row := 0; row < N; row++ {
			for col := 0; col < N; col++ {
				u := (row*N + col) * N
				g.rules[ruleIdx] = append(g.rules[ruleIdx], Color(u+cand+1))
			}
			ruleIdx++
		}
	}
	for cand := 0; cand < N; cand++ {
		for box := 0; box < N; box++ {
			colBase := (box % D) * D
			rowBase := (box / D) * D
			for i := 0; i < N; i++ {
				col := colBase + i%D
				row := rowBase + i/D
				u := (row*N + col) * N
				g.rules[ruleIdx] = append(g.rules[ruleIdx], Color(u+cand+1))
			}
			ruleIdx++
		}
	}

	for idx, rule := range g.rules {
		for _, c := range rule {
			g.colorToRules.insertOne(c, idx)
		}
	}
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		validatedNodes: append([]NodeId(nil), g.validatedNodes...),
		validatedSize:  g.validatedSize,
		colorToNodes:   g.colorToNodes.clone(),
		colorToRules:   g.colorToRules.clone(),
		trueToFalse:    g.trueToFalse.clone(),
		toValidate:     append([]Color(nil), g.toValidate...),
		toMerge:        append([]Color(nil), g.toMerge...),
		rules:          make([][]Color, len(g.rules)),
	}
	for i, r := range g.rules {
		if len(r) > 0 {
			out.rules[i] = append([]Color(nil), r...)
		}
	}
	if CheckGrid {
		for k := range g.constraintCount {
			out.constraintCount[k] = append([]int(nil), g.constraintCount[k]...)
		}
	}
	return out
}

// Populate decodes a puzzle string of length NN and enqueues each clue
// for validation. For D=3, the alphabet is '1'-'9'; for D=4, '0'-'9',
// 'A'-'F', 'a'-'f'. Any other character means "empty". Returns
// ErrMalformedInput if the string has the wrong length, or (for D=3)
// fewer than 17 recognized clues, the known uniqueness lower bound.
func (g *Grid) Populate(puzzle string) error {
	if len(puzzle) != NN {
		return fmt.Errorf("%w: want length %d, got %d", ErrMalformedInput, NN, len(puzzle))
	}

	clues := 0
	for i := 0; i < NN; i++ {
		n := charToCand(puzzle[i])
		if n < 0 {
			continue
		}
		clues++
		u := i*N + n
		if err := g.validateEnqueue(Color(u + 1)); err != nil {
			return err
		}
	}

	if D == 3 && clues < 17 {
		return fmt.Errorf("%w: only %d clues, need at least 17", ErrMalformedInput, clues)
	}

	return nil
}

// ValidatedSize reports how many cells currently have a placed value.
func (g *Grid) ValidatedSize() int {
	return g.validatedSize
}

// IsSolved reports whether every cell has a placed value.
func (g *Grid) IsSolved() bool {
	return g.validatedSize == NN
}

// GridString renders the validated cells as an NN-character string,
// using the same alphabet as Populate and '.' for unsolved cells.
func (g *Grid) GridString() string {
	var b strings.Builder
	b.Grow(NN)
	for i := 0; i < NN; i++ {
		u := g.validatedNodes[i]
		if u == naNode {
			b.WriteByte('.')
		} else {
			b.WriteByte(candToChar(int(u) % N))
		}
	}
	return b.String()
}

// CandidatesString renders one character per (cell, candidate) slot:
// the candidate's character if it is still alive, '.' if eliminated.
// Validated cells overwrite their own slot with the placed value.
func (g *Grid) CandidatesString() string {
	buf := make([]byte, numVars)
	for i := range buf {
		buf[i] = '.'
	}

	for _, c := range g.colorToNodes.keys() {
		for _, u := range g.colorToNodes.get(c) {
			buf[int(u)] = candToChar(int(u) % N)
		}
	}
	for i := 0; i < NN; i++ {
		u := g.validatedNodes[i]
		if u != naNode {
			buf[int(u)] = candToChar(int(u) % N)
		}
	}

	return string(buf)
}

// constraintIndices returns, for a node, the index into each of the
// four constraint-kind counters (cell, row+candidate, column+candidate,
// box+candidate) that node occupies. Only meaningful when CheckGrid is
// enabled.
func constraintIndices(node NodeId) [4]int {
	cand := node.cand()
	rowCol := node.cell()
	row, col := rowCol/N, rowCol%N
	box := (row/D)*D + col/D
	return [4]int{
		constraintCell: rowCol,
		constraintRow:  row*N + cand,
		constraintCol:  col*N + cand,
		constraintBox:  box*N + cand,
	}
}

func charToCand(c byte) int {
	switch {
	case D == 3:
		if c >= '1' && c <= '9' {
			return int(c - '1')
		}
		return -1
	case D == 4:
		switch {
		case c >= '0' && c <= '9':
			return int(c - '0')
		case c >= 'A' && c <= 'F':
			return int(c-'A') + 10
		case c >= 'a' && c <= 'f':
			return int(c-'a') + 10
		}
		return -1
	default:
		return -1
	}
}

func candToChar(n int) byte {
	switch {
	case D == 3:
		return byte(n) + '1'
	case D == 4:
		if n < 10 {
			return byte('0' + n)
		}
		return byte('A' - 10 + n)
	default:
		return '?'
	}
}
