package engine

import "errors"

// ErrMalformedInput is returned by Populate when the puzzle string has
// the wrong length or too few clues to satisfy the known D=3 uniqueness
// lower bound (spec.md section 4.2).
var ErrMalformedInput = errors.New("engine: malformed puzzle string")

// ErrInvalidGrid is returned, only when built with -tags checkgrid, when
// an invariant described in spec.md section 7 is violated: a cell
// assigned two different nodes, a color merged with its own reverse, or
// an exclusion rule driven empty mid-validation.
var ErrInvalidGrid = errors.New("engine: invalid grid state")

// errLevel1Precondition is the internal error raised by the level-2 cycle
// search when its own level-1 pass (which should already have resolved
// any contradiction) reports one anyway. Spec.md section 9, open question
// 2: treated as a hard precondition violation, not a normal solver
// outcome.
var errLevel1Precondition = errors.New("engine: level 1 cycle check should have run before level 2")
