package engine

// N is the side length of the grid, NN the number of cells, and
// numVars the number of (cell, candidate) nodes. These mirror the C
// original's N/NN enum in consts.h.
const (
	N       = D * D
	NN      = N * N
	numVars = N * NN

	// colorUniverse is the number of index slots needed for every signed
	// color value, used to size every dense array keyed by color:
	// colorToIndex folds a signed color into [0, colorUniverse).
	colorUniverse = 2*numVars + 1

	// numRules is the total exclusion-rule count: one block of NN rules
	// each for cell, column, row, and box.
	numRules = 4 * NN

	// naNode is the sentinel for "no node placed at this cell yet",
	// matching the C original's NA (-1) used as memset(0xFF) fill value.
	naNode = -1
)
