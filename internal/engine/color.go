package engine

// Color is a signed, nonzero integer naming an equivalence class of node
// literals. Its sign is the polarity: a positive color means "this node
// set is placed", the additive inverse means "this node set is excluded".
// Color ranges over [-numVars, numVars], matching spec.md section 3.
type Color int

// NodeId identifies a single (cell, candidate) pair: node = cell*N + cand.
// It ranges over [0, numVars).
type NodeId int

func (n NodeId) cell() int { return int(n) / N }
func (n NodeId) cand() int { return int(n) % N }

// Vertex is a (color, polarity) pair in the doubled implication graph
// used by the SCC merger and the cycle search. True means the color is
// hypothesized/forced true; False means its reverse is forced.
type Vertex struct {
	Color Color
	True  bool
}

// reverse returns the additive inverse of c: the same equivalence class
// asserted with the opposite polarity.
func reverse(c Color) Color {
	return -c
}

// absColor returns the unsigned magnitude of c.
func absColor(c Color) Color {
	if c < 0 {
		return -c
	}
	return c
}

// colorToIndex folds a signed color into a dense, nonnegative index
// suitable for array indexing: c itself if positive, otherwise
// numVars+|c|. This is the color_to_idx contract from spec.md section
// 4.1 — callers must only rely on its determinism under equality, never
// on ordering.
func colorToIndex(c Color) int {
	if c > 0 {
		return int(c)
	}
	return numVars + int(-c)
}

// vertexPolarityIndex folds a Vertex's polarity into the 0/1 slot used
// by vertexMap, matching the C original's Vertex.second (0 = false,
// 1 = true).
func vertexPolarityIndex(v Vertex) int {
	if v.True {
		return 1
	}
	return 0
}
