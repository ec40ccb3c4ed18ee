package engine

// vertexMap is a dense (color, polarity) -> int store, used as a
// "visited" / "index" / "low-link" table by the SCC merger and cycle
// search. A zero value means absent; values are assigned starting at 1,
// matching the C original's VertexMap, which also reserves 0 as the
// empty flag.
//
// Spec.md section 9 is explicit that this bounded-universe, hot-loop
// structure should be a fixed array rather than a general hash map; two
// parallel slices keyed by polarity stand in for the C original's
// store[2][2*N*NN+1].
type vertexMap struct {
	store [2][]int
}

func newVertexMap() vertexMap {
	return vertexMap{store: [2][]int{
		make([]int, colorUniverse),
		make([]int, colorUniverse),
	}}
}

func (m *vertexMap) clear() {
	clear(m.store[0])
	clear(m.store[1])
}

func (m *vertexMap) get(v Vertex) int {
	return m.store[vertexPolarityIndex(v)][colorToIndex(v.Color)]
}

func (m *vertexMap) count(v Vertex) int {
	if m.get(v) != 0 {
		return 1
	}
	return 0
}

// assign records value for v. value must be nonzero: 0 is the empty
// flag, matching vmap_assign's assertion in the C original.
func (m *vertexMap) assign(v Vertex, value int) {
	m.store[vertexPolarityIndex(v)][colorToIndex(v.Color)] = value
}

// clone returns an independent deep copy, used by the level-2 cycle
// search's snapshot/restore pattern (spec.md section 5).
func (m *vertexMap) clone() vertexMap {
	out := newVertexMap()
	copy(out.store[0], m.store[0])
	copy(out.store[1], m.store[1])
	return out
}
