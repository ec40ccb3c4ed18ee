package engine

// sccSearch holds the working state of one Tarjan strongly-connected-
// components pass over the true=>false implication graph. Vertices are
// (color, polarity) pairs: polarity true means "color asserted true",
// false means "color asserted false" (equivalently, its reverse true).
// Grounded on the SCCSearch struct and ss_* helpers in the C original.
type sccSearch struct {
	indices, lowLinks vertexMap
	stackColor        []Color
	stackPolarity     []bool
}

func newSCCSearch() *sccSearch {
	return &sccSearch{
		indices:  newVertexMap(),
		lowLinks: newVertexMap(),
	}
}

// onStack returns the stack position of v, or -1 if it isn't currently
// pushed.
func (ss *sccSearch) onStack(v Vertex) int {
	for idx := len(ss.stackColor) - 1; idx >= 0; idx-- {
		if ss.stackColor[idx] == v.Color && ss.stackPolarity[idx] == v.True {
			return idx
		}
	}
	return -1
}

// mergeCheckSCC runs Tarjan over every (color=true) vertex reachable from
// a node still in play and queues a merge for every pair of colors that
// land in the same strongly connected component: if A true implies B
// true implies ... implies A true, they are all the same fact. Grounded
// on grid_merge_check_SCC.
func (g *Grid) mergeCheckSCC() (int, error) {
	tracef("mergeCheckSCC\n")
	result := 0
	ss := newSCCSearch()

	for _, color := range g.colorToNodes.keys() {
		v := Vertex{Color: color, True: true}
		if ss.indices.count(v) == 0 {
			n, err := g.strongConnect(ss, v, 1)
			if err != nil {
				return 0, err
			}
			result += n
		}
	}

	return result, nil
}

// strongConnect is a direct transcription of ss_strong_connect. Notably
// cur_index is threaded only down the direct recursion chain, not back
// up through sibling calls in the same loop — each freshly-rooted search
// (including every top-level call from mergeCheckSCC) restarts its own
// local ordering from 1. This mirrors the reference implementation
// exactly rather than a textbook globally-numbered Tarjan pass.
func (g *Grid) strongConnect(ss *sccSearch, v Vertex, curIndex int) (int, error) {
	result := 0

	ss.indices.assign(v, curIndex)
	ss.lowLinks.assign(v, curIndex)
	curIndex++

	ss.stackColor = append(ss.stackColor, v.Color)
	ss.stackPolarity = append(ss.stackPolarity, v.True)

	var w Vertex
	w.True = !v.True

	var falseColors []Color
	if v.True && g.trueToFalse.count(v.Color) != 0 {
		falseColors = g.trueToFalse.get(v.Color)
	}

	iend := 0
	if v.True && falseColors != nil {
		iend = len(falseColors)
	}
	for i := -1; i < iend; i++ {
		if i == -1 {
			w.Color = reverse(v.Color)
		} else {
			w.Color = falseColors[i]
		}
		if ss.indices.count(w) == 0 {
			n, err := g.strongConnect(ss, w, curIndex)
			if err != nil {
				return 0, err
			}
			result += n
			if ss.lowLinks.get(w) < ss.lowLinks.get(v) {
				ss.lowLinks.assign(v, ss.lowLinks.get(w))
			}
		} else if ss.onStack(w) != -1 {
			if ss.indices.get(w) < ss.lowLinks.get(v) {
				ss.lowLinks.assign(v, ss.indices.get(w))
			}
		}
	}

	if ss.lowLinks.get(v) == ss.indices.get(v) {
		var colors [2]Color
		cnt := 0
		for {
			n := len(ss.stackColor)
			y := Vertex{Color: ss.stackColor[n-1], True: ss.stackPolarity[n-1]}
			ss.stackColor = ss.stackColor[:n-1]
			ss.stackPolarity = ss.stackPolarity[:n-1]

			asserted := y.Color
			if !y.True {
				asserted = reverse(y.Color)
			}
			if cnt == 0 {
				colors[0] = asserted
			} else {
				colors[1] = asserted
				before := len(g.toMerge)
				if err := g.mergeEnqueue(colors[0], colors[1]); err != nil {
					return 0, err
				}
				if len(g.toMerge) != before {
					result++
				}
			}
			cnt++

			if y.Color == v.Color && y.True == v.True {
				break
			}
		}
	}

	return result, nil
}
