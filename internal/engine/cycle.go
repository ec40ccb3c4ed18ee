package engine

// checkCycleDFS walks the implication graph from v (a color asserted at
// a given polarity) looking for a path back to v's own negation — a
// contradiction meaning "v true eventually forces v false". It also
// folds in the exclusion-rule arity counters: whenever a false-asserted
// color's last sibling in some rule is reached, that sibling is visited
// too, on the theory that a rule down to one live color must be true,
// and a rule whose colors have all been reached false is itself a
// contradiction.
// excl_color_cnt is mutated in place as the search descends, matching
// the reference's assert-without-restore approach: level 1
// (checkCycle) discards it after each top-level color, and level 2
// (checkCycleLevel2) explicitly snapshots/restores it around each
// nested probe. Grounded on grid_validate_check_cycle_dfs.
func (g *Grid) checkCycleDFS(visited *vertexMap, exclColorCnt []int, v Vertex) bool {
	visited.assign(v, 1)

	if !v.True && g.colorToRules.count(v.Color) != 0 {
		idxs := g.colorToRules.get(v.Color)
		for _, idx := range idxs {
			exclColorCnt[idx]--
		}
		for _, idx := range idxs {
			switch exclColorCnt[idx] {
			case 0:
				return true
			case 1:
				for _, color := range g.rules[idx] {
					x := Vertex{Color: color, True: false}
					if visited.count(x) == 0 {
						x.True = true
						if g.checkCycleDFS(visited, exclColorCnt, x) {
							return true
						}
						break
					}
				}
			}
		}
	}

	w := Vertex{True: !v.True}
	rw := Vertex{True: v.True}

	var falseColors []Color
	if v.True && g.trueToFalse.count(v.Color) != 0 {
		falseColors = g.trueToFalse.get(v.Color)
	}

	iend := 0
	if v.True && falseColors != nil {
		iend = len(falseColors)
	}
	for i := -1; i < iend; i++ {
		var c Color
		if i == -1 {
			c = reverse(v.Color)
		} else {
			c = falseColors[i]
		}
		w.Color, rw.Color = c, c
		if visited.count(rw) != 0 {
			return true
		}
		if visited.count(w) == 0 && g.checkCycleDFS(visited, exclColorCnt, w) {
			return true
		}
	}

	return false
}

// checkCycle is the level-1 search: for every candidate color still in
// play, assert it true in an isolated DFS probe and see whether that
// forces its own negation. Any color that does is false. Grounded on
// grid_validate_check_cycle.
func (g *Grid) checkCycle() (int, error) {
	tracef("checkCycle\n")
	result := 0

	base := make([]int, numRules)
	for idx := range g.rules {
		base[idx] = len(g.rules[idx])
	}

	visited := newVertexMap()
	for _, color := range g.colorToNodes.keys() {
		v := Vertex{Color: color, True: true}
		exclColorCnt := append([]int(nil), base...)
		visited.clear()

		if g.checkCycleDFS(&visited, exclColorCnt, v) {
			if err := g.validateEnqueue(reverse(color)); err != nil {
				return 0, err
			}
			result++
		}
	}

	return result, nil
}

// checkCycleLevel2 is the level-2 confirmation search. For a candidate
// color A, it asks: is every other color B unreachable from A both as
// "B true" and as "-B true"? If both B and -B are reachable from "A
// true" (i.e. A true forces B false AND forces -B false, an outright
// contradiction since B and -B can't both be false), A itself must be
// false. Snapshots of the visited set and exclusion counters are taken
// right after the level-1 probe on A and restored before each B/（-B)
// pair, so every pair starts from the same state. This only runs after
// checkCycle has found nothing at level 1; if it somehow still finds a
// contradiction at level 1 here, that is a precondition violation.
// Grounded on grid_validate_check_cycle_level_2.
func (g *Grid) checkCycleLevel2() (int, error) {
	tracef("checkCycleLevel2\n")
	result := 0

	base := make([]int, numRules)
	for idx := range g.rules {
		base[idx] = len(g.rules[idx])
	}

	keys := g.colorToNodes.keys()
	visited := newVertexMap()

outer:
	for _, color := range keys {
		v := Vertex{Color: color, True: true}
		exclColorCnt := append([]int(nil), base...)
		visited.clear()

		if g.checkCycleDFS(&visited, exclColorCnt, v) {
			return 0, errLevel1Precondition
		}

		visitedBak := visited.clone()
		exclColorCntBak := append([]int(nil), exclColorCnt...)

		for _, oColor := range keys {
			if color == oColor || color == reverse(oColor) {
				continue
			}

			visited = visitedBak.clone()
			exclColorCnt = append([]int(nil), exclColorCntBak...)
			if !g.checkCycleDFS(&visited, exclColorCnt, Vertex{Color: oColor, True: true}) {
				continue
			}

			visited = visitedBak.clone()
			exclColorCnt = append([]int(nil), exclColorCntBak...)
			if !g.checkCycleDFS(&visited, exclColorCnt, Vertex{Color: reverse(oColor), True: true}) {
				continue
			}

			if err := g.validateEnqueue(reverse(color)); err != nil {
				return 0, err
			}
			result++
			break outer
		}
	}

	return result, nil
}
