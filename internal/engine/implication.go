package engine

// buildTrueToFalse rebuilds the true=>false implication graph from
// scratch: for every rule with more than two live colors, every pair of
// distinct colors in that rule implies each other false (if one were
// true, "exactly one of these is true" would force the other false).
// Two-color rules are skipped because scanPairMerge already consumes
// them by merging. Grounded on grid_get_true_to_false_colors; this is
// the edge set the Tarjan pass (scc.go) and the cycle search (cycle.go)
// both walk.
func (g *Grid) buildTrueToFalse() {
	g.trueToFalse.clear()

	for _, color := range g.colorToRules.keys() {
		for _, idx := range g.colorToRules.get(color) {
			rule := g.rules[idx]
			if len(rule) <= 2 {
				continue
			}
			for _, oColor := range rule {
				if oColor == color {
					continue
				}
				g.addImplication(color, oColor)
				g.addImplication(oColor, color)
			}
		}
	}
}

// addImplication records that from implies to being false, unless that
// edge is already present.
func (g *Grid) addImplication(from, to Color) {
	if g.trueToFalse.count(from) != 0 {
		for _, x := range g.trueToFalse.get(from) {
			if x == to {
				return
			}
		}
	}
	g.trueToFalse.insertOne(from, to)
}
