package engine

import "fmt"

// mergeEnqueue normalizes and queues a pair of colors to be unified.
// Same absolute value, same sign is already merged (no-op). Same
// absolute value, opposite sign is a contradiction under CheckGrid
// (merging a color with its own reverse) and a no-op otherwise — without
// the defensive check, the invariant that reverse colors never co-live
// already makes the merge moot (spec.md section 4.4, design note 4 in
// DESIGN.md). Otherwise the pair is pushed unless an equivalent
// absolute-value pair is already queued.
func (g *Grid) mergeEnqueue(a, b Color) error {
	if absColor(a) == absColor(b) {
		if CheckGrid && (a < 0) != (b < 0) {
			return fmt.Errorf("%w: merging color %d with its own reverse", ErrInvalidGrid, a)
		}
		return nil
	}
	if absolutePairIndex(g.toMerge, a, b) == -1 {
		g.toMerge = append(g.toMerge, a, b)
	}
	return nil
}

// mergePurge drains the merge queue LIFO, pair by pair.
func (g *Grid) mergePurge() error {
	for len(g.toMerge) > 0 {
		n := len(g.toMerge)
		a, b := g.toMerge[n-2], g.toMerge[n-1]
		g.toMerge = g.toMerge[:n-2]
		if err := g.mergeColors(a, b); err != nil {
			return err
		}
	}
	return nil
}

// mergeColors declares a and b equivalent and rewrites every occurrence
// of a into b, then (second pass) every occurrence of -a into -b, across
// the pending merge queue itself, color_to_nodes, and every rule that
// mentions the source color. Rewriting the merge queue in place lets
// later pending pairs see the new name. See spec.md section 4.4.
func (g *Grid) mergeColors(a, b Color) error {
	if absColor(a) == absColor(b) {
		if CheckGrid && (a < 0) != (b < 0) {
			return fmt.Errorf("%w: merging color %d with its own reverse", ErrInvalidGrid, a)
		}
		return nil
	}

	src, dst := a, b
	for direction := 0; direction < 2; direction++ {
		if direction != 0 {
			src, dst = reverse(src), reverse(dst)
		}

		for i, c := range g.toMerge {
			if c == src {
				g.toMerge[i] = dst
			}
		}

		if g.colorToNodes.count(src) != 0 {
			for _, node := range g.colorToNodes.get(src) {
				g.colorToNodes.insertOne(dst, node)
			}
			g.colorToNodes.erase(src)
		}

		if g.colorToRules.count(src) != 0 {
			for _, idx := range g.colorToRules.get(src) {
				for k, c := range g.rules[idx] {
					if c == src {
						g.rules[idx][k] = dst
					}
				}
				already := false
				if g.colorToRules.count(dst) != 0 {
					for _, x := range g.colorToRules.get(dst) {
						if x == idx {
							already = true
							break
						}
					}
				}
				if !already {
					g.colorToRules.insertOne(dst, idx)
				}
			}
			g.colorToRules.erase(src)
		}
	}

	return nil
}

// removeRule deindexes every color occurrence of rule idx from
// color_to_rules and clears the rule's color list.
func (g *Grid) removeRule(idx int) {
	for _, c := range g.rules[idx] {
		if g.colorToRules.count(c) != 0 {
			g.colorToRules.removeFirstValue(c, idx)
		}
	}
	g.rules[idx] = g.rules[idx][:0]
}
