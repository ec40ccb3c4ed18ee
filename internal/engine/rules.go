package engine

// Four of the five cheap inference rules named in spec.md section 4.5
// (the fifth, the SCC merger, is in scc.go). Each scans every rule's
// live color list and returns how many new facts it queued,
// so grid_solve's fixed-point loop (solve.go) knows whether to repeat a
// stage. None of them search or guess; they only read off rules whose
// shrinking color lists have become decidable on their own.

// scanSingles finds every rule with exactly one live color and asserts it
// true: a rule means "exactly one of these colors is true", so a rule of
// size one has no other candidate left. Grounded on
// grid_validate_check_single.
func (g *Grid) scanSingles() (int, error) {
	tracef("scanSingles\n")
	result := 0
	for idx := range g.rules {
		if len(g.rules[idx]) == 1 {
			if err := g.validateEnqueue(g.rules[idx][0]); err != nil {
				return 0, err
			}
			result++
		}
	}
	return result, nil
}

// scanPairMerge finds every rule with exactly two live colors A and B.
// Exactly one of them is true, so they are exclusive: A is true iff B is
// false, i.e. A and -B name the same fact. The pair is queued for merging
// and the rule is then fully consumed (removed), since a two-color
// exclusive-or rule carries no further information once its colors are
// unified. Grounded on grid_merge_check_pair.
func (g *Grid) scanPairMerge() (int, error) {
	tracef("scanPairMerge\n")
	result := 0
	for idx := range g.rules {
		if len(g.rules[idx]) == 2 {
			a, b := g.rules[idx][0], g.rules[idx][1]
			before := len(g.toMerge)
			if err := g.mergeEnqueue(a, reverse(b)); err != nil {
				return 0, err
			}
			if len(g.toMerge) != before {
				result++
			}
			g.removeRule(idx)
		}
	}
	return result, nil
}

// scanDuplicates finds a color that occurs twice in the same rule. Since
// a rule asserts exactly one of its colors true, a color appearing twice
// could only be true if both occurrences were simultaneously the "one"
// true member — impossible unless the rule size is one — so a repeated
// color is false. Grounded on grid_validate_check_pair_1 (doc comment
// calls this "pair-1").
func (g *Grid) scanDuplicates() (int, error) {
	tracef("scanDuplicates\n")
	result := 0
	for idx := range g.rules {
		rule := g.rules[idx]
		if len(rule) <= 2 {
			continue
		}
		for i := 0; i < len(rule); i++ {
			for j := i + 1; j < len(rule); j++ {
				if rule[i] == rule[j] {
					if err := g.validateEnqueue(reverse(rule[i])); err != nil {
						return 0, err
					}
					result++
				}
			}
		}
	}
	return result, nil
}

// scanReversePairs finds a rule that contains both a color and its
// reverse. One of the two is true (whichever it is), which already
// satisfies "exactly one of these colors is true" for the whole rule, so
// every other color in it is false. Grounded on
// grid_validate_check_pair_2 (doc comment calls this "pair-2").
func (g *Grid) scanReversePairs() (int, error) {
	tracef("scanReversePairs\n")
	result := 0
	for idx := range g.rules {
		rule := g.rules[idx]
		if len(rule) <= 2 {
			continue
		}
		done := false
		for i := 0; i < len(rule) && !done; i++ {
			rColor := reverse(rule[i])
			for j := i + 1; j < len(rule) && !done; j++ {
				if rule[j] != rColor {
					continue
				}
				for k := 0; k < len(rule); k++ {
					color := rule[k]
					if absColor(rColor) == absColor(color) {
						continue
					}
					if err := g.validateEnqueue(reverse(color)); err != nil {
						return 0, err
					}
					result++
				}
				done = true
			}
		}
	}
	return result, nil
}
