package engine

// Solve runs the fixed-point propagation loop described in spec.md
// section 4.10: drain validations and apply the cheapest rule first,
// escalating to more expensive ones only once the cheaper ones stop
// producing anything, and restarting from the top the moment any stage
// makes progress. It proves the puzzle by contradiction rather than by
// search — every step either places a cell, merges two colors that name
// the same fact, or rules a color out — and returns without error (a
// partially or fully solved grid) when none of the seven stages in the
// escalation ladder (singles, pair merges, duplicates, reverse pairs, SCC
// merges, level-1 and level-2 cycle search) produce anything more.
// Grounded on grid_solve.
func (g *Grid) Solve() (int, error) {
	for {
		for {
			if err := g.validatePurge(); err != nil {
				return 0, err
			}
			n, err := g.scanSingles()
			if err != nil {
				return 0, err
			}
			if n == 0 {
				break
			}
		}

		if g.validatedSize == NN {
			return NN, nil
		}

		for {
			n, err := g.scanPairMerge()
			if err != nil {
				return 0, err
			}
			if n > 0 {
				if err := g.mergePurge(); err != nil {
					return 0, err
				}
			}
			if n == 0 {
				break
			}
		}

		if n, err := g.scanDuplicates(); err != nil {
			return 0, err
		} else if n > 0 {
			continue
		}

		if n, err := g.scanReversePairs(); err != nil {
			return 0, err
		} else if n > 0 {
			continue
		}

		g.buildTrueToFalse()

		if n, err := g.mergeCheckSCC(); err != nil {
			return 0, err
		} else if n > 0 {
			if err := g.mergePurge(); err != nil {
				return 0, err
			}
			continue
		}

		if n, err := g.checkCycle(); err != nil {
			return 0, err
		} else if n > 0 {
			continue
		}

		if n, err := g.checkCycleLevel2(); err != nil {
			return 0, err
		} else if n > 0 {
			continue
		}

		break
	}

	return g.validatedSize, nil
}
