package engine

import "fmt"

// validateEnqueue adds c to the validation queue if it isn't already
// present. Under CheckGrid, it is also a defensive error for c's reverse
// to already be queued (both polarities asserted true at once).
func (g *Grid) validateEnqueue(c Color) error {
	if CheckGrid && containsColor(g.toValidate, reverse(c)) {
		return fmt.Errorf("%w: color %d and its reverse are both queued true", ErrInvalidGrid, c)
	}
	if !containsColor(g.toValidate, c) {
		g.toValidate = append(g.toValidate, c)
	}
	return nil
}

// validatePurge drains the validation queue until empty, asserting each
// color true via validateColor. The reference drains LIFO for locality
// in the default build and FIFO under CheckGrid (spec.md section 9.3);
// the queue may grow while draining, as validateColor enqueues the
// reverse of every color it displaces.
func (g *Grid) validatePurge() error {
	for len(g.toValidate) > 0 {
		var c Color
		if CheckGrid {
			c = g.toValidate[0]
			g.toValidate = g.toValidate[1:]
		} else {
			last := len(g.toValidate) - 1
			c = g.toValidate[last]
			g.toValidate = g.toValidate[:last]
		}
		if err := g.validateColor(c); err != nil {
			return err
		}
	}
	return nil
}

// validateColor asserts color true and propagates the consequences:
// every node it carries is placed, every rule it occurs in is cleared
// (with every other color in that rule enqueued false), and color's
// reverse is removed from color_to_nodes and every rule that still
// mentions it. See spec.md section 4.3.
func (g *Grid) validateColor(color Color) error {
	if g.colorToNodes.count(color) != 0 {
		for _, node := range g.colorToNodes.get(color) {
			if err := g.validateNode(node); err != nil {
				return err
			}
		}
		g.colorToNodes.erase(color)

		if g.colorToRules.count(color) != 0 {
			for _, idx := range g.colorToRules.get(color) {
				for _, oColor := range g.rules[idx] {
					if oColor == color {
						continue
					}
					if g.colorToRules.count(oColor) != 0 {
						g.colorToRules.removeFirstValue(oColor, idx)
					}
					if err := g.validateEnqueue(reverse(oColor)); err != nil {
						return err
					}
				}
				g.rules[idx] = g.rules[idx][:0]
			}
			g.colorToRules.erase(color)
		}
	}

	rc := reverse(color)
	if g.colorToNodes.count(rc) != 0 {
		if CheckGrid {
			for _, node := range g.colorToNodes.get(rc) {
				if err := g.checkRemoveNode(node); err != nil {
					return err
				}
			}
		}
		g.colorToNodes.erase(rc)

		if g.colorToRules.count(rc) != 0 {
			for _, idx := range g.colorToRules.get(rc) {
				g.rules[idx] = removeAllColor(g.rules[idx], rc)
			}
			g.colorToRules.erase(rc)
		}
	}

	return nil
}

// validateNode records that node has been placed at its cell, matching
// grid_validate_node: validated_size is incremented and
// validated_nodes[cell] is overwritten unconditionally. Without
// CheckGrid there is no explicit re-placement guard — the algorithm
// relies on the color algebra never asserting two different nodes true
// for the same cell; CheckGrid adds the defensive counters that would
// catch it if it ever did.
func (g *Grid) validateNode(node NodeId) error {
	g.validatedSize++
	g.validatedNodes[node.cell()] = node

	if CheckGrid {
		idxs := constraintIndices(node)
		for k, idx := range idxs {
			if g.constraintCount[k][idx] != NN {
				g.constraintCount[k][idx] = NN
			} else {
				return fmt.Errorf("%w: (%d,%d) conflicts with an already-solved constraint", ErrInvalidGrid, k, idx)
			}
		}
	}
	return nil
}

// checkRemoveNode is the CheckGrid-only counterpart of validateNode for
// nodes being removed (their color's reverse just went false): it
// increments the per-constraint removal counters and flags the
// constraint exhausted if every one of its N candidates has now been
// eliminated without ever being solved.
func (g *Grid) checkRemoveNode(node NodeId) error {
	idxs := constraintIndices(node)
	for k, idx := range idxs {
		if g.constraintCount[k][idx] != NN {
			g.constraintCount[k][idx]++
			if g.constraintCount[k][idx] == N {
				return fmt.Errorf("%w: constraint kind %d slot %d exhausted", ErrInvalidGrid, k, idx)
			}
		}
	}
	return nil
}
