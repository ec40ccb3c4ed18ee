//go:build !checkgrid

package engine

// CheckGrid gates the defensive invariant checks described in spec.md
// section 7 (conflicting node placement, same-color merges of opposite
// polarity, a rule driven to zero colors). Build with -tags checkgrid to
// enable them; this is the equivalent of -DCHECK_GRID in the C original.
const CheckGrid = false
