//go:build d4

package engine

// D is the box dimension. Built with -tags d4, this solves 16x16 grids
// using the hex alphabet (0-9, A-F) described in spec.md section 6.
const D = 4
