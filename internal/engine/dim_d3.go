//go:build !d4

package engine

// D is the box dimension: a D x D box inside an N x N grid, N = D*D.
// Build with -tags d4 to solve 16x16 grids instead of 9x9.
const D = 3
