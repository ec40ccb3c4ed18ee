//go:build checkgrid

package engine

const CheckGrid = true
