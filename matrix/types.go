// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container and the kernels.
// This file intentionally contains ONLY the public read-only Matrix interface.
// Errors live in errors.go, guards in validators.go.
package matrix

// Matrix is a read-only, two-dimensional view of float64 values.
// Every kernel in this package accepts a Matrix and returns a fresh *Dense;
// *Dense operands unlock a flat-slice fast path, anything else is read
// through At in a fixed i→j order.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
