// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with an operation tag) and
// tests MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(opTag, ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> vector-ness -> dimension/shape mismatch.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or
	// cols<=0) or when a supplied grid disagrees with the declared shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates that two operands of an elementwise operation
	// (Add, Sub) or of a dot product do not have identical shapes.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates incompatible inner dimensions for Mul
	// (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotVector signals that a single-row matrix was required.
	ErrNotVector = errors.New("matrix: not a vector")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
