// SPDX-License-Identifier: MIT

// Package matrix provides the dense matrix container and the linear-algebra
// kernels behind the calculator.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major rows×cols grid of float64 values with
//     validated construction (NewDense, NewFilled, NewVector, NewIdentity).
//   - Kernels that always return a freshly allocated *Dense: Add, Sub, Mul,
//     Transpose, Scale, plus the vector reductions Dot, Max and Min.
//   - Validators shared by every kernel, and sentinel errors matched with
//     errors.Is (ErrBadShape, ErrShapeMismatch, ErrDimensionMismatch,
//     ErrNotVector, ErrOutOfRange, ErrNilMatrix).
//
// A Dense with exactly one row is a vector. Kernels accept the read-only
// Matrix interface; *Dense operands take a flat-slice fast path and every
// other implementation is read through At in the same element order, so both
// paths produce identical results.
//
// See the examples in this package for usage patterns.
package matrix
