// SPDX-License-Identifier: MIT
// Package calculator: sentinel error set.
// Dispatch failures are reported with these sentinels, wrapped with the
// operator symbol; kernel failures surface the matrix sentinels unchanged.
// Callers match both with errors.Is.

package calculator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrTypeMismatch is returned for addition/subtraction between a matrix
	// and a scalar.
	ErrTypeMismatch = errors.New("calculator: operand types must match")

	// ErrDivideByZero is returned when the divisor is the scalar 0.
	ErrDivideByZero = errors.New("calculator: division by zero")

	// ErrUnsupportedOperation is returned for matrix/matrix and scalar/matrix division.
	ErrUnsupportedOperation = errors.New("calculator: matrices cannot be divided by matrices")

	// ErrInvalidArguments is returned when the operand count does not fit the
	// operator (a second operand for max/min, a missing one for + - * /).
	ErrInvalidArguments = errors.New("calculator: invalid arguments")

	// ErrUnknownOperation is returned for an operator symbol outside + - * / max min.
	ErrUnknownOperation = errors.New("calculator: unknown operation")
)

// ErrNotAVector is the matrix sentinel for max/min on a non-vector operand.
// It is the same value as matrix.ErrNotVector, so either matches.
var ErrNotAVector = matrix.ErrNotVector

// calcErrorf wraps err with the operator symbol, preserving it via %w.
func calcErrorf(op Op, err error) error {
	return fmt.Errorf("evaluate %q: %w", string(op), err)
}
