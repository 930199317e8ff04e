// SPDX-License-Identifier: MIT

// Package calculator is the operation dispatcher of matcalc.
//
// A request is an operator symbol (Op) plus one or two Operands. An Operand
// is a tagged variant holding a scalar, a *matrix.Dense, or nothing:
//
//	a := calculator.Mat(m)
//	res, err := calculator.Evaluate(a, calculator.OpMul, calculator.Scalar(2))
//
// Calculator enforces the type and shape rules (no matrix+scalar, no division
// by a matrix, max/min only on vectors) and delegates the arithmetic to the
// matrix package. WithTiming decorates any Evaluator with slog-based timing
// without touching results.
package calculator
