// SPDX-License-Identifier: MIT

// Package calculator - operator dispatch over matrix and scalar operands.
//
// Purpose:
//   - Map an operator symbol to the matching matrix kernel or scalar arithmetic.
//   - Enforce operand kind and shape compatibility before delegating.
//
// Dispatch order (first match wins):
//   - "+", "-"    → elementwise add/sub (matrix⊕matrix or scalar⊕scalar).
//   - "*"         → scalar broadcast, vector dot product, or matrix product.
//   - "/"         → matrix÷scalar (reciprocal scaling) or scalar÷scalar.
//   - "max","min" → strict fold over a single vector operand.
//   - anything else → ErrUnknownOperation.
//
// Every routine is a pure function of its operands: results are freshly
// allocated and no partial result is ever returned alongside an error.

package calculator

import (
	"log/slog"

	"github.com/katalvlaran/matcalc/matrix"
)

// Evaluator evaluates one operation request. Calculator implements it, and
// WithTiming decorates any Evaluator without changing its results.
type Evaluator interface {
	Evaluate(a Operand, op Op, b Operand) (Operand, error)
}

// Calculator is the stateless dispatcher. The zero value is not usable;
// construct with New.
type Calculator struct {
	log *slog.Logger
}

var _ Evaluator = (*Calculator)(nil)

// New returns a Calculator configured by opts.
func New(opts ...Option) *Calculator {
	o := gatherOptions(opts...)

	return &Calculator{log: o.logger}
}

var defaultCalculator = New()

// Evaluate runs a single operation on the package default Calculator.
func Evaluate(a Operand, op Op, b Operand) (Operand, error) {
	return defaultCalculator.Evaluate(a, op, b)
}

// Evaluate applies op to a and b (b is None for max/min).
//
// Errors (matched with errors.Is):
//   - ErrUnknownOperation, ErrInvalidArguments, ErrTypeMismatch,
//     ErrDivideByZero, ErrUnsupportedOperation (dispatch level).
//   - matrix.ErrShapeMismatch, matrix.ErrDimensionMismatch,
//     matrix.ErrNotVector (kernel level).
func (c *Calculator) Evaluate(a Operand, op Op, b Operand) (Operand, error) {
	c.log.Debug("dispatch", "op", string(op), "a", a.describe(), "b", b.describe())

	var (
		res Operand
		err error
	)
	switch op {
	case OpAdd, OpSub:
		res, err = c.addSub(a, op, b)
	case OpMul:
		res, err = c.multiply(a, b)
	case OpDiv:
		res, err = c.divide(a, b)
	case OpMax, OpMin:
		res, err = c.extremum(a, op, b)
	default:
		err = ErrUnknownOperation
	}
	if err != nil {
		return Operand{}, calcErrorf(op, err)
	}

	return res, nil
}

// requireBinary rejects a missing operand for the binary operators.
func requireBinary(a, b Operand) error {
	if a.IsNone() || b.IsNone() {
		return ErrInvalidArguments
	}

	return nil
}

// addSub: matrix⊕matrix via matrix.Add/Sub, scalar⊕scalar numerically,
// mixed kinds are ErrTypeMismatch.
func (c *Calculator) addSub(a Operand, op Op, b Operand) (Operand, error) {
	if err := requireBinary(a, b); err != nil {
		return Operand{}, err
	}

	switch {
	case a.kind == KindMatrix && b.kind == KindMatrix:
		kernel := matrix.Add
		if op == OpSub {
			kernel = matrix.Sub
		}
		m, err := kernel(a.mat, b.mat)
		if err != nil {
			return Operand{}, err
		}
		return Mat(m), nil

	case a.kind == KindScalar && b.kind == KindScalar:
		if op == OpSub {
			return Scalar(a.scalar - b.scalar), nil
		}
		return Scalar(a.scalar + b.scalar), nil

	default:
		return Operand{}, ErrTypeMismatch
	}
}

// multiply: scalar broadcast, vector dot product (both 1×n with equal n),
// general matrix product, or scalar product.
func (c *Calculator) multiply(a, b Operand) (Operand, error) {
	if err := requireBinary(a, b); err != nil {
		return Operand{}, err
	}

	switch {
	case a.kind == KindScalar && b.kind == KindMatrix:
		return c.scale(b.mat, a.scalar)

	case a.kind == KindMatrix && b.kind == KindScalar:
		return c.scale(a.mat, b.scalar)

	case a.kind == KindMatrix && b.kind == KindMatrix:
		if a.mat.IsVector() && b.mat.IsVector() && a.mat.Cols() == b.mat.Cols() {
			c.log.Debug("dot product", "n", a.mat.Cols())
			dot, err := matrix.Dot(a.mat, b.mat)
			if err != nil {
				return Operand{}, err
			}
			return Scalar(dot), nil
		}
		m, err := matrix.Mul(a.mat, b.mat)
		if err != nil {
			return Operand{}, err
		}
		return Mat(m), nil

	default:
		return Scalar(a.scalar * b.scalar), nil
	}
}

// divide: matrix÷scalar scales by the reciprocal, scalar÷scalar divides;
// every other combination is ErrUnsupportedOperation.
func (c *Calculator) divide(a, b Operand) (Operand, error) {
	if err := requireBinary(a, b); err != nil {
		return Operand{}, err
	}
	if b.kind != KindScalar {
		return Operand{}, ErrUnsupportedOperation
	}
	if b.scalar == 0 {
		return Operand{}, ErrDivideByZero
	}

	if a.kind == KindMatrix {
		return c.scale(a.mat, 1/b.scalar)
	}

	return Scalar(a.scalar / b.scalar), nil
}

// extremum runs matrix.Max/Min on a single vector operand.
func (c *Calculator) extremum(a Operand, op Op, b Operand) (Operand, error) {
	if a.IsNone() || !b.IsNone() {
		return Operand{}, ErrInvalidArguments
	}
	if a.kind != KindMatrix {
		return Operand{}, ErrNotAVector
	}

	kernel := matrix.Max
	if op == OpMin {
		kernel = matrix.Min
	}
	v, err := kernel(a.mat)
	if err != nil {
		return Operand{}, err
	}

	return Scalar(v), nil
}

func (c *Calculator) scale(m *matrix.Dense, alpha float64) (Operand, error) {
	out, err := matrix.Scale(m, alpha)
	if err != nil {
		return Operand{}, err
	}

	return Mat(out), nil
}
