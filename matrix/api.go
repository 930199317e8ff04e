// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades and comparisons.
//
// Purpose:
//   - Provide thin, intention-revealing constructors on top of NewDense.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

const (
	ctxFilled = "NewFilled"
	ctxVector = "NewVector"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense(rows, cols, nil).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, nil)
}

// NewFilled returns a rows×cols *Dense with every entry set to v.
// NewFilled(r, c, 1) is the all-ones fixture used throughout the tests.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFilled, err)
	}
	m := newDense(rows, cols)
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// NewVector returns the 1×n row vector holding values (copied).
// An empty argument list is ErrBadShape.
func NewVector(values ...float64) (*Dense, error) {
	if err := ValidateShape(1, len(values)); err != nil {
		return nil, matrixErrorf(ctxVector, err)
	}
	m := newDense(1, len(values))
	copy(m.data, values)

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Equal reports whether a and b have the same shape and identical entries.
// Comparison is exact (==), so NaN entries never compare equal.
// nil operands are equal only to each other.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, v := range da.data {
				if v != db.data[idx] {
					return false
				}
			}

			return true
		}
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
