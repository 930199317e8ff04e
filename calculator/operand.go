// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
)

// Kind tags the variant held by an Operand.
type Kind uint8

const (
	// KindNone is the zero Kind: an absent operand.
	KindNone Kind = iota
	// KindScalar is a bare float64.
	KindScalar
	// KindMatrix is a *matrix.Dense.
	KindMatrix
)

// String returns "none", "scalar" or "matrix".
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMatrix:
		return "matrix"
	default:
		return "none"
	}
}

// Operand is either a scalar, a matrix or nothing at all.
// The zero value is the absent operand (KindNone), which is what callers pass
// as the second operand of max/min.
type Operand struct {
	kind   Kind
	scalar float64
	mat    *matrix.Dense
}

// None returns the absent operand. Equivalent to Operand{}.
func None() Operand { return Operand{} }

// Scalar wraps v as a scalar operand.
func Scalar(v float64) Operand { return Operand{kind: KindScalar, scalar: v} }

// Mat wraps m as a matrix operand. Mat(nil) is the absent operand.
func Mat(m *matrix.Dense) Operand {
	if m == nil {
		return Operand{}
	}

	return Operand{kind: KindMatrix, mat: m}
}

// Kind returns the variant tag.
func (o Operand) Kind() Kind { return o.kind }

// IsNone reports whether o is the absent operand.
func (o Operand) IsNone() bool { return o.kind == KindNone }

// Scalar returns the scalar value and true, or (0, false) for other kinds.
func (o Operand) Scalar() (float64, bool) { return o.scalar, o.kind == KindScalar }

// Matrix returns the matrix and true, or (nil, false) for other kinds.
func (o Operand) Matrix() (*matrix.Dense, bool) { return o.mat, o.kind == KindMatrix }

// String renders a scalar with the shortest %g form and a matrix with
// Dense.String. The absent operand renders as "<none>".
func (o Operand) String() string {
	switch o.kind {
	case KindScalar:
		return strconv.FormatFloat(o.scalar, 'g', -1, 64)
	case KindMatrix:
		return o.mat.String()
	default:
		return "<none>"
	}
}

// describe is a one-word summary used in log records: "scalar", "2x3" or "none".
func (o Operand) describe() string {
	if o.kind == KindMatrix {
		return fmt.Sprintf("%dx%d", o.mat.Rows(), o.mat.Cols())
	}

	return o.kind.String()
}
