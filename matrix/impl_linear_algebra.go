// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, dot product,
// transpose, scalar scaling and extremum search over a vector. All functions
// perform strict fail-fast validation and return clear errors on misuse.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used by the calculator.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - Every kernel has a *Dense fast path and an At-based fallback that visit
//     elements in the same order, so both paths are bitwise identical.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulated sum (Mul, Dot).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDot       = "Dot"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMax       = "Max"
	opMin       = "Min"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf attaches fallback-path coordinates to an At failure.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - a + (-1)*b is exactly a - b in IEEE-754, so one loop serves both ops.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize Bᵀ so that C[i,j] is the dot product of row i of A
//     with row j of Bᵀ; both rows are contiguous in the fast path.
//
// Behavior highlights:
//   - Each C[i,j] is summed from ZeroSum over k = 0..n-1 in ascending order,
//     in both paths. Results are reproducible bit for bit.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) including the transposed copy of B.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)

	var (
		i, j, k int
		sum     float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			bt := transposeDense(db) // bt.data layout: j*inner + k
			var rowA, rowB int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				for j = 0; j < bCols; j++ {
					rowB = j * inner
					sum = ZeroSum
					for k = 0; k < inner; k++ {
						sum += da.data[rowA+k] * bt.data[rowB+k]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var av, bv float64
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Dot returns Σ a[0,k]*b[0,k] for two vectors of equal length.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector (either operand has more than one row),
//     ErrShapeMismatch (lengths differ).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b Matrix) (float64, error) {
	if err := ValidateVector(a); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateVector(b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	n := a.Cols()
	sum := ZeroSum
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := 0; k < n; k++ {
				sum += da.data[k] * db.data[k]
			}

			return sum, nil
		}
	}

	var av, bv float64
	var err error
	for k := 0; k < n; k++ {
		if av, err = a.At(0, k); err != nil {
			return 0, atErrorf(opDot, 0, k, err)
		}
		if bv, err = b.At(0, k); err != nil {
			return 0, atErrorf(opDot, 0, k, err)
		}
		sum += av * bv
	}

	return sum, nil
}

// transposeDense is the flat-slice transpose used by Dense.Transpose, Mul and
// Transpose. data[i*cols + j] → res.data[j*rows + i].
func transposeDense(m *Dense) *Dense {
	rows, cols := m.r, m.c
	res := newDense(cols, rows)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return transposeDense(dm), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows)
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf in alpha propagate; no numeric policy is enforced here.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// extremum folds the single row of v, replacing the candidate only when
// better(next, candidate) holds. The first element seeds the fold, so the
// first occurrence of the extremal value wins ties.
func extremum(v Matrix, better func(x, y float64) bool, opTag string) (float64, error) {
	if err := ValidateVector(v); err != nil {
		return 0, matrixErrorf(opTag, err)
	}

	if dv, ok := v.(*Dense); ok {
		best := dv.data[0]
		for _, x := range dv.data[1:] {
			if better(x, best) {
				best = x
			}
		}

		return best, nil
	}

	best, err := v.At(0, 0)
	if err != nil {
		return 0, atErrorf(opTag, 0, 0, err)
	}
	var x float64
	for k := 1; k < v.Cols(); k++ {
		if x, err = v.At(0, k); err != nil {
			return 0, atErrorf(opTag, 0, k, err)
		}
		if better(x, best) {
			best = x
		}
	}

	return best, nil
}

// Max returns the largest value of a vector (strict > fold).
//
// Errors:
//   - ErrNilMatrix, ErrNotVector.
func Max(v Matrix) (float64, error) {
	return extremum(v, func(x, y float64) bool { return x > y }, opMax)
}

// Min returns the smallest value of a vector (strict < fold).
//
// Errors:
//   - ErrNilMatrix, ErrNotVector.
func Min(v Matrix) (float64, error) {
	return extremum(v, func(x, y float64) bool { return x < y }, opMin)
}
