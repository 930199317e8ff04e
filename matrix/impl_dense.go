// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep a Dense immutable once built: there is no exported setter, kernels
//     write only into buffers they have just allocated.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy/zero-init; At: O(1); Row/Grid: O(c)/O(r*c); Transpose: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxNew = "NewDense"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix, optionally populated from grid.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: when grid != nil, validate it has exactly rows rows of exactly
//     cols values (ValidateGrid); else ErrBadShape.
//   - Stage 3: allocate a flat buffer and copy the grid row by row.
//
// Behavior highlights:
//   - A nil grid yields the zero matrix of the requested shape.
//   - The grid is copied; later writes by the caller never reach the Dense.
//   - No implicit reshaping: a 2×3 grid is never accepted as 3×2.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, grid [][]float64) (*Dense, error) {
	if err := ValidateGrid(rows, cols, grid); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	m := newDense(rows, cols)
	for i, row := range grid {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// newDense allocates a zero r×c Dense without validation.
// Callers MUST have validated rows>0 && cols>0 (kernels derive shapes from
// already-valid operands).
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsVector reports whether m has exactly one row.
func (m *Dense) IsVector() bool { return m.r == 1 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Grid returns a deep copy of the matrix as a slice of rows.
// The result is independent of m; it is the inverse of NewDense.
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Transpose returns a new Dense with rows and columns swapped.
// m is never mutated. See the package-level Transpose for the generic kernel.
func (m *Dense) Transpose() *Dense {
	return transposeDense(m)
}

// String renders the matrix row-major: one line per row, values formatted
// with %g and separated by single spaces. Display only; never parsed back.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
