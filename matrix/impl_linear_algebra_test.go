// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	ones := MustDense(t, [][]float64{{1, 1}, {1, 1}})

	sum, err := matrix.Add(ones, ones)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 2}, {2, 2}}, sum.Grid())

	// operands untouched
	require.Equal(t, [][]float64{{1, 1}, {1, 1}}, ones.Grid())
}

func TestAdd_ElementwiseProperty(t *testing.T) {
	a := RandomDense(t, 3, 5, 1)
	b := RandomDense(t, 3, 5, 2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, MustAt(t, a, i, j)+MustAt(t, b, i, j), MustAt(t, sum, i, j))
		}
	}
}

func TestSub_SelfIsZero(t *testing.T) {
	a := RandomDense(t, 4, 2, 7)

	diff, err := matrix.Sub(a, a)
	require.NoError(t, err)
	zero, err := matrix.NewZeros(4, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(zero, diff))
}

func TestSub_Succeeds(t *testing.T) {
	a := MustDense(t, [][]float64{{5, 4}, {3, 2}, {1, 0}})
	b, err := matrix.NewFilled(3, 2, 1)
	require.NoError(t, err)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 3}, {2, 1}, {0, -1}}, diff.Grid())
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{1, 2}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Square(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	prod, err := matrix.Mul(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 10}, {15, 22}}, prod.Grid())
}

func TestMul_Rectangular(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})     // 2×3
	b := MustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, prod.Grid())

	// column vector times row vector → outer product
	col := MustDense(t, [][]float64{{1}, {2}})
	row := MustDense(t, [][]float64{{3, 4}})
	outer, err := matrix.Mul(col, row)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 4}, {6, 8}}, outer.Grid())
}

func TestMul_Identity(t *testing.T) {
	a := RandomDense(t, 3, 3, 11)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_SumDefinition checks C[i,j] = Σ_k A[i,k]*B[k,j] accumulated in ascending k.
func TestMul_SumDefinition(t *testing.T) {
	a := RandomDense(t, 4, 6, 3)
	b := RandomDense(t, 6, 5, 4)

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			sum := 0.0
			for k := 0; k < 6; k++ {
				sum += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			require.Equal(t, sum, MustAt(t, prod, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// TestKernels_FastAndFallback_Match asserts bitwise equality between the
// *Dense fast path and the At-based fallback.
func TestKernels_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 5, 7, 21)
	b := RandomDense(t, 7, 3, 22)
	c := RandomDense(t, 5, 7, 23)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))

	fast, err = matrix.Add(a, c)
	require.NoError(t, err)
	slow, err = matrix.Add(hide{a}, c)
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))

	fast, err = matrix.Scale(a, -1.5)
	require.NoError(t, err)
	slow, err = matrix.Scale(hide{a}, -1.5)
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))

	fast, err = matrix.Transpose(a)
	require.NoError(t, err)
	slow, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))

	v := RandomDense(t, 1, 9, 24)
	w := RandomDense(t, 1, 9, 25)
	df, err := matrix.Dot(v, w)
	require.NoError(t, err)
	ds, err := matrix.Dot(hide{v}, hide{w})
	require.NoError(t, err)
	require.Equal(t, df, ds)

	mf, err := matrix.Max(v)
	require.NoError(t, err)
	ms, err := matrix.Max(hide{v})
	require.NoError(t, err)
	require.Equal(t, mf, ms)
}

func TestTranspose_Involution(t *testing.T) {
	for seed, shape := range [][2]int{{1, 1}, {1, 4}, {3, 2}, {5, 5}} {
		a := RandomDense(t, shape[0], shape[1], int64(seed))
		once, err := matrix.Transpose(a)
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, twice), "shape %v", shape)
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := MustDense(t, [][]float64{{1, -2}, {0.5, 4}})

	got, err := matrix.Scale(a, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, -6}, {1.5, 12}}, got.Grid())

	zero, err := matrix.Scale(a, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, zero.Grid())
}

func TestDot(t *testing.T) {
	ones, err := matrix.NewFilled(1, 3, 1)
	require.NoError(t, err)

	got, err := matrix.Dot(ones, ones)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	v := MustDense(t, [][]float64{{1, 2, 3}})
	w := MustDense(t, [][]float64{{4, -5, 6}})
	got, err = matrix.Dot(v, w)
	require.NoError(t, err)
	require.Equal(t, 12.0, got)

	_, err = matrix.Dot(v, MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.Dot(MustDense(t, [][]float64{{1}, {2}}), v)
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		max, min float64
	}{
		{"single", []float64{4}, 4, 4},
		{"ties", []float64{5, 9, 9}, 9, 5},
		{"negative", []float64{-3, -1, -7, -1}, -1, -7},
		{"first is extremal", []float64{10, 1, 10, 1}, 10, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := matrix.NewVector(tc.values...)
			require.NoError(t, err)

			gotMax, err := matrix.Max(v)
			require.NoError(t, err)
			require.Equal(t, tc.max, gotMax)

			gotMin, err := matrix.Min(v)
			require.NoError(t, err)
			require.Equal(t, tc.min, gotMin)
		})
	}
}

func TestMaxMin_NotVector(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.Max(m)
	require.ErrorIs(t, err, matrix.ErrNotVector)
	_, err = matrix.Min(hide{m})
	require.ErrorIs(t, err, matrix.ErrNotVector)
	_, err = matrix.Max(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
