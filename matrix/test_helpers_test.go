// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense BUILDS a *Dense from a grid or fails the test.
func MustDense(tb testing.TB, grid [][]float64) *matrix.Dense {
	tb.Helper()
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	m, err := matrix.NewDense(rows, cols, grid)
	require.NoError(tb, err)

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomDense FILLS an r×c *Dense with deterministic U(-1,1) values by seed.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			grid[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustDense(tb, grid)
}
