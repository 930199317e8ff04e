// SPDX-License-Identifier: MIT

// Package matcalc is a small in-memory matrix calculator: dense float64
// matrices, a handful of linear-algebra kernels and a console front end that
// reads requests line by line.
//
// What is inside?
//
//	• Dense matrices with validated shapes and row-major storage
//	• Kernels: add, subtract, multiply, scale, dot product, transpose, max/min
//	• A calculator that dispatches an operator over scalar or matrix operands
//	• Interactive and one-shot (eval) command line modes
//
// Layout:
//
//	matrix/         — Dense type, validators and kernels
//	calculator/     — Op, Operand, dispatch rules and the timing decorator
//	console/        — line-oriented prompts and inline operand literals
//	cmd/matcalc/    — the docopt-driven binary
//	examples/       — runnable walkthroughs
//
// Quick example:
//
//	a, _ := matrix.NewDense(2, 2, [][]float64{{1, 2}, {3, 4}})
//	res, _ := calculator.Evaluate(calculator.Mat(a), calculator.OpMul, calculator.Mat(a))
//	fmt.Print(res) // 7 10\n15 22\n
//
// See the subpackage docs for details.
package matcalc
