// SPDX-License-Identifier: MIT

// Package console reads calculator requests from a line-oriented stream.
//
// Purpose:
//   - Prompt for and parse shapes, grids of whitespace-separated floats,
//     scalars and operator symbols.
//   - Reject malformed rows BEFORE a matrix is constructed, so the calculator
//     only ever sees validated operands.
//
// Inline literals (used by the CLI eval mode) are parsed by ParseOperand:
// a scalar such as "2.5", or a matrix such as "1,2;3,4" (rows separated by
// ';', values by ',').
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrBadInput is returned for tokens that are not finite numbers or
	// positive integers where one is required.
	ErrBadInput = errors.New("console: malformed input")

	// ErrRowLength is returned when a row does not hold exactly cols values.
	ErrRowLength = errors.New("console: incorrect data input")
)

// matrixToken selects the matrix branch of ReadOperand.
const matrixToken = "m"

// Prompter reads requests from r and writes prompts to w.
type Prompter struct {
	sc *bufio.Scanner
	w  io.Writer
}

// NewPrompter returns a Prompter over r, echoing prompts to w.
// Pass io.Discard as w for non-interactive input.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(r), w: w}
}

// readLine prints prompt (if any) and returns the next non-blank line,
// trimmed. End of input is reported as io.EOF.
func (p *Prompter) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.w, prompt)
	}
	for p.sc.Scan() {
		line := strings.TrimSpace(p.sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := p.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// skipLines drops up to n non-blank lines; end of input stops it early.
func (p *Prompter) skipLines(n int) {
	for ; n > 0; n-- {
		if _, err := p.readLine(""); err != nil {
			return
		}
	}
}

// ReadShape reads "rows cols" from one line.
func (p *Prompter) ReadShape() (rows, cols int, err error) {
	line, err := p.readLine("Shape (rows cols): ")
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("shape %q: want 2 integers: %w", line, ErrBadInput)
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("rows %q: %w", fields[0], ErrBadInput)
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("cols %q: %w", fields[1], ErrBadInput)
	}
	if err = matrix.ValidateShape(rows, cols); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// ReadMatrix reads rows lines of exactly cols whitespace-separated values.
// When a row is rejected the remaining rows of the matrix are still consumed,
// so the next read starts at the next request.
func (p *Prompter) ReadMatrix(rows, cols int) (*matrix.Dense, error) {
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.w, "Fill in the lines (%d✕%d)\n", rows, cols)

	grid := make([][]float64, rows)
	for i := range grid {
		line, err := p.readLine("")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if grid[i], err = parseRow(strings.Fields(line), cols); err != nil {
			p.skipLines(rows - i - 1)
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return matrix.NewDense(rows, cols, grid)
}

// ReadOperand reads either "m" followed by a shape and a grid, or a scalar.
func (p *Prompter) ReadOperand() (calculator.Operand, error) {
	line, err := p.readLine("Operand (m for matrix, or a number): ")
	if err != nil {
		return calculator.None(), err
	}
	if strings.EqualFold(line, matrixToken) {
		rows, cols, err := p.ReadShape()
		if err != nil {
			return calculator.None(), err
		}
		m, err := p.ReadMatrix(rows, cols)
		if err != nil {
			return calculator.None(), err
		}
		return calculator.Mat(m), nil
	}
	v, err := parseFloat(line)
	if err != nil {
		return calculator.None(), err
	}

	return calculator.Scalar(v), nil
}

// ReadOp reads an operator symbol.
func (p *Prompter) ReadOp() (calculator.Op, error) {
	line, err := p.readLine("Operation (+ - * / max min): ")
	if err != nil {
		return "", err
	}

	return calculator.ParseOp(line)
}

// ParseOperand parses an inline literal: a scalar ("2.5") or a matrix
// ("1,2;3,4"). Every matrix row must hold the same number of values.
func ParseOperand(s string) (calculator.Operand, error) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, ",;") {
		v, err := parseFloat(s)
		if err != nil {
			return calculator.None(), err
		}
		return calculator.Scalar(v), nil
	}

	rowsText := strings.Split(strings.TrimSuffix(s, ";"), ";")
	cols := len(strings.Split(rowsText[0], ","))
	grid := make([][]float64, len(rowsText))
	for i, rt := range rowsText {
		row, err := parseRow(strings.Split(rt, ","), cols)
		if err != nil {
			return calculator.None(), fmt.Errorf("literal row %d: %w", i, err)
		}
		grid[i] = row
	}
	m, err := matrix.NewDense(len(grid), cols, grid)
	if err != nil {
		return calculator.None(), err
	}

	return calculator.Mat(m), nil
}

// parseRow converts exactly cols tokens to floats.
func parseRow(tokens []string, cols int) ([]float64, error) {
	if len(tokens) != cols {
		return nil, fmt.Errorf("got %d values, want %d: %w", len(tokens), cols, ErrRowLength)
	}
	row := make([]float64, cols)
	for j, tok := range tokens {
		v, err := parseFloat(tok)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}

	return row, nil
}

// parseFloat accepts finite float literals only.
func parseFloat(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadInput)
	}

	return v, nil
}
