package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/console"
	"github.com/katalvlaran/matcalc/matrix"
)

func newPrompter(input string) (*console.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return console.NewPrompter(strings.NewReader(input), &out), &out
}

func TestReadMatrix(t *testing.T) {
	p, out := newPrompter("1 2 3\n\n4 5 6\n")

	m, err := p.ReadMatrix(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Grid())
	require.Contains(t, out.String(), "Fill in the lines (2✕3)")
}

func TestReadMatrix_RowLength(t *testing.T) {
	p, _ := newPrompter("1 2\n3\n")
	_, err := p.ReadMatrix(2, 2)
	require.ErrorIs(t, err, console.ErrRowLength)

	p, _ = newPrompter("1 2 3\n")
	_, err = p.ReadMatrix(1, 2)
	require.ErrorIs(t, err, console.ErrRowLength)
}

// TestReadMatrix_RejectedRowDrainsMatrix checks that the rows after a
// rejected one are not left behind as the next operand.
func TestReadMatrix_RejectedRowDrainsMatrix(t *testing.T) {
	p, _ := newPrompter("1\n2 2\n3 3\n7\n")
	_, err := p.ReadMatrix(3, 2)
	require.ErrorIs(t, err, console.ErrRowLength)

	next, err := p.ReadOperand()
	require.NoError(t, err)
	v, ok := next.Scalar()
	require.True(t, ok)
	require.Equal(t, 7.0, v)

	p, _ = newPrompter("1 x\n5\n+\n")
	_, err = p.ReadMatrix(2, 2)
	require.ErrorIs(t, err, console.ErrBadInput)
	op, err := p.ReadOp()
	require.NoError(t, err)
	require.Equal(t, calculator.OpAdd, op)

	// a short stream ends the drain without error
	p, _ = newPrompter("1\n2 2\n")
	_, err = p.ReadMatrix(4, 2)
	require.ErrorIs(t, err, console.ErrRowLength)
	_, err = p.ReadOp()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadMatrix_BadTokens(t *testing.T) {
	for _, in := range []string{"1 x\n", "1 NaN\n", "Inf 2\n"} {
		p, _ := newPrompter(in)
		_, err := p.ReadMatrix(1, 2)
		require.ErrorIs(t, err, console.ErrBadInput, in)
	}
}

func TestReadMatrix_EOF(t *testing.T) {
	p, _ := newPrompter("1 2\n")
	_, err := p.ReadMatrix(2, 2)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadShape(t *testing.T) {
	p, _ := newPrompter("2 3\n")
	r, c, err := p.ReadShape()
	require.NoError(t, err)
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	p, _ = newPrompter("0 3\n")
	_, _, err = p.ReadShape()
	require.ErrorIs(t, err, matrix.ErrBadShape)

	p, _ = newPrompter("2\n")
	_, _, err = p.ReadShape()
	require.ErrorIs(t, err, console.ErrBadInput)

	p, _ = newPrompter("two 3\n")
	_, _, err = p.ReadShape()
	require.ErrorIs(t, err, console.ErrBadInput)
}

func TestReadOperandAndOp(t *testing.T) {
	p, _ := newPrompter("m\n1 3\n5 9 9\nmax\n2.5\n/\n")

	a, err := p.ReadOperand()
	require.NoError(t, err)
	m, ok := a.Matrix()
	require.True(t, ok)
	require.Equal(t, [][]float64{{5, 9, 9}}, m.Grid())

	op, err := p.ReadOp()
	require.NoError(t, err)
	require.Equal(t, calculator.OpMax, op)

	b, err := p.ReadOperand()
	require.NoError(t, err)
	v, ok := b.Scalar()
	require.True(t, ok)
	require.Equal(t, 2.5, v)

	op, err = p.ReadOp()
	require.NoError(t, err)
	require.Equal(t, calculator.OpDiv, op)

	_, err = p.ReadOp()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadOp_Unknown(t *testing.T) {
	p, _ := newPrompter("pow\n")
	_, err := p.ReadOp()
	require.ErrorIs(t, err, calculator.ErrUnknownOperation)
}

func TestParseOperand(t *testing.T) {
	o, err := console.ParseOperand("-3.25")
	require.NoError(t, err)
	v, ok := o.Scalar()
	require.True(t, ok)
	require.Equal(t, -3.25, v)

	o, err = console.ParseOperand("1,2;3,4")
	require.NoError(t, err)
	m, ok := o.Matrix()
	require.True(t, ok)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Grid())

	o, err = console.ParseOperand("1, 1, 1;")
	require.NoError(t, err)
	m, ok = o.Matrix()
	require.True(t, ok)
	require.True(t, m.IsVector())

	_, err = console.ParseOperand("1,2;3")
	require.ErrorIs(t, err, console.ErrRowLength)

	_, err = console.ParseOperand("abc")
	require.ErrorIs(t, err, console.ErrBadInput)
}
