// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"strings"
)

// Op is an operator symbol understood by Evaluate.
type Op string

// Recognized operators.
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMax Op = "max"
	OpMin Op = "min"
)

// Ops lists every recognized operator in dispatch priority order.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv, OpMax, OpMin}

// ParseOp maps a symbol (surrounding spaces ignored) to an Op.
func ParseOp(s string) (Op, error) {
	op := Op(strings.TrimSpace(s))
	for _, known := range Ops {
		if op == known {
			return op, nil
		}
	}

	return "", fmt.Errorf("parse %q: %w", s, ErrUnknownOperation)
}

// Unary reports whether op takes a single operand (max, min).
func (op Op) Unary() bool { return op == OpMax || op == OpMin }
