// SPDX-License-Identifier: MIT

package calculator

import (
	"log/slog"
	"time"
)

// timed is an Evaluator decorator that measures and logs each call.
type timed struct {
	next   Evaluator
	logger *slog.Logger
	now    func() time.Time
}

// WithTiming wraps next so every Evaluate call is timed and logged as one
// structured record on logger: Info on success, Error on failure. The wrapped
// result and error are returned untouched.
func WithTiming(next Evaluator, logger *slog.Logger) Evaluator {
	if logger == nil {
		logger = slog.Default()
	}

	return &timed{next: next, logger: logger, now: time.Now}
}

// Evaluate implements Evaluator.
func (t *timed) Evaluate(a Operand, op Op, b Operand) (Operand, error) {
	start := t.now()
	res, err := t.next.Evaluate(a, op, b)
	elapsed := t.now().Sub(start)

	attrs := []any{
		slog.String("op", string(op)),
		slog.String("a", a.describe()),
		slog.String("b", b.describe()),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		t.logger.Error("evaluate failed", append(attrs, slog.Any("err", err))...)
		return res, err
	}
	t.logger.Info("evaluate", append(attrs, slog.String("result", res.describe()))...)

	return res, nil
}
