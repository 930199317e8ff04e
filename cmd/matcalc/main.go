// SPDX-License-Identifier: MIT

// Command matcalc is an interactive matrix calculator.
//
// Without arguments it prompts for an operand, an operator and (for binary
// operators) a second operand, prints the result and starts over until end of
// input. The eval subcommand evaluates a single request given inline:
//
//	matcalc eval '*' '1,2;3,4' '1,2;3,4'
//	matcalc eval max '5,9,9'
//	matcalc eval -- + -1 2
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/lmittmann/tint"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/console"
	"github.com/katalvlaran/matcalc/matrix"
)

const version = "matcalc 0.1.0"

const usage = `matcalc - interactive matrix calculator.

Usage:
  matcalc [--verbose] [--timing] [--no-color]
  matcalc eval [--verbose] [--timing] [--no-color] [--] <op> <a> [<b>]
  matcalc -h | --help
  matcalc --version

Options:
  -h --help     Show this screen.
  --version     Show version.
  --verbose     Log dispatch decisions at debug level.
  --timing      Log the duration of every evaluation.
  --no-color    Disable colored log output.

Operands in eval mode are a number (2.5) or a matrix literal (1,2;3,4).
Put -- before the operator when an operand starts with '-'.
`

// config is the docopt-bound command line.
type config struct {
	Eval    bool   `docopt:"eval"`
	Op      string `docopt:"<op>"`
	A       string `docopt:"<a>"`
	B       string `docopt:"<b>"`
	Verbose bool   `docopt:"--verbose"`
	Timing  bool   `docopt:"--timing"`
	NoColor bool   `docopt:"--no-color"`
	Help    bool   `docopt:"--help"`
	Version bool   `docopt:"--version"`
	Dashes  bool   `docopt:"--"`
}

func main() {
	cfg, err := parseConfig(&docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	os.Exit(run(cfg, logger, os.Stdin, os.Stdout))
}

// parseConfig matches argv against usage and binds the result.
func parseConfig(p *docopt.Parser, argv []string) (config, error) {
	var cfg config
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return cfg, err
	}
	if err := opts.Bind(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// newLogger builds the tint terminal handler.
func newLogger(cfg config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.NoColor,
	}))
}

// run executes one invocation and returns the process exit code.
func run(cfg config, logger *slog.Logger, in io.Reader, out io.Writer) int {
	var ev calculator.Evaluator = calculator.New(calculator.WithLogger(logger))
	if cfg.Timing {
		ev = calculator.WithTiming(ev, logger)
	}

	if cfg.Eval {
		if err := evalOnce(ev, cfg, out); err != nil {
			logger.Error("eval failed", "err", err)
			return 1
		}
		return 0
	}

	if err := session(ev, console.NewPrompter(in, out), out, logger); err != nil {
		logger.Error("session aborted", "err", err)
		return 1
	}

	return 0
}

// evalOnce evaluates the inline request carried by cfg.
func evalOnce(ev calculator.Evaluator, cfg config, out io.Writer) error {
	op, err := calculator.ParseOp(cfg.Op)
	if err != nil {
		return err
	}
	a, err := console.ParseOperand(cfg.A)
	if err != nil {
		return fmt.Errorf("<a>: %w", err)
	}
	b := calculator.None()
	if cfg.B != "" {
		if b, err = console.ParseOperand(cfg.B); err != nil {
			return fmt.Errorf("<b>: %w", err)
		}
	}

	res, err := ev.Evaluate(a, op, b)
	if err != nil {
		return err
	}
	printResult(out, res)

	return nil
}

// session runs the interactive loop until end of input. Request errors are
// logged and the loop continues; only read failures other than EOF abort.
func session(ev calculator.Evaluator, p *console.Prompter, out io.Writer, logger *slog.Logger) error {
	for {
		res, err := readAndEvaluate(ev, p)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case isRequestError(err):
			logger.Error("request failed", "err", err)
		case err != nil:
			return err
		default:
			printResult(out, res)
		}
	}
}

func readAndEvaluate(ev calculator.Evaluator, p *console.Prompter) (calculator.Operand, error) {
	a, err := p.ReadOperand()
	if err != nil {
		return calculator.None(), err
	}
	op, err := p.ReadOp()
	if err != nil {
		return calculator.None(), err
	}
	b := calculator.None()
	if !op.Unary() {
		if b, err = p.ReadOperand(); err != nil {
			return calculator.None(), err
		}
	}

	return ev.Evaluate(a, op, b)
}

// requestErrors are the failures a user can recover from by typing the next
// request; anything else (a broken input stream) ends the session.
var requestErrors = []error{
	console.ErrBadInput,
	console.ErrRowLength,
	matrix.ErrBadShape,
	matrix.ErrShapeMismatch,
	matrix.ErrDimensionMismatch,
	matrix.ErrNotVector,
	calculator.ErrTypeMismatch,
	calculator.ErrDivideByZero,
	calculator.ErrUnsupportedOperation,
	calculator.ErrInvalidArguments,
	calculator.ErrUnknownOperation,
}

func isRequestError(err error) bool {
	for _, target := range requestErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func printResult(out io.Writer, res calculator.Operand) {
	fmt.Fprintln(out, "Result:")
	if _, ok := res.Scalar(); ok {
		fmt.Fprintln(out, res.String())
		return
	}
	fmt.Fprint(out, res.String())
}
