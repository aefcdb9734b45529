package calc

import (
	"context"
	"log/slog"

	"github.com/ardnew/unitcalc/log"
	"github.com/ardnew/unitcalc/quantity"
)

type evaluator struct {
	registry *quantity.Registry
	logger   log.Logger
}

// Evaluate computes the value of expr, resolving variable names in symbols.
// symbols is only read and may be nil.
func Evaluate(
	ctx context.Context,
	symbols Symbols,
	expr string,
	opts ...Option,
) (quantity.Value, error) {
	ev := makeEvaluator(opts...)

	v, err := ev.evaluate(ctx, symbols, expr, 0)
	if err != nil {
		return quantity.Value{}, err
	}

	ev.logger.TraceContext(ctx, "evaluate",
		slog.String("expr", expr),
		slog.String("result", v.String()),
	)

	return v, nil
}

// evaluate scans expr into operands and operators and reduces them to a
// single value. depth is the parenthesis nesting of expr within the
// top-level expression.
func (ev evaluator) evaluate(
	ctx context.Context,
	symbols Symbols,
	expr string,
	depth int,
) (quantity.Value, error) {
	operands, operators, err := ev.scan(ctx, symbols, expr, depth)
	if err != nil {
		return quantity.Value{}, err
	}

	if err := checkArity(expr, len(operands), len(operators)); err != nil {
		return quantity.Value{}, err
	}

	return ev.reduce(ctx, operands, operators)
}

// checkArity reports ErrMalformedExpression unless there is exactly one
// more operand than operators.
func checkArity(expr string, operands, operators int) error {
	if operators+1 == operands {
		return nil
	}

	return ErrMalformedExpression.With(
		slog.String("expr", expr),
		slog.Int("operands", operands),
		slog.Int("operators", operators),
	)
}
