package calc

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/ardnew/unitcalc/quantity"
)

type operator struct {
	symbol byte
	apply  func(l, r quantity.Value) (quantity.Value, error)
}

// precedence lists the operators from highest to lowest priority.
var precedence = []operator{
	{'^', power},
	{'/', quantity.Value.Div},
	{'*', quantity.Value.Mul},
	{'-', quantity.Value.Sub},
	{'+', quantity.Value.Add},
}

// reduce folds operands and operators into a single value. Each operator
// in turn is applied at its leftmost remaining position until none is
// left.
func (ev evaluator) reduce(
	ctx context.Context,
	operands []quantity.Value,
	operators []byte,
) (quantity.Value, error) {
	for _, op := range precedence {
		for {
			i := slices.Index(operators, op.symbol)
			if i < 0 {
				break
			}

			v, err := op.apply(operands[i], operands[i+1])
			if err != nil {
				return quantity.Value{}, WrapError(err).With(
					slog.String("operator", string(op.symbol)),
					slog.String("left", operands[i].String()),
					slog.String("right", operands[i+1].String()),
				)
			}

			ev.logger.TraceContext(ctx, "reduce",
				slog.String("operator", string(op.symbol)),
				slog.String("left", operands[i].String()),
				slog.String("right", operands[i+1].String()),
				slog.String("result", v.String()),
			)

			operands[i] = v
			operands = slices.Delete(operands, i+1, i+2)
			operators = slices.Delete(operators, i, i+1)
		}
	}

	return operands[0], nil
}

// power raises l to the magnitude of r rounded to an integer. When that
// magnitude is below one, r is read as 1/n and the n-th root of l is taken
// instead, with n reduced modulo 2^32.
func power(l, r quantity.Value) (quantity.Value, error) {
	if math.Abs(r.Magnitude) >= 1 {
		return l.Pow(saturate(math.Round(r.Magnitude)))
	}

	n := math.Mod(math.Round(1/r.Magnitude), 1<<32)
	if n < 0 {
		n += 1 << 32
	}

	return l.Root(saturate(n))
}

// saturate converts f to int8, clamping to the int8 range. NaN is zero.
func saturate(f float64) int8 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt8:
		return math.MaxInt8
	case f <= math.MinInt8:
		return math.MinInt8
	default:
		return int8(f)
	}
}
