package calc

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/unitcalc/quantity"
)

// isOperator reports whether r is one of the binary operators.
func isOperator(r rune) bool {
	switch r {
	case '^', '/', '*', '-', '+':
		return true
	default:
		return false
	}
}

// scanner holds the state of a single pass over an expression.
type scanner struct {
	buf     strings.Builder
	nested  bool // buf holds the text of a parenthesized sub-expression
	depth   int
	prev    rune
	operand []quantity.Value
	opcode  []byte
}

// scan splits expr into operands and operators. An operator separates two
// operands only at bracket depth zero with a single space on either side;
// everything else accumulates into the current operand.
func (ev evaluator) scan(
	ctx context.Context,
	symbols Symbols,
	expr string,
	depth int,
) ([]quantity.Value, []byte, error) {
	text := []rune(expr)
	s := scanner{prev: '0'}

	for i, r := range text {
		switch {
		case r == ')':
			if s.depth > 1 {
				s.buf.WriteRune(r)
			}

			if s.depth < 1 {
				return nil, nil, ErrUnmatchedClosingBracket.With(
					slog.String("expr", expr),
					slog.Int("offset", i),
				)
			}

			s.depth--

		case isOperator(r) && s.depth == 0 && s.prev == ' ' &&
			i+1 < len(text) && text[i+1] == ' ':
			v, err := ev.resolve(ctx, symbols, &s, depth)
			if err != nil {
				return nil, nil, err
			}

			s.operand = append(s.operand, v)
			s.opcode = append(s.opcode, byte(r))

		case r == '(':
			if s.depth > 0 {
				s.buf.WriteRune(r)
			}

			s.depth++
			s.nested = true

		default:
			s.buf.WriteRune(r)
		}

		s.prev = r
	}

	if s.depth != 0 {
		return nil, nil, ErrUnmatchedOpeningBracket.With(
			slog.String("expr", expr),
			slog.Int("open", s.depth),
		)
	}

	v, err := ev.resolve(ctx, symbols, &s, depth)
	if err != nil {
		return nil, nil, err
	}

	return append(s.operand, v), s.opcode, nil
}

// resolve converts the buffered operand text into a value and resets the
// buffer. A parenthesized operand is evaluated recursively; otherwise the
// trimmed text is a variable name or a literal.
func (ev evaluator) resolve(
	ctx context.Context,
	symbols Symbols,
	s *scanner,
	depth int,
) (quantity.Value, error) {
	text := s.buf.String()
	s.buf.Reset()

	if s.nested {
		s.nested = false

		return ev.evaluate(ctx, symbols, text, depth+1)
	}

	text = strings.TrimSpace(text)

	if v, ok := symbols.Lookup(text); ok {
		ev.logger.TraceContext(ctx, "scan operand",
			slog.String("symbol", text),
			slog.String("value", v.String()),
			slog.Int("depth", depth),
		)

		return v, nil
	}

	v, err := ev.registry.Parse(text)
	if err != nil {
		return quantity.Value{}, ErrInvalidLiteral.Wrap(err).With(
			slog.String("literal", text),
		)
	}

	ev.logger.TraceContext(ctx, "scan operand",
		slog.String("literal", text),
		slog.String("value", v.String()),
		slog.Int("depth", depth),
	)

	return v, nil
}
