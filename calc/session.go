package calc

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/unitcalc/quantity"
)

// ExitCommand is the input line that ends a session.
const ExitCommand = "exit"

// OutcomeKind classifies the result of [Session.Execute].
type OutcomeKind int

const (
	// OutcomeSkip is returned for blank lines.
	OutcomeSkip OutcomeKind = iota
	// OutcomeExit is returned for [ExitCommand].
	OutcomeExit
	// OutcomeValue is returned for evaluated expressions.
	OutcomeValue
	// OutcomeAssign is returned when a value was bound to a name.
	OutcomeAssign
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkip:
		return "skip"
	case OutcomeExit:
		return "exit"
	case OutcomeValue:
		return "value"
	case OutcomeAssign:
		return "assign"
	default:
		return "unknown"
	}
}

// Outcome is the result of executing one line.
type Outcome struct {
	Kind  OutcomeKind
	Name  string // Bound name, set for OutcomeAssign
	Value quantity.Value
}

// String renders the outcome for display: the value, or "name = value" for
// an assignment. Skip and exit outcomes render empty.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeValue:
		return o.Value.String()
	case OutcomeAssign:
		return o.Name + " = " + o.Value.String()
	default:
		return ""
	}
}

// Session executes input lines against a symbol table that persists
// between lines. It is not safe for concurrent use.
type Session struct {
	symbols Symbols
	opts    []Option
	ev      evaluator
}

// NewSession returns a session with an empty symbol table. The options
// apply to every evaluation in the session.
func NewSession(opts ...Option) *Session {
	return &Session{
		symbols: make(Symbols),
		opts:    opts,
		ev:      makeEvaluator(opts...),
	}
}

// Execute runs one line of input. A line is either [ExitCommand], blank,
// an expression, or an assignment of the form "name = expression". On
// error the symbol table is unchanged.
func (s *Session) Execute(ctx context.Context, line string) (Outcome, error) {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return Outcome{Kind: OutcomeSkip}, nil
	case ExitCommand:
		return Outcome{Kind: OutcomeExit}, nil
	}

	switch strings.Count(line, "=") {
	case 0:
		v, err := s.Evaluate(ctx, line)
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{Kind: OutcomeValue, Value: v}, nil

	case 1:
		lhs, rhs, _ := strings.Cut(line, "=")

		name := strings.TrimSpace(lhs)
		if !IsValidName(name) {
			return Outcome{}, ErrInvalidVariableName.With(slog.String("name", name))
		}

		v, err := s.Evaluate(ctx, strings.TrimSpace(rhs))
		if err != nil {
			return Outcome{}, err
		}

		s.symbols[name] = v

		s.ev.logger.DebugContext(ctx, "bind",
			slog.String("name", name),
			slog.String("value", v.String()),
		)

		return Outcome{Kind: OutcomeAssign, Name: name, Value: v}, nil

	default:
		return Outcome{}, ErrTooManyAssignments.With(slog.String("line", line))
	}
}

// Evaluate computes expr against the session's symbols without binding
// the result.
func (s *Session) Evaluate(ctx context.Context, expr string) (quantity.Value, error) {
	return Evaluate(ctx, s.symbols, expr, s.opts...)
}

// Define binds value to name, replacing any previous binding.
func (s *Session) Define(name string, value quantity.Value) error {
	if !IsValidName(name) {
		return ErrInvalidVariableName.With(slog.String("name", name))
	}

	s.symbols[name] = value

	return nil
}

// Lookup returns the value bound to name.
func (s *Session) Lookup(name string) (quantity.Value, bool) {
	return s.symbols.Lookup(name)
}

// Symbols returns the bound names in sorted order.
func (s *Session) Symbols() []string {
	return s.symbols.Names()
}

// Registry returns the unit registry used to parse literals.
func (s *Session) Registry() *quantity.Registry {
	return s.ev.registry
}
