package calc

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/unitcalc/quantity"
)

func TestSession_Execute(t *testing.T) {
	s := NewSession()

	steps := []struct {
		line string
		kind OutcomeKind
		text string
	}{
		{"x = 5", OutcomeAssign, "x = 5"},
		{"x + 1", OutcomeValue, "6"},
		{"x = 10", OutcomeAssign, "x = 10"},
		{"x + 1", OutcomeValue, "11"},
		{"  d = 5 m/s * 2 s  ", OutcomeAssign, "d = 10 m"},
		{"d / x", OutcomeValue, "1 m"},
		{"", OutcomeSkip, ""},
		{"   ", OutcomeSkip, ""},
		{"exit", OutcomeExit, ""},
	}

	for _, step := range steps {
		out, err := s.Execute(t.Context(), step.line)
		if err != nil {
			t.Fatalf("Execute(%q) error: %v", step.line, err)
		}

		if out.Kind != step.kind {
			t.Errorf("Execute(%q) kind = %v, want %v", step.line, out.Kind, step.kind)
		}

		if out.String() != step.text {
			t.Errorf("Execute(%q) = %q, want %q", step.line, out, step.text)
		}
	}
}

func TestSession_Execute_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"1x = 2", ErrInvalidVariableName},
		{" = 2", ErrInvalidVariableName},
		{"a b = 2", ErrInvalidVariableName},
		{"a = b = 1", ErrTooManyAssignments},
		{"==", ErrTooManyAssignments},
		{"y = 1 m + 1 kg", quantity.ErrUnitMismatch},
		{"y = 5 )", ErrUnmatchedClosingBracket},
		{"y = ", ErrInvalidLiteral},
	}

	for _, tt := range tests {
		s := NewSession()

		if _, err := s.Execute(t.Context(), tt.line); !errors.Is(err, tt.want) {
			t.Errorf("Execute(%q) error = %v, want %v", tt.line, err, tt.want)
		}

		if names := s.Symbols(); len(names) != 0 {
			t.Errorf("Execute(%q) bound %v despite error", tt.line, names)
		}
	}
}

func TestSession_ErrorKeepsPreviousBinding(t *testing.T) {
	s := NewSession()

	if _, err := s.Execute(t.Context(), "x = 2 m"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Execute(t.Context(), "x = x + 1 s"); err == nil {
		t.Fatal("expected unit mismatch")
	}

	v, ok := s.Lookup("x")
	if !ok || v.String() != "2 m" {
		t.Errorf("expected x = 2 m, got %v (bound %v)", v, ok)
	}
}

func TestSession_DefineAndSymbols(t *testing.T) {
	s := NewSession()

	if err := s.Define("g", quantity.New(9.80665, quantity.Dim(1, 0, -2))); err != nil {
		t.Fatalf("define: %v", err)
	}

	if err := s.Define("c", quantity.Scalar(3)); err != nil {
		t.Fatalf("define: %v", err)
	}

	if err := s.Define("9lives", quantity.Scalar(9)); !errors.Is(err, ErrInvalidVariableName) {
		t.Errorf("expected ErrInvalidVariableName, got %v", err)
	}

	if got := s.Symbols(); !slices.Equal(got, []string{"c", "g"}) {
		t.Errorf("Symbols() = %v", got)
	}

	out, err := s.Execute(t.Context(), "g * 2 s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "19.6133 m/s" {
		t.Errorf("got %q", out)
	}
}
