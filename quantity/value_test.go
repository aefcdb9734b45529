package quantity

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()

	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}

	return v
}

func TestValue_AddSub(t *testing.T) {
	a := mustParse(t, "2 m")
	b := mustParse(t, "50 cm")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := sum.String(); got != "2.5 m" {
		t.Errorf("2 m + 50 cm = %s, want 2.5 m", got)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}

	if got := diff.String(); got != "1.5 m" {
		t.Errorf("2 m - 50 cm = %s, want 1.5 m", got)
	}
}

func TestValue_AddMismatch(t *testing.T) {
	_, err := mustParse(t, "1 m").Add(mustParse(t, "1 kg"))
	if !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}

	if mismatch.Op != "add" {
		t.Errorf("Op = %q, want add", mismatch.Op)
	}

	if !strings.Contains(err.Error(), "m and kg") {
		t.Errorf("unexpected message: %v", err)
	}

	_, err = Scalar(1).Sub(mustParse(t, "1 s"))
	if !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}

	if !strings.Contains(err.Error(), "dimensionless and s") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValue_MulDiv(t *testing.T) {
	speed := mustParse(t, "5 m/s")
	dt := mustParse(t, "2 s")

	dist, err := speed.Mul(dt)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	if got := dist.String(); got != "10 m" {
		t.Errorf("5 m/s * 2 s = %s, want 10 m", got)
	}

	acc, err := speed.Div(dt)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}

	if got := acc.String(); got != "2.5 m/s^2" {
		t.Errorf("5 m/s / 2 s = %s, want 2.5 m/s^2", got)
	}

	force, err := mustParse(t, "2 kg").Mul(acc)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	if got := force.String(); got != "5 N" {
		t.Errorf("2 kg * 2.5 m/s^2 = %s, want 5 N", got)
	}
}

func TestValue_ExponentOverflow(t *testing.T) {
	v := New(1, Dim(100))

	if _, err := v.Mul(v); !errors.Is(err, ErrExponentOverflow) {
		t.Errorf("Mul: expected ErrExponentOverflow, got %v", err)
	}

	if _, err := v.Pow(2); !errors.Is(err, ErrExponentOverflow) {
		t.Errorf("Pow: expected ErrExponentOverflow, got %v", err)
	}
}

func TestValue_PowRoot(t *testing.T) {
	sq, err := mustParse(t, "3 m").Pow(2)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}

	if got := sq.String(); got != "9 m^2" {
		t.Errorf("(3 m)^2 = %s, want 9 m^2", got)
	}

	inv, err := Scalar(2).Pow(-1)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}

	if inv.Magnitude != 0.5 {
		t.Errorf("2^-1 = %g, want 0.5", inv.Magnitude)
	}

	side, err := sq.Root(2)
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	if got := side.String(); got != "3 m" {
		t.Errorf("sqrt(9 m^2) = %s, want 3 m", got)
	}

	cube, err := Scalar(-27).Root(3)
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	if math.Abs(cube.Magnitude+3) > 1e-12 {
		t.Errorf("cbrt(-27) = %g, want -3", cube.Magnitude)
	}

	even, err := Scalar(-4).Root(2)
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	if !math.IsNaN(even.Magnitude) {
		t.Errorf("sqrt(-4) = %g, want NaN", even.Magnitude)
	}

	if _, err := mustParse(t, "8 m").Root(2); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("sqrt(8 m): expected ErrInvalidRoot, got %v", err)
	}

	if _, err := Scalar(8).Root(0); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("root 0: expected ErrInvalidRoot, got %v", err)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Scalar(20), "20"},
		{Scalar(2.5), "2.5"},
		{New(1, Dim(0, 0, -1)), "1 s^-1"},
		{New(5, Dim(0, 0, -2)), "5 s^-2"},
		{New(2, Dim(-1, 0, -1)), "2 m^-1*s^-1"},
		{New(4, Dim(1, 0, -1)), "4 m/s"},
		{New(3, Dim(2)), "3 m^2"},
		{New(1, Dim(2, 1, -2)), "1 J"},
		{New(1, Dim(1, 0, 0, 0, 1)), "1 m*K"},
		{New(7, Dim(-3, 1)), "7 kg/m^3"},
		{New(1, Dim(2, 1, -3, -2)), "1 Ω"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(mustParse(t, "2 km"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"magnitude":2000,"unit":"m","text":"2000 m"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
