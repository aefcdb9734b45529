package quantity

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		symbol string
		factor float64
		dim    Dimension
	}{
		{"m", 1, Dim(1)},
		{"mm", 1e-3, Dim(1)},
		{"min", 60, Dim(0, 0, 1)},
		{"ms", 1e-3, Dim(0, 0, 1)},
		{"cd", 1, Dim(0, 0, 0, 0, 0, 0, 1)},
		{"dam", 10, Dim(1)},
		{"dL", 1e-4, Dim(3)},
		{"hPa", 100, Dim(-1, 1, -2)},
		{"µs", 1e-6, Dim(0, 0, 1)},
		{"kohm", 1e3, Dim(2, 1, -3, -2)},
	}

	for _, tt := range tests {
		u, ok := r.Lookup(tt.symbol)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.symbol)

			continue
		}

		if u.Dim != tt.dim {
			t.Errorf("Lookup(%q) dim = %v, want %v", tt.symbol, u.Dim, tt.dim)
		}

		if diff := u.Factor - tt.factor; diff > 1e-15 || diff < -1e-15 {
			t.Errorf("Lookup(%q) factor = %g, want %g", tt.symbol, u.Factor, tt.factor)
		}
	}

	for _, sym := range []string{"", "x", "kmin", "k", "hh"} {
		if _, ok := r.Lookup(sym); ok {
			t.Errorf("Lookup(%q) unexpectedly found", sym)
		}
	}
}

func TestRegistry_Define(t *testing.T) {
	r := NewRegistry()

	ft, err := r.Define("ft", 0.3048, "m")
	if err != nil {
		t.Fatalf("Define ft: %v", err)
	}

	if ft.Dim != Dim(1) || ft.Factor != 0.3048 {
		t.Errorf("ft = %+v", ft)
	}

	if _, err := r.Define("mph", 1609.344/3600, "m/s"); err != nil {
		t.Fatalf("Define mph: %v", err)
	}

	v, err := r.Parse("3 ft")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if v.Dim != Dim(1) {
		t.Errorf("3 ft dim = %v", v.Dim)
	}

	if _, ok := r.Lookup("kft"); !ok {
		t.Error("defined units should accept prefixes")
	}

	if !slices.Contains(r.Symbols(), "mph") {
		t.Error("Symbols() missing mph")
	}

	if _, err := DefaultRegistry().Parse("1 ft"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("default registry must not see local definitions: %v", err)
	}
}

func TestRegistry_DefineErrors(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name   string
		symbol string
		factor float64
		unit   string
		want   error
	}{
		{"duplicate", "m", 1, "", ErrDuplicateUnit},
		{"empty_symbol", "", 1, "", ErrInvalidSymbol},
		{"digit_symbol", "x2", 1, "", ErrInvalidSymbol},
		{"zero_factor", "zz", 0, "", ErrInvalidFactor},
		{"unknown_base", "zz", 1, "furlong", ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Define(tt.symbol, tt.factor, tt.unit)
			if !errors.Is(err, tt.want) {
				t.Errorf("Define error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	base := NewRegistry()
	clone := base.Clone()

	if _, err := clone.Define("ft", 0.3048, "m"); err != nil {
		t.Fatalf("Define: %v", err)
	}

	if _, ok := base.Lookup("ft"); ok {
		t.Error("definition leaked into the original registry")
	}

	if got, want := len(clone.Units()), len(base.Units())+1; got != want {
		t.Errorf("len(clone.Units()) = %d, want %d", got, want)
	}
}
