package quantity

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"unicode"
)

// Unit is a named unit: one of it equals Factor times the coherent SI unit
// of dimension Dim.
type Unit struct {
	Symbol     string
	Factor     float64
	Dim        Dimension
	Prefixable bool
}

// Base returns the SI rendering of the unit's dimension.
func (u Unit) Base() string { return u.Dim.base() }

type prefix struct {
	symbol string
	exp    int
}

// prefixes is ordered so that multi-character symbols are tried first.
var prefixes = []prefix{
	{"da", 1},
	{"Q", 30}, {"R", 27}, {"Y", 24}, {"Z", 21}, {"E", 18}, {"P", 15},
	{"T", 12}, {"G", 9}, {"M", 6}, {"k", 3}, {"h", 2},
	{"d", -1}, {"c", -2}, {"m", -3}, {"u", -6}, {"µ", -6}, {"n", -9},
	{"p", -12}, {"f", -15}, {"a", -18}, {"z", -21}, {"y", -24},
	{"r", -27}, {"q", -30},
}

var builtin = []Unit{
	{"m", 1, Dim(1), true},
	{"g", 1e-3, Dim(0, 1), true},
	{"s", 1, Dim(0, 0, 1), true},
	{"A", 1, Dim(0, 0, 0, 1), true},
	{"K", 1, Dim(0, 0, 0, 0, 1), true},
	{"mol", 1, Dim(0, 0, 0, 0, 0, 1), true},
	{"cd", 1, Dim(0, 0, 0, 0, 0, 0, 1), true},
	{"min", 60, Dim(0, 0, 1), false},
	{"h", 3600, Dim(0, 0, 1), false},
	{"d", 86400, Dim(0, 0, 1), false},
	{"L", 1e-3, Dim(3), true},
	{"Hz", 1, Dim(0, 0, -1), true},
	{"N", 1, Dim(1, 1, -2), true},
	{"Pa", 1, Dim(-1, 1, -2), true},
	{"J", 1, Dim(2, 1, -2), true},
	{"W", 1, Dim(2, 1, -3), true},
	{"C", 1, Dim(0, 0, 1, 1), true},
	{"V", 1, Dim(2, 1, -3, -1), true},
	{"Ω", 1, Dim(2, 1, -3, -2), true},
	{"ohm", 1, Dim(2, 1, -3, -2), true},
	{"rad", 1, Dim(), true},
}

// Registry maps unit symbols to units. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units map[string]Unit
	order []string
}

// NewRegistry returns a registry holding the built-in units.
func NewRegistry() *Registry {
	r := &Registry{units: make(map[string]Unit, len(builtin))}

	for _, u := range builtin {
		r.units[u.Symbol] = u
		r.order = append(r.order, u.Symbol)
	}

	return r
}

// DefaultRegistry returns the shared registry of built-in units.
// Callers that define units should [Registry.Clone] it first.
var DefaultRegistry = sync.OnceValue(NewRegistry)

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{
		units: make(map[string]Unit, len(r.units)),
		order: slices.Clone(r.order),
	}

	for k, v := range r.units {
		c.units[k] = v
	}

	return c
}

// Define adds a prefixable unit named symbol equal to factor times the unit
// expression unit (for example "m" or "kg*m/s^2"). An empty unit expression
// defines a dimensionless unit.
func (r *Registry) Define(symbol string, factor float64, unit string) (Unit, error) {
	if symbol == "" || strings.IndexFunc(symbol, notLetter) >= 0 {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Unit{}, fmt.Errorf("%w: %s = %g", ErrInvalidFactor, symbol, factor)
	}

	scale, dim, err := r.parseUnit(unit)
	if err != nil {
		return Unit{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.units[symbol]; ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrDuplicateUnit, symbol)
	}

	u := Unit{Symbol: symbol, Factor: factor * scale, Dim: dim, Prefixable: true}
	r.units[symbol] = u
	r.order = append(r.order, symbol)

	return u, nil
}

// Lookup resolves symbol, either exactly or as an SI prefix followed by a
// prefixable unit. Exact matches take precedence, so "m" is the metre and
// "min" the minute while "mm" is the millimetre.
func (r *Registry) Lookup(symbol string) (Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.units[symbol]; ok {
		return u, true
	}

	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(symbol, p.symbol)
		if !ok || rest == "" {
			continue
		}

		u, ok := r.units[rest]
		if !ok || !u.Prefixable {
			continue
		}

		return Unit{
			Symbol: symbol,
			Factor: math.Pow10(p.exp) * u.Factor,
			Dim:    u.Dim,
		}, true
	}

	return Unit{}, false
}

// Units returns the registered units in definition order.
func (r *Registry) Units() []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]Unit, len(r.order))
	for i, sym := range r.order {
		units[i] = r.units[sym]
	}

	return units
}

// Symbols returns the registered unit symbols in definition order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

func notLetter(c rune) bool { return !unicode.IsLetter(c) }
