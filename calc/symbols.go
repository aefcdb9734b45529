package calc

import (
	"maps"
	"slices"

	"github.com/ardnew/unitcalc/quantity"
)

// Symbols maps variable names to their values.
type Symbols map[string]quantity.Value

// Lookup returns the value bound to name.
func (s Symbols) Lookup(name string) (quantity.Value, bool) {
	v, ok := s[name]

	return v, ok
}

// Names returns the bound names in sorted order.
func (s Symbols) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
