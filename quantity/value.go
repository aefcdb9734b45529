package quantity

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a magnitude in coherent SI units with its dimension.
type Value struct {
	Magnitude float64
	Dim       Dimension
}

// New returns a value of magnitude mag (in SI base units) and dimension dim.
func New(mag float64, dim Dimension) Value {
	return Value{Magnitude: mag, Dim: dim}
}

// Scalar returns a dimensionless value.
func Scalar(mag float64) Value {
	return Value{Magnitude: mag}
}

// Add returns v + o. The dimensions must match.
func (v Value) Add(o Value) (Value, error) {
	if v.Dim != o.Dim {
		return Value{}, &MismatchError{Op: "add", Left: v.Dim, Right: o.Dim}
	}

	return Value{Magnitude: v.Magnitude + o.Magnitude, Dim: v.Dim}, nil
}

// Sub returns v - o. The dimensions must match.
func (v Value) Sub(o Value) (Value, error) {
	if v.Dim != o.Dim {
		return Value{}, &MismatchError{Op: "subtract", Left: v.Dim, Right: o.Dim}
	}

	return Value{Magnitude: v.Magnitude - o.Magnitude, Dim: v.Dim}, nil
}

// Mul returns v * o. It fails only if a combined unit exponent leaves the
// int8 range.
func (v Value) Mul(o Value) (Value, error) {
	dim, err := v.Dim.mul(o.Dim)
	if err != nil {
		return Value{}, err
	}

	return Value{Magnitude: v.Magnitude * o.Magnitude, Dim: dim}, nil
}

// Div returns v / o. It fails only if a combined unit exponent leaves the
// int8 range.
func (v Value) Div(o Value) (Value, error) {
	dim, err := v.Dim.div(o.Dim)
	if err != nil {
		return Value{}, err
	}

	return Value{Magnitude: v.Magnitude / o.Magnitude, Dim: dim}, nil
}

// Pow returns v raised to the integer power p.
func (v Value) Pow(p int8) (Value, error) {
	dim, err := v.Dim.pow(p)
	if err != nil {
		return Value{}, err
	}

	return Value{Magnitude: math.Pow(v.Magnitude, float64(p)), Dim: dim}, nil
}

// Root returns the deg-th root of v. Every unit exponent of v must be a
// multiple of deg. Odd roots of negative magnitudes are negative; even
// roots of negative magnitudes are NaN.
func (v Value) Root(deg int8) (Value, error) {
	if deg == 0 {
		return Value{}, ErrInvalidRoot
	}

	dim, err := v.Dim.root(deg)
	if err != nil {
		return Value{}, err
	}

	m := v.Magnitude
	if m < 0 && deg%2 != 0 {
		m = -math.Pow(-m, 1/float64(deg))
	} else {
		m = math.Pow(m, 1/float64(deg))
	}

	return Value{Magnitude: m, Dim: dim}, nil
}

// Equal reports whether v and o have the same magnitude and dimension.
func (v Value) Equal(o Value) bool {
	return v.Dim == o.Dim && v.Magnitude == o.Magnitude
}

// Unit returns the rendering of v's dimension, "" if dimensionless.
func (v Value) Unit() string { return v.Dim.String() }

// String formats v as its shortest magnitude followed by its unit.
func (v Value) String() string {
	s := strconv.FormatFloat(v.Magnitude, 'g', -1, 64)
	if v.Dim.IsZero() {
		return s
	}

	return s + " " + v.Dim.String()
}

// Record is the machine-readable form of a [Value].
type Record struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Unit      string  `json:"unit"      yaml:"unit"`
	Text      string  `json:"text"      yaml:"text"`
}

// Record returns the machine-readable form of v.
func (v Value) Record() Record {
	return Record{Magnitude: v.Magnitude, Unit: v.Unit(), Text: v.String()}
}

// MarshalJSON implements [json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Record())
}

// MarshalYAML implements the interface marshaler of github.com/goccy/go-yaml.
func (v Value) MarshalYAML() (any, error) {
	return v.Record(), nil
}
