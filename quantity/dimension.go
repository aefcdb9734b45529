package quantity

import (
	"math"
	"strconv"
	"strings"
)

// Base dimension indices.
const (
	Length = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity

	numBase
)

// baseSymbol holds the SI base unit symbol of each base dimension.
var baseSymbol = [numBase]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Dimension is the exponent of each SI base dimension.
// The zero value is dimensionless.
type Dimension [numBase]int8

// Dim returns a Dimension with the given exponents in base order (length,
// mass, time, current, temperature, amount, luminosity). Missing trailing
// exponents are zero.
func Dim(exp ...int8) Dimension {
	var d Dimension

	copy(d[:], exp)

	return d
}

// IsZero reports whether d is dimensionless.
func (d Dimension) IsZero() bool { return d == Dimension{} }

func (d Dimension) mul(o Dimension) (Dimension, error) {
	var r Dimension

	for i := range d {
		n, err := narrow(int(d[i]) + int(o[i]))
		if err != nil {
			return Dimension{}, err
		}

		r[i] = n
	}

	return r, nil
}

func (d Dimension) div(o Dimension) (Dimension, error) {
	var r Dimension

	for i := range d {
		n, err := narrow(int(d[i]) - int(o[i]))
		if err != nil {
			return Dimension{}, err
		}

		r[i] = n
	}

	return r, nil
}

func (d Dimension) pow(p int8) (Dimension, error) {
	var r Dimension

	for i := range d {
		n, err := narrow(int(d[i]) * int(p))
		if err != nil {
			return Dimension{}, err
		}

		r[i] = n
	}

	return r, nil
}

// root divides every exponent by deg. Each exponent must be a multiple of
// deg.
func (d Dimension) root(deg int8) (Dimension, error) {
	var r Dimension

	for i := range d {
		if int(d[i])%int(deg) != 0 {
			return Dimension{}, ErrInvalidRoot
		}

		n, err := narrow(int(d[i]) / int(deg))
		if err != nil {
			return Dimension{}, err
		}

		r[i] = n
	}

	return r, nil
}

func narrow(n int) (int8, error) {
	if n > math.MaxInt8 || n < math.MinInt8 {
		return 0, ErrExponentOverflow
	}

	return int8(n), nil
}

// String renders d in base units, e.g. "kg*m/s^2". Dimensionless is "".
func (d Dimension) String() string {
	if name, ok := derivedName(d); ok {
		return name
	}

	return d.base()
}

// base renders d using only base unit symbols. Positive exponents are
// written first in base order, followed by "/" and the negative ones. With
// no positive exponents the negative ones keep their sign, e.g. "s^-1".
func (d Dimension) base() string {
	var num, den, inv []string

	// kg reads better first in compound units (kg*m^2/s^2).
	order := [numBase]int{Mass, Length, Time, Current, Temperature, Amount, Luminosity}

	for _, i := range order {
		switch e := d[i]; {
		case e > 0:
			num = append(num, term(baseSymbol[i], int(e)))
		case e < 0:
			den = append(den, term(baseSymbol[i], -int(e)))
			inv = append(inv, term(baseSymbol[i], int(e)))
		}
	}

	if len(num) == 0 {
		return strings.Join(inv, "*")
	}

	var sb strings.Builder

	sb.WriteString(strings.Join(num, "*"))

	for _, s := range den {
		sb.WriteByte('/')
		sb.WriteString(s)
	}

	return sb.String()
}

func (d Dimension) describe() string {
	if d.IsZero() {
		return "dimensionless"
	}

	return d.String()
}

func term(sym string, exp int) string {
	if exp == 1 {
		return sym
	}

	return sym + "^" + strconv.Itoa(exp)
}

// derived lists the named units used when rendering a dimension, in order
// of preference.
var derived = []struct {
	name string
	dim  Dimension
}{
	{"N", Dim(1, 1, -2)},
	{"J", Dim(2, 1, -2)},
	{"W", Dim(2, 1, -3)},
	{"Pa", Dim(-1, 1, -2)},
	{"C", Dim(0, 0, 1, 1)},
	{"V", Dim(2, 1, -3, -1)},
	{"Ω", Dim(2, 1, -3, -2)},
}

func derivedName(d Dimension) (string, bool) {
	for _, u := range derived {
		if u.dim == d {
			return u.name, true
		}
	}

	return "", false
}
