package quantity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse parses text using the [DefaultRegistry].
func Parse(text string) (Value, error) {
	return DefaultRegistry().Parse(text)
}

// Parse parses a literal quantity: a decimal floating-point number
// optionally followed by a unit expression, e.g. "5", "-2.5e3 kg" or
// "9.81m/s^2". Surrounding whitespace is ignored.
//
// A unit expression is a sequence of unit symbols joined by "*" or "/",
// each optionally raised to a signed integer power with "^". Operators
// apply left to right to the single term that follows them, so "kg*m/s^2"
// is kilogram metres per second squared and "m/s/s" is metres per second
// squared.
//
// A number too large for a float64 parses as ±Inf.
func (r *Registry) Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, ErrEmpty
	}

	n := numberLen(s)
	if n == 0 {
		return Value{}, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}

	mag, err := strconv.ParseFloat(s[:n], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("%w %q", ErrInvalidNumber, s[:n])
	}

	scale, dim, err := r.parseUnit(s[n:])
	if err != nil {
		return Value{}, err
	}

	return Value{Magnitude: mag * scale, Dim: dim}, nil
}

// numberLen returns the length of the decimal number at the start of s, or
// zero if s does not start with one. An exponent is only consumed when it
// is followed by at least one digit, so "2Em" leaves "Em" as the unit.
func numberLen(s string) int {
	i := 0

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0

	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++

		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}

	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			i = j
		}
	}

	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseUnit returns the scale factor and dimension of a unit expression.
func (r *Registry) parseUnit(expr string) (float64, Dimension, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 1, Dimension{}, nil
	}

	var (
		scale = 1.0
		dim   Dimension
		op    byte = '*'
	)

	for {
		end := strings.IndexAny(expr, "*/")
		if end < 0 {
			end = len(expr)
		}

		f, d, err := r.parseTerm(expr[:end])
		if err != nil {
			return 0, Dimension{}, err
		}

		if op == '*' {
			scale *= f
			dim, err = dim.mul(d)
		} else {
			scale /= f
			dim, err = dim.div(d)
		}

		if err != nil {
			return 0, Dimension{}, err
		}

		if end == len(expr) {
			return scale, dim, nil
		}

		op = expr[end]
		expr = expr[end+1:]
	}
}

// parseTerm parses a single "symbol" or "symbol^exp" term.
func (r *Registry) parseTerm(term string) (float64, Dimension, error) {
	term = strings.TrimSpace(term)

	sym, exp, hasExp := strings.Cut(term, "^")
	sym = strings.TrimSpace(sym)

	if sym == "" {
		return 0, Dimension{}, fmt.Errorf("%w: missing unit in %q", ErrInvalidUnit, term)
	}

	p := int64(1)

	if hasExp {
		var err error

		p, err = strconv.ParseInt(strings.TrimSpace(exp), 10, 8)
		if err != nil {
			return 0, Dimension{}, fmt.Errorf("%w: bad exponent in %q", ErrInvalidUnit, term)
		}
	}

	u, ok := r.Lookup(sym)
	if !ok {
		return 0, Dimension{}, fmt.Errorf("%w %q", ErrUnknownUnit, sym)
	}

	dim, err := u.Dim.pow(int8(p))
	if err != nil {
		return 0, Dimension{}, err
	}

	return math.Pow(u.Factor, float64(p)), dim, nil
}
