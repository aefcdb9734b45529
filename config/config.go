package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/unitcalc/calc"
	"github.com/ardnew/unitcalc/quantity"
)

// Sentinel errors.
var (
	ErrDecode   = errors.New("decode configuration")
	ErrEncode   = errors.New("encode configuration")
	ErrFactor   = errors.New("invalid unit factor")
	ErrUnit     = errors.New("invalid unit definition")
	ErrConstant = errors.New("invalid constant")
)

// File is the structured content of a configuration file.
type File struct {
	Units     []Unit        `yaml:"units,omitempty"`
	Constants yaml.MapSlice `yaml:"constants,omitempty"`
}

// Unit defines a unit symbol as Factor times the unit expression Unit.
// An empty Unit defines a dimensionless unit.
type Unit struct {
	Symbol string `yaml:"symbol"`
	Factor Expr   `yaml:"factor"`
	Unit   string `yaml:"unit,omitempty"`
}

// Expr is expression source text. It decodes from any YAML scalar, so
// both "factor: 0.3048" and "factor: pi / 180" are accepted.
type Expr string

// UnmarshalYAML implements the interface unmarshaler of
// github.com/goccy/go-yaml.
func (e *Expr) UnmarshalYAML(unmarshal func(any) error) error {
	var v any

	if err := unmarshal(&v); err != nil {
		return err
	}

	*e = Expr(scalarText(v))

	return nil
}

// Default returns the configuration written by "unitcalc init".
func Default() File {
	return File{
		Units: []Unit{
			{Symbol: "ft", Factor: "0.3048", Unit: "m"},
			{Symbol: "in", Factor: "1 / 12", Unit: "ft"},
			{Symbol: "mi", Factor: "5280", Unit: "ft"},
			{Symbol: "lb", Factor: "0.45359237", Unit: "kg"},
			{Symbol: "cal", Factor: "4.184", Unit: "J"},
			{Symbol: "deg", Factor: "pi / 180"},
		},
		Constants: yaml.MapSlice{
			{Key: "g", Value: "9.80665 m/s^2"},
			{Key: "c", Value: "299792458 m/s"},
			{Key: "G", Value: "6.6743e-11 m^3/kg/s^2"},
		},
	}
}

// Load decodes a configuration from r. Empty input yields a zero File.
func Load(r io.Reader) (File, error) {
	var f File

	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return f, nil
}

// LoadFile decodes the configuration file at path. A missing file yields a
// zero File.
func LoadFile(path string) (File, error) {
	r, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, nil
	}

	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer r.Close()

	return Load(r)
}

// Encode writes v as YAML to w.
func Encode(ctx context.Context, w io.Writer, v any) error {
	data, err := yaml.MarshalContext(ctx, v, yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}

// Registry returns a copy of base extended with the configured units.
func (f File) Registry(base *quantity.Registry) (*quantity.Registry, error) {
	reg := base.Clone()

	for _, u := range f.Units {
		factor, err := Factor(string(u.Factor))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrUnit, u.Symbol, err)
		}

		if _, err := reg.Define(u.Symbol, factor, u.Unit); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrUnit, u.Symbol, err)
		}
	}

	return reg, nil
}

// Bind evaluates the configured constants in order and binds them in s.
func (f File) Bind(ctx context.Context, s *calc.Session) error {
	for _, item := range f.Constants {
		name := scalarText(item.Key)
		text := scalarText(item.Value)

		v, err := s.Evaluate(ctx, text)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrConstant, name, err)
		}

		if err := s.Define(name, v); err != nil {
			return fmt.Errorf("%w %q: %w", ErrConstant, name, err)
		}
	}

	return nil
}

var factorEnv = map[string]any{
	"pi": math.Pi,
	"e":  math.E,
}

// Factor evaluates a unit factor expression. The result must be finite and
// non-zero.
func Factor(source string) (float64, error) {
	program, err := expr.Compile(source, expr.Env(factorEnv), expr.AsFloat64())
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrFactor, source, err)
	}

	out, err := expr.Run(program, factorEnv)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrFactor, source, err)
	}

	f, ok := out.(float64)
	if !ok || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w %q: got %v", ErrFactor, source, out)
	}

	return f, nil
}

// scalarText renders a decoded YAML scalar as source text.
func scalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
