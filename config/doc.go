// Package config reads and writes the unitcalc configuration file.
//
// The file is YAML. Top-level scalar keys hold command-line flag defaults
// and are consumed by the command-line parser; this package handles the
// two structured sections:
//
//	units:
//	  - symbol: ft
//	    factor: 0.3048
//	    unit: m
//	  - symbol: deg
//	    factor: pi / 180
//	constants:
//	  g: 9.80665 m/s^2
//	  c: 299792458 m/s
//
// A unit factor is an expression evaluated with github.com/expr-lang/expr
// in an environment defining pi and e. Units are defined in file order, so
// a unit may be expressed in terms of any unit above it.
//
// Constants are expressions evaluated in file order by a [calc.Session]
// and bound as variables, so a constant may refer to the constants above
// it.
package config
