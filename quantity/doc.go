// Package quantity implements numeric values tagged with physical units.
//
// A [Value] stores its magnitude in coherent SI base units together with a
// [Dimension], the exponent vector over the seven SI base dimensions. Units
// written by the user are resolved through a [Registry], which knows the SI
// prefixes, the base and common derived units, and any units defined at
// runtime:
//
//	v, err := quantity.DefaultRegistry().Parse("9.81 m/s^2")
//	w, err := v.Mul(quantity.Scalar(2))
//	fmt.Println(w) // 19.62 m/s^2
//
// Addition and subtraction require identical dimensions and fail with
// [ErrUnitMismatch] otherwise. Multiplication and division combine
// dimensions. Integer powers and roots scale them.
//
// Values are immutable and safe to copy.
package quantity
