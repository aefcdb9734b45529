// Package calc evaluates arithmetic expressions over unit-carrying values.
//
// # Expressions
//
// An expression is a sequence of operands separated by the binary operators
// "^", "/", "*", "-" and "+". An operator only separates operands when it
// stands alone between two single spaces outside any parentheses, so
//
//	2 + 3
//
// is an addition while "2+3" is a single (invalid) literal and "9.81 m/s^2"
// is a single literal whose unit contains "/" and "^".
//
// Operands are variable names, literals parsed by package quantity ("5",
// "2.5 km", "9.81 m/s^2"), or parenthesized sub-expressions, which are
// evaluated recursively:
//
//	( 2 + 3 ) * 4
//
// Operators are applied in the fixed order ^, /, *, -, + and, within one
// operator, from left to right. "2 + 3 * 4" is 14 and "8 / 2 / 2" is 2.
//
// The "^" operator raises its left operand to the right operand rounded to
// an integer. A right operand with magnitude below one is read as the
// reciprocal of a root degree, so "8 ^ 0.5" is the square root of 8.
//
// # Sessions
//
// A [Session] owns a [Symbols] table and executes whole input lines:
//
//	x = 5 m
//	x * 2
//
// Lines with a single "=" bind the value on the right to the name on the
// left. Names must satisfy [IsValidName].
package calc
