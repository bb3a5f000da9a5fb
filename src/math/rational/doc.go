// Package rational implements exact fractions over fixed-width signed
// integers.
//
// A Rational[T] holds a numerator and a denominator of the same integer type
// T. Every value produced by New, FromInt, the arithmetic operators or the
// conversions is canonical: the denominator is positive, the sign lives in the
// numerator and the pair is in lowest terms, so zero is always 0/1. The zero
// value of Rational[T] is 0/1 and ready to use.
//
// Arithmetic cross-multiplies numerators and denominators in T. Every
// intermediate product and sum is overflow checked and reported as
// ErrOverflow instead of wrapping. Comparison is computed on 128-bit products
// and never fails.
//
// Values of different widths never mix; Convert moves a value between widths
// and fails with ErrRange when a component does not fit.
package rational
