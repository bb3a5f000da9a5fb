package rational

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// ToFloat returns r as a floating point number. Storage wider than the
// mantissa of F loses precision.
func ToFloat[F constraints.Float, T Integer](r Rational[T]) F {
	return F(r.numerator) / F(r.Denominator())
}

func (r Rational[T]) Float64() float64 {
	return ToFloat[float64](r)
}

// FromDecimal converts value to a rational with denominator 10**precision
// before reduction. The shortest decimal representation of value is shifted
// by precision digits and rounded half away from zero to a whole numerator.
//
// FromDecimal fails with ErrOverflow when 10**precision or the scaled
// numerator does not fit T, or when value is infinite, and with ErrRange
// when value is NaN.
func FromDecimal[T Integer](value float64, precision uint) (Rational[T], error) {
	switch {
	case math.IsNaN(value):
		return Rational[T]{}, fmt.Errorf("rational: from decimal %v: %w", value, ErrRange)
	case math.IsInf(value, 0):
		return Rational[T]{}, fmt.Errorf("rational: from decimal %v: %w", value, ErrOverflow)
	}

	var c checked[T]
	scale := T(1)
	for i := uint(0); i < precision && !c.overflow; i++ {
		scale = c.mul(scale, decimalBase)
	}
	if c.overflow {
		return Rational[T]{}, fmt.Errorf("rational: from decimal %v: 10**%d: %w", value, precision, ErrOverflow)
	}

	scaled := decimal.NewFromFloat(value).Shift(int32(precision)).Round(0).BigInt()
	if !fitsBig[T](scaled) {
		return Rational[T]{}, fmt.Errorf("rational: from decimal %v: %s/%d: %w", value, scaled, scale, ErrOverflow)
	}
	return New(T(scaled.Int64()), scale)
}

// FromDecimalString converts a decimal literal such as "-12.375" or "2.5e-3"
// exactly.
func FromDecimalString[T Integer](s string) (Rational[T], error) {
	const fn = "FromDecimalString"
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational[T]{}, &ParseError{Func: fn, Input: s, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}
	if d.IsZero() {
		return Rational[T]{}, nil
	}
	if exp := d.Exponent(); exp > maxDecimalExponent || exp < -maxDecimalExponent {
		return Rational[T]{}, &ParseError{Func: fn, Input: s, Err: ErrRange}
	}

	r := d.Rat()
	num, den := r.Num(), r.Denom()
	if !fitsBig[T](num) || !fitsBig[T](den) {
		return Rational[T]{}, &ParseError{Func: fn, Input: s, Err: ErrRange}
	}
	return New(T(num.Int64()), T(den.Int64()))
}

// Convert returns r stored in U. It fails with ErrRange when the numerator or
// the denominator does not fit U. A canonical r stays canonical.
func Convert[U, T Integer](r Rational[T]) (Rational[U], error) {
	n, d := r.Numerator(), r.Denominator()
	if !fits[U](n) || !fits[U](d) {
		return Rational[U]{}, fmt.Errorf("rational: convert %s to %d bits: %w", r, bitSize[U](), ErrRange)
	}
	return FromRaw(U(n), U(d)), nil
}
