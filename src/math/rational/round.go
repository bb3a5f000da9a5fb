package rational

// The rounding methods work from a single truncated division of the
// numerator by the denominator. Neither the quotient adjustment nor the
// remainder can overflow for a canonical value.

// ToInteger returns x truncated toward zero.
func (x Rational[T]) ToInteger() T {
	return x.numerator / x.Denominator()
}

// Trunc returns x rounded toward zero.
func (x Rational[T]) Trunc() Rational[T] {
	return FromInt(x.ToInteger())
}

// Fract returns the signed fractional part of x over the denominator of x,
// so that x.Trunc() + x.Fract() == x. For a canonical x the result is
// canonical as well since gcd(n mod d, d) == gcd(n, d).
func (x Rational[T]) Fract() Rational[T] {
	d := x.Denominator()
	r := x.numerator % d
	if r == 0 {
		return Rational[T]{}
	}
	return FromRaw(r, d)
}

// Floor returns the greatest whole number not greater than x.
func (x Rational[T]) Floor() Rational[T] {
	d := x.Denominator()
	q, r := x.numerator/d, x.numerator%d
	if r < 0 {
		q--
	}
	return FromInt(q)
}

// Ceil returns the least whole number not less than x.
func (x Rational[T]) Ceil() Rational[T] {
	d := x.Denominator()
	q, r := x.numerator/d, x.numerator%d
	if r > 0 {
		q++
	}
	return FromInt(q)
}

// Round returns the nearest whole number, rounding halves away from zero.
func (x Rational[T]) Round() Rational[T] {
	d := x.Denominator()
	q, r := x.numerator/d, x.numerator%d
	if r < 0 {
		r = -r
	}

	// An odd denominator has no exact half: d/2 truncates, so one more is
	// needed to reach it.
	half := d / 2
	if d%2 != 0 {
		half++
	}
	halfOrLarger := r != 0 && r >= half

	switch {
	case halfOrLarger && x.numerator > 0:
		q++
	case halfOrLarger:
		q--
	}
	return FromInt(q)
}
