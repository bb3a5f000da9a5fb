package rational

// Cmp compares x and y and returns -1, 0 or +1.
//
// The cross products x.num*y.den and y.num*x.den are formed in 128 bits, so
// Cmp is exact for every pair of values and cannot overflow.
func (x Rational[T]) Cmp(y Rational[T]) int {
	xd, yd := x.Denominator(), y.Denominator()
	if xd == yd {
		switch {
		case x.numerator < y.numerator:
			return -1
		case x.numerator > y.numerator:
			return 1
		}
		return 0
	}
	lhs := mul128(int64(x.numerator), int64(yd))
	rhs := mul128(int64(y.numerator), int64(xd))
	return lhs.cmp(rhs)
}

func (x Rational[T]) Equal(y Rational[T]) bool {
	return x.Cmp(y) == 0
}

func (x Rational[T]) Greater(y Rational[T]) bool {
	return x.Cmp(y) > 0
}

func (x Rational[T]) Less(y Rational[T]) bool {
	return y.Greater(x)
}

func (x Rational[T]) LessOrEqual(y Rational[T]) bool {
	return !x.Greater(y)
}

func (x Rational[T]) GreaterOrEqual(y Rational[T]) bool {
	return !x.Less(y)
}
