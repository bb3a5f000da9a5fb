package rational

import "fmt"

// Rational is an exact fraction with numerator and denominator stored in T.
//
// The denominator is stored minus one so that the zero value is 0/1.
// Canonical values can be compared with == as well as with Equal.
type Rational[T Integer] struct {
	numerator   T
	denominator T // denominator - 1
}

type (
	Rational32 = Rational[int32]
	Rational64 = Rational[int64]
	// Rat uses the native int width.
	Rat = Rational[int]
)

// FromInt returns n/1.
func FromInt[T Integer](n T) Rational[T] {
	return Rational[T]{numerator: n}
}

// New returns numerator/denominator in lowest terms with a positive
// denominator.
//
// New fails with ErrDivideByZero when denominator is zero, and with
// ErrOverflow when moving the sign to the numerator would negate the minimum
// value of T, as in New(1, math.MinInt64).
func New[T Integer](numerator, denominator T) (Rational[T], error) {
	if denominator == 0 {
		return Rational[T]{}, fmt.Errorf("rational: %d/%d: %w", numerator, denominator, ErrDivideByZero)
	}
	if numerator == 0 {
		return Rational[T]{}, nil
	}

	g := negGCD(nonPositive(numerator), nonPositive(denominator))
	if g != minOf[T]() {
		// 1 <= -g, so the divisions below are exact and cannot overflow.
		g = -g
	}
	n, d := numerator/g, denominator/g

	if d < 0 {
		var c checked[T]
		n, d = c.neg(n), c.neg(d)
		if c.overflow {
			return Rational[T]{}, fmt.Errorf("rational: %d/%d: %w", numerator, denominator, ErrOverflow)
		}
	}
	return Rational[T]{numerator: n, denominator: d - 1}, nil
}

// FromRaw returns numerator/denominator exactly as given, without reducing
// it or normalizing its sign. The caller is responsible for the result; use
// IsCanonical or Reduced to check or repair it.
func FromRaw[T Integer](numerator, denominator T) Rational[T] {
	return Rational[T]{numerator: numerator, denominator: denominator - 1}
}

func (r Rational[T]) Numerator() T {
	return r.numerator
}

func (r Rational[T]) Denominator() T {
	return r.denominator + 1
}

// Reduced returns r in canonical form.
func (r Rational[T]) Reduced() (Rational[T], error) {
	return New(r.Numerator(), r.Denominator())
}

// Reduce puts r in canonical form. r is unchanged on error.
func (r *Rational[T]) Reduce() error {
	v, err := r.Reduced()
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// IsCanonical reports whether r has a positive denominator and is in lowest
// terms, with zero represented as 0/1.
func (r Rational[T]) IsCanonical() bool {
	d := r.Denominator()
	if d <= 0 {
		return false
	}
	if r.numerator == 0 {
		return d == 1
	}
	return negGCD(nonPositive(r.numerator), nonPositive(d)) == -1
}

func (r Rational[T]) IsZero() bool {
	return r.numerator == 0
}

func (r Rational[T]) IsPositive() bool {
	return r.numerator > 0
}

func (r Rational[T]) IsNegative() bool {
	return r.numerator < 0
}

// IsInteger reports whether r is a whole number.
func (r Rational[T]) IsInteger() bool {
	return r.Denominator() == 1
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rational[T]) Sign() int {
	switch {
	case r.numerator < 0:
		return -1
	case r.numerator > 0:
		return 1
	}
	return 0
}

func Zero[T Integer]() Rational[T] {
	return Rational[T]{}
}

func One[T Integer]() Rational[T] {
	return FromInt[T](1)
}

// Pi returns 6283/2000, a four digit approximation of pi. Storage types
// narrower than 16 bits cannot hold it and get ErrRange.
func Pi[T Integer]() (Rational[T], error) {
	n, d := int64(piNumerator), int64(piDenominator)
	if !fits[T](n) {
		return Rational[T]{}, fmt.Errorf("rational: pi: %w", ErrRange)
	}
	return FromRaw(T(n), T(d)), nil
}
