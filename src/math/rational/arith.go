package rational

import "fmt"

func overflowError[T Integer](x Rational[T], op string, y Rational[T]) error {
	return fmt.Errorf("rational: %s %s %s: %w", x, op, y, ErrOverflow)
}

func divideByZeroError[T Integer](x Rational[T], op string, y Rational[T]) error {
	return fmt.Errorf("rational: %s %s %s: %w", x, op, y, ErrDivideByZero)
}

// Add returns x+y.
func (x Rational[T]) Add(y Rational[T]) (Rational[T], error) {
	var c checked[T]
	n := c.add(c.mul(x.Numerator(), y.Denominator()), c.mul(x.Denominator(), y.Numerator()))
	d := c.mul(x.Denominator(), y.Denominator())
	if c.overflow {
		return Rational[T]{}, overflowError(x, "+", y)
	}
	return New(n, d)
}

// Sub returns x-y.
func (x Rational[T]) Sub(y Rational[T]) (Rational[T], error) {
	var c checked[T]
	n := c.sub(c.mul(x.Numerator(), y.Denominator()), c.mul(x.Denominator(), y.Numerator()))
	d := c.mul(x.Denominator(), y.Denominator())
	if c.overflow {
		return Rational[T]{}, overflowError(x, "-", y)
	}
	return New(n, d)
}

// Mul returns x*y.
func (x Rational[T]) Mul(y Rational[T]) (Rational[T], error) {
	var c checked[T]
	n := c.mul(x.Numerator(), y.Numerator())
	d := c.mul(x.Denominator(), y.Denominator())
	if c.overflow {
		return Rational[T]{}, overflowError(x, "*", y)
	}
	return New(n, d)
}

// Div returns x/y. It fails with ErrDivideByZero when y is zero.
func (x Rational[T]) Div(y Rational[T]) (Rational[T], error) {
	if y.IsZero() {
		return Rational[T]{}, divideByZeroError(x, "/", y)
	}
	var c checked[T]
	n := c.mul(x.Numerator(), y.Denominator())
	d := c.mul(x.Denominator(), y.Numerator())
	if c.overflow {
		return Rational[T]{}, overflowError(x, "/", y)
	}
	return New(n, d)
}

// Mod returns the remainder of x/y truncated toward zero, so the result has
// the sign of x. It fails with ErrDivideByZero when y is zero.
func (x Rational[T]) Mod(y Rational[T]) (Rational[T], error) {
	if y.IsZero() {
		return Rational[T]{}, divideByZeroError(x, "%", y)
	}
	var c checked[T]
	a := c.mul(x.Numerator(), y.Denominator())
	b := c.mul(x.Denominator(), y.Numerator())
	d := c.mul(x.Denominator(), y.Denominator())
	if c.overflow {
		return Rational[T]{}, overflowError(x, "%", y)
	}
	return New(a%b, d)
}

// Neg returns -x. Only the minimum value of T has no negation.
func (x Rational[T]) Neg() (Rational[T], error) {
	var c checked[T]
	n := c.neg(x.numerator)
	if c.overflow {
		return Rational[T]{}, fmt.Errorf("rational: -(%s): %w", x, ErrOverflow)
	}
	return Rational[T]{numerator: n, denominator: x.denominator}, nil
}

// Abs returns |x|.
func (x Rational[T]) Abs() (Rational[T], error) {
	if x.numerator < 0 {
		return x.Neg()
	}
	return x, nil
}

// AbsSub returns |x-y|.
func (x Rational[T]) AbsSub(y Rational[T]) (Rational[T], error) {
	d, err := x.Sub(y)
	if err != nil {
		return Rational[T]{}, err
	}
	return d.Abs()
}

// Inv returns 1/x.
func (x Rational[T]) Inv() (Rational[T], error) {
	if x.IsZero() {
		return Rational[T]{}, fmt.Errorf("rational: 1 / %s: %w", x, ErrDivideByZero)
	}
	return New(x.Denominator(), x.numerator)
}

// Pow returns x**exp. A negative exponent raises the reciprocal, so
// zero to a negative power fails with ErrDivideByZero.
func (x Rational[T]) Pow(exp int) (Rational[T], error) {
	base := x
	k := uint(exp)
	if exp < 0 {
		inv, err := x.Inv()
		if err != nil {
			return Rational[T]{}, err
		}
		base, k = inv, uint(-exp)
	}

	var c checked[T]
	n := ipow(&c, base.numerator, k)
	d := ipow(&c, base.Denominator(), k)
	if c.overflow {
		return Rational[T]{}, fmt.Errorf("rational: (%s)**%d: %w", x, exp, ErrOverflow)
	}
	return New(n, d)
}

// ipow computes b**k by repeated squaring. The base is only squared while
// more bits of k remain, so overflow is reported only when b**k itself does
// not fit.
func ipow[T Integer](c *checked[T], b T, k uint) T {
	r := T(1)
	for k > 0 {
		if k&1 == 1 {
			r = c.mul(r, b)
		}
		k >>= 1
		if k == 0 {
			break
		}
		b = c.mul(b, b)
	}
	return r
}

// Compound assignments rebind the receiver to the result and leave it
// untouched on error.

func (x *Rational[T]) AddAssign(y Rational[T]) error {
	return x.assign(x.Add, y)
}

func (x *Rational[T]) SubAssign(y Rational[T]) error {
	return x.assign(x.Sub, y)
}

func (x *Rational[T]) MulAssign(y Rational[T]) error {
	return x.assign(x.Mul, y)
}

func (x *Rational[T]) DivAssign(y Rational[T]) error {
	return x.assign(x.Div, y)
}

func (x *Rational[T]) ModAssign(y Rational[T]) error {
	return x.assign(x.Mod, y)
}

// Inc adds one to x.
func (x *Rational[T]) Inc() error {
	return x.AddAssign(One[T]())
}

// Dec subtracts one from x.
func (x *Rational[T]) Dec() error {
	return x.SubAssign(One[T]())
}

func (x *Rational[T]) assign(op func(Rational[T]) (Rational[T], error), y Rational[T]) error {
	v, err := op(y)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
