package rational

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// String renders r as "N/D".
func (r Rational[T]) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(int64(r.numerator), 10))
	b.WriteByte('/')
	b.WriteString(strconv.FormatInt(int64(r.Denominator()), 10))
	return b.String()
}

// Parse reads a rational of the form "N/D", where N and D are base 10
// integers that fit T. The result is reduced, so "2/-4" parses as -1/2.
// Errors are of type *ParseError.
func Parse[T Integer](s string) (Rational[T], error) {
	return parse[T]("Parse", s)
}

func parse[T Integer](fn, s string) (Rational[T], error) {
	fail := func(err error) (Rational[T], error) {
		return Rational[T]{}, &ParseError{Func: fn, Input: s, Err: err}
	}

	num, den, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(den, "/") {
		return fail(ErrSyntax)
	}
	n, err := parseField[T](num)
	if err != nil {
		return fail(err)
	}
	d, err := parseField[T](den)
	if err != nil {
		return fail(err)
	}

	r, err := New(n, d)
	switch {
	case errors.Is(err, ErrDivideByZero):
		return fail(ErrDivideByZero)
	case err != nil:
		return fail(ErrRange)
	}
	return r, nil
}

func parseField[T Integer](s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrRange
		}
		return 0, ErrSyntax
	}
	return T(v), nil
}

// MarshalText implements encoding.TextMarshaler using the "N/D" form.
func (r Rational[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts what Parse
// accepts.
func (r *Rational[T]) UnmarshalText(text []byte) error {
	v, err := parse[T]("UnmarshalText", string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Lit returns n/1 as a Rat. It panics if n does not fit int, which makes it
// suitable only for literals:
//
//	half := rational.Must(rational.Lit(1).Div(rational.Lit(2)))
func Lit(n uint64) Rat {
	if n > math.MaxInt {
		panic("rational: literal " + strconv.FormatUint(n, 10) + " overflows int")
	}
	return FromInt(int(n))
}
