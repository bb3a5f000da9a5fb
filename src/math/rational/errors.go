package rational

import (
	"errors"
	"strconv"
)

var (
	// ErrDivideByZero is returned for a zero denominator or divisor.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow is returned when an intermediate or final result does not
	// fit the storage type.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrRange is returned when a value cannot be represented at all, such
	// as a width conversion losing bits or an out of range text field.
	ErrRange = errors.New("value out of range")
	// ErrSyntax is returned for text that is not of the form "N/D".
	ErrSyntax = errors.New("invalid syntax")
)

// ParseError records a failed conversion from text.
type ParseError struct {
	Func  string // the failing function (Parse, UnmarshalText, FromDecimalString)
	Input string // the input
	Err   error  // the reason the conversion failed (ErrSyntax, ErrRange, ...)
}

func (e *ParseError) Error() string {
	return "rational." + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Must returns r or panics if err is non-nil. It is meant for constants in
// tests and package initialization.
func Must[T Integer](r Rational[T], err error) Rational[T] {
	if err != nil {
		panic(err)
	}
	return r
}
