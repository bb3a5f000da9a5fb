package rational

import "fmt"

// GCD returns the greatest common divisor of |a| and |b|.
//
// GCD(0, 0) is 1, so that reducing 0/1 leaves it unchanged. The only
// failure is ErrOverflow, when the divisor is 2^(n-1) for an n-bit T,
// for example GCD(math.MinInt64, 0).
func GCD[T Integer](a, b T) (T, error) {
	g := negGCD(nonPositive(a), nonPositive(b))
	switch g {
	case 0:
		return 1, nil
	case minOf[T]():
		return 0, fmt.Errorf("rational: gcd(%d, %d): %w", a, b, ErrOverflow)
	}
	return -g, nil
}

// negGCD runs Euclid's algorithm on non-positive operands and returns the
// negated divisor. Staying below zero keeps the minimum value of T usable
// since its magnitude has no positive counterpart.
func negGCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func nonPositive[T Integer](v T) T {
	if v > 0 {
		return -v
	}
	return v
}
