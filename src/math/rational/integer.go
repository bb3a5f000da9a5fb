package rational

import (
	"math/big"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of storage types a Rational can be built on.
type Integer interface {
	constraints.Signed
}

func bitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func maxOf[T Integer]() T {
	return T(1)<<(bitSize[T]()-1) - 1
}

func minOf[T Integer]() T {
	return -maxOf[T]() - 1
}

// fitsBig reports whether v is representable in T.
func fitsBig[T Integer](v *big.Int) bool {
	if !v.IsInt64() {
		return false
	}
	i := v.Int64()
	return i >= int64(minOf[T]()) && i <= int64(maxOf[T]())
}

// fits reports whether v survives a round trip through U.
func fits[U, T Integer](v T) bool {
	return int64(U(v)) == int64(v)
}

// checked performs arithmetic in T and remembers whether any step
// overflowed. Results of an overflowed step are meaningless.
type checked[T Integer] struct {
	overflow bool
}

func (c *checked[T]) add(a, b T) T {
	r := a + b
	if (r > a) != (b > 0) {
		c.overflow = true
	}
	return r
}

func (c *checked[T]) sub(a, b T) T {
	r := a - b
	if (r < a) != (b > 0) {
		c.overflow = true
	}
	return r
}

func (c *checked[T]) mul(a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	if least := minOf[T](); (a == -1 && b == least) || (b == -1 && a == least) {
		c.overflow = true
		return least
	}
	r := a * b
	if r/b != a {
		c.overflow = true
	}
	return r
}

func (c *checked[T]) neg(a T) T {
	if a == minOf[T]() {
		c.overflow = true
	}
	return -a
}

// int128 is a two's complement 128-bit integer, wide enough to hold the
// product of any two 64-bit values.
type int128 struct {
	hi int64
	lo uint64
}

func mul128(a, b int64) int128 {
	negative := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if negative {
		lo = ^lo + 1
		hi = ^hi
		if lo == 0 {
			hi++
		}
	}
	return int128{hi: int64(hi), lo: lo}
}

// magnitude returns |v| as uint64, which is exact for math.MinInt64 too.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func (x int128) cmp(y int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}
