package rational

const (
	// piNumerator and piDenominator give the 3.1415 approximation returned by Pi.
	piNumerator   = 6283
	piDenominator = 2000

	decimalBase = 10

	// maxDecimalExponent bounds the power of ten FromDecimalString is willing
	// to expand. Larger exponents never fit a 64-bit rational.
	maxDecimalExponent = 1 << 12
)
