package fraction

import "fmt"

// MustParseBigInt is like [ParseBigInt] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseBigInt(s string) BigInt {
	x, err := ParseBigInt(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseBigInt(%q) failed: %v", s, err))
	}
	return x
}

// MustParseRat is like [ParseRat] but panics if the string cannot be parsed.
func MustParseRat(s string) BigFrac {
	f, err := ParseRat(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRat(%q) failed: %v", s, err))
	}
	return f
}

// MustQuo is like [BigInt.Quo] but panics if computing error.
func (x BigInt) MustQuo(y BigInt) BigInt {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustNormalize is like [Frac.Normalize] but panics if computing error.
func (f Frac[T]) MustNormalize() Frac[T] {
	g, err := f.Normalize()
	if err != nil {
		panic(fmt.Sprintf("MustNormalize(%v) failed: %v", f, err))
	}
	return g
}
