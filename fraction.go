package fraction

import (
	"fmt"
	"strings"
)

// Integer is the capability a numeric representation needs to back a [Frac].
// It is implemented by [BigInt], [Int32] and [Int64].
type Integer[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	GCD(T) T
	Neg() T
	Sign() int
	Cmp(T) int
	String() string
}

// Frac type is a representation of a fraction num / den.
//
// A Frac is never reduced implicitly: [Frac.Add], [Frac.Sub], [Frac.Mul]
// and [Frac.Quo] return unnormalized results, and [Frac.Normalize] must be
// called explicitly to divide both parts by their greatest common divisor.
//
// The denominator is expected to be non-zero for arithmetic.
// The zero value of Frac is 0/0, which is not a valid operand.
type Frac[T Integer[T]] struct {
	num T // numerator
	den T // denominator
}

type (
	// BigFrac is a fraction of arbitrary-precision integers.
	BigFrac = Frac[BigInt]
	// Frac32 is a fraction of 32-bit integers that wraps around on overflow.
	Frac32 = Frac[Int32]
	// Frac64 is a fraction of 64-bit integers that wraps around on overflow.
	Frac64 = Frac[Int64]
)

// NewFrac returns a fraction num / den.
// The fraction is stored as given, without reduction.
func NewFrac[T Integer[T]](num, den T) Frac[T] {
	return Frac[T]{num: num, den: den}
}

// ParseBigFrac returns a fraction whose numerator and denominator
// are parsed with [ParseBigInt].
func ParseBigFrac(num, den string) (BigFrac, error) {
	n, err := ParseBigInt(num)
	if err != nil {
		return BigFrac{}, fmt.Errorf("parsing numerator: %w", err)
	}
	d, err := ParseBigInt(den)
	if err != nil {
		return BigFrac{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return NewFrac(n, d), nil
}

// ParseRat converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	1/2
//	-4 / 6
//	7
//
// A string without a slash is read as an integer with denominator 1.
// Spaces around the slash are ignored.
// The result is not normalized, and a zero denominator is accepted.
//
// ParseRat returns an error wrapping [ErrInvalidFraction] if the string
// has more than one slash or if either part is not a valid integer.
func ParseRat(s string) (BigFrac, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		n, err := ParseBigInt(strings.TrimSpace(parts[0]))
		if err != nil {
			return BigFrac{}, fmt.Errorf("parsing %q: %w: %w", s, ErrInvalidFraction, err)
		}
		return NewFrac(n, NewBigInt(1)), nil
	case 2:
		f, err := ParseBigFrac(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		if err != nil {
			return BigFrac{}, fmt.Errorf("parsing %q: %w: %w", s, ErrInvalidFraction, err)
		}
		return f, nil
	}
	return BigFrac{}, fmt.Errorf("parsing %q: too many slashes: %w", s, ErrInvalidFraction)
}

// Num returns the numerator of f.
func (f Frac[T]) Num() T {
	return f.num
}

// Den returns the denominator of f.
func (f Frac[T]) Den() T {
	return f.den
}

// Add returns the unnormalized sum
//
//	(x.num * y.den + y.num * x.den) / (x.den * y.den)
//
// Add never divides, so it never fails.
func (x Frac[T]) Add(y Frac[T]) Frac[T] {
	num := x.num.Mul(y.den).Add(y.num.Mul(x.den))
	den := x.den.Mul(y.den)
	return Frac[T]{num: num, den: den}
}

// Sub returns the unnormalized difference
//
//	(x.num * y.den - y.num * x.den) / (x.den * y.den)
func (x Frac[T]) Sub(y Frac[T]) Frac[T] {
	return x.Add(y.Neg())
}

// Mul returns the unnormalized product
//
//	(x.num * y.num) / (x.den * y.den)
func (x Frac[T]) Mul(y Frac[T]) Frac[T] {
	num := x.num.Mul(y.num)
	den := x.den.Mul(y.den)
	return Frac[T]{num: num, den: den}
}

// Quo returns the unnormalized quotient
//
//	(x.num * y.den) / (x.den * y.num)
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Frac[T]) Quo(y Frac[T]) (Frac[T], error) {
	if y.num.Sign() == 0 {
		return Frac[T]{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	num := x.num.Mul(y.den)
	den := x.den.Mul(y.num)
	return Frac[T]{num: num, den: den}, nil
}

// Neg returns a fraction with the opposite sign.
// Only the numerator is negated.
func (f Frac[T]) Neg() Frac[T] {
	return Frac[T]{num: f.num.Neg(), den: f.den}
}

// Normalize returns f reduced by the greatest common divisor of its
// numerator and denominator.
// The result always has a positive denominator: if the denominator of f
// is negative, both parts change sign, so the sign of the fraction is
// carried by the numerator alone.
// 0/d normalizes to 0/1.
//
// Normalize returns an error wrapping [ErrDivisionByZero] if both
// the numerator and the denominator are 0.
func (f Frac[T]) Normalize() (Frac[T], error) {
	g := f.num.GCD(f.den)
	if g.Sign() == 0 {
		return Frac[T]{}, fmt.Errorf("normalizing %v: %w", f, ErrDivisionByZero)
	}
	num, err := f.num.Quo(g)
	if err != nil {
		return Frac[T]{}, err
	}
	den, err := f.den.Quo(g)
	if err != nil {
		return Frac[T]{}, err
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return Frac[T]{num: num, den: den}, nil
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
//
// If the denominator is 0, the result is 0.
func (f Frac[T]) Sign() int {
	return f.num.Sign() * f.den.Sign()
}

// Cmp compares the values of x and y by cross-multiplication and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Unnormalized fractions are compared by value, so 1/2 and -2/-4 are equal.
// If either denominator is 0, the result is unpredictable.
func (x Frac[T]) Cmp(y Frac[T]) int {
	lhs := x.num.Mul(y.den)
	rhs := y.num.Mul(x.den)
	return lhs.Cmp(rhs) * x.den.Sign() * y.den.Sign()
}

// Equal returns true if x and y have equal numerators and
// equal denominators.
// Equal does not normalize: 1/2 and 2/4 are not Equal.
// Use [Frac.Cmp] to compare values.
func (x Frac[T]) Equal(y Frac[T]) bool {
	return x.num.Cmp(y.num) == 0 && x.den.Cmp(y.den) == 0
}

// String method implements the [fmt.Stringer] interface and returns
// the fraction as "<numerator> / <denominator>".
// The format is meant for humans; use [Frac.MarshalText] for a form
// that [ParseRat] reads back.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Frac[T]) String() string {
	return f.num.String() + " / " + f.den.String()
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The fraction is written as "<numerator>/<denominator>".
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Frac[T]) MarshalText() ([]byte, error) {
	return []byte(f.num.String() + "/" + f.den.String()), nil
}
