package fraction

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
)

// BigInt type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A BigInt is a struct with two parameters:
//
//   - Sign: -1, 0 or +1. The sign is 0 if and only if the value is 0,
//     so there are no negative zeros.
//   - Magnitude: the absolute value, stored as a sequence of base 10^9
//     digit groups, least-significant first, without most-significant
//     zero groups.
//
// BigInt values are immutable.
// Every arithmetic method returns a new value and never modifies its operands.
type BigInt struct {
	sign int8 // -1, 0 or +1
	mag  nat  // the absolute value of the integer
}

var (
	// ErrInvalidInteger is returned when a string cannot be parsed as an integer.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrInvalidFraction is returned when a string cannot be parsed as a fraction.
	ErrInvalidFraction = errors.New("invalid fraction")
	// ErrDivisionByZero is returned when dividing by zero or normalizing 0/0.
	ErrDivisionByZero = errors.New("division by zero")
)

func newBigInt(neg bool, mag nat) BigInt {
	mag = mag.norm()
	switch {
	case mag.isZero():
		return BigInt{mag: natZero}
	case neg:
		return BigInt{sign: -1, mag: mag}
	default:
		return BigInt{sign: 1, mag: mag}
	}
}

// NewBigInt returns an integer equal to v.
func NewBigInt(v int64) BigInt {
	if v < 0 {
		// Two's complement negation, which is correct for math.MinInt64 too.
		return newBigInt(true, newNat(uint64(^v)+1))
	}
	return newBigInt(false, newNat(uint64(v)))
}

// digits returns the magnitude of x.
// The zero value of BigInt has no magnitude, which is read as 0.
func (x BigInt) digits() nat {
	if len(x.mag) == 0 {
		return natZero
	}
	return x.mag
}

// ParseBigInt converts a string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	+0001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// ParseBigInt removes leading zeros, so "-0", "+0" and "000"
// all produce the same value as "0".
//
// ParseBigInt returns an error wrapping [ErrInvalidInteger] if the string
// is empty, consists of a sign only, or contains a non-digit character.
func ParseBigInt(s string) (BigInt, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	if pos == width {
		return BigInt{}, fmt.Errorf("no digits: %w", ErrInvalidInteger)
	}

	// Integer
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return BigInt{}, fmt.Errorf("invalid character %q: %w", s[i], ErrInvalidInteger)
		}
	}

	return newBigInt(neg, parseNat(s[pos:])), nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// The string has no leading zeros, and 0 is represented as "0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x BigInt) String() string {
	mag := x.digits()
	buf := make([]byte, 0, mag.prec()+1)
	if x.sign < 0 {
		buf = append(buf, '-')
	}
	buf = mag.appendDecimal(buf)
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseBigInt].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *BigInt) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseBigInt(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [BigInt.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte and int64 sources.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *BigInt) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = ParseBigInt(value)
	case []byte:
		*x, err = ParseBigInt(string(value))
	case int64:
		*x = NewBigInt(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, BigInt{}, ErrInvalidInteger)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The integer is stored as its decimal string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x BigInt) Value() (driver.Value, error) {
	return x.String(), nil
}

// Int64 returns the integer as int64.
// If the integer does not fit into int64, then ok is false.
func (x BigInt) Int64() (v int64, ok bool) {
	u, ok := x.digits().uint64()
	if !ok {
		return 0, false
	}
	if x.sign < 0 {
		if u > math.MaxInt64+1 {
			return 0, false
		}
		return int64(^u + 1), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Prec returns the number of decimal digits in the magnitude of x.
// The integer 0 has one digit.
func (x BigInt) Prec() int {
	return x.digits().prec()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x BigInt) Sign() int {
	return int(x.sign)
}

// IsZero returns true if x == 0.
func (x BigInt) IsZero() bool {
	return x.sign == 0
}

// IsNeg returns true if x < 0.
func (x BigInt) IsNeg() bool {
	return x.sign < 0
}

// IsPos returns true if x > 0.
func (x BigInt) IsPos() bool {
	return x.sign > 0
}

// Neg returns an integer with the opposite sign.
func (x BigInt) Neg() BigInt {
	return BigInt{sign: -x.sign, mag: x.mag}
}

// Abs returns the absolute value of x.
func (x BigInt) Abs() BigInt {
	if x.sign < 0 {
		return x.Neg()
	}
	return x
}

// Add returns the (exact) sum of x and y.
func (x BigInt) Add(y BigInt) BigInt {
	switch {
	case y.sign == 0:
		return x
	case x.sign == 0:
		return y
	}
	xm, ym := x.digits(), y.digits()
	if x.sign == y.sign {
		return newBigInt(x.IsNeg(), xm.add(ym))
	}
	switch xm.cmp(ym) {
	case 1:
		return newBigInt(x.IsNeg(), xm.sub(ym))
	case -1:
		return newBigInt(y.IsNeg(), ym.sub(xm))
	}
	return newBigInt(false, natZero)
}

// Sub returns the (exact) difference between x and y.
// It is equivalent to x.Add(y.Neg()).
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// Mul returns the (exact) product of x and y.
// The result is negative if and only if exactly one operand is negative
// and neither operand is 0.
func (x BigInt) Mul(y BigInt) BigInt {
	if x.sign == 0 || y.sign == 0 {
		return BigInt{mag: natZero}
	}
	return newBigInt(x.sign != y.sign, x.digits().mul(y.digits()))
}

// Quo returns the quotient x / y truncated towards zero.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) Quo(y BigInt) (BigInt, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return BigInt{}, err
	}
	return q, nil
}

// Rem returns the remainder x - y * x.Quo(y).
// The remainder has the same sign as x.
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) Rem(y BigInt) (BigInt, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return BigInt{}, err
	}
	return r, nil
}

// QuoRem returns the quotient q and remainder r of x / y such that
//
//	x = q * y + r
//
// where q is truncated towards zero and r has the same sign as x.
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt, err error) {
	if y.sign == 0 {
		return BigInt{}, BigInt{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	if x.sign == 0 {
		return BigInt{mag: natZero}, BigInt{mag: natZero}, nil
	}
	qm, rm := x.digits().quoRem(y.digits())
	return newBigInt(x.sign != y.sign, qm), newBigInt(x.IsNeg(), rm), nil
}

// GCD returns the greatest common divisor of x and y.
// The signs of the operands are ignored and the result is never negative.
// GCD(x, 0) is |x|, and GCD(0, 0) is 0.
func (x BigInt) GCD(y BigInt) BigInt {
	return newBigInt(false, x.digits().gcd(y.digits()))
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x BigInt) Cmp(y BigInt) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == 0:
		return 0
	}
	c := x.digits().cmp(y.digits())
	if x.sign < 0 {
		return -c
	}
	return c
}

// CmpAbs compares absolute values of x and y and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x BigInt) CmpAbs(y BigInt) int {
	return x.digits().cmp(y.digits())
}

// Equal returns true if x and y represent the same integer.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}
