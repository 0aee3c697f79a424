package fraction

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Int32 is a 32-bit signed integer that satisfies [Integer].
// Arithmetic wraps around silently on overflow, exactly as the machine does.
// There is no overflow detection: Int32 exists to contrast fixed-width
// arithmetic with [BigInt].
type Int32 int32

// Int64 is a 64-bit signed integer that satisfies [Integer].
// Arithmetic wraps around silently on overflow, exactly as the machine does.
type Int64 int64

func (x Int32) Add(y Int32) Int32 { return x + y }
func (x Int32) Sub(y Int32) Int32 { return x - y }
func (x Int32) Mul(y Int32) Int32 { return x * y }
func (x Int32) Neg() Int32        { return -x }
func (x Int32) Sign() int         { return fixedSign(x) }
func (x Int32) Cmp(y Int32) int   { return fixedCmp(x, y) }
func (x Int32) GCD(y Int32) Int32 { return fixedGCD(x, y) }
func (x Int32) String() string    { return strconv.FormatInt(int64(x), 10) }

// Quo returns the quotient x / y truncated towards zero.
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int32) Quo(y Int32) (Int32, error) { return fixedQuo(x, y) }

func (x Int64) Add(y Int64) Int64 { return x + y }
func (x Int64) Sub(y Int64) Int64 { return x - y }
func (x Int64) Mul(y Int64) Int64 { return x * y }
func (x Int64) Neg() Int64        { return -x }
func (x Int64) Sign() int         { return fixedSign(x) }
func (x Int64) Cmp(y Int64) int   { return fixedCmp(x, y) }
func (x Int64) GCD(y Int64) Int64 { return fixedGCD(x, y) }
func (x Int64) String() string    { return strconv.FormatInt(int64(x), 10) }

// Quo returns the quotient x / y truncated towards zero.
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int64) Quo(y Int64) (Int64, error) { return fixedQuo(x, y) }

// ParseInt32 converts a decimal string to [Int32].
// Unlike fixed-width arithmetic, parsing does report out-of-range input.
func ParseInt32(s string) (Int32, error) {
	v, err := parseFixed[int32](s, 32)
	return Int32(v), err
}

// ParseInt64 converts a decimal string to [Int64].
func ParseInt64(s string) (Int64, error) {
	v, err := parseFixed[int64](s, 64)
	return Int64(v), err
}

func parseFixed[T constraints.Signed](s string, bitSize int) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("parsing %q as int%v: %w", s, bitSize, ErrInvalidInteger)
	}
	return T(v), nil
}

func fixedSign[T constraints.Signed](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func fixedCmp[T constraints.Signed](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// fixedQuo never panics: division by zero is reported as an error,
// and the minimum value divided by -1 wraps around to itself.
func fixedQuo[T constraints.Signed](x, y T) (T, error) {
	if y == 0 {
		return 0, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	return x / y, nil
}

// fixedGCD uses the Euclidean algorithm on absolute values.
// The absolute value of the minimum value wraps around to itself,
// so fixedGCD of the minimum value and 0 is negative.
func fixedGCD[T constraints.Signed](x, y T) T {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		x = -x
	}
	return x
}
