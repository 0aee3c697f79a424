/*
Package fraction implements immutable fractions over arbitrary-precision
and fixed-width integers.
It is designed to show, side by side, where machine integers silently
lose correctness and what exact arithmetic costs.

# Representation

[BigInt] is a struct with two fields:

  - Sign: -1, 0 or +1.
    The sign is 0 if and only if the value is 0, so there are no negative zeros.
  - Magnitude: a sequence of digit groups in base 10^9,
    least-significant first.
    For example, 12345678901234567890 is stored as the three groups
    234567890, 345678901 and 12.

The magnitude never has most-significant zero groups, except for 0 itself,
which is a single zero group.

[Frac] is a pair of integers, numerator and denominator, of any type that
implements the [Integer] capability:

  - [BigFrac]: arbitrary-precision fractions backed by [BigInt].
  - [Frac64]: fractions backed by [Int64].
  - [Frac32]: fractions backed by [Int32].

The fraction logic is written once and shared by all three representations.

# Conversions

The package provides methods for converting integers and fractions:

  - from/to string:
    [ParseBigInt], [BigInt.String], [ParseRat], [ParseBigFrac], [Frac.String].
  - from/to int64:
    [NewBigInt], [BigInt.Int64].
  - from/to database/sql and encoding:
    [BigInt.Scan], [BigInt.Value], [BigInt.MarshalText], [BigInt.UnmarshalText],
    [Frac.MarshalText].

Only decimal notation is supported.

# Operations

[BigInt] arithmetic is exact:

  - [BigInt.Add] and [BigInt.Sub] propagate carries and borrows across
    digit groups of any lengths.
  - [BigInt.Mul] uses schoolbook multiplication.
  - [BigInt.Quo], [BigInt.Rem] and [BigInt.QuoRem] use long division and
    truncate towards zero. The remainder has the sign of the dividend.
  - [BigInt.GCD] uses the Euclidean algorithm on magnitudes.

[Frac] arithmetic never reduces implicitly:

  - [Frac.Add], [Frac.Sub], [Frac.Mul] and [Frac.Quo] return unnormalized
    fractions.
  - [Frac.Normalize] divides both parts by their greatest common divisor and
    makes the denominator positive, so the sign is carried by the numerator.

For example, -2/3 + 2/-5 is 16/-15 before and -16/15 after normalization.

# Overflow

[Int32] and [Int64] use machine arithmetic.
Unlike [BigInt], they wrap around silently on overflow:
50000 * 50000 as [Int32] is -1794967296.
This is intentional and is never reported as an error.

# Errors

All methods are pure.
Errors are returned in the following cases:

  - Invalid Input.
    [ParseBigInt] returns an error wrapping [ErrInvalidInteger] for empty
    strings, lone signs and non-digit characters.
    [ParseRat] returns an error wrapping [ErrInvalidFraction].

  - Division by Zero.
    Unlike the standard library, [BigInt.Quo], [Int32.Quo], [Int64.Quo] and
    [Frac.Quo] do not panic when dividing by 0.
    Instead, they return an error wrapping [ErrDivisionByZero].
    [Frac.Normalize] returns the same error for 0/0.
*/
package fraction
