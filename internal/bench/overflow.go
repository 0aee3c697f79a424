// Package bench compares fixed-width and arbitrary-precision fraction
// arithmetic.
// It reproduces the overflow cases where Int32 and Int64 silently produce
// wrong results, and times the fraction sum and product across all three
// integer representations.
package bench

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/govalues/fraction"
)

// Case is a single overflow comparison.
// Exact is computed with BigInt, Fixed with the named fixed-width type.
type Case struct {
	Name    string
	Kind    Kind
	Exact   string
	Fixed   string
	Wrapped bool
}

// Overflow returns the overflow comparisons.
// A case is Wrapped if the fixed-width result differs from the exact one.
func Overflow() []Case {
	var cases []Case

	// Integer product
	x := fraction.Int32(50000)
	bx := fraction.NewBigInt(50000)
	cases = append(cases, newCase("50000 * 50000", KindInt32, bx.Mul(bx).String(), x.Mul(x).String()))

	// Fractions near half the range
	half32 := fraction.NewFrac[fraction.Int32](math.MaxInt32/2, 3)
	fifth32 := fraction.NewFrac[fraction.Int32](math.MaxInt32/2, 5)
	bigHalf32 := fraction.NewFrac(fraction.NewBigInt(math.MaxInt32/2), fraction.NewBigInt(3))
	bigFifth32 := fraction.NewFrac(fraction.NewBigInt(math.MaxInt32/2), fraction.NewBigInt(5))

	half64 := fraction.NewFrac[fraction.Int64](math.MaxInt64/2, 3)
	fifth64 := fraction.NewFrac[fraction.Int64](math.MaxInt64/2, 5)
	bigHalf64 := fraction.NewFrac(fraction.NewBigInt(math.MaxInt64/2), fraction.NewBigInt(3))
	bigFifth64 := fraction.NewFrac(fraction.NewBigInt(math.MaxInt64/2), fraction.NewBigInt(5))

	// Products that fit in int64 but not in int32
	f64 := fraction.NewFrac[fraction.Int64](3000000000, 2)
	g64 := fraction.NewFrac[fraction.Int64](4, 5000000000)
	bigF64 := fraction.NewFrac(fraction.NewBigInt(3000000000), fraction.NewBigInt(2))
	bigG64 := fraction.NewFrac(fraction.NewBigInt(4), fraction.NewBigInt(5000000000))

	fracs := []struct {
		name         string
		kind         Kind
		exact, fixed fmt.Stringer
	}{
		{"(MaxInt32/2)/3 + (MaxInt32/2)/5", KindInt32, bigHalf32.Add(bigFifth32), half32.Add(fifth32)},
		{"(MaxInt32/2)/3 * (MaxInt32/2)/5", KindInt32, bigHalf32.Mul(bigFifth32), half32.Mul(fifth32)},
		{"(MaxInt64/2)/3 + (MaxInt64/2)/5", KindInt64, bigHalf64.Add(bigFifth64), half64.Add(fifth64)},
		{"(MaxInt64/2)/3 * (MaxInt64/2)/5", KindInt64, bigHalf64.Mul(bigFifth64), half64.Mul(fifth64)},
		{"3000000000/2 * 4/5000000000", KindInt64, bigF64.Mul(bigG64), f64.Mul(g64)},
	}
	for _, f := range fracs {
		cases = append(cases, newCase(f.name, f.kind, f.exact.String(), f.fixed.String()))
	}

	for _, c := range cases {
		if c.Wrapped {
			glog.Warningf("%v overflowed %v: got %v, want %v", c.Name, c.Kind, c.Fixed, c.Exact)
		}
	}
	return cases
}

func newCase(name string, kind Kind, exact, fixed string) Case {
	return Case{
		Name:    name,
		Kind:    kind,
		Exact:   exact,
		Fixed:   fixed,
		Wrapped: exact != fixed,
	}
}
