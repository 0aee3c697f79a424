package fraction

import (
	"math/bits"
	"strconv"
)

// nat (NATural number) is the magnitude of a [BigInt].
// It is a sequence of digit groups in base 10^9, least-significant first:
//
//	x = x[n-1]*10^(9*(n-1)) + ... + x[1]*10^9 + x[0]
//
// A nat is normalized if it has no most-significant zero groups,
// except for zero itself, which is exactly one group with value 0.
// Functions in this file never modify their arguments.
type nat []uint32

const (
	groupBase   = 1_000_000_000 // base of a digit group
	groupDigits = 9             // decimal digits per digit group
)

// natZero is the normalized representation of 0.
// It is shared and must never be written to.
var natZero = nat{0}

// newNat creates a normalized nat from uint64.
func newNat(u uint64) nat {
	if u == 0 {
		return natZero
	}
	z := make(nat, 0, 3)
	for u != 0 {
		z = append(z, uint32(u%groupBase))
		u /= groupBase
	}
	return z
}

// parseNat converts a string of decimal digits to a normalized nat.
// The caller must ensure that s is not empty and contains only digits.
func parseNat(s string) nat {
	z := make(nat, 0, (len(s)+groupDigits-1)/groupDigits)
	for end := len(s); end > 0; end -= groupDigits {
		start := max(end-groupDigits, 0)
		var g uint32
		for i := start; i < end; i++ {
			g = g*10 + uint32(s[i]-'0')
		}
		z = append(z, g)
	}
	return z.norm()
}

// norm removes most-significant zero groups.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return natZero
	}
	return z[:i]
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// cmp compares normalized x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		carry = 0
		if s >= groupBase {
			s -= groupBase
			carry = 1
		}
		z[i] = s
	}
	z[len(x)] = carry
	return z.norm()
}

// sub calculates x - y.
// If x < y, the result is undefined.
func (x nat) sub(y nat) nat {
	z := make(nat, len(x))
	var borrow int64
	for i := range x {
		d := int64(x[i]) - borrow
		if i < len(y) {
			d -= int64(y[i])
		}
		borrow = 0
		if d < 0 {
			d += groupBase
			borrow = 1
		}
		z[i] = uint32(d)
	}
	return z.norm()
}

// mul calculates x * y using schoolbook multiplication.
func (x nat) mul(y nat) nat {
	if x.isZero() || y.isZero() {
		return natZero
	}
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t % groupBase)
			carry = t / groupBase
		}
		z[i+len(y)] = uint32(carry)
	}
	return z.norm()
}

// mulWord calculates x * w.
// The result has exactly len(x) + 1 groups and is not normalized.
func (x nat) mulWord(w uint32) nat {
	z := make(nat, len(x)+1)
	var carry uint64
	for i, xi := range x {
		t := uint64(xi)*uint64(w) + carry
		z[i] = uint32(t % groupBase)
		carry = t / groupBase
	}
	z[len(x)] = uint32(carry)
	return z
}

// divWord calculates q = ⌊x / d⌋ and r = x - q * d.
// If d is 0, the result is undefined.
func (x nat) divWord(d uint32) (q nat, r uint32) {
	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		rem = rem*groupBase + uint64(x[i])
		q[i] = uint32(rem / uint64(d))
		rem %= uint64(d)
	}
	return q.norm(), uint32(rem)
}

// quoRem calculates q = ⌊x / y⌋ and r = x - q * y.
// If y is 0, the result is undefined.
func (x nat) quoRem(y nat) (q, r nat) {
	switch {
	case x.cmp(y) < 0:
		return natZero, x
	case len(y) == 1:
		q, w := x.divWord(y[0])
		return q, newNat(uint64(w))
	}
	return x.divLarge(y)
}

// divLarge implements long division for divisors of two or more groups.
// It follows Algorithm D from Knuth, TAOCP Vol 2 (3e), section 4.3.1.
// The operands are scaled so that the leading divisor group is at least
// half the base, which bounds the error of every quotient estimate by 2.
func (x nat) divLarge(y nat) (q, r nat) {
	n := len(y)
	m := len(x) - n
	f := uint32(groupBase / (uint64(y[n-1]) + 1))
	u := x.mulWord(f)
	v := y.mulWord(f)[:n]
	vtop, vnext := uint64(v[n-1]), uint64(v[n-2])

	q = make(nat, m+1)
	for j := m; j >= 0; j-- {
		num := uint64(u[j+n])*groupBase + uint64(u[j+n-1])
		qhat, rhat := num/vtop, num%vtop
		for qhat >= groupBase || qhat*vnext > rhat*groupBase+uint64(u[j+n-2]) {
			qhat--
			rhat += vtop
			if rhat >= groupBase {
				break
			}
		}
		if subMulWord(u[j:j+n+1], v, qhat) {
			qhat--
			addBack(u[j:j+n+1], v)
		}
		q[j] = uint32(qhat)
	}

	r, _ = u[:n].divWord(f)
	return q.norm(), r
}

// subMulWord calculates u = u - v * w in place, where len(u) == len(v) + 1.
// It reports whether the result is negative, in which case u holds
// the base complement of the difference.
func subMulWord(u []uint32, v nat, w uint64) bool {
	var carry uint64
	var borrow int64
	for i := range v {
		p := w*uint64(v[i]) + carry
		carry = p / groupBase
		d := int64(u[i]) - int64(p%groupBase) - borrow
		borrow = 0
		if d < 0 {
			d += groupBase
			borrow = 1
		}
		u[i] = uint32(d)
	}
	d := int64(u[len(v)]) - int64(carry) - borrow
	if d < 0 {
		u[len(v)] = uint32(d + groupBase)
		return true
	}
	u[len(v)] = uint32(d)
	return false
}

// addBack calculates u = u + v in place, where len(u) == len(v) + 1,
// discarding the carry out of the most-significant group.
func addBack(u []uint32, v nat) {
	var carry uint32
	for i := range v {
		s := u[i] + v[i] + carry
		carry = 0
		if s >= groupBase {
			s -= groupBase
			carry = 1
		}
		u[i] = s
	}
	u[len(v)] = (u[len(v)] + carry) % groupBase
}

// gcd calculates the greatest common divisor of x and y
// using the Euclidean algorithm.
// gcd(0, 0) is 0.
func (x nat) gcd(y nat) nat {
	for !y.isZero() {
		_, r := x.quoRem(y)
		x, y = y, r
	}
	return x.norm()
}

// uint64 converts x to uint64 and reports whether the conversion was exact.
func (x nat) uint64() (uint64, bool) {
	var u uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(u, groupBase)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		u, carry = bits.Add64(lo, uint64(x[i]), 0)
		if carry != 0 {
			return 0, false
		}
	}
	return u, true
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has one digit.
func (x nat) prec() int {
	x = x.norm()
	top := x[len(x)-1]
	p := 1
	for top >= 10 {
		top /= 10
		p++
	}
	return (len(x)-1)*groupDigits + p
}

// appendDecimal appends the decimal digits of x to buf.
// Every group except the most-significant one is padded with zeros.
func (x nat) appendDecimal(buf []byte) []byte {
	x = x.norm()
	buf = strconv.AppendUint(buf, uint64(x[len(x)-1]), 10)
	var group [groupDigits]byte
	for i := len(x) - 2; i >= 0; i-- {
		g := x[i]
		for pos := groupDigits - 1; pos >= 0; pos-- {
			group[pos] = byte(g%10) + '0'
			g /= 10
		}
		buf = append(buf, group[:]...)
	}
	return buf
}
