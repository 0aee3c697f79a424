package fraction_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/govalues/fraction"
)

func evaluate(input string) (fraction.BigFrac, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fraction.BigFrac{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return fraction.BigFrac{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return fraction.BigFrac{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0].Normalize()
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]fraction.BigFrac, error) {
	stack := make([]fraction.BigFrac, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []fraction.BigFrac, token string) ([]fraction.BigFrac, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fraction.BigFrac
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []fraction.BigFrac, token string) ([]fraction.BigFrac, error) {
	f, err := fraction.ParseRat(token)
	if err != nil {
		return nil, err
	}
	return append(stack, f), nil
}

// This example implements a simple calculator that evaluates expressions
// over fractions written in prefix (Polish) notation.
// Intermediate results stay unnormalized and only the final result
// is reduced.
func Example_prefixCalculator() {
	f, err := evaluate("* 1/2 + 1/3 1/6")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output:
	// 1 / 4
}

// This example shows the difference between fixed-width and
// arbitrary-precision arithmetic on the same operands.
func Example_overflow() {
	x := fraction.Int32(50000)
	y := fraction.MustParseBigInt("50000")
	fmt.Println(x.Mul(x))
	fmt.Println(y.Mul(y))

	half := fraction.Int32(math.MaxInt32 / 2)
	f := fraction.NewFrac(half, 3)
	g := fraction.NewFrac(half, 5)
	fmt.Println(f.Add(g))

	bigHalf := fraction.NewBigInt(math.MaxInt32 / 2)
	p := fraction.NewFrac(bigHalf, fraction.NewBigInt(3))
	q := fraction.NewFrac(bigHalf, fraction.NewBigInt(5))
	fmt.Println(p.Add(q))
	// Output:
	// -1794967296
	// 2500000000
	// -8 / 15
	// 8589934584 / 15
}

func ExampleNewBigInt() {
	fmt.Println(fraction.NewBigInt(-123))
	fmt.Println(fraction.NewBigInt(math.MinInt64))
	// Output:
	// -123
	// -9223372036854775808
}

func ExampleParseBigInt() {
	fmt.Println(fraction.ParseBigInt("-0012345"))
	fmt.Println(fraction.ParseBigInt("-0"))
	// Output:
	// -12345 <nil>
	// 0 <nil>
}

func ExampleMustParseBigInt() {
	fmt.Println(fraction.MustParseBigInt("12345678901234567890"))
	// Output: 12345678901234567890
}

func ExampleBigInt_String() {
	x := fraction.MustParseBigInt("-1000000000000000000000")
	fmt.Println(x.String())
	// Output: -1000000000000000000000
}

func ExampleBigInt_Int64() {
	x := fraction.MustParseBigInt("-9223372036854775808")
	y := fraction.MustParseBigInt("9223372036854775808")
	fmt.Println(x.Int64())
	fmt.Println(y.Int64())
	// Output:
	// -9223372036854775808 true
	// 0 false
}

type Value struct {
	Number fraction.BigInt `json:"number"`
}

func ExampleBigInt_UnmarshalText() {
	b := []byte(`{"number": "-1567"}`)
	var v Value
	err := json.Unmarshal(b, &v)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: {-1567}
}

func ExampleBigInt_MarshalText() {
	x := fraction.MustParseBigInt("-1567")
	v := Value{Number: x}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"number":"-1567"}
}

func ExampleBigInt_Scan() {
	x := &fraction.BigInt{}
	s := "-1567"
	err := x.Scan(s)
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: -1567
}

func ExampleBigInt_Value() {
	x := fraction.MustParseBigInt("-1567")
	s, err := x.Value()
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: -1567
}

func ExampleBigInt_Add() {
	x := fraction.MustParseBigInt("99999999999999999999")
	y := fraction.MustParseBigInt("1")
	fmt.Println(x.Add(y))
	// Output: 100000000000000000000
}

func ExampleBigInt_Sub() {
	x := fraction.MustParseBigInt("1")
	y := fraction.MustParseBigInt("100000000000000000000")
	fmt.Println(x.Sub(y))
	// Output: -99999999999999999999
}

func ExampleBigInt_Mul() {
	x := fraction.MustParseBigInt("12345678901234567890")
	y := fraction.MustParseBigInt("11111111111111111111")
	fmt.Println(x.Mul(y))
	// Output: 137174210013717420998628257899862825790
}

func ExampleBigInt_Quo() {
	x := fraction.MustParseBigInt("-7")
	y := fraction.MustParseBigInt("2")
	fmt.Println(x.Quo(y))
	// Output: -3 <nil>
}

func ExampleBigInt_QuoRem() {
	x := fraction.MustParseBigInt("-7")
	y := fraction.MustParseBigInt("2")
	fmt.Println(x.QuoRem(y))
	// Output: -3 -1 <nil>
}

func ExampleBigInt_GCD() {
	x := fraction.MustParseBigInt("-12")
	y := fraction.MustParseBigInt("18")
	z := fraction.MustParseBigInt("0")
	fmt.Println(x.GCD(y))
	fmt.Println(x.GCD(z))
	fmt.Println(z.GCD(z))
	// Output:
	// 6
	// 12
	// 0
}

func ExampleBigInt_Cmp() {
	x := fraction.MustParseBigInt("-23")
	y := fraction.MustParseBigInt("15")
	fmt.Println(x.Cmp(y))
	fmt.Println(x.Cmp(x))
	fmt.Println(y.Cmp(x))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleBigInt_CmpAbs() {
	x := fraction.MustParseBigInt("-23")
	y := fraction.MustParseBigInt("15")
	fmt.Println(x.CmpAbs(y))
	fmt.Println(x.CmpAbs(x))
	fmt.Println(y.CmpAbs(x))
	// Output:
	// 1
	// 0
	// -1
}

func ExampleParseRat() {
	fmt.Println(fraction.ParseRat("-4/6"))
	fmt.Println(fraction.ParseRat("7"))
	// Output:
	// -4 / 6 <nil>
	// 7 / 1 <nil>
}

func ExampleParseBigFrac() {
	fmt.Println(fraction.ParseBigFrac("2", "-5"))
	// Output: 2 / -5 <nil>
}

func ExampleFrac_Add() {
	x := fraction.MustParseRat("1/2")
	y := fraction.MustParseRat("1/3")
	fmt.Println(x.Add(y))
	// Output: 5 / 6
}

func ExampleFrac_Sub() {
	x := fraction.MustParseRat("1/2")
	y := fraction.MustParseRat("1/3")
	fmt.Println(x.Sub(y))
	// Output: 1 / 6
}

func ExampleFrac_Mul() {
	x := fraction.MustParseRat("2/3")
	y := fraction.MustParseRat("3/4")
	fmt.Println(x.Mul(y))
	// Output: 6 / 12
}

func ExampleFrac_Quo() {
	x := fraction.MustParseRat("2/3")
	y := fraction.MustParseRat("3/4")
	fmt.Println(x.Quo(y))
	// Output: 8 / 9 <nil>
}

func ExampleFrac_Normalize() {
	x := fraction.MustParseRat("-2/3")
	y := fraction.MustParseRat("2/-5")
	z := x.Add(y)
	fmt.Println(z)
	fmt.Println(z.Normalize())
	fmt.Println(fraction.MustParseRat("4/6").Normalize())
	// Output:
	// 16 / -15
	// -16 / 15 <nil>
	// 2 / 3 <nil>
}

func ExampleFrac_Cmp() {
	x := fraction.MustParseRat("1/2")
	y := fraction.MustParseRat("-2/-4")
	z := fraction.MustParseRat("2/3")
	fmt.Println(x.Cmp(y))
	fmt.Println(x.Cmp(z))
	fmt.Println(z.Cmp(x))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleFrac_MarshalText() {
	f := fraction.MustParseRat("-4 / 6")
	b, err := f.MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: -4/6
}

func ExampleNewFrac() {
	f := fraction.NewFrac[fraction.Int64](3000000000, 2)
	g := fraction.NewFrac[fraction.Int64](4, 5000000000)
	fmt.Println(f.Mul(g))
	fmt.Println(f.Mul(g).MustNormalize())
	// Output:
	// 12000000000 / 10000000000
	// 6 / 5
}
