package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/govalues/fraction"
)

// Kind names an integer representation backing a fraction.
type Kind string

const (
	KindInt32 Kind = "int32"
	KindInt64 Kind = "int64"
	KindBig   Kind = "bigint"
)

// Kinds lists the representations in report order.
var Kinds = []Kind{KindInt32, KindInt64, KindBig}

// Op names a timed fraction operation.
type Op string

const (
	OpSum     Op = "sum"
	OpProduct Op = "product"
)

// Ops lists the timed operations in report order.
var Ops = []Op{OpSum, OpProduct}

// Operands is a named pair of fractions in "n/d" form.
type Operands struct {
	Name string
	A, B string
}

// DefaultOperands are the operand sets timed when none are configured.
// Operands that do not fit a fixed-width type are reported, not timed.
var DefaultOperands = []Operands{
	{Name: "small", A: "2/3", B: "2/5"},
	{Name: "large", A: "1000000000/3", B: "2000000000/7"},
	{Name: "huge", A: "12345678901234567890/9876543210987654321", B: "11111111111111111111/2222222222222222222"},
}

// ErrInvalidConfig is returned when a timing configuration cannot be run.
var ErrInvalidConfig = errors.New("invalid timing configuration")

// Config controls a timing run.
type Config struct {
	// Iterations is the number of operations per sample.
	Iterations int
	// Samples is the number of timed samples; the fastest one is reported.
	Samples int
}

// DefaultConfig returns the configuration used by the fracbench tool.
func DefaultConfig() Config {
	return Config{Iterations: 5000, Samples: 5}
}

func (c Config) validate() error {
	switch {
	case c.Iterations <= 0:
		return fmt.Errorf("iterations must be positive, got %v: %w", c.Iterations, ErrInvalidConfig)
	case c.Samples <= 0:
		return fmt.Errorf("samples must be positive, got %v: %w", c.Samples, ErrInvalidConfig)
	}
	return nil
}

// Result is the outcome of timing one operation on one operand set
// with one representation.
type Result struct {
	Set  string
	Op   Op
	Kind Kind
	// PerOp is the average time per operation in the fastest sample.
	PerOp time.Duration
	// Value is the unnormalized result of the operation.
	Value string
	// Correct reports whether Value equals the BigInt result.
	Correct bool
	// Err is set if the operands could not be represented.
	Err error
}

// sink consumes every result so the timed loop cannot be optimized away.
type sink[T fraction.Integer[T]] struct {
	acc  int
	last fraction.Frac[T]
}

func (s *sink[T]) observe(f fraction.Frac[T]) {
	s.acc += f.Sign()
	s.last = f
}

// Timing times the sum and product of every operand set with every
// representation.
// The context is checked between samples; if it is done, Timing returns
// the context error.
func Timing(ctx context.Context, cfg Config, sets []Operands) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var results []Result
	for _, set := range sets {
		glog.V(1).Infof("timing operand set %q: %v, %v", set.Name, set.A, set.B)
		x, err := fraction.ParseRat(set.A)
		if err != nil {
			return nil, fmt.Errorf("operand set %q: %w", set.Name, err)
		}
		y, err := fraction.ParseRat(set.B)
		if err != nil {
			return nil, fmt.Errorf("operand set %q: %w", set.Name, err)
		}
		for _, op := range Ops {
			exact, perOp, err := timeOp(ctx, cfg, op, x, y)
			if err != nil {
				return nil, err
			}
			results = append(results, Result{
				Set:     set.Name,
				Op:      op,
				Kind:    KindBig,
				PerOp:   perOp,
				Value:   exact.String(),
				Correct: true,
			})

			r, err := timeFixed(ctx, cfg, op, set, exact, fraction.ParseInt32)
			if err != nil {
				return nil, err
			}
			r.Kind = KindInt32
			results = append(results, r)

			r, err = timeFixed(ctx, cfg, op, set, exact, fraction.ParseInt64)
			if err != nil {
				return nil, err
			}
			r.Kind = KindInt64
			results = append(results, r)
		}
	}
	return results, nil
}

// timeFixed times op with a fixed-width representation and compares the
// result with exact.
// Operands that cannot be parsed are reported in Result.Err.
// Only context errors are returned.
func timeFixed[T fraction.Integer[T]](
	ctx context.Context,
	cfg Config,
	op Op,
	set Operands,
	exact fraction.BigFrac,
	parse func(string) (T, error),
) (Result, error) {
	r := Result{Set: set.Name, Op: op}
	var x, y fraction.Frac[T]
	x, err := parseFrac(set.A, parse)
	if err == nil {
		y, err = parseFrac(set.B, parse)
	}
	if err != nil {
		glog.V(1).Infof("skipping operand set %q: %v", set.Name, err)
		r.Err = err
		return r, nil
	}

	z, perOp, err := timeOp(ctx, cfg, op, x, y)
	if err != nil {
		return Result{}, err
	}
	r.PerOp = perOp
	r.Value = z.String()
	r.Correct = r.Value == exact.String()
	if !r.Correct {
		glog.Warningf("%v of operand set %q overflowed: got %v, want %v", op, set.Name, r.Value, exact)
	}
	return r, nil
}

func timeOp[T fraction.Integer[T]](
	ctx context.Context,
	cfg Config,
	op Op,
	x, y fraction.Frac[T],
) (fraction.Frac[T], time.Duration, error) {
	var fn func(x, y fraction.Frac[T]) fraction.Frac[T]
	switch op {
	case OpSum:
		fn = func(x, y fraction.Frac[T]) fraction.Frac[T] { return x.Add(y) }
	case OpProduct:
		fn = func(x, y fraction.Frac[T]) fraction.Frac[T] { return x.Mul(y) }
	default:
		return fraction.Frac[T]{}, 0, fmt.Errorf("unknown operation %q", op)
	}

	var s sink[T]
	var best time.Duration
	for i := 0; i < cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return fraction.Frac[T]{}, 0, err
		}
		start := time.Now()
		for j := 0; j < cfg.Iterations; j++ {
			s.observe(fn(x, y))
		}
		elapsed := time.Since(start)
		if i == 0 || elapsed < best {
			best = elapsed
		}
	}
	glog.V(2).Infof("%v: %v samples, accumulator %v", op, cfg.Samples, s.acc)
	return s.last, best / time.Duration(cfg.Iterations), nil
}

// parseFrac reads an "n/d" fraction into a fixed-width representation.
func parseFrac[T fraction.Integer[T]](s string, parse func(string) (T, error)) (fraction.Frac[T], error) {
	f, err := fraction.ParseRat(s)
	if err != nil {
		return fraction.Frac[T]{}, err
	}
	num, err := parse(f.Num().String())
	if err != nil {
		return fraction.Frac[T]{}, fmt.Errorf("numerator of %q: %w", s, err)
	}
	den, err := parse(f.Den().String())
	if err != nil {
		return fraction.Frac[T]{}, fmt.Errorf("denominator of %q: %w", s, err)
	}
	return fraction.NewFrac(num, den), nil
}
