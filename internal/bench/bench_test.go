package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverflow(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		exact   string
		fixed   string
		wrapped bool
	}{
		{"50000 * 50000", KindInt32, "2500000000", "-1794967296", true},
		{"(MaxInt32/2)/3 + (MaxInt32/2)/5", KindInt32, "8589934584 / 15", "-8 / 15", true},
		{"(MaxInt32/2)/3 * (MaxInt32/2)/5", KindInt32, "1152921502459363329 / 15", "-2147483647 / 15", true},
		{"(MaxInt64/2)/3 + (MaxInt64/2)/5", KindInt64, "36893488147419103224 / 15", "-8 / 15", true},
		{"(MaxInt64/2)/3 * (MaxInt64/2)/5", KindInt64, "21267647932558653957237540927630737409 / 15", "-9223372036854775807 / 15", true},
		{"3000000000/2 * 4/5000000000", KindInt64, "12000000000 / 10000000000", "12000000000 / 10000000000", false},
	}

	got := Overflow()
	require.Len(t, got, len(tests))
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := got[i]
			assert.Equal(t, tt.name, c.Name)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.exact, c.Exact)
			assert.Equal(t, tt.fixed, c.Fixed)
			assert.Equal(t, tt.wrapped, c.Wrapped)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().validate())
	assert.ErrorIs(t, Config{Iterations: 0, Samples: 1}.validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{Iterations: 1, Samples: -1}.validate(), ErrInvalidConfig)

	_, err := Timing(context.Background(), Config{}, DefaultOperands)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTiming(t *testing.T) {
	cfg := Config{Iterations: 10, Samples: 2}
	results, err := Timing(context.Background(), cfg, DefaultOperands)
	require.NoError(t, err)
	require.Len(t, results, len(DefaultOperands)*len(Ops)*len(Kinds))

	type key struct {
		set  string
		op   Op
		kind Kind
	}
	byKey := make(map[key]Result)
	for _, r := range results {
		byKey[key{r.Set, r.Op, r.Kind}] = r
	}

	tests := []struct {
		set     string
		op      Op
		kind    Kind
		value   string
		correct bool
		skipped bool
	}{
		{"small", OpSum, KindBig, "16 / 15", true, false},
		{"small", OpSum, KindInt32, "16 / 15", true, false},
		{"small", OpSum, KindInt64, "16 / 15", true, false},
		{"small", OpProduct, KindInt32, "4 / 15", true, false},
		{"large", OpSum, KindBig, "13000000000 / 21", true, false},
		{"large", OpSum, KindInt32, "115098112 / 21", false, false},
		{"large", OpSum, KindInt64, "13000000000 / 21", true, false},
		{"large", OpProduct, KindBig, "2000000000000000000 / 21", true, false},
		{"large", OpProduct, KindInt32, "1321730048 / 21", false, false},
		{"large", OpProduct, KindInt64, "2000000000000000000 / 21", true, false},
		{"huge", OpSum, KindInt32, "", false, true},
		{"huge", OpProduct, KindInt64, "", false, true},
	}
	for _, tt := range tests {
		r, ok := byKey[key{tt.set, tt.op, tt.kind}]
		if !assert.True(t, ok, "missing %v %v %v", tt.set, tt.op, tt.kind) {
			continue
		}
		if tt.skipped {
			assert.Error(t, r.Err, "%v %v %v", tt.set, tt.op, tt.kind)
			continue
		}
		assert.NoError(t, r.Err, "%v %v %v", tt.set, tt.op, tt.kind)
		assert.Equal(t, tt.value, r.Value, "%v %v %v", tt.set, tt.op, tt.kind)
		assert.Equal(t, tt.correct, r.Correct, "%v %v %v", tt.set, tt.op, tt.kind)
		assert.GreaterOrEqual(t, int64(r.PerOp), int64(0))
	}
}

func TestTiming_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Timing(ctx, DefaultConfig(), DefaultOperands)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTiming_InvalidOperands(t *testing.T) {
	sets := []Operands{{Name: "bad", A: "1/2", B: "x"}}
	_, err := Timing(context.Background(), DefaultConfig(), sets)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	f, err = ParseFormat("plain")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestRenderOverflow(t *testing.T) {
	for _, format := range []Format{FormatTable, FormatPlain} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderOverflow(&buf, Overflow(), format))
			out := buf.String()
			assert.Contains(t, out, "50000 * 50000")
			assert.Contains(t, out, "2500000000")
			assert.Contains(t, out, "-1794967296")
			assert.Contains(t, out, "8589934584 / 15")
			assert.Contains(t, out, "(wrapped)")
		})
	}
}

func TestRenderTiming(t *testing.T) {
	results := []Result{
		{Set: "small", Op: OpSum, Kind: KindBig, PerOp: 250, Value: "16 / 15", Correct: true},
		{Set: "small", Op: OpSum, Kind: KindInt32, PerOp: 3, Value: "16 / 15", Correct: true},
		{Set: "small", Op: OpSum, Kind: KindInt64, PerOp: 4, Value: "16 / 15", Correct: true},
		{Set: "large", Op: OpSum, Kind: KindBig, PerOp: 300, Value: "13000000000 / 21", Correct: true},
		{Set: "large", Op: OpSum, Kind: KindInt32, PerOp: 3, Value: "115098112 / 21"},
		{Set: "huge", Op: OpSum, Kind: KindInt64, Err: assert.AnError},
	}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTiming(&buf, results, FormatPlain))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, []string{
			"sum small bigint: 250ns",
			"sum small int32: 3ns",
			"sum small int64: 4ns",
			"sum large bigint: 300ns",
			"sum large int32: 3ns (wrapped)",
			"sum huge int64: n/a",
		}, lines)
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTiming(&buf, results, FormatTable))
		out := buf.String()
		assert.Contains(t, out, "small")
		assert.Contains(t, out, "250ns")
		assert.Contains(t, out, "(wrapped)")
		assert.Contains(t, out, "n/a")
		assert.Less(t, strings.Index(out, "small"), strings.Index(out, "large"))
	})
}
