package preferences

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		lo, hi      string
		want        string
		clamped     bool
		mentions    []string
		notMentions []string
	}{
		{name: "within both bounds", value: "1", lo: "0.05", hi: "5", want: "1"},
		{name: "at lower bound", value: "0.05", lo: "0.05", hi: "5", want: "0.05"},
		{name: "at upper bound", value: "5", lo: "0.05", hi: "5", want: "5"},
		{
			name: "above upper bound", value: "7.5", lo: "0.05", hi: "5", want: "5", clamped: true,
			mentions: []string{"7.5 is invalid.", "Set to: 5", "Min: 0.05", "Max: 5"},
		},
		{
			name: "below lower bound", value: "0.01", lo: "0.05", hi: "5", want: "0.05", clamped: true,
			mentions: []string{"0.01 is invalid.", "Set to: 0.05", "Min: 0.05", "Max: 5"},
		},
		{
			name: "only min, below", value: "-1", lo: "0", want: "0", clamped: true,
			mentions: []string{"Min: 0"}, notMentions: []string{"Max:"},
		},
		{name: "only min, above", value: "1000", lo: "0", want: "1000"},
		{
			name: "only max, above", value: "12", hi: "10", want: "10", clamped: true,
			mentions: []string{"Max: 10"}, notMentions: []string{"Min:"},
		},
		{name: "only max, below", value: "-12", hi: "10", want: "-12"},
		{name: "no bounds", value: "-3", want: "-3"},
		{name: "inverted bounds prefer max", value: "3", lo: "4", hi: "2", want: "2", clamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lo, hi *decimal.Decimal
			if tt.lo != "" {
				lo = dp(t, tt.lo)
			}
			if tt.hi != "" {
				hi = dp(t, tt.hi)
			}

			res := Clamp(d(t, tt.value), lo, hi)

			assert.True(t, res.Value.Equal(d(t, tt.want)), "got %s, want %s", res.Value, tt.want)
			assert.Equal(t, tt.clamped, res.Clamped)
			if !tt.clamped {
				assert.Empty(t, res.Message)
			}
			for _, m := range tt.mentions {
				assert.Contains(t, res.Message, m)
			}
			for _, m := range tt.notMentions {
				assert.NotContains(t, res.Message, m)
			}
		})
	}
}

func TestClamp_KeepsRepresentationWhenUnchanged(t *testing.T) {
	res := Clamp(d(t, "5.00"), dp(t, "0"), dp(t, "5"))
	require.False(t, res.Clamped)
	assert.Equal(t, "5", res.Value.String())
	assert.Equal(t, int32(-2), res.Value.Exponent())
}

func TestClamp_Properties(t *testing.T) {
	lo, hi := d(t, "0.05"), d(t, "5")
	for i := -200; i <= 200; i++ {
		v := decimal.New(int64(i), -1).Mul(decimal.NewFromInt(3))

		first := Clamp(v, &lo, &hi)
		assert.False(t, first.Value.LessThan(lo), "%s below min", first.Value)
		assert.False(t, first.Value.GreaterThan(hi), "%s above max", first.Value)

		second := Clamp(first.Value, &lo, &hi)
		assert.True(t, second.Value.Equal(first.Value), "clamp not idempotent for %s", v)
		assert.False(t, second.Clamped)

		inRange := !v.LessThan(lo) && !v.GreaterThan(hi)
		assert.Equal(t, !inRange, first.Clamped, "clamped flag for %s", v)
	}
}

// FuzzClamp checks the range and idempotence invariants on arbitrary input.
func FuzzClamp(f *testing.F) {
	f.Add("7.5", "0.05", "5")
	f.Add("-3", "-10", "10")
	f.Add("0", "0", "0")
	f.Add("123456789.123456789", "1", "2")

	f.Fuzz(func(t *testing.T, rawValue, rawLo, rawHi string) {
		v, err1 := decimal.NewFromString(rawValue)
		lo, err2 := decimal.NewFromString(rawLo)
		hi, err3 := decimal.NewFromString(rawHi)
		if err1 != nil || err2 != nil || err3 != nil {
			t.Skip()
		}
		for _, x := range []decimal.Decimal{v, lo, hi} {
			if e := x.Exponent(); e > 64 || e < -64 {
				t.Skip()
			}
		}
		if lo.GreaterThan(hi) {
			lo, hi = hi, lo
		}

		res := Clamp(v, &lo, &hi)
		if res.Value.LessThan(lo) || res.Value.GreaterThan(hi) {
			t.Fatalf("Clamp(%s) = %s outside [%s, %s]", v, res.Value, lo, hi)
		}
		if again := Clamp(res.Value, &lo, &hi); !again.Value.Equal(res.Value) || again.Clamped {
			t.Fatalf("Clamp not idempotent: %s -> %s -> %s", v, res.Value, again.Value)
		}
		if res.Clamped != (res.Message != "") {
			t.Fatalf("message presence does not match clamped flag")
		}
	})
}
