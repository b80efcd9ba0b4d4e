package preferences

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClampResult is the outcome of a guardrail check.
type ClampResult struct {
	Requested decimal.Decimal
	Value     decimal.Decimal
	Min       *decimal.Decimal
	Max       *decimal.Decimal
	// Clamped reports whether Value differs from Requested.
	Clamped bool
	// Message is empty unless Clamped.
	Message string
}

// Clamp forces value into [lo, hi]. A nil bound is unconstrained. With both
// bounds set the result is min(max(value, lo), hi), so hi wins when lo > hi.
//
// Numbers in Message use decimal.String: the shortest exact representation,
// "." separated, no grouping, independent of the display locale.
func Clamp(value decimal.Decimal, lo, hi *decimal.Decimal) ClampResult {
	res := ClampResult{Requested: value, Value: value, Min: lo, Max: hi}
	switch {
	case lo != nil && hi != nil:
		res.Value = decimal.Min(decimal.Max(value, *lo), *hi)
	case lo != nil:
		res.Value = decimal.Max(value, *lo)
	case hi != nil:
		res.Value = decimal.Min(value, *hi)
	}
	if res.Value.Equal(value) {
		// keep the caller's representation (5.0 stays 5.0)
		res.Value = value
		return res
	}
	res.Clamped = true
	res.Message = clampMessage(value, res.Value, lo, hi)
	return res
}

func clampMessage(requested, applied decimal.Decimal, lo, hi *decimal.Decimal) string {
	msg := fmt.Sprintf("%s is invalid.\nSet to: %s\n", requested.String(), applied.String())
	if lo != nil {
		msg += fmt.Sprintf("\nMin: %s", lo.String())
	}
	if hi != nil {
		msg += fmt.Sprintf("\nMax: %s", hi.String())
	}
	return msg
}
