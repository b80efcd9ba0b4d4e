package preferences

import (
	"testing"

	"github.com/shopspring/decimal"

	"companion/internal/preferences/models"
)

// accessor is a minimal Settable over a plain Preferences value.
type accessor struct {
	prefs models.Preferences
}

func newAccessor() *accessor {
	return &accessor{prefs: models.Defaults()}
}

func (a *accessor) GetBool(k BoolKey) bool                     { return k.Get(&a.prefs) }
func (a *accessor) SetBool(k BoolKey, v bool)                  { k.Set(&a.prefs, v) }
func (a *accessor) GetDecimal(k DecimalKey) decimal.Decimal    { return k.Get(&a.prefs) }
func (a *accessor) SetDecimal(k DecimalKey, v decimal.Decimal) { k.Set(&a.prefs, v) }
func (a *accessor) GetCurve(k CurveKey) models.InsulinCurve    { return k.Get(&a.prefs) }
func (a *accessor) SetCurve(k CurveKey, v models.InsulinCurve) { k.Set(&a.prefs, v) }

// recorder collects published notifications.
type recorder struct {
	notes []ClampNotification
}

func (r *recorder) Publish(note ClampNotification) {
	r.notes = append(r.notes, note)
}

func d(t testing.TB, v string) decimal.Decimal {
	t.Helper()
	out, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", v, err)
	}
	return out
}

func dp(t testing.TB, v string) *decimal.Decimal {
	t.Helper()
	out := d(t, v)
	return &out
}
