package preferences

import (
	"github.com/shopspring/decimal"

	"companion/internal/preferences/models"
)

// Settable is the typed accessor a Field reads and writes through. It is
// implemented by whatever owns the Preferences aggregate for the editing
// session (see service.Editor).
//
// Implementations never fail: keys are valid by construction, and persisting
// the aggregate is the owner's concern.
type Settable interface {
	GetBool(key BoolKey) bool
	SetBool(key BoolKey, value bool)
	GetDecimal(key DecimalKey) decimal.Decimal
	SetDecimal(key DecimalKey, value decimal.Decimal)
	GetCurve(key CurveKey) models.InsulinCurve
	SetCurve(key CurveKey, value models.InsulinCurve)
}
