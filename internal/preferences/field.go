package preferences

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"companion/internal/preferences/models"
)

// Field is one editable setting. Its Settable binding is borrowed from the
// editing session: the Field never owns it, and once the session detaches,
// reads fall back to defaults (false, 0, rapid-acting) and writes do nothing.
//
// Writing through the setter of an inactive Kind arm is a no-op.
type Field struct {
	ID          uuid.UUID
	DisplayName string
	InfoText    string
	Kind        Kind

	settable  Settable
	publisher Publisher
}

func NewField(displayName string, kind Kind, infoText string) *Field {
	return &Field{
		ID:          uuid.New(),
		DisplayName: displayName,
		InfoText:    infoText,
		Kind:        kind,
	}
}

// Key is the name of the member the field edits.
func (f *Field) Key() string {
	return f.Kind.KeyName()
}

// Bind attaches the field to a session. publisher may be nil.
func (f *Field) Bind(s Settable, publisher Publisher) {
	f.settable = s
	f.publisher = publisher
}

// Detach releases the session binding.
func (f *Field) Detach() {
	f.settable = nil
	f.publisher = nil
}

func (f *Field) Bound() bool {
	return f.settable != nil
}

func (f *Field) BoolValue() bool {
	k, ok := f.Kind.(BoolKind)
	if !ok || f.settable == nil {
		return false
	}
	return f.settable.GetBool(k.Key)
}

func (f *Field) SetBoolValue(v bool) {
	k, ok := f.Kind.(BoolKind)
	if !ok || f.settable == nil {
		return
	}
	f.settable.SetBool(k.Key, v)
}

func (f *Field) DecimalValue() decimal.Decimal {
	k, ok := f.Kind.(DecimalKind)
	if !ok || f.settable == nil {
		return decimal.Zero
	}
	return f.settable.GetDecimal(k.Key)
}

// SetDecimalValue runs v through the field's guardrails and commits the
// result. A notification is published only when the value was changed.
// It returns the committed value, or v unchanged when nothing was committed.
func (f *Field) SetDecimalValue(v decimal.Decimal) decimal.Decimal {
	k, ok := f.Kind.(DecimalKind)
	if !ok || f.settable == nil {
		return v
	}

	var lo, hi *decimal.Decimal
	if k.Min != nil {
		m := f.settable.GetDecimal(*k.Min)
		lo = &m
	}
	if k.Max != nil {
		m := f.settable.GetDecimal(*k.Max)
		hi = &m
	}

	res := Clamp(v, lo, hi)
	if res.Clamped && f.publisher != nil {
		f.publisher.Publish(ClampNotification{
			Name:      GuardrailHit,
			Key:       k.Key.Name(),
			Field:     f.DisplayName,
			Requested: res.Requested,
			Applied:   res.Value,
			Min:       res.Min,
			Max:       res.Max,
			Message:   res.Message,
		})
	}
	f.settable.SetDecimal(k.Key, res.Value)
	return res.Value
}

func (f *Field) CurveValue() models.InsulinCurve {
	k, ok := f.Kind.(CurveKind)
	if !ok || f.settable == nil {
		return models.DefaultInsulinCurve
	}
	return f.settable.GetCurve(k.Key)
}

func (f *Field) SetCurveValue(v models.InsulinCurve) {
	k, ok := f.Kind.(CurveKind)
	if !ok || f.settable == nil {
		return
	}
	f.settable.SetCurve(k.Key, v)
}
