package preferences

// FieldType names the active Kind arm for rendering layers.
type FieldType string

const (
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeDecimal      FieldType = "decimal"
	FieldTypeInsulinCurve FieldType = "insulinCurve"
)

// Kind is the closed set of field variants. Exactly one arm is active per
// Field, and the arm decides which typed getter/setter does anything.
type Kind interface {
	Type() FieldType
	KeyName() string
	isKind()
}

// BoolKind is a toggle over a boolean member.
type BoolKind struct {
	Key BoolKey
}

// DecimalKind is a numeric member with optional guardrail bounds. A nil Min
// or Max leaves that side unconstrained.
type DecimalKind struct {
	Key DecimalKey
	Min *DecimalKey
	Max *DecimalKey
}

// CurveKind is a picker over the insulin curve enumeration.
type CurveKind struct {
	Key CurveKey
}

func (BoolKind) Type() FieldType    { return FieldTypeBoolean }
func (DecimalKind) Type() FieldType { return FieldTypeDecimal }
func (CurveKind) Type() FieldType   { return FieldTypeInsulinCurve }

func (k BoolKind) KeyName() string    { return k.Key.Name() }
func (k DecimalKind) KeyName() string { return k.Key.Name() }
func (k CurveKind) KeyName() string   { return k.Key.Name() }

func (BoolKind) isKind()    {}
func (DecimalKind) isKind() {}
func (CurveKind) isKind()   {}
