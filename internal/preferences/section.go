package preferences

import "github.com/google/uuid"

// FieldSection is a named, ordered group of fields. The order is fixed at
// construction.
type FieldSection struct {
	ID          uuid.UUID
	DisplayName string
	fields      []*Field
}

func NewFieldSection(displayName string, fields ...*Field) FieldSection {
	return FieldSection{
		ID:          uuid.New(),
		DisplayName: displayName,
		fields:      append([]*Field(nil), fields...),
	}
}

// Fields returns the section's fields in display order. The slice is a copy;
// the fields themselves are shared.
func (s FieldSection) Fields() []*Field {
	return append([]*Field(nil), s.fields...)
}

func (s FieldSection) Len() int {
	return len(s.fields)
}
