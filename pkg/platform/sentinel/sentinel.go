package sentinel

import "errors"

// Sentinel errors for facts about resources and sessions. Stores and services
// return these (optionally wrapped) so callers can branch with errors.Is.
//
// The guardrail engine never returns errors: out-of-range values are clamped,
// not rejected. These cover the layers around it:
// - ErrNotFound: no stored preferences, or no field with that key
// - ErrInvalidInput: text input that cannot be parsed for the field's kind
// - ErrInvalidState: operation not allowed in the current state
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
)
