package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"companion/internal/platform/metrics"
	"companion/internal/preferences"
	"companion/internal/preferences/models"
	"companion/pkg/platform/sentinel"
)

// Store persists the preferences aggregate. It is the external owner of
// durability; the editor only loads once per session and saves on request.
type Store interface {
	Load(ctx context.Context) (*models.Preferences, error)
	Save(ctx context.Context, prefs *models.Preferences) error
}

// Editor is one preferences editing session. It owns the working copy of the
// preferences, implements preferences.Settable for the fields it binds, and
// scopes guardrail observers to its own lifetime.
//
// An Editor is driven from a single goroutine (the UI event loop); it does no
// locking.
type Editor struct {
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
	notifier *preferences.Notifier

	prefs       models.Preferences
	sections    []preferences.FieldSection
	open        bool
	unsubscribe func()
}

var _ preferences.Settable = (*Editor)(nil)

type Option func(e *Editor)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Editor) {
		e.metrics = m
	}
}

// New constructs an Editor. Call Open before editing.
func New(store Store, opts ...Option) *Editor {
	e := &Editor{
		store:    store,
		logger:   slog.New(slog.DiscardHandler),
		notifier: preferences.NewNotifier(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open loads the stored preferences (falling back to defaults when none are
// stored) and binds a fresh set of fields to this session.
func (e *Editor) Open(ctx context.Context) error {
	if e.open {
		return fmt.Errorf("open editor: %w", sentinel.ErrInvalidState)
	}

	prefs, err := e.store.Load(ctx)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		e.logger.InfoContext(ctx, "no stored preferences, using defaults")
		e.prefs = models.Defaults()
	case err != nil:
		return fmt.Errorf("load preferences: %w", err)
	default:
		e.prefs = *prefs
	}

	e.sections = preferences.Catalog()
	for _, s := range e.sections {
		for _, f := range s.Fields() {
			f.Bind(e, e.notifier)
		}
	}
	e.unsubscribe = e.notifier.Subscribe(e.recordGuardrailHit)
	e.open = true
	return nil
}

// Close ends the session. Fields handed out earlier stay usable but read
// defaults and ignore writes. Unsaved edits are dropped, as are observers
// registered through Subscribe.
func (e *Editor) Close() {
	if !e.open {
		return
	}
	for _, s := range e.sections {
		for _, f := range s.Fields() {
			f.Detach()
		}
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.notifier = preferences.NewNotifier()
	e.open = false
}

func (e *Editor) IsOpen() bool {
	return e.open
}

// Sections returns the bound sections in display order.
func (e *Editor) Sections() []preferences.FieldSection {
	return append([]preferences.FieldSection(nil), e.sections...)
}

// Subscribe registers an observer for guardrail hits in this session.
func (e *Editor) Subscribe(obs preferences.Observer) func() {
	return e.notifier.Subscribe(obs)
}

// Field returns the bound field editing key.
func (e *Editor) Field(key string) (*preferences.Field, error) {
	if !e.open {
		return nil, fmt.Errorf("field %q: %w", key, sentinel.ErrInvalidState)
	}
	f, ok := preferences.FindField(e.sections, key)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", key, sentinel.ErrNotFound)
	}
	return f, nil
}

// Apply parses raw for the field editing key and writes it through the field,
// so decimal input passes the guardrails like any other edit.
func (e *Editor) Apply(key, raw string) (*preferences.Field, error) {
	f, err := e.Field(key)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)

	switch f.Kind.(type) {
	case preferences.BoolKind:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q expects true or false, got %q: %w", key, raw, sentinel.ErrInvalidInput)
		}
		f.SetBoolValue(v)
	case preferences.DecimalKind:
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q expects a number, got %q: %w", key, raw, sentinel.ErrInvalidInput)
		}
		f.SetDecimalValue(v)
	case preferences.CurveKind:
		v, err := models.ParseInsulinCurve(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %v: %w", key, err, sentinel.ErrInvalidInput)
		}
		f.SetCurveValue(v)
	default:
		return nil, fmt.Errorf("field %q has unsupported kind %T: %w", key, f.Kind, sentinel.ErrInvalidState)
	}
	return f, nil
}

// Preferences returns a copy of the session's working preferences.
func (e *Editor) Preferences() models.Preferences {
	return e.prefs
}

// Save hands the working preferences to the store.
func (e *Editor) Save(ctx context.Context) error {
	if !e.open {
		return fmt.Errorf("save preferences: %w", sentinel.ErrInvalidState)
	}
	prefs := e.prefs
	if err := e.store.Save(ctx, &prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	e.logger.InfoContext(ctx, "preferences saved")
	return nil
}

func (e *Editor) GetBool(key preferences.BoolKey) bool {
	return key.Get(&e.prefs)
}

func (e *Editor) SetBool(key preferences.BoolKey, value bool) {
	key.Set(&e.prefs, value)
	e.recordEdit(preferences.FieldTypeBoolean, key.Name(), strconv.FormatBool(value))
}

func (e *Editor) GetDecimal(key preferences.DecimalKey) decimal.Decimal {
	return key.Get(&e.prefs)
}

func (e *Editor) SetDecimal(key preferences.DecimalKey, value decimal.Decimal) {
	key.Set(&e.prefs, value)
	e.recordEdit(preferences.FieldTypeDecimal, key.Name(), value.String())
}

func (e *Editor) GetCurve(key preferences.CurveKey) models.InsulinCurve {
	return key.Get(&e.prefs)
}

func (e *Editor) SetCurve(key preferences.CurveKey, value models.InsulinCurve) {
	key.Set(&e.prefs, value)
	e.recordEdit(preferences.FieldTypeInsulinCurve, key.Name(), value.String())
}

func (e *Editor) recordEdit(fieldType preferences.FieldType, key, value string) {
	e.logger.Debug("preference set", "key", key, "value", value)
	if e.metrics != nil {
		e.metrics.IncrementFieldEdit(string(fieldType))
	}
}

func (e *Editor) recordGuardrailHit(note preferences.ClampNotification) {
	e.logger.Warn("guardrail hit",
		"key", note.Key,
		"requested", note.Requested.String(),
		"applied", note.Applied.String())
	if e.metrics != nil {
		e.metrics.IncrementGuardrailHit(note.Key)
	}
}
