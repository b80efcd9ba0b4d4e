// Package bolus models the watch bolus entry screen: a step counter driven by
// plus/minus buttons and the digital crown, bounded by the pump's max bolus.
package bolus

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"companion/internal/platform/metrics"
	"companion/pkg/platform/sentinel"
)

var (
	// DefaultIncrement is the size of one step in units.
	DefaultIncrement = decimal.RequireFromString("0.5")
	// DefaultMaxBolus applies when the phone has not reported a max bolus.
	DefaultMaxBolus = decimal.NewFromInt(5)

	fineIncrement = decimal.RequireFromString("0.05")
)

// Enactor hands a confirmed bolus to the phone.
type Enactor interface {
	AddBolus(ctx context.Context, amount decimal.Decimal) error
}

// Haptics plays the click feedback for button presses and crown detents.
type Haptics interface {
	Click()
}

// Stepper is the state of one bolus entry screen. Amounts are always
// steps*increment, so they never exceed the max bolus and are never negative.
type Stepper struct {
	enactor Enactor
	haptics Haptics
	logger  *slog.Logger
	metrics *metrics.Metrics
	printer *message.Printer

	increment   decimal.Decimal
	maxBolus    decimal.Decimal
	recommended decimal.Decimal

	steps    int64
	maxSteps int64
	active   bool
}

type Option func(s *Stepper)

// WithIncrement sets the step size. Non-positive values are ignored.
func WithIncrement(inc decimal.Decimal) Option {
	return func(s *Stepper) {
		if inc.IsPositive() {
			s.increment = inc
		}
	}
}

// WithMaxBolus sets the upper limit. nil keeps DefaultMaxBolus.
func WithMaxBolus(maxBolus *decimal.Decimal) Option {
	return func(s *Stepper) {
		if maxBolus != nil {
			s.maxBolus = *maxBolus
		}
	}
}

// WithRecommended preselects the recommended bolus, rounded down to a step.
func WithRecommended(amount decimal.Decimal) Option {
	return func(s *Stepper) {
		s.recommended = amount
	}
}

func WithHaptics(h Haptics) Option {
	return func(s *Stepper) {
		s.haptics = h
	}
}

// WithLanguage selects the locale used by Label.
func WithLanguage(tag language.Tag) Option {
	return func(s *Stepper) {
		s.printer = message.NewPrinter(tag)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Stepper) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Stepper) {
		s.metrics = m
	}
}

// New opens a bolus entry screen.
func New(enactor Enactor, opts ...Option) *Stepper {
	s := &Stepper{
		enactor:   enactor,
		logger:    slog.New(slog.DiscardHandler),
		printer:   message.NewPrinter(language.English),
		increment: DefaultIncrement,
		maxBolus:  DefaultMaxBolus,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.maxSteps = max(s.toSteps(s.maxBolus), 0)
	s.Reset()
	return s
}

// Reset reactivates the screen and preselects the recommended bolus.
func (s *Stepper) Reset() {
	s.steps = s.clamp(s.toSteps(s.recommended))
	s.active = true
}

var (
	maxStepCount = decimal.NewFromInt(math.MaxInt64)
	minStepCount = decimal.NewFromInt(math.MinInt64)
)

// toSteps saturates at the int64 range; IntPart wraps outside it.
func (s *Stepper) toSteps(amount decimal.Decimal) int64 {
	q := amount.Div(s.increment).Floor()
	switch {
	case q.GreaterThan(maxStepCount):
		return math.MaxInt64
	case q.LessThan(minStepCount):
		return math.MinInt64
	}
	return q.IntPart()
}

func (s *Stepper) clamp(steps int64) int64 {
	return min(max(steps, 0), s.maxSteps)
}

func (s *Stepper) click() {
	if s.haptics != nil {
		s.haptics.Click()
	}
}

func (s *Stepper) Steps() int64 {
	return s.steps
}

func (s *Stepper) MaxSteps() int64 {
	return s.maxSteps
}

func (s *Stepper) Active() bool {
	return s.active
}

// Increment adds one step, stopping at the max bolus. A closed screen
// ignores it.
func (s *Stepper) Increment() {
	if !s.active {
		return
	}
	s.click()
	if s.steps < s.maxSteps {
		s.steps++
	}
}

// Decrement removes one step, stopping at zero. A closed screen ignores it.
func (s *Stepper) Decrement() {
	if !s.active {
		return
	}
	s.click()
	if s.steps > 0 {
		s.steps--
	}
}

// Rotate applies a crown position. The crown moves in whole steps, so the
// position is rounded down and clamped to [0, MaxSteps]. A closed screen
// ignores it.
func (s *Stepper) Rotate(position float64) {
	if !s.active || math.IsNaN(position) {
		return
	}
	var next int64
	switch {
	case position <= 0:
		next = 0
	case position >= float64(s.maxSteps):
		next = s.maxSteps
	default:
		next = int64(math.Floor(position))
	}
	if next != s.steps {
		s.click()
		s.steps = next
	}
}

// Amount is the selected bolus in units.
func (s *Stepper) Amount() decimal.Decimal {
	return s.increment.Mul(decimal.NewFromInt(s.steps))
}

func (s *Stepper) fractionDigits() int {
	if s.increment.GreaterThan(fineIncrement) {
		return 1
	}
	return 2
}

// Label renders the amount for display, e.g. "1.5 U". Coarse increments show
// one fraction digit and fine ones two; extra digits are rounded down.
func (s *Stepper) Label() string {
	digits := s.fractionDigits()
	amount := s.Amount().Truncate(int32(digits))
	return s.printer.Sprint(number.Decimal(amount.InexactFloat64(),
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits))) + " U"
}

// CanEnact reports whether the confirm button is enabled.
func (s *Stepper) CanEnact() bool {
	return s.active && s.steps > 0
}

// Enact sends the selected bolus to the phone and closes the screen.
func (s *Stepper) Enact(ctx context.Context) error {
	if !s.active {
		return fmt.Errorf("enact bolus: screen closed: %w", sentinel.ErrInvalidState)
	}
	if s.steps <= 0 {
		return fmt.Errorf("enact bolus: nothing selected: %w", sentinel.ErrInvalidState)
	}
	s.click()

	amount := s.Amount()
	if err := s.enactor.AddBolus(ctx, amount); err != nil {
		s.logger.ErrorContext(ctx, "bolus not enacted", "amount", amount.String(), "error", err)
		return fmt.Errorf("enact bolus of %s U: %w", amount.String(), err)
	}
	s.logger.InfoContext(ctx, "bolus enacted", "amount", amount.String())
	if s.metrics != nil {
		s.metrics.ObserveBolus(amount.InexactFloat64())
	}
	s.active = false
	return nil
}

// Cancel closes the screen without enacting.
func (s *Stepper) Cancel() {
	s.click()
	s.active = false
}
