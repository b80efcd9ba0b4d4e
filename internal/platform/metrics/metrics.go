package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the companion.
type Metrics struct {
	GuardrailHits  *prometheus.CounterVec
	FieldEdits     *prometheus.CounterVec
	BolusesEnacted prometheus.Counter
	BolusUnits     prometheus.Counter
}

// New creates and registers all metrics on reg. Pass
// prometheus.DefaultRegisterer in binaries and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GuardrailHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "companion_guardrail_hits_total",
			Help: "Total number of edits clamped by a guardrail, by preferences key",
		}, []string{"key"}),
		FieldEdits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "companion_field_edits_total",
			Help: "Total number of committed preferences edits, by field type",
		}, []string{"type"}),
		BolusesEnacted: factory.NewCounter(prometheus.CounterOpts{
			Name: "companion_boluses_enacted_total",
			Help: "Total number of boluses enacted from the watch",
		}),
		BolusUnits: factory.NewCounter(prometheus.CounterOpts{
			Name: "companion_bolus_units_total",
			Help: "Total insulin units requested from the watch",
		}),
	}
}

// IncrementGuardrailHit records one clamped edit of key.
func (m *Metrics) IncrementGuardrailHit(key string) {
	m.GuardrailHits.WithLabelValues(key).Inc()
}

// IncrementFieldEdit records one committed edit of a field of fieldType.
func (m *Metrics) IncrementFieldEdit(fieldType string) {
	m.FieldEdits.WithLabelValues(fieldType).Inc()
}

// ObserveBolus records an enacted bolus of units.
func (m *Metrics) ObserveBolus(units float64) {
	m.BolusesEnacted.Inc()
	m.BolusUnits.Add(units)
}
