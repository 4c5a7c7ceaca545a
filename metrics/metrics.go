// Package metrics provides a Prometheus implementation of the boundary
// Observer, recording validation outcomes, per-constraint failures, and the
// plan cache size.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements boundary.Observer.
type Metrics struct {
	ValidationsTotal        *prometheus.CounterVec
	ConstraintFailuresTotal *prometheus.CounterVec
	PlansCachedCount        prometheus.Gauge
}

// New registers the semlit metrics on the default Prometheus registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the semlit metrics on a specific registerer; tests use
// this with a fresh prometheus.NewRegistry.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "semlit_validations_total",
			Help: "Total number of boundary validations by concept and outcome",
		}, []string{"concept", "outcome"}),
		ConstraintFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "semlit_constraint_failures_total",
			Help: "Total number of constraint violations reported by collect-all validation",
		}, []string{"constraint"}),
		PlansCachedCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "semlit_plans_cached",
			Help: "Current number of memoized evaluation plans",
		}),
	}
}

// Validated records a boundary validation outcome.
func (m *Metrics) Validated(concept string, ok bool) {
	outcome := "accepted"
	if !ok {
		outcome = "rejected"
	}
	m.ValidationsTotal.WithLabelValues(concept, outcome).Inc()
}

// ConstraintFailed records one violated constraint.
func (m *Metrics) ConstraintFailed(constraint string) {
	m.ConstraintFailuresTotal.WithLabelValues(constraint).Inc()
}

// PlansCached records the current plan cache size.
func (m *Metrics) PlansCached(total int) {
	m.PlansCachedCount.Set(float64(total))
}
