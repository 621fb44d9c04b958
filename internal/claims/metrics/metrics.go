package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the claims module.
// Tracks submissions, status transitions, rejected requests and use-case latency.
type Metrics struct {
	ClaimsSubmitted  prometheus.Counter
	ClaimTransitions *prometheus.CounterVec
	ClaimRejections  *prometheus.CounterVec
	UseCaseDuration  *prometheus.HistogramVec
	CacheLookups     *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClaimsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "coverline_claims_submitted_total",
			Help: "Total number of claims accepted for review",
		}),
		ClaimTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coverline_claim_transitions_total",
			Help: "Claim status transitions by source and target status",
		}, []string{"from", "to"}),
		ClaimRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coverline_claim_rejections_total",
			Help: "Failed claim submissions and transitions by error code",
		}, []string{"code"}),
		UseCaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coverline_use_case_duration_seconds",
			Help:    "Duration of claims service use-cases",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"use_case"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coverline_claim_cache_lookups_total",
			Help: "Claim details cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// IncrementClaimsSubmitted records a successful submission.
func (m *Metrics) IncrementClaimsSubmitted() {
	if m == nil {
		return
	}
	m.ClaimsSubmitted.Inc()
}

// IncrementTransition records a persisted status change.
func (m *Metrics) IncrementTransition(from, to string) {
	if m == nil {
		return
	}
	m.ClaimTransitions.WithLabelValues(from, to).Inc()
}

// IncrementRejection records a submission or transition refused with code.
func (m *Metrics) IncrementRejection(code string) {
	if m == nil {
		return
	}
	m.ClaimRejections.WithLabelValues(code).Inc()
}

// IncrementCacheLookup records a cache read outcome.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveUseCase records the duration of a use-case.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveUseCase(useCase string, start time.Time) {
	if m == nil {
		return
	}
	m.UseCaseDuration.WithLabelValues(useCase).Observe(time.Since(start).Seconds())
}
