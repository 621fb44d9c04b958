package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementClaimsSubmitted()
	m.IncrementClaimsSubmitted()
	m.IncrementTransition("SUBMITTED", "UNDER_REVIEW")
	m.IncrementRejection("out_of_range")
	m.IncrementCacheLookup("hit")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ClaimsSubmitted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ClaimTransitions.WithLabelValues("SUBMITTED", "UNDER_REVIEW")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ClaimRejections.WithLabelValues("out_of_range")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
}

func TestObserveUseCase(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUseCase("SubmitClaim", time.Now())
	m.ObserveUseCase("ProcessClaim", time.Now())

	assert.Equal(t, 2, testutil.CollectAndCount(m.UseCaseDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementClaimsSubmitted()
		m.IncrementTransition("APPROVED", "SETTLED")
		m.IncrementRejection("conflict")
		m.IncrementCacheLookup("miss")
		m.ObserveUseCase("GetClaim", time.Now())
	})
}
