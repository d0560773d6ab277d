package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

func TestMetrics_EngineObserver(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	b := domain.Booking{ID: 1, ResourceID: 1, Start: 10, End: 12}
	m.BookingScheduled(b)
	m.BookingScheduled(b)
	m.BookingCancelled(b)
	m.BookingRejected(domain.RejectReasonNoCapacity)
	m.BookingRejected(domain.RejectReasonNoCapacity)
	m.BookingRejected(domain.RejectReasonInvalidRange)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingsScheduled))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCancelled))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ActiveBookings))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingsRejected.WithLabelValues(domain.RejectReasonNoCapacity)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsRejected.WithLabelValues(domain.RejectReasonInvalidRange)))
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.RecordHTTPRequest(http.MethodPost, "/api/v1/bookings", http.StatusCreated, 5*time.Millisecond)
	m.RecordHTTPRequest(http.MethodPost, "/api/v1/bookings", http.StatusConflict, 2*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/bookings", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/bookings", "409")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("test", reg)

	assert.Panics(t, func() { New("test", reg) })
}
