package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsScheduled prometheus.Counter
	BookingsRejected  *prometheus.CounterVec
	BookingsCancelled prometheus.Counter
	ActiveBookings    prometheus.Gauge
}

// New создает и регистрирует метрики в reg
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingsScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_scheduled_total",
			Help:        "Total number of successfully scheduled bookings",
			ConstLabels: labels,
		}),

		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Total number of rejected schedule requests by reason",
			ConstLabels: labels,
		}, []string{"reason"}),

		BookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of cancelled bookings",
			ConstLabels: labels,
		}),

		ActiveBookings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "bookings_active",
			Help:        "Number of currently active bookings",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsScheduled,
		m.BookingsRejected,
		m.BookingsCancelled,
		m.ActiveBookings,
	)

	return m
}

// RecordHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// BookingScheduled реализует engine.Observer
func (m *Metrics) BookingScheduled(domain.Booking) {
	m.BookingsScheduled.Inc()
	m.ActiveBookings.Inc()
}

// BookingRejected реализует engine.Observer
func (m *Metrics) BookingRejected(reason string) {
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// BookingCancelled реализует engine.Observer
func (m *Metrics) BookingCancelled(domain.Booking) {
	m.BookingsCancelled.Inc()
	m.ActiveBookings.Dec()
}
