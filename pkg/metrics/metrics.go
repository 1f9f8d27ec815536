package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the Prometheus collectors exposed by the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	slotsOccupied  prometheus.Gauge
	slotsAvailable prometheus.Gauge

	vehiclesAdmittedTotal   prometheus.Counter
	vehiclesCheckedOutTotal prometheus.Counter
	earningsCollectedTotal  prometheus.Counter
}

// New registers the collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		slotsOccupied: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_slots_occupied",
			Help:        "Number of occupied parking slots",
			ConstLabels: constLabels,
		}),
		slotsAvailable: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_slots_available",
			Help:        "Number of available parking slots",
			ConstLabels: constLabels,
		}),
		vehiclesAdmittedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_vehicles_admitted_total",
			Help:        "Total number of admitted vehicles",
			ConstLabels: constLabels,
		}),
		vehiclesCheckedOutTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_vehicles_checked_out_total",
			Help:        "Total number of checked-out vehicles",
			ConstLabels: constLabels,
		}),
		earningsCollectedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_earnings_collected_total",
			Help:        "Total fees collected at checkout",
			ConstLabels: constLabels,
		}),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// RecordAdmission counts one admitted vehicle.
func (m *Metrics) RecordAdmission() {
	m.vehiclesAdmittedTotal.Inc()
}

// RecordCheckout counts one checkout and the fee it collected.
func (m *Metrics) RecordCheckout(fee float64) {
	m.vehiclesCheckedOutTotal.Inc()
	if fee > 0 {
		m.earningsCollectedTotal.Add(fee)
	}
}

// SetOccupancy updates the slot occupancy gauges.
func (m *Metrics) SetOccupancy(occupied, available int) {
	m.slotsOccupied.Set(float64(occupied))
	m.slotsAvailable.Set(float64(available))
}
