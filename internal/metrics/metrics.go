// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Assignment counts the outcome of the order assignment engine and of delivery completion.
// It satisfies commands.Metrics.
type Assignment struct {
	ordersAssigned      prometheus.Counter
	assignmentConflicts prometheus.Counter
	deliveriesCompleted prometheus.Counter
}

// NewAssignment creates the assignment collectors and registers them on reg.
func NewAssignment(reg prometheus.Registerer) *Assignment {
	m := &Assignment{
		ordersAssigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_assigned_total",
			Help: "Total number of orders assigned to couriers",
		}),
		assignmentConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_assignment_conflicts_total",
			Help: "Total number of assignments lost to a concurrent courier",
		}),
		deliveriesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deliveries_completed_total",
			Help: "Total number of orders marked as delivered",
		}),
	}
	reg.MustRegister(m.ordersAssigned, m.assignmentConflicts, m.deliveriesCompleted)
	return m
}

func (m *Assignment) OrdersAssigned(n int) {
	if n > 0 {
		m.ordersAssigned.Add(float64(n))
	}
}

func (m *Assignment) AssignmentConflict() {
	m.assignmentConflicts.Inc()
}

func (m *Assignment) DeliveryCompleted() {
	m.deliveriesCompleted.Inc()
}

// HTTP records served requests by route pattern, so that path parameters do not
// multiply the label space.
type HTTP struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     prometheus.Counter
}

// NewHTTP creates the HTTP collectors and registers them on reg.
func NewHTTP(reg prometheus.Registerer) *HTTP {
	m := &HTTP{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Total number of rejected HTTP requests due to rate limiting",
		}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.rateLimited)
	return m
}

// ObserveRequest records one finished request.
func (m *HTTP) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestsTotal.WithLabelValues(method, path, code).Inc()
	m.requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// RateLimited records a request rejected by the rate limiter.
func (m *HTTP) RateLimited() {
	m.rateLimited.Inc()
}
