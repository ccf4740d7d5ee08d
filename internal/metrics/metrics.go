// Package metrics owns the Prometheus collectors for the service.
//
// Collectors live on a private registry rather than the global default so
// that tests can build independent instances. Label sets are bounded: HTTP
// metrics are labelled by the matched route pattern, never the raw URL.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const namespace = "servicebook"

// Purge kinds used as the "kind" label of purge deletions.
const (
	PurgeKindContacts      = "contacts"
	PurgeKindAlerts        = "alerts"
	PurgeKindExpiredAlerts = "expired_alerts"
)

// Metrics is the set of application collectors.
type Metrics struct {
	registry *prometheus.Registry

	contactsRecorded  prometheus.Counter
	alertsCreated     prometheus.Counter
	alertsAcked       prometheus.Counter
	positiveReports   prometheus.Counter
	payments          *prometheus.CounterVec
	bookingsConfirmed prometheus.Counter
	invoicesIssued    prometheus.Counter
	purgeDeleted      *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInflight prometheus.Gauge
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		contactsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "contacts_recorded_total",
			Help: "Contacts recorded from check-ins.",
		}),
		alertsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "exposure_alerts_created_total",
			Help: "Exposure alerts created by positive reports.",
		}),
		alertsAcked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "exposure_alerts_acknowledged_total",
			Help: "Exposure alerts acknowledged by their recipients.",
		}),
		positiveReports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "positive_reports_total",
			Help: "Positive test reports received.",
		}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "payments_total",
			Help: "Payment attempts by resulting status.",
		}, []string{"status"}),
		bookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "bookings_confirmed_total",
			Help: "Bookings confirmed by payment completion.",
		}),
		invoicesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "invoices_issued_total",
			Help: "Invoices issued.",
		}),
		purgeDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "purge_deleted_rows_total",
			Help: "Rows deleted by retention sweeps.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.contactsRecorded, m.alertsCreated, m.alertsAcked, m.positiveReports,
		m.payments, m.bookingsConfirmed, m.invoicesIssued, m.purgeDeleted,
		m.httpRequests, m.httpDuration, m.httpInflight,
	)

	return m
}

// Registry exposes the underlying registry (used by tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ContactRecorded counts one recorded contact.
func (m *Metrics) ContactRecorded() { m.contactsRecorded.Inc() }

// PositiveReported counts a positive report and the alerts it produced.
func (m *Metrics) PositiveReported(alerts int) {
	m.positiveReports.Inc()
	m.alertsCreated.Add(float64(alerts))
}

// AlertsAcknowledged counts acknowledged alerts.
func (m *Metrics) AlertsAcknowledged(n int64) { m.alertsAcked.Add(float64(n)) }

// PaymentRecorded counts a payment attempt by status.
func (m *Metrics) PaymentRecorded(status domain.PaymentStatus) {
	m.payments.WithLabelValues(string(status)).Inc()
}

// BookingConfirmed counts a Pending to Confirmed transition.
func (m *Metrics) BookingConfirmed() { m.bookingsConfirmed.Inc() }

// InvoiceIssued counts an issued invoice.
func (m *Metrics) InvoiceIssued() { m.invoicesIssued.Inc() }

// Purged counts rows deleted by a retention sweep of kind.
func (m *Metrics) Purged(kind string, n int64) {
	m.purgeDeleted.WithLabelValues(kind).Add(float64(n))
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// InflightInc increments the in-flight request gauge.
func (m *Metrics) InflightInc() { m.httpInflight.Inc() }

// InflightDec decrements the in-flight request gauge.
func (m *Metrics) InflightDec() { m.httpInflight.Dec() }
