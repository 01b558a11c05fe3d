package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for query resolution and sink
// writes. Each instance owns its registry so tests never share state.
type Metrics struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	latency     prometheus.Histogram
	sinkErrors  *prometheus.CounterVec
	feedback    *prometheus.CounterVec
}

// NewMetrics registers the faqbot collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faqbot",
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Resolved queries by outcome.",
		}, []string{"outcome"}),
		latency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "faqbot",
			Subsystem: "resolver",
			Name:      "latency_seconds",
			Help:      "Time spent scoring and resolving a query.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		sinkErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faqbot",
			Subsystem: "sink",
			Name:      "write_errors_total",
			Help:      "Failed sink writes by sink and record kind.",
		}, []string{"sink", "record"}),
		feedback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faqbot",
			Subsystem: "feedback",
			Name:      "votes_total",
			Help:      "Feedback votes on direct answers.",
		}, []string{"helpful"}),
	}
}

// ObserveResolution counts one resolved query.
func (m *Metrics) ObserveResolution(outcome string, d time.Duration) {
	m.resolutions.WithLabelValues(outcome).Inc()
	m.latency.Observe(d.Seconds())
}

// ObserveSinkError counts one failed sink write.
func (m *Metrics) ObserveSinkError(sink, record string) {
	m.sinkErrors.WithLabelValues(sink, record).Inc()
}

// ObserveFeedback counts one feedback vote.
func (m *Metrics) ObserveFeedback(helpful bool) {
	label := "n"
	if helpful {
		label = "y"
	}
	m.feedback.WithLabelValues(label).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
