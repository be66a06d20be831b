package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "civicpulse"

// Metrics хранит коллекторы сервиса на собственном реестре.
// Методы безопасны для nil-получателя.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ItemsScored         prometheus.Histogram
	FeedEntries         *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		ItemsScored: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "items_scored",
				Help:      "Importance assigned to stored news items",
				Buckets:   []float64{0.5, 1, 2, 3, 4, 6, 8, 12, 20},
			},
		),
		FeedEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_entries_rendered_total",
				Help:      "Entries rendered into RSS feeds",
			},
			[]string{"feed"},
		),
	}
	m.registry.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.ItemsScored,
		m.FeedEntries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveImportance(score float64) {
	if m == nil || m.ItemsScored == nil {
		return
	}
	m.ItemsScored.Observe(score)
}

func (m *Metrics) ObserveFeed(feed string, entries int) {
	if m == nil || m.FeedEntries == nil {
		return
	}
	m.FeedEntries.WithLabelValues(feed).Add(float64(entries))
}

func (m *Metrics) ObserveRequest(method, endpoint string, status int, d time.Duration) {
	if m == nil || m.HTTPRequests == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

// Handler отдает метрики реестра в формате экспозиции Prometheus.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
