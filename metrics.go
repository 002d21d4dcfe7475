package folio

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for a folio site. Each App owns its
// own registry so several apps can live in one process (tests do this).
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	PostViews       *prometheus.CounterVec
	Signups         *prometheus.CounterVec
	ContentReloads  *prometheus.CounterVec
	PostsLoaded     prometheus.Gauge
}

// NewMetrics creates and registers every collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "HTTP request latency by route, method and status",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"route", "method", "status"},
		),

		PostViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_post_views_total",
				Help: "Post page views by slug",
			},
			[]string{"slug"},
		),

		Signups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_newsletter_signups_total",
				Help: "Newsletter form submissions by result",
			},
			[]string{"result"},
		),

		ContentReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_content_reloads_total",
				Help: "Post cache reloads from disk by result",
			},
			[]string{"result"},
		),

		PostsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "folio_posts_loaded",
				Help: "Number of posts, drafts included, in the last successful load",
			},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.PostViews,
		m.Signups,
		m.ContentReloads,
		m.PostsLoaded,
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// observeReload is installed as the post cache's load hook.
func (m *Metrics) observeReload(n int, err error) {
	if err != nil {
		m.ContentReloads.WithLabelValues("error").Inc()
		return
	}
	m.ContentReloads.WithLabelValues("ok").Inc()
	m.PostsLoaded.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
