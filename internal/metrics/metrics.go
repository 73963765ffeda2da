package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the devdocs Prometheus collectors on an isolated registry,
// so each test can build its own instance.
type Metrics struct {
	Registry *prometheus.Registry

	PageRendersTotal          *prometheus.CounterVec
	PageRenderDurationSeconds *prometheus.HistogramVec
	NotFoundTotal             prometheus.Counter
	PanelExpansionsTotal      *prometheus.CounterVec

	LoginsTotal        *prometheus.CounterVec
	SessionsSweptTotal prometheus.Counter

	BuildInfo *prometheus.GaugeVec
}

// New creates a Metrics instance with all collectors registered.
func New(version, goVersion string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		PageRendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdocs_page_renders_total",
				Help: "Total number of pages rendered, by page, route pattern and status.",
			},
			[]string{"page", "route", "status"},
		),
		PageRenderDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "devdocs_page_render_duration_seconds",
				Help:    "Time spent rendering a page.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"page"},
		),
		NotFoundTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "devdocs_not_found_total",
				Help: "Requests that fell through to the not-found page.",
			},
		),
		PanelExpansionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdocs_panel_expansions_total",
				Help: "Disclosure panels rendered expanded, by article.",
			},
			[]string{"article"},
		),

		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdocs_logins_total",
				Help: "Sign-in attempts by result.",
			},
			[]string{"result"},
		),
		SessionsSweptTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "devdocs_sessions_swept_total",
				Help: "Expired sessions removed by the sweeper.",
			},
		),

		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devdocs_info",
				Help: "Build information.",
			},
			[]string{"version", "go_version"},
		),
	}

	reg.MustRegister(
		m.PageRendersTotal,
		m.PageRenderDurationSeconds,
		m.NotFoundTotal,
		m.PanelExpansionsTotal,
		m.LoginsTotal,
		m.SessionsSweptTotal,
		m.BuildInfo,
	)
	m.BuildInfo.WithLabelValues(version, goVersion).Set(1)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveSweep records sessions removed by one sweep.
func (m *Metrics) ObserveSweep(removed int) {
	if removed > 0 {
		m.SessionsSweptTotal.Add(float64(removed))
	}
}
