package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the process instrumentation for fetches and dashboard builds.
type Metrics struct {
	reg *prometheus.Registry

	FetchTotal       *prometheus.CounterVec
	FetchLatency     prometheus.Histogram
	FetchedCampaigns prometheus.Gauge
	BuildLatency     *prometheus.HistogramVec
	UnmatchedRegions prometheus.Counter
}

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		FetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_total",
				Help:      "Campaign feed fetches by outcome",
			},
			[]string{"outcome"},
		),
		FetchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_latency_seconds",
				Help:      "Campaign feed round trip latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		FetchedCampaigns: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fetched_campaigns",
				Help:      "Campaigns in the most recent successful fetch",
			},
		),
		BuildLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "build_latency_seconds",
				Help:      "Fetch plus aggregation latency per dashboard section",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"section"},
		),
		UnmatchedRegions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unmatched_regions_total",
				Help:      "Distinct region names per build dropped for lack of coordinates",
			},
		),
	}
	reg.MustRegister(
		m.FetchTotal, m.FetchLatency, m.FetchedCampaigns, m.BuildLatency, m.UnmatchedRegions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveFetch(outcome string, d time.Duration) {
	m.FetchTotal.WithLabelValues(outcome).Inc()
	m.FetchLatency.Observe(d.Seconds())
}

func (m *Metrics) ObserveBuild(section string, d time.Duration) {
	m.BuildLatency.WithLabelValues(section).Observe(d.Seconds())
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
