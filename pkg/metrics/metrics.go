package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cgw_http_requests_total", Help: "Inbound requests per route and status code"},
		[]string{"route", "code"},
	)
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cgw_upstream_requests_total", Help: "Provider calls by outcome"},
		[]string{"provider", "outcome"},
	)
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cgw_upstream_latency_seconds",
			Help:    "Provider call latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"provider"},
	)
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cgw_submit_total", Help: "Accepted transaction submissions per submitter mode"},
		[]string{"mode"},
	)
	ProviderUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "cgw_provider_up", Help: "Last readiness probe result per provider"},
		[]string{"provider"},
	)
)

var once sync.Once

func Init() {
	once.Do(func() {
		prometheus.MustRegister(HTTPRequests, UpstreamRequests, UpstreamLatency)
		prometheus.MustRegister(Submissions, ProviderUp)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveUpstream(provider, outcome string, took time.Duration) {
	UpstreamRequests.WithLabelValues(provider, outcome).Inc()
	UpstreamLatency.WithLabelValues(provider).Observe(took.Seconds())
}
