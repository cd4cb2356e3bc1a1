// Package metrics holds the Prometheus collectors of the flight board.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flightboard"

// Cache names used as label values.
const (
	CacheFlights = "flights"
	CacheWeather = "weather"
)

// Registry holds every collector on its own prometheus.Registry. A nil
// *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	FlightBatchesGenerated *prometheus.CounterVec
	WeatherReadingsTotal   *prometheus.CounterVec
	PreferenceWritesTotal  *prometheus.CounterVec
}

// NewRegistry creates the collectors and registers them, together with the
// Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Total fresh cache hits by cache name",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Total cache misses (absent or expired) by cache name",
			},
			[]string{"cache"},
		),

		FlightBatchesGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flight_batches_generated_total",
				Help:      "Total flight batches synthesized by board type",
			},
			[]string{"board_type"},
		),
		WeatherReadingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_readings_total",
				Help:      "Total weather readings served by source (live, stale, synthetic)",
			},
			[]string{"source"},
		),
		PreferenceWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "preference_writes_total",
				Help:      "Total preference store writes by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// CacheHit counts a fresh hit on the named cache.
func (r *Registry) CacheHit(cache string) {
	if r == nil {
		return
	}
	r.CacheHitsTotal.WithLabelValues(cache).Inc()
}

// CacheMiss counts a miss on the named cache.
func (r *Registry) CacheMiss(cache string) {
	if r == nil {
		return
	}
	r.CacheMissesTotal.WithLabelValues(cache).Inc()
}

// BatchGenerated counts a synthesized flight batch.
func (r *Registry) BatchGenerated(boardType string) {
	if r == nil {
		return
	}
	r.FlightBatchesGenerated.WithLabelValues(boardType).Inc()
}

// WeatherServed counts a weather reading by source.
func (r *Registry) WeatherServed(source string) {
	if r == nil {
		return
	}
	r.WeatherReadingsTotal.WithLabelValues(source).Inc()
}

// PreferenceWrite counts a preference store write.
func (r *Registry) PreferenceWrite(err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.PreferenceWritesTotal.WithLabelValues(outcome).Inc()
}
