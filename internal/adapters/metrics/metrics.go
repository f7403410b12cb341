// Package metrics implements ports.Metrics on Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/atlas/internal/core/ports"
)

const namespace = "atlas"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus records atlas metrics in its own registry.
type Prometheus struct {
	registry         *prometheus.Registry
	lookups          *prometheus.CounterVec
	narratorLatency  *prometheus.HistogramVec
	frames           prometheus.Counter
	frameCommands    prometheus.Histogram
	frameBuildTimeMs prometheus.Histogram
}

// New creates the collectors and registers them together with the Go runtime collector.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Location lookups by where they were answered from",
		}, []string{"source"}),
		narratorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "narrator_latency_seconds",
			Help:      "Duration of narrative provider calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20},
		}, []string{"provider"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_rendered_total",
			Help:      "Overlay frames regenerated",
		}),
		frameCommands: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_commands",
			Help:      "Draw commands per frame",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
		}),
		frameBuildTimeMs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_build_duration_ms",
			Help:      "Frame build duration in milliseconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50},
		}),
	}
	p.registry.MustRegister(
		p.lookups,
		p.narratorLatency,
		p.frames,
		p.frameCommands,
		p.frameBuildTimeMs,
		collectors.NewGoCollector(),
	)
	return p
}

// LookupServed counts a lookup by source.
func (p *Prometheus) LookupServed(source string) {
	p.lookups.WithLabelValues(source).Inc()
}

// NarratorLatency records one narrative call.
func (p *Prometheus) NarratorLatency(provider string, d time.Duration) {
	p.narratorLatency.WithLabelValues(provider).Observe(d.Seconds())
}

// FrameRendered records one frame.
func (p *Prometheus) FrameRendered(commands int, d time.Duration) {
	p.frames.Inc()
	p.frameCommands.Observe(float64(commands))
	p.frameBuildTimeMs.Observe(float64(d.Microseconds()) / 1000)
}

// Registry exposes the registry for scraping in tests.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
