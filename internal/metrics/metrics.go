// Package metrics exposes the daemon's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the daemon's counters, registered on a private
// registry served by the preview server.
type Metrics struct {
	Registry *prometheus.Registry

	Ticks         prometheus.Counter
	FetchFailures *prometheus.CounterVec
	Renders       prometheus.Counter
	ArtworkHits   prometheus.Counter
	ArtworkMisses prometheus.Counter
	OfflineTicks  prometheus.Counter
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pimo_sync_ticks_total",
			Help: "Sync loop ticks executed",
		}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pimo_fetch_failures_total",
			Help: "Track fetch failures by kind",
		}, []string{"kind"}),
		Renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pimo_renders_total",
			Help: "Frames rendered and published",
		}),
		ArtworkHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pimo_artwork_fetch_success_total",
			Help: "Artwork lookups that produced a usable image",
		}),
		ArtworkMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pimo_artwork_fetch_failure_total",
			Help: "Artwork lookups that fell back to the placeholder",
		}),
		OfflineTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pimo_offline_ticks_total",
			Help: "Ticks served from the offline track cache",
		}),
	}

	m.Registry.MustRegister(m.Ticks, m.FetchFailures, m.Renders,
		m.ArtworkHits, m.ArtworkMisses, m.OfflineTicks)
	return m
}
