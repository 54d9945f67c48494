// Package metrics exposes filter counters over Prometheus, grounded on
// Sumatoshi-tech-codefang's internal/observability/prometheus.go. The core
// bamboo package never imports this; the CLI copies a bamboo.Stats
// snapshot into these gauges via Observe once its run has finished, so the
// filter itself stays free of a metrics dependency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/v-brkic/bamboo-filter"
)

// Collector holds the gauges/counters describing one filter's state.
type Collector struct {
	registry *prometheus.Registry

	size           prometheus.Gauge
	capacity       prometheus.Gauge
	loadFactor     prometheus.Gauge
	expanding      prometheus.Gauge
	overflows      prometheus.Gauge
	migrationDrops prometheus.Gauge
	expansions     prometheus.Gauge
}

// NewCollector builds a Collector with its own registry, so repeated
// construction (e.g. in tests) never collides with a process-global
// default registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_size", Help: "Number of successful inserts.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_capacity", Help: "Total bucket capacity (old+new while expanding).",
		}),
		loadFactor: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_load_factor", Help: "size / (old-table capacity * bucket size).",
		}),
		expanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_expanding", Help: "1 while a migration is in progress, else 0.",
		}),
		overflows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_overflows_total", Help: "Inserts that returned ErrOverflow.",
		}),
		migrationDrops: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_migration_drops_total", Help: "Fingerprints lost during segment migration.",
		}),
		expansions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bamboo_filter_expansions_total", Help: "Completed capacity doublings.",
		}),
	}

	registry.MustRegister(c.size, c.capacity, c.loadFactor, c.expanding,
		c.overflows, c.migrationDrops, c.expansions)

	return c
}

// Observe copies a Stats snapshot into the gauges.
func (c *Collector) Observe(s bamboo.Stats) {
	c.size.Set(float64(s.Size))
	c.capacity.Set(float64(s.Capacity))
	c.loadFactor.Set(s.LoadFactor)
	if s.Expanding {
		c.expanding.Set(1)
	} else {
		c.expanding.Set(0)
	}
	c.overflows.Set(float64(s.Overflows))
	c.migrationDrops.Set(float64(s.MigrationDrops))
	c.expansions.Set(float64(s.Expansions))
}

// Handler returns the HTTP handler to mount at /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
