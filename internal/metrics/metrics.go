package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "bstdict"

// Operation labels.
const (
	OpInsert = "insert"
	OpSearch = "search"
	OpDelete = "delete"
	OpDrain  = "drain"
	OpClear  = "clear"
)

// Result labels.
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultIncomparable = "incomparable"
	ResultDuplicate    = "duplicate"
	ResultError        = "error"

	cacheHit  = "hit"
	cacheMiss = "miss"
)

// Collector tracks dictionary operations. All record methods are safe to
// call on a nil *Collector.
type Collector struct {
	registry *prometheus.Registry

	operations    *prometheus.CounterVec
	cacheRequests *prometheus.CounterVec
	entries       prometheus.Gauge
}

// NewCollector creates a Collector registered on its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of dictionary operations, labeled by operation and result",
			},
			[]string{"op", "result"},
		),
		cacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Total number of lookup cache requests, labeled by hit or miss",
			},
			[]string{"result"},
		),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Number of entries currently stored",
		}),
	}

	c.registry.MustRegister(c)

	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	c.operations.Describe(descs)
	c.cacheRequests.Describe(descs)
	c.entries.Describe(descs)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	c.operations.Collect(metrics)
	c.cacheRequests.Collect(metrics)
	c.entries.Collect(metrics)
}

// ObserveOperation counts one operation with its result.
func (c *Collector) ObserveOperation(op, result string) {
	if c == nil {
		return
	}

	c.operations.WithLabelValues(op, result).Inc()
}

// ObserveCache counts one lookup cache request.
func (c *Collector) ObserveCache(hit bool) {
	if c == nil {
		return
	}

	if hit {
		c.cacheRequests.WithLabelValues(cacheHit).Inc()
		return
	}
	c.cacheRequests.WithLabelValues(cacheMiss).Inc()
}

// SetEntries records the current number of entries.
func (c *Collector) SetEntries(n int) {
	if c == nil {
		return
	}

	c.entries.Set(float64(n))
}

// WriteText writes every metric in the prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}

	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
