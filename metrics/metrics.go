// Package metrics exports search driver events as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	c, _ := metrics.NewCollector(reg)
//	s, _ := m.Searcher(search.WithHook(c.Hook("astar")))
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/spacesearch/search"
)

const namespace = "spacesearch"

// Collector owns the spacesearch metric vectors.
type Collector struct {
	events     *prometheus.CounterVec
	pathLength *prometheus.HistogramVec
	cost       *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Search driver events by strategy and kind.",
			},
			[]string{"strategy", "event"},
		),
		pathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_length",
				Help:      "Number of states in returned routes.",
				Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
			},
			[]string{"strategy"},
		),
		cost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_cost",
				Help:      "Cumulative cost of the most recent A* solution.",
			},
			[]string{"strategy"},
		),
	}
	for _, col := range []prometheus.Collector{c.events, c.pathLength, c.cost} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Hook returns a search hook counting events under strategy.
func (c *Collector) Hook(strategy string) func(search.Event) {
	curried := c.events.MustCurryWith(prometheus.Labels{"strategy": strategy})
	known := make([]prometheus.Counter, search.EventExhaust+1)
	for e := range known {
		known[e] = curried.WithLabelValues(search.Event(e).String())
	}

	return func(e search.Event) {
		if e >= 0 && int(e) < len(known) {
			known[e].Inc()
			return
		}
		curried.WithLabelValues(e.String()).Inc()
	}
}

// ObservePath records the length of a returned route.
func (c *Collector) ObservePath(strategy string, states int) {
	c.pathLength.WithLabelValues(strategy).Observe(float64(states))
}

// SetCost records the cost of the latest solution.
func (c *Collector) SetCost(strategy string, cost float64) {
	c.cost.WithLabelValues(strategy).Set(cost)
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// String formats s in exposition style.
func (s Sample) String() string {
	if s.Labels == "" {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}

	return fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value)
}

// Snapshot gathers g and flattens counters, gauges and histogram
// count/sum pairs into samples sorted by name then labels.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{name, labels, m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{name, labels, m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					Sample{name + "_count", labels, float64(h.GetSampleCount())},
					Sample{name + "_sum", labels, h.GetSampleSum()},
				)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})

	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}

	return strings.Join(parts, ",")
}
