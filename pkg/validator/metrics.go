package validator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts merges and early exits per collector policy.
type Metrics struct {
	merged *prometheus.CounterVec
	exits  *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		merged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vate",
			Name:      "reports_merged_total",
			Help:      "Reports merged into a parent, by policy and child outcome.",
		}, []string{"policy", "outcome"}),
		exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vate",
			Name:      "exits_total",
			Help:      "Traversals stopped by a collector, by policy and exit kind.",
		}, []string{"policy", "kind"}),
	}
	if reg != nil {
		reg.MustRegister(m.merged, m.exits)
	}
	return m
}

// Merged returns the counter for policy and outcome ("valid", "invalid", "error").
func (m *Metrics) Merged(policy, outcome string) prometheus.Counter {
	return m.merged.WithLabelValues(policy, outcome)
}

// Exits returns the counter for policy and kind ("graceful", "fatal").
func (m *Metrics) Exits(policy, kind string) prometheus.Counter {
	return m.exits.WithLabelValues(policy, kind)
}

// Metered wraps c so each merge and early exit is counted in m.
func Metered(c Collector, m *Metrics) Collector {
	if m == nil {
		return c
	}
	return &meteredCollector{next: c, name: CollectorName(c), metrics: m}
}

type meteredCollector struct {
	next    Collector
	name    string
	metrics *Metrics
}

func (mc *meteredCollector) Name() string { return mc.name }

func (mc *meteredCollector) Apply(parent, child *Report) error {
	err := mc.next.Apply(parent, child)
	mc.metrics.Merged(mc.name, child.Validity().String()).Inc()
	switch {
	case err == nil:
	case IsGraceful(err):
		mc.metrics.Exits(mc.name, "graceful").Inc()
	default:
		mc.metrics.Exits(mc.name, "fatal").Inc()
	}
	return err
}
