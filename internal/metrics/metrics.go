package metrics

import (
	"fmt"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSet provides the process-wide collectors
var MetricsSet = wire.NewSet(NewMetrics)

// Metrics holds the counters recorded during one invocation. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	commandRuns     *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	toolProbes      *prometheus.CounterVec
	resolutions     *prometheus.CounterVec
	deploys         *prometheus.CounterVec
	reconciled      *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commandRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subnetctl",
			Name:      "command_runs_total",
			Help:      "External command invocations by binary and outcome.",
		}, []string{"binary", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "subnetctl",
			Name:      "command_duration_seconds",
			Help:      "Wall time of external command invocations.",
			Buckets:   []float64{0.05, 0.25, 1, 5, 15, 60, 180, 600},
		}, []string{"binary"}),
		toolProbes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subnetctl",
			Name:      "tool_probes_total",
			Help:      "Tool version probes by tool and installed state.",
		}, []string{"tool", "installed"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subnetctl",
			Name:      "endpoint_resolutions_total",
			Help:      "Resolved endpoint fields by field and source.",
		}, []string{"field", "source"}),
		deploys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subnetctl",
			Name:      "deploys_total",
			Help:      "Deploy workflows by outcome.",
		}, []string{"outcome"}),
		reconciled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subnetctl",
			Name:      "reconciled_addresses_total",
			Help:      "Contract addresses kept after reconciliation by provenance.",
		}, []string{"provenance"}),
	}

	m.registry.MustRegister(m.commandRuns, m.commandDuration, m.toolProbes, m.resolutions, m.deploys, m.reconciled)
	return m
}

// Registry exposes the underlying registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveCommand records one external command run
func (m *Metrics) ObserveCommand(binary, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.commandRuns.WithLabelValues(binary, outcome).Inc()
	m.commandDuration.WithLabelValues(binary).Observe(seconds)
}

// ObserveToolProbe records one tool detection
func (m *Metrics) ObserveToolProbe(tool string, installed bool) {
	if m == nil {
		return
	}
	m.toolProbes.WithLabelValues(tool, fmt.Sprint(installed)).Inc()
}

// ObserveResolution records which source produced an endpoint field
func (m *Metrics) ObserveResolution(field, source string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(field, source).Inc()
}

// ObserveDeploy records the outcome of a deploy workflow
func (m *Metrics) ObserveDeploy(outcome string) {
	if m == nil {
		return
	}
	m.deploys.WithLabelValues(outcome).Inc()
}

// ObserveReconciled records a reconciled address
func (m *Metrics) ObserveReconciled(provenance string) {
	if m == nil {
		return
	}
	m.reconciled.WithLabelValues(provenance).Inc()
}

// WriteTextfile writes the current values in the text exposition format, for node_exporter's
// textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
