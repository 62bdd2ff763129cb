package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.ObserveToolProbe("forge", true)
	m.ObserveToolProbe("forge", true)
	m.ObserveResolution("rpc", "environment")
	m.ObserveCommand("forge", "ok", 0.5)
	m.ObserveDeploy("success")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.toolProbes.WithLabelValues("forge", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.resolutions.WithLabelValues("rpc", "environment")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.commandRuns.WithLabelValues("forge", "ok")))

	path := filepath.Join(t.TempDir(), "subnetctl.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `subnetctl_tool_probes_total{installed="true",tool="forge"} 2`)
	assert.Contains(t, string(data), `subnetctl_deploys_total{outcome="success"} 1`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveToolProbe("forge", false)
		m.ObserveCommand("forge", "error", 1)
		m.ObserveResolution("rpc", "none")
		m.ObserveDeploy("failure")
		m.ObserveReconciled("artifact-file")
		assert.NoError(t, m.WriteTextfile("/nonexistent/path"))
	})
	assert.Nil(t, m.Registry())
}
