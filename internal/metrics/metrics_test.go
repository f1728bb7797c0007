package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.WithLabelValues(labels...).Write(&m))
	return m.GetCounter().GetValue()
}

func TestDispatchMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDispatchMetrics(reg)

	m.ObserveClick("emergency_call", true)
	m.ObserveClick("emergency_call", true)
	m.ObserveAction("top_level", "TRIGGER_SOS", true)
	m.ObserveAction("generic", "UNKNOWN", false)
	m.ObserveNotification("error")
	m.ObserveGatewayCall("/v1/book-doctor", "ok", 0.05)
	m.ObserveConnection(1)
	m.ObserveConnection(1)
	m.ObserveConnection(-1)

	assert.Equal(t, 2.0, counterValue(t, m.clicksTotal, "emergency_call"))
	assert.Equal(t, 1.0, counterValue(t, m.actionsTotal, "top_level", "TRIGGER_SOS", "true"))
	assert.Equal(t, 1.0, counterValue(t, m.actionsTotal, "generic", "unknown", "false"))
	assert.Equal(t, 1.0, counterValue(t, m.notificationsTotal, "error"))
	assert.Equal(t, 1.0, counterValue(t, m.gatewayTotal, "/v1/book-doctor", "ok"))

	var g dto.Metric
	require.NoError(t, m.connections.Write(&g))
	assert.Equal(t, 1.0, g.GetGauge().GetValue())

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *DispatchMetrics
	assert.NotPanics(t, func() {
		m.ObserveClick("x", false)
		m.ObserveAction("generic", "x", false)
		m.ObserveNotification("info")
		m.ObserveGatewayCall("/x", "network", 1)
		m.ObserveConnection(1)
	})
}

func TestFreeFormLabelsAreBucketed(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDispatchMetrics(reg)

	m.ObserveAction("generic", "OPEN_POD_BAY_DOORS", false)
	m.ObserveAction("generic", "SOMETHING_ELSE", false)
	m.ObserveAction("generic", "FETCH_APPOINTMENTS", true)
	m.ObserveClick("made_up_type", false)
	m.ObserveClick("another_type", false)

	assert.Equal(t, 2.0, counterValue(t, m.actionsTotal, "generic", "unknown", "false"))
	assert.Equal(t, 1.0, counterValue(t, m.actionsTotal, "generic", "FETCH_APPOINTMENTS", "true"))
	assert.Equal(t, 2.0, counterValue(t, m.clicksTotal, "unknown"))

	series := map[string]int{}
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		series[f.GetName()] = len(f.GetMetric())
	}
	assert.Equal(t, 2, series["sahara_dispatch_actions_total"])
	assert.Equal(t, 1, series["sahara_dispatch_button_clicks_total"])
}
