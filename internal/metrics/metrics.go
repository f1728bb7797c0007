package metrics

import "github.com/prometheus/client_golang/prometheus"

// unknownLabel replaces free-form action strings and button types so label
// cardinality stays bounded.
const unknownLabel = "unknown"

// DispatchMetrics exposes counters/histograms for the button dispatch flow and the API gateway.
type DispatchMetrics struct {
	clicksTotal        *prometheus.CounterVec
	actionsTotal       *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	gatewayTotal       *prometheus.CounterVec
	gatewayLatency     *prometheus.HistogramVec
	connections        prometheus.Gauge
}

func NewDispatchMetrics(reg prometheus.Registerer) *DispatchMetrics {
	m := &DispatchMetrics{
		clicksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "dispatch",
			Name:      "button_clicks_total",
			Help:      "Button clicks by button type",
		}, []string{"button_type"}),
		actionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "dispatch",
			Name:      "actions_total",
			Help:      "Resolved actions by table and outcome",
		}, []string{"table", "action", "handled"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "ui",
			Name:      "notifications_total",
			Help:      "Notifications shown by kind",
		}, []string{"kind"}),
		gatewayTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Outbound API calls by endpoint and result",
		}, []string{"endpoint", "result"}),
		gatewayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sahara",
			Subsystem: "gateway",
			Name:      "call_latency_seconds",
			Help:      "Latency of outbound API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sahara",
			Subsystem: "webchat",
			Name:      "connections",
			Help:      "Open websocket connections",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.clicksTotal, m.actionsTotal, m.notificationsTotal, m.gatewayTotal, m.gatewayLatency, m.connections)
	return m
}

// ObserveClick counts a click. Types without a dedicated handler are counted as unknown.
func (m *DispatchMetrics) ObserveClick(buttonType string, known bool) {
	if m == nil {
		return
	}
	if !known {
		buttonType = unknownLabel
	}
	m.clicksTotal.WithLabelValues(buttonType).Inc()
}

func (m *DispatchMetrics) ObserveAction(table, action string, handled bool) {
	if m == nil {
		return
	}
	label := "false"
	if handled {
		label = "true"
	} else {
		action = unknownLabel
	}
	m.actionsTotal.WithLabelValues(table, action, label).Inc()
}

func (m *DispatchMetrics) ObserveNotification(kind string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(kind).Inc()
}

func (m *DispatchMetrics) ObserveGatewayCall(endpoint, result string, seconds float64) {
	if m == nil {
		return
	}
	m.gatewayTotal.WithLabelValues(endpoint, result).Inc()
	m.gatewayLatency.WithLabelValues(endpoint).Observe(seconds)
}

// ObserveConnection adds delta (+1 on open, -1 on close) to the open connection gauge.
func (m *DispatchMetrics) ObserveConnection(delta int) {
	if m == nil {
		return
	}
	m.connections.Add(float64(delta))
}
