// Package metrics exposes Prometheus counters and gauges for the daemon.
// All metrics live in a private registry so tests stay isolated from the
// global default.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the daemon's instrument set. A nil *Metrics is valid and
// turns every method into a no-op, so the loop can run without the HTTP
// surface enabled.
type Metrics struct {
	registry *prometheus.Registry

	buttonEdges    *prometheus.CounterVec
	ledTransitions *prometheus.CounterVec
	readErrors     prometheus.Counter
	ledOn          prometheus.Gauge
	latched        prometheus.Gauge
}

// New creates the instrument set on a fresh registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.buttonEdges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledkey_button_edges_total",
		Help: "Button edges observed, including momentary edges suppressed by the latch.",
	}, []string{"button", "action"})

	m.ledTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledkey_led_transitions_total",
		Help: "LED level transitions by resulting state.",
	}, []string{"state"})

	m.readErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledkey_gpio_read_errors_total",
		Help: "Failed button line reads.",
	})

	m.ledOn = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledkey_led_on",
		Help: "1 while the LED module is energized.",
	})

	m.latched = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledkey_latched",
		Help: "1 while the toggle latch suppresses the momentary button.",
	})

	m.registry.MustRegister(m.buttonEdges, m.ledTransitions, m.readErrors, m.ledOn, m.latched)
	return m
}

// Handler returns the HTTP handler serving this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ButtonEdge counts one observed edge. The suppressed action is recorded
// as "press_suppressed"/"release_suppressed".
func (m *Metrics) ButtonEdge(button, action string, suppressed bool) {
	if m == nil {
		return
	}
	if suppressed {
		action += "_suppressed"
	}
	m.buttonEdges.WithLabelValues(button, action).Inc()
}

// LEDTransition counts one LED level change.
func (m *Metrics) LEDTransition(state string) {
	if m == nil {
		return
	}
	m.ledTransitions.WithLabelValues(state).Inc()
}

// ReadError counts one failed button read.
func (m *Metrics) ReadError() {
	if m == nil {
		return
	}
	m.readErrors.Inc()
}

// SetState mirrors the current LED and latch levels into the gauges.
func (m *Metrics) SetState(ledOn, latched bool) {
	if m == nil {
		return
	}
	m.ledOn.Set(gaugeValue(ledOn))
	m.latched.Set(gaugeValue(latched))
}

func gaugeValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
