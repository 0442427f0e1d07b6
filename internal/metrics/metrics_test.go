package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestButtonEdge(t *testing.T) {
	m := New()

	m.ButtonEdge("toggle", "press", false)
	m.ButtonEdge("toggle", "press", false)
	m.ButtonEdge("momentary", "press", true)

	if got := testutil.ToFloat64(m.buttonEdges.WithLabelValues("toggle", "press")); got != 2 {
		t.Errorf("toggle press edges: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.buttonEdges.WithLabelValues("momentary", "press_suppressed")); got != 1 {
		t.Errorf("suppressed edges: got %v, want 1", got)
	}
}

func TestLEDTransitionAndGauges(t *testing.T) {
	m := New()

	m.LEDTransition("ON")
	m.SetState(true, false)

	if got := testutil.ToFloat64(m.ledTransitions.WithLabelValues("ON")); got != 1 {
		t.Errorf("ON transitions: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ledOn); got != 1 {
		t.Errorf("led_on gauge: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.latched); got != 0 {
		t.Errorf("latched gauge: got %v, want 0", got)
	}

	m.SetState(false, true)
	if got := testutil.ToFloat64(m.ledOn); got != 0 {
		t.Errorf("led_on gauge: got %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.latched); got != 1 {
		t.Errorf("latched gauge: got %v, want 1", got)
	}
}

func TestReadError(t *testing.T) {
	m := New()
	m.ReadError()
	m.ReadError()

	if got := testutil.ToFloat64(m.readErrors); got != 2 {
		t.Errorf("read errors: got %v, want 2", got)
	}
}

func TestNilMetricsNoOp(t *testing.T) {
	// The loop passes nil when the HTTP surface is disabled.
	var m *Metrics
	m.ButtonEdge("toggle", "press", false)
	m.LEDTransition("ON")
	m.ReadError()
	m.SetState(true, true)
}

func TestHandlerServesFamilies(t *testing.T) {
	m := New()
	m.ButtonEdge("toggle", "press", false)
	m.LEDTransition("ON")
	m.ReadError()
	m.SetState(true, false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, family := range []string{
		"ledkey_button_edges_total",
		"ledkey_led_transitions_total",
		"ledkey_gpio_read_errors_total",
		"ledkey_led_on",
		"ledkey_latched",
	} {
		if !strings.Contains(body, family) {
			t.Errorf("metrics output missing %s", family)
		}
	}
}
