package mqtt

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sweeney/ledkey/internal/logic"
)

func TestFormatPayload(t *testing.T) {
	event := logic.Event{
		Timestamp: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		Type:      logic.EventLedOn,
		Cause:     logic.CauseToggle,
		Led:       logic.StateOn,
		Latched:   true,
	}

	payload, err := FormatPayload(event)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	want := `{"led":{"timestamp":"2026-03-15T14:30:00Z","event":"LED_ON","cause":"toggle","state":"ON","latched":true}}`
	if string(payload) != want {
		t.Errorf("payload:\n got %s\nwant %s", payload, want)
	}
}

func TestFormatPayloadMomentaryOff(t *testing.T) {
	event := logic.Event{
		Timestamp: time.Date(2026, 3, 15, 14, 30, 5, 0, time.UTC),
		Type:      logic.EventLedOff,
		Cause:     logic.CauseMomentary,
		Led:       logic.StateOff,
	}

	payload, err := FormatPayload(event)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	var parsed Payload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.LED.Event != "LED_OFF" {
		t.Errorf("event: got %q, want LED_OFF", parsed.LED.Event)
	}
	if parsed.LED.Cause != "momentary" {
		t.Errorf("cause: got %q, want momentary", parsed.LED.Cause)
	}
	if parsed.LED.State != "OFF" {
		t.Errorf("state: got %q, want OFF", parsed.LED.State)
	}
	if parsed.LED.Latched {
		t.Error("latched: got true, want false")
	}
}

func TestFormatPayloadTimestampUTC(t *testing.T) {
	// A non-UTC timestamp must be normalized to UTC in the payload.
	loc := time.FixedZone("CET", 3600)
	event := logic.Event{
		Timestamp: time.Date(2026, 3, 15, 15, 30, 0, 0, loc),
		Type:      logic.EventLedOn,
		Cause:     logic.CauseToggle,
		Led:       logic.StateOn,
	}

	payload, err := FormatPayload(event)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	var parsed Payload
	json.Unmarshal(payload, &parsed)
	if parsed.LED.Timestamp != "2026-03-15T14:30:00Z" {
		t.Errorf("timestamp: got %q, want 2026-03-15T14:30:00Z", parsed.LED.Timestamp)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	payload, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}

	want := `{"system":{"timestamp":"2026-03-15T14:30:00Z","event":"SHUTDOWN","reason":"SIGTERM"}}`
	if string(payload) != want {
		t.Errorf("payload:\n got %s\nwant %s", payload, want)
	}
}

func TestFormatSystemPayloadOmitsEmptyReason(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		Event:     "HEARTBEAT",
	}

	payload, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}

	want := `{"system":{"timestamp":"2026-03-15T14:30:00Z","event":"HEARTBEAT"}}`
	if string(payload) != want {
		t.Errorf("payload:\n got %s\nwant %s", payload, want)
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"system":{"event":"STARTUP","custom":true}}`)
	event := SystemEvent{
		Timestamp:  time.Now(),
		Event:      "STARTUP",
		RawPayload: raw,
	}

	payload, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}
	if string(payload) != string(raw) {
		t.Errorf("expected raw payload passthrough, got %s", payload)
	}
}

func TestTopics(t *testing.T) {
	if Topic != "devices/ledkey/events" {
		t.Errorf("Topic: got %q", Topic)
	}
	if TopicSystem != "devices/ledkey/system" {
		t.Errorf("TopicSystem: got %q", TopicSystem)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()

	event := logic.Event{
		Timestamp: time.Now(),
		Type:      logic.EventLedOn,
		Cause:     logic.CauseMomentary,
		Led:       logic.StateOn,
	}
	if err := f.Publish(event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(f.Events) != 1 {
		t.Fatalf("events: got %d, want 1", len(f.Events))
	}
	if f.Events[0].Type != logic.EventLedOn {
		t.Errorf("event type: got %s", f.Events[0].Type)
	}
	if len(f.Payloads) != 1 {
		t.Fatalf("payloads: got %d, want 1", len(f.Payloads))
	}

	var parsed Payload
	if err := json.Unmarshal(f.Payloads[0], &parsed); err != nil {
		t.Errorf("recorded payload is not valid JSON: %v", err)
	}
}

func TestFakePublisherSystemEvents(t *testing.T) {
	f := NewFakePublisher()

	if err := f.PublishSystem(SystemEvent{Timestamp: time.Now(), Event: "STARTUP", Retained: true}); err != nil {
		t.Fatalf("PublishSystem: %v", err)
	}

	if len(f.SystemEvents) != 1 {
		t.Fatalf("system events: got %d, want 1", len(f.SystemEvents))
	}
	if f.SystemEvents[0].Event != "STARTUP" {
		t.Errorf("event: got %q", f.SystemEvents[0].Event)
	}
	if !f.SystemEvents[0].Retained {
		t.Error("expected Retained=true")
	}
}

func TestFakePublisherErrors(t *testing.T) {
	f := NewFakePublisher()
	f.PublishError = errors.New("broker down")
	f.PublishSystemError = errors.New("broker down")

	if err := f.Publish(logic.Event{}); err == nil {
		t.Error("expected Publish error")
	}
	if err := f.PublishSystem(SystemEvent{}); err == nil {
		t.Error("expected PublishSystem error")
	}
	if len(f.Events) != 0 || len(f.SystemEvents) != 0 {
		t.Error("failed publishes must not be recorded")
	}
}

func TestFakePublisherReset(t *testing.T) {
	f := NewFakePublisher()
	f.Publish(logic.Event{Type: logic.EventLedOn})
	f.PublishSystem(SystemEvent{Event: "STARTUP"})
	f.Connected = true
	f.Close()

	f.Reset()

	if len(f.Events) != 0 || len(f.SystemEvents) != 0 || f.Closed || f.Connected {
		t.Error("Reset did not clear state")
	}
}
