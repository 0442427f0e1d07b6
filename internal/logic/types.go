// Package logic contains the pure button/LED state machine.
// This package has NO external dependencies (no GPIO, display, MQTT, OS,
// or time.Sleep). Time is always injectable via time.Time parameters.
package logic

import "time"

// State represents the logical LED state as rendered/published.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// EventType represents an LED transition event.
type EventType string

const (
	EventLedOn  EventType = "LED_ON"
	EventLedOff EventType = "LED_OFF"
)

// Cause identifies which button produced a transition.
type Cause string

const (
	CauseToggle    Cause = "toggle"
	CauseMomentary Cause = "momentary"
)

// Event represents an LED transition to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	Cause     Cause
	Led       State
	Latched   bool
}

// Edge describes a single observed button edge, for counters/metrics.
type Edge struct {
	Button     string // "toggle" or "momentary"
	Action     string // "press" or "release"
	Suppressed bool   // momentary edge ignored because the latch was set
}

// Sample is a single raw reading of both buttons, in logical form
// (true = pressed, already inverted from the active-low lines).
type Sample struct {
	Toggle    bool
	Momentary bool
	Time      time.Time
}

// EventCounts tracks running totals since startup.
type EventCounts struct {
	TogglePresses     int
	MomentaryPresses  int
	MomentaryReleases int
	SuppressedEdges   int
	LedOn             int
	LedOff            int
}

// HeartbeatData contains information for a heartbeat event.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Counts    EventCounts
}
