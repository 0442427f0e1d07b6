package logic

import "time"

// Controller state, owned exclusively by the control loop. No globals.
type Controller struct {
	// LedOn is true while the LED module is energized.
	LedOn bool
	// Latched flips on every toggle press. While true, momentary edges
	// are suppressed entirely.
	Latched bool
	// Previous-sample snapshots for edge detection.
	LastToggle    bool
	LastMomentary bool
	// Dirty is set on every write to LedOn (same-value writes included)
	// and cleared by the loop after the repaint step.
	Dirty bool
	// Counts accumulates edge and transition totals since startup.
	Counts EventCounts
}

// Result reports what a single Apply call decided.
type Result struct {
	// Events are the LED transitions to publish (actual level changes only).
	Events []Event
	// Edges are all button edges observed in the sample, suppressed or not.
	Edges []Edge
	// WriteLED is true when the output pin must be (re)written this
	// iteration, to the Controller's current LedOn level. The pin write is
	// requested even when the level did not change.
	WriteLED bool
}

// NewController returns the startup state: LED off, latch clear, both
// buttons released. Dirty starts true so the first iteration paints the
// initial value.
func NewController() *Controller {
	return &Controller{Dirty: true}
}

// Apply folds one sample into the state. Edges are handled in strict
// order: toggle first, then momentary, so a simultaneous first press of
// both buttons latches before the momentary edge is considered.
func (c *Controller) Apply(in Sample) Result {
	var res Result

	if in.Toggle != c.LastToggle {
		if in.Toggle {
			c.LedOn = !c.LedOn
			c.Latched = !c.Latched
			c.Dirty = true
			c.Counts.TogglePresses++
			res.WriteLED = true
			res.Events = append(res.Events, c.event(in.Time, CauseToggle))
			res.Edges = append(res.Edges, Edge{Button: "toggle", Action: "press"})
		} else {
			res.Edges = append(res.Edges, Edge{Button: "toggle", Action: "release"})
		}
		c.LastToggle = in.Toggle
	}

	if in.Momentary != c.LastMomentary {
		action := "release"
		if in.Momentary {
			action = "press"
		}
		if c.Latched {
			// Latch set: the momentary button must not touch LedOn or
			// the pin. Only the snapshot and the suppressed count move.
			c.Counts.SuppressedEdges++
			res.Edges = append(res.Edges, Edge{Button: "momentary", Action: action, Suppressed: true})
		} else {
			changed := c.LedOn != in.Momentary
			c.LedOn = in.Momentary
			c.Dirty = true
			res.WriteLED = true
			if in.Momentary {
				c.Counts.MomentaryPresses++
			} else {
				c.Counts.MomentaryReleases++
			}
			if changed {
				res.Events = append(res.Events, c.event(in.Time, CauseMomentary))
			}
			res.Edges = append(res.Edges, Edge{Button: "momentary", Action: action})
		}
		c.LastMomentary = in.Momentary
	}

	return res
}

// State returns the LED state in its rendered/published form.
func (c *Controller) State() State {
	return boolToState(c.LedOn)
}

func (c *Controller) event(t time.Time, cause Cause) Event {
	ev := Event{
		Timestamp: t,
		Cause:     cause,
		Led:       c.State(),
		Latched:   c.Latched,
	}
	if c.LedOn {
		ev.Type = EventLedOn
		c.Counts.LedOn++
	} else {
		ev.Type = EventLedOff
		c.Counts.LedOff++
	}
	return ev
}

func boolToState(b bool) State {
	if b {
		return StateOn
	}
	return StateOff
}
