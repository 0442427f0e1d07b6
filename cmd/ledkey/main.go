// Command ledkey polls two buttons, drives the KY-034 LED module, mirrors
// the state to the panel, and optionally publishes transitions to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/ledkey/internal/display"
	"github.com/sweeney/ledkey/internal/gpio"
	"github.com/sweeney/ledkey/internal/logic"
	"github.com/sweeney/ledkey/internal/metrics"
	"github.com/sweeney/ledkey/internal/mqtt"
	"github.com/sweeney/ledkey/internal/status"
	"github.com/sweeney/ledkey/internal/web"
)

func main() {
	poll := flag.Duration("poll", 10*time.Millisecond, "Button polling interval")
	broker := flag.String("broker", "", "MQTT broker address (empty to disable telemetry)")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	httpAddr := flag.String("http", "", "HTTP status address (empty to disable)")
	displayPath := flag.String("display", "/dev/tty1", `Console tty of the panel ("off" to disable rendering)`)
	printState := flag.Bool("print-state", false, "Print current button state and exit")

	flag.Parse()

	if err := run(*poll, *broker, *heartbeat, *httpAddr, *displayPath, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(poll time.Duration, broker string, heartbeat time.Duration, httpAddr, displayPath string, printState bool) error {
	// Initialize GPIO: outputs start low, button inputs pulled up.
	pins, err := gpio.NewRealPins()
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer pins.Close()

	// Print state mode
	if printState {
		toggle, momentary, err := pins.ReadButtons()
		if err != nil {
			return fmt.Errorf("read buttons: %w", err)
		}
		fmt.Printf("toggle: %s, momentary: %s\n", buttonString(toggle), buttonString(momentary))
		return nil
	}

	// Backlight goes high once at startup and is never touched again.
	if err := pins.SetBacklight(true); err != nil {
		return fmt.Errorf("enable backlight: %w", err)
	}

	// Initialize display and paint the static frame.
	var rend *display.Renderer
	if displayPath != "off" {
		term, err := display.NewTerminal(displayPath)
		if err != nil {
			return fmt.Errorf("init display: %w", err)
		}
		defer term.Close()
		rend = display.NewRenderer(term)
		if err := rend.DrawStatic(); err != nil {
			return fmt.Errorf("paint static frame: %w", err)
		}
	}

	// Initialize MQTT (optional).
	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if broker != "" {
		real, err := mqtt.NewRealPublisher(broker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		defer real.Close()
		publisher = real
		mqttStatus = real
	}

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      poll.Milliseconds(),
		HeartbeatMs: heartbeat.Milliseconds(),
		Broker:      broker,
		HTTPAddr:    httpAddr,
		Display:     displayPath,
	})

	// Publish startup event with full status snapshot
	if publisher != nil {
		snap := tracker.Snapshot()
		startupEvent := mqtt.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := publisher.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP status server with metrics.
	var mets *metrics.Metrics
	if httpAddr != "" {
		mets = metrics.New()
		srv := web.New(httpAddr, tracker, mets.Handler())
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: poll=%v broker=%q heartbeat=%v display=%s", poll, broker, heartbeat, displayPath)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(pins, rend, publisher, mqttStatus, tracker, mets, heartbeat, time.Now, ticker.C, sigCh)
}

// runLoop owns the controller state exclusively. Each tick, in strict
// order: sample buttons, fold edges into the state (toggle first), drive
// the LED pin, repaint the value cell if dirty, publish events, check the
// heartbeat, refresh the tracker. Clock, tick, and signal sources are
// injectable so tests drive the loop deterministically.
func runLoop(pins gpio.Pins, rend *display.Renderer, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, mets *metrics.Metrics, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	ctrl := logic.NewController()
	hb := logic.NewHeartbeat(startTime)

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if publisher != nil {
				event := mqtt.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    signalName,
					Retained:  true,
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					snap := tracker.Snapshot()
					event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
				}
				if err := publisher.PublishSystem(event); err != nil {
					log.Printf("failed to publish shutdown event: %v", err)
				} else {
					log.Printf("published shutdown event")
				}
			}
			return nil

		case <-tick:
			t := now()
			toggle, momentary, err := pins.ReadButtons()
			if err != nil {
				log.Printf("button read error: %v", err)
				mets.ReadError()
				continue
			}

			res := ctrl.Apply(logic.Sample{Toggle: toggle, Momentary: momentary, Time: t})

			// Drive the pin in the same iteration as the state write,
			// before the repaint.
			if res.WriteLED {
				if err := pins.SetLED(ctrl.LedOn); err != nil {
					log.Printf("led write error: %v", err)
				}
			}

			if ctrl.Dirty {
				if rend != nil {
					if err := rend.DrawValue(ctrl.LedOn); err != nil {
						log.Printf("display error: %v", err)
					}
				}
				ctrl.Dirty = false
			}

			for _, edge := range res.Edges {
				mets.ButtonEdge(edge.Button, edge.Action, edge.Suppressed)
			}

			for _, event := range res.Events {
				log.Printf("event: %s (cause=%s latched=%v)", event.Type, event.Cause, event.Latched)
				mets.LEDTransition(string(event.Led))
				if publisher != nil {
					if err := publisher.Publish(event); err != nil {
						log.Printf("publish error: %v", err)
						// Don't crash on publish failure
					}
				}
			}

			// Check for heartbeat
			if hbData := hb.Check(t, heartbeat, ctrl.Counts); hbData != nil {
				log.Printf("heartbeat: uptime=%v toggles=%d suppressed=%d led_on=%d led_off=%d",
					hbData.Uptime, hbData.Counts.TogglePresses, hbData.Counts.SuppressedEdges,
					hbData.Counts.LedOn, hbData.Counts.LedOff)

				if publisher != nil {
					hbEvent := mqtt.SystemEvent{
						Timestamp: hbData.Timestamp,
						Event:     "HEARTBEAT",
					}
					if tracker != nil {
						if mqttStatus != nil {
							tracker.SetMQTTConnected(mqttStatus.IsConnected())
						}
						tracker.Update(ctrl.State(), ctrl.Latched, ctrl.Counts)
						snap := tracker.Snapshot()
						hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
					}
					if err := publisher.PublishSystem(hbEvent); err != nil {
						log.Printf("heartbeat publish error: %v", err)
					}
				}
			}

			// Update status tracker and gauges for HTTP consumers
			if tracker != nil {
				tracker.Update(ctrl.State(), ctrl.Latched, ctrl.Counts)
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
			mets.SetState(ctrl.LedOn, ctrl.Latched)
		}
	}
}

func buttonString(pressed bool) string {
	if pressed {
		return "pressed"
	}
	return "released"
}
