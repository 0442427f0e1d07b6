// Package gpio provides button input and LED output with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Pins reads the two button lines and drives the two output lines.
type Pins interface {
	// ReadButtons returns the logical states of the toggle and momentary
	// buttons (true = pressed). The lines are active-low: raw 0 = pressed.
	// One instantaneous sample per line per call, no filtering. The toggle
	// line is sampled first, matching the loop's handling order.
	ReadButtons() (toggle, momentary bool, err error)

	// SetLED drives the LED module power line (true = energized).
	SetLED(on bool) error

	// SetBacklight drives the LCD backlight power line.
	SetBacklight(on bool) error

	// Close releases GPIO resources, driving the LED low first.
	Close() error
}

// Pin definitions (line offsets on gpiochip0). Fixed at compile time;
// runtime remapping is deliberately not supported.
const (
	PinLED       = 1  // KY-034 S pin (LED module power), output, active high
	PinBacklight = 15 // LCD backlight power, output
	PinToggle    = 0  // BOOT button, input, pull-up, active low
	PinMomentary = 14 // KEY button, input, pull-up, active low
)
