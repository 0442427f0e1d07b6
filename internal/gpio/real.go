//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "ledkey"

// RealPins drives actual hardware through the Linux GPIO character device.
type RealPins struct {
	chip      *gpiocdev.Chip
	led       *gpiocdev.Line
	backlight *gpiocdev.Line
	toggle    *gpiocdev.Line
	momentary *gpiocdev.Line
}

// NewRealPins requests the four lines on gpiochip0: the two outputs low,
// the two button inputs with pull-ups (pressed pulls the line low).
func NewRealPins() (*RealPins, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	p := &RealPins{chip: chip}
	p.led, err = chip.RequestLine(PinLED, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		p.release()
		return nil, fmt.Errorf("request LED pin %d: %w", PinLED, err)
	}
	p.backlight, err = chip.RequestLine(PinBacklight, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		p.release()
		return nil, fmt.Errorf("request backlight pin %d: %w", PinBacklight, err)
	}
	p.toggle, err = chip.RequestLine(PinToggle, gpiocdev.AsInput, gpiocdev.WithPullUp, gpiocdev.WithConsumer(consumer))
	if err != nil {
		p.release()
		return nil, fmt.Errorf("request toggle pin %d: %w", PinToggle, err)
	}
	p.momentary, err = chip.RequestLine(PinMomentary, gpiocdev.AsInput, gpiocdev.WithPullUp, gpiocdev.WithConsumer(consumer))
	if err != nil {
		p.release()
		return nil, fmt.Errorf("request momentary pin %d: %w", PinMomentary, err)
	}

	return p, nil
}

// ReadButtons samples the toggle line, then the momentary line.
// Inverts raw active-low values: raw 0 = pressed, raw 1 = released.
func (p *RealPins) ReadButtons() (bool, bool, error) {
	togRaw, err := p.toggle.Value()
	if err != nil {
		return false, false, fmt.Errorf("read toggle pin: %w", err)
	}

	momRaw, err := p.momentary.Value()
	if err != nil {
		return false, false, fmt.Errorf("read momentary pin: %w", err)
	}

	return togRaw == 0, momRaw == 0, nil
}

// SetLED drives the LED module power line.
func (p *RealPins) SetLED(on bool) error {
	if err := p.led.SetValue(levelOf(on)); err != nil {
		return fmt.Errorf("write LED pin: %w", err)
	}
	return nil
}

// SetBacklight drives the LCD backlight power line.
func (p *RealPins) SetBacklight(on bool) error {
	if err := p.backlight.SetValue(levelOf(on)); err != nil {
		return fmt.Errorf("write backlight pin: %w", err)
	}
	return nil
}

// Close drives the LED low and releases all lines and the chip, leaving
// the pins in a clean state for reboot.
func (p *RealPins) Close() error {
	var errs []error

	if p.led != nil {
		if err := p.led.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("lower LED pin: %w", err))
		}
	}
	p.release()

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// release closes whatever lines were requested, then the chip.
// Safe to call from a partially constructed RealPins.
func (p *RealPins) release() {
	for _, line := range []*gpiocdev.Line{p.led, p.backlight, p.toggle, p.momentary} {
		if line != nil {
			line.Close()
		}
	}
	p.led, p.backlight, p.toggle, p.momentary = nil, nil, nil, nil
	if p.chip != nil {
		p.chip.Close()
		p.chip = nil
	}
}

func levelOf(on bool) int {
	if on {
		return 1
	}
	return 0
}
