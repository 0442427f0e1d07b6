//go:build !linux

package gpio

import "errors"

// RealPins is not available on non-Linux platforms.
type RealPins struct{}

// NewRealPins returns an error on non-Linux platforms.
func NewRealPins() (*RealPins, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// ReadButtons is not implemented on non-Linux platforms.
func (p *RealPins) ReadButtons() (bool, bool, error) {
	return false, false, errors.New("gpio: not supported")
}

// SetLED is not implemented on non-Linux platforms.
func (p *RealPins) SetLED(on bool) error {
	return errors.New("gpio: not supported")
}

// SetBacklight is not implemented on non-Linux platforms.
func (p *RealPins) SetBacklight(on bool) error {
	return errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (p *RealPins) Close() error {
	return nil
}
