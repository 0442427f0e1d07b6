package gpio

import "errors"

// FakePins is a test double with scripted button samples and recorded
// output writes.
type FakePins struct {
	// Samples contains scripted (toggle, momentary) readings to return.
	// Each call to ReadButtons() consumes the next sample.
	Samples []Sample

	// index tracks current position in Samples
	index int

	// LEDWrites records every SetLED call in order.
	LEDWrites []bool

	// BacklightWrites records every SetBacklight call in order.
	BacklightWrites []bool

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by ReadButtons()
	ReadError error

	// WriteError, if set, will be returned by SetLED and SetBacklight
	WriteError error
}

// Sample represents a single reading of both buttons (already in logical
// form: true = pressed).
type Sample struct {
	Toggle    bool
	Momentary bool
}

// NewFakePins creates a FakePins with the given samples.
func NewFakePins(samples []Sample) *FakePins {
	return &FakePins{Samples: samples}
}

// ReadButtons returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakePins) ReadButtons() (bool, bool, error) {
	if f.ReadError != nil {
		return false, false, f.ReadError
	}

	if len(f.Samples) == 0 {
		return false, false, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample.Toggle, sample.Momentary, nil
}

// SetLED records the LED write.
func (f *FakePins) SetLED(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.LEDWrites = append(f.LEDWrites, on)
	return nil
}

// SetBacklight records the backlight write.
func (f *FakePins) SetBacklight(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.BacklightWrites = append(f.BacklightWrites, on)
	return nil
}

// Close marks the pins as closed.
func (f *FakePins) Close() error {
	f.Closed = true
	return nil
}

// LED returns the last written LED level (false if never written).
func (f *FakePins) LED() bool {
	if len(f.LEDWrites) == 0 {
		return false
	}
	return f.LEDWrites[len(f.LEDWrites)-1]
}

// Reset rewinds the sample script and clears recorded writes.
func (f *FakePins) Reset() {
	f.index = 0
	f.LEDWrites = nil
	f.BacklightWrites = nil
	f.Closed = false
}
