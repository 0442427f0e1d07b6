package gpio

import (
	"errors"
	"testing"
)

func TestFakePinsReadButtons(t *testing.T) {
	samples := []Sample{
		{Toggle: true, Momentary: false},
		{Toggle: false, Momentary: true},
		{Toggle: true, Momentary: true},
	}

	f := NewFakePins(samples)

	for i, want := range samples {
		tog, mom, err := f.ReadButtons()
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", i, err)
		}
		if tog != want.Toggle || mom != want.Momentary {
			t.Errorf("sample %d: expected (%v, %v), got (%v, %v)",
				i, want.Toggle, want.Momentary, tog, mom)
		}
	}

	// Next read should repeat the last sample.
	tog, mom, err := f.ReadButtons()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tog != true || mom != true {
		t.Errorf("repeat: expected (true, true), got (%v, %v)", tog, mom)
	}
}

func TestFakePinsNoSamples(t *testing.T) {
	f := NewFakePins(nil)

	_, _, err := f.ReadButtons()
	if err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakePinsReadError(t *testing.T) {
	f := NewFakePins([]Sample{{Toggle: true}})
	f.ReadError = errors.New("simulated error")

	_, _, err := f.ReadButtons()
	if err == nil {
		t.Error("expected error to be returned")
	}
	if err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFakePinsRecordsWrites(t *testing.T) {
	f := NewFakePins(nil)

	if f.LED() {
		t.Error("LED should start low")
	}

	f.SetLED(true)
	f.SetLED(false)
	f.SetLED(true)
	f.SetBacklight(true)

	if len(f.LEDWrites) != 3 {
		t.Fatalf("expected 3 LED writes, got %d", len(f.LEDWrites))
	}
	want := []bool{true, false, true}
	for i, w := range want {
		if f.LEDWrites[i] != w {
			t.Errorf("LED write %d: got %v, want %v", i, f.LEDWrites[i], w)
		}
	}
	if !f.LED() {
		t.Error("LED() should report the last write")
	}
	if len(f.BacklightWrites) != 1 || !f.BacklightWrites[0] {
		t.Errorf("backlight writes: got %v, want [true]", f.BacklightWrites)
	}
}

func TestFakePinsWriteError(t *testing.T) {
	f := NewFakePins(nil)
	f.WriteError = errors.New("write failed")

	if err := f.SetLED(true); err == nil {
		t.Error("expected SetLED error")
	}
	if err := f.SetBacklight(true); err == nil {
		t.Error("expected SetBacklight error")
	}
	if len(f.LEDWrites) != 0 {
		t.Error("failed writes should not be recorded")
	}
}

func TestFakePinsClose(t *testing.T) {
	f := NewFakePins([]Sample{{Toggle: true}})

	if f.Closed {
		t.Error("should not be closed initially")
	}

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakePinsReset(t *testing.T) {
	samples := []Sample{
		{Toggle: true, Momentary: false},
		{Toggle: false, Momentary: true},
	}

	f := NewFakePins(samples)

	f.ReadButtons()
	f.SetLED(true)

	f.Reset()

	tog, mom, _ := f.ReadButtons()
	if tog != true || mom != false {
		t.Errorf("after reset: expected (true, false), got (%v, %v)", tog, mom)
	}
	if len(f.LEDWrites) != 0 {
		t.Error("after reset: recorded writes should be cleared")
	}
}
