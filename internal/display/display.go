// Package display renders the LED status screen with hardware abstraction.
// The real implementation writes ANSI sequences to the panel's console tty.
// The fake implementation records draws into a character grid for tests.
package display

// Color is a display color in the 8-color text palette.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Device is the text-display capability surface: clear, colors, font
// size, pixel-addressed cursor, literal text at the cursor.
type Device interface {
	// Clear fills the whole screen with the background color and homes
	// the cursor.
	Clear(bg Color) error

	// SetTextColor sets the foreground and background for subsequent Print calls.
	SetTextColor(fg, bg Color) error

	// SetFont sets the font size. Size 2 is the 8x16 pixel cell used here.
	SetFont(size int) error

	// SetCursor positions the draw cursor by pixel coordinate.
	SetCursor(x, y int) error

	// Print writes literal text at the cursor. No newline handling.
	Print(text string) error

	// Close releases the device.
	Close() error
}

// Screen geometry. The static region is painted once; only the value cell
// at (valueX, valueY) is ever repainted.
const (
	headerY1 = 0
	headerY2 = 16
	headerY3 = 32
	labelY   = 70
	valueX   = 0
	valueY   = 90

	fontSize = 2
)

const (
	headerRule = "---------------------------"
	headerText = "KY034 Auto Flashing LED"
	label      = "LED State:"

	// ValueOn and ValueOff are rendered to equal width so no stale
	// characters survive a transition.
	ValueOn  = "ON "
	ValueOff = "OFF"

	// valueBlank is wide enough to erase the longest value ever painted.
	valueBlank = "      "
)

// Renderer paints the status screen in two phases: the static frame once,
// then value-cell-only updates.
type Renderer struct {
	dev Device
}

// NewRenderer creates a Renderer on the given device.
func NewRenderer(dev Device) *Renderer {
	return &Renderer{dev: dev}
}

// DrawStatic clears the screen and paints the header and the state label.
// Called once at startup.
func (r *Renderer) DrawStatic() error {
	steps := []func() error{
		func() error { return r.dev.Clear(ColorBlack) },
		func() error { return r.dev.SetFont(fontSize) },
		func() error { return r.dev.SetTextColor(ColorWhite, ColorBlack) },
		func() error { return r.dev.SetCursor(0, headerY1) },
		func() error { return r.dev.Print(headerRule) },
		func() error { return r.dev.SetCursor(0, headerY2) },
		func() error { return r.dev.Print(headerText) },
		func() error { return r.dev.SetCursor(0, headerY3) },
		func() error { return r.dev.Print(headerRule) },
		func() error { return r.dev.SetCursor(0, labelY) },
		func() error { return r.dev.Print(label) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// DrawValue repaints the value cell only: blank out the previous value,
// then write the current one. Never touches the static region.
func (r *Renderer) DrawValue(on bool) error {
	if err := r.dev.SetCursor(valueX, valueY); err != nil {
		return err
	}
	if err := r.dev.Print(valueBlank); err != nil {
		return err
	}
	if err := r.dev.SetCursor(valueX, valueY); err != nil {
		return err
	}
	value := ValueOff
	if on {
		value = ValueOn
	}
	return r.dev.Print(value)
}
