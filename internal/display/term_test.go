package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalClear(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf)

	if err := term.Clear(ColorBlack); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "\x1b[40m") {
		t.Errorf("missing black background SGR in %q", got)
	}
	if !strings.Contains(got, "\x1b[2J") {
		t.Errorf("missing erase-display sequence in %q", got)
	}
	if !strings.Contains(got, "\x1b[H") {
		t.Errorf("missing cursor-home sequence in %q", got)
	}
}

func TestTerminalSetTextColor(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf)

	if err := term.SetTextColor(ColorWhite, ColorBlack); err != nil {
		t.Fatalf("SetTextColor: %v", err)
	}

	if got := buf.String(); got != "\x1b[37;40m" {
		t.Errorf("SGR: got %q, want %q", got, "\x1b[37;40m")
	}
}

func TestTerminalCursorCellMapping(t *testing.T) {
	// Font size 2: 8x16 pixel cells. Pixel (0,90) lands in cell row 6
	// (zero-based 5), column 1.
	cases := []struct {
		x, y int
		want string
	}{
		{0, 0, "\x1b[1;1H"},
		{0, 90, "\x1b[6;1H"},
		{0, 70, "\x1b[5;1H"},
		{16, 16, "\x1b[2;3H"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		term := NewTerminalWriter(&buf)
		if err := term.SetCursor(tc.x, tc.y); err != nil {
			t.Fatalf("SetCursor(%d,%d): %v", tc.x, tc.y, err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("SetCursor(%d,%d): got %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTerminalCursorClamped(t *testing.T) {
	// Fallback geometry is 80x24; a far off-screen pixel clamps to the edge.
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf)

	if err := term.SetCursor(10000, 10000); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}
	if got := buf.String(); got != "\x1b[24;80H" {
		t.Errorf("clamped cursor: got %q, want %q", got, "\x1b[24;80H")
	}
}

func TestTerminalFontChangesCellMath(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf)

	if err := term.SetFont(1); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	// Size 1: 4x8 cells, so pixel (0,16) is row 3.
	term.SetCursor(0, 16)
	if got := buf.String(); got != "\x1b[3;1H" {
		t.Errorf("cursor at font 1: got %q, want %q", got, "\x1b[3;1H")
	}
}

func TestTerminalPrint(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf)

	if err := term.Print("LED State:"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := buf.String(); got != "LED State:" {
		t.Errorf("Print wrote %q", got)
	}
}

func TestRendererOnTerminal(t *testing.T) {
	// End to end through the ANSI backend: a full static+value paint
	// contains the header, label, and value in order.
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf)
	r := NewRenderer(term)

	if err := r.DrawStatic(); err != nil {
		t.Fatalf("DrawStatic: %v", err)
	}
	if err := r.DrawValue(false); err != nil {
		t.Fatalf("DrawValue: %v", err)
	}

	got := buf.String()
	for _, want := range []string{headerText, label, ValueOff} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Index(got, label) > strings.Index(got, ValueOff) {
		t.Error("value painted before label")
	}
}
