package display

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Cell metrics for font size s: 4s x 8s pixels. Size 2 gives the 8x16
// cell of the original panel font.
const (
	cellWidthPerSize  = 4
	cellHeightPerSize = 8
)

// Terminal renders the Device operations as ANSI control sequences on a
// text console, mapping pixel coordinates to character cells. On the
// target device this is the TFT panel's fbcon tty.
type Terminal struct {
	w          io.Writer
	cols, rows int
	cellW      int
	cellH      int
}

// NewTerminal opens the console at path for writing and probes its size.
func NewTerminal(path string) (*Terminal, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open console %s: %w", path, err)
	}
	return NewTerminalWriter(f), nil
}

// NewTerminalWriter wraps an existing writer (any io.Writer in tests).
// The terminal size is probed via TIOCGWINSZ when the writer has a file
// descriptor; otherwise an 80x24 fallback applies.
func NewTerminalWriter(w io.Writer) *Terminal {
	t := &Terminal{w: w, cols: 80, rows: 24}
	t.SetFont(fontSize)

	if f, ok := w.(*os.File); ok {
		if ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
			t.cols = int(ws.Col)
			t.rows = int(ws.Row)
		}
	}
	return t
}

// Clear fills the screen with the background color and homes the cursor.
func (t *Terminal) Clear(bg Color) error {
	_, err := fmt.Fprintf(t.w, "\x1b[%dm\x1b[2J\x1b[H", 40+bg)
	return err
}

// SetTextColor emits the SGR foreground/background codes.
func (t *Terminal) SetTextColor(fg, bg Color) error {
	_, err := fmt.Fprintf(t.w, "\x1b[%d;%dm", 30+fg, 40+bg)
	return err
}

// SetFont stores the cell metrics for cursor math. Glyph scaling itself
// belongs to the kernel console, not to this writer.
func (t *Terminal) SetFont(size int) error {
	if size < 1 {
		size = 1
	}
	t.cellW = cellWidthPerSize * size
	t.cellH = cellHeightPerSize * size
	return nil
}

// SetCursor converts the pixel coordinate to a character cell and emits
// CUP. Out-of-range positions are clamped to the screen edge.
func (t *Terminal) SetCursor(x, y int) error {
	col := x/t.cellW + 1
	row := y/t.cellH + 1
	col = clamp(col, 1, t.cols)
	row = clamp(row, 1, t.rows)
	_, err := fmt.Fprintf(t.w, "\x1b[%d;%dH", row, col)
	return err
}

// Print writes the literal text at the cursor.
func (t *Terminal) Print(text string) error {
	_, err := io.WriteString(t.w, text)
	return err
}

// Close closes the underlying console when it is closable.
func (t *Terminal) Close() error {
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
