package display

import (
	"fmt"
	"strings"
)

// FakeDevice records draw operations into a character grid so tests can
// read back what the screen shows. Cells use the same 8x16 metrics as
// the terminal backend at font size 2.
type FakeDevice struct {
	// Ops logs every device call in order, e.g. "cursor(0,90)" or
	// "print(OFF)".
	Ops []string

	// Cleared counts Clear calls.
	Cleared int

	// Closed tracks if Close was called.
	Closed bool

	// Err, if set, is returned by every operation.
	Err error

	cellW, cellH int
	curCol       int
	curRow       int
	rows         map[int][]rune
}

// NewFakeDevice creates an empty fake screen.
func NewFakeDevice() *FakeDevice {
	f := &FakeDevice{rows: make(map[int][]rune)}
	f.cellW = cellWidthPerSize * fontSize
	f.cellH = cellHeightPerSize * fontSize
	return f
}

// Clear wipes the grid.
func (f *FakeDevice) Clear(bg Color) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ops = append(f.Ops, fmt.Sprintf("clear(%d)", bg))
	f.Cleared++
	f.rows = make(map[int][]rune)
	f.curCol, f.curRow = 0, 0
	return nil
}

// SetTextColor records the call; the grid itself is monochrome.
func (f *FakeDevice) SetTextColor(fg, bg Color) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ops = append(f.Ops, fmt.Sprintf("color(%d,%d)", fg, bg))
	return nil
}

// SetFont updates the cell metrics used for cursor math.
func (f *FakeDevice) SetFont(size int) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ops = append(f.Ops, fmt.Sprintf("font(%d)", size))
	if size >= 1 {
		f.cellW = cellWidthPerSize * size
		f.cellH = cellHeightPerSize * size
	}
	return nil
}

// SetCursor moves the cursor to the cell containing the pixel coordinate.
func (f *FakeDevice) SetCursor(x, y int) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ops = append(f.Ops, fmt.Sprintf("cursor(%d,%d)", x, y))
	f.curCol = x / f.cellW
	f.curRow = y / f.cellH
	return nil
}

// Print writes the text into the grid at the cursor and advances it.
func (f *FakeDevice) Print(text string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ops = append(f.Ops, fmt.Sprintf("print(%s)", text))
	row := f.rows[f.curRow]
	for _, r := range text {
		for len(row) <= f.curCol {
			row = append(row, ' ')
		}
		row[f.curCol] = r
		f.curCol++
	}
	f.rows[f.curRow] = row
	return nil
}

// Close marks the device as closed.
func (f *FakeDevice) Close() error {
	f.Closed = true
	return nil
}

// Row returns the text of the cell row containing pixel coordinate y,
// with trailing blanks trimmed.
func (f *FakeDevice) Row(y int) string {
	return strings.TrimRight(string(f.rows[y/f.cellH]), " ")
}

// RowRaw returns the untrimmed text of the cell row containing pixel
// coordinate y.
func (f *FakeDevice) RowRaw(y int) string {
	return string(f.rows[y/f.cellH])
}

// ResetOps clears the operation log, keeping the grid.
func (f *FakeDevice) ResetOps() {
	f.Ops = nil
}
