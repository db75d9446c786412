package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a 1-based position.
func MoveCursor(w io.Writer, col, row int) {
	io.WriteString(w, cursor(col, row))
}

func cursor(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// Viewport is the terminal area a canvas occupies.
type Viewport struct {
	Width     int // Columns
	Height    int // Rows
	OffsetCol int // 0-based
	OffsetRow int // 0-based
}

// FitViewport sizes a canvas for a termWidth x termHeight terminal so that a
// logicalWidth x logicalHeight field keeps its aspect ratio (one cell is two
// pixels tall). reservedRows at the top are left for text, and the canvas is
// capped at maxWidth x maxHeight and centered in the remaining space.
func FitViewport(termWidth, termHeight, reservedRows, maxWidth, maxHeight int, logicalWidth, logicalHeight float64) Viewport {
	availW := min(termWidth, maxWidth)
	availH := min(termHeight-reservedRows, maxHeight)
	if availW < 1 || availH < 1 || logicalWidth <= 0 || logicalHeight <= 0 {
		return Viewport{Width: max(availW, 1), Height: max(availH, 1), OffsetRow: reservedRows}
	}

	aspect := logicalWidth / logicalHeight
	w := availW
	h := int(float64(w) / aspect / 2)
	if h > availH {
		h = availH
		w = int(float64(h) * 2 * aspect)
	}
	w = max(w, 1)
	h = max(h, 1)

	return Viewport{
		Width:     w,
		Height:    h,
		OffsetCol: (termWidth - w) / 2,
		OffsetRow: reservedRows + (termHeight-reservedRows-h)/2,
	}
}
