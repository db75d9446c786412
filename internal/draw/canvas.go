// Package draw renders vector shapes to a terminal using half-block characters.
package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 16

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Shapes are drawn in logical coordinates and scaled to terminal pixels.
// Render only emits cells that changed since the previous frame.
type Canvas struct {
	termWidth      int    // Terminal columns used by the canvas
	termHeight     int    // Terminal rows used by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]
	prev           []rune // Cells emitted by the last Render; 0 means unknown

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based terminal offsets for centering.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
	circleBuf       []Point
}

// NewScaledCanvas creates a canvas that maps logicalWidth x logicalHeight onto
// termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the terminal dimensions, keeping the logical size.
// The next Render redraws every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]rune, termHeight*termWidth)
	}
	c.rescale()
}

// SetLogicalSize changes the coordinate space shapes are drawn in.
func (c *Canvas) SetLogicalSize(width, height float64) {
	if width == c.logicalWidth && height == c.logicalHeight {
		return
	}
	c.logicalWidth = width
	c.logicalHeight = height
	c.rescale()
}

func (c *Canvas) rescale() {
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering.
// The canvas starts at terminal position (col+1, row+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, e.g. after the screen was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.prev)
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at terminal pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, optionally filled.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle of radius r around (cx, cy). Circles smaller than
// a pixel become a single dot.
func (c *Canvas) DrawCircle(cx, cy, r float64, filled bool) {
	if r*c.scaleX < 1 && r*c.scaleY < 1 {
		c.SetFloat(cx, cy)
		return
	}
	if cap(c.circleBuf) < circleSegments {
		c.circleBuf = make([]Point, circleSegments)
	}
	points := c.circleBuf[:circleSegments]
	for i := range points {
		sin, cos := math.Sincos(float64(i) / circleSegments * 2 * math.Pi)
		points[i] = Point{X: cx + cos*r, Y: cy + sin*r}
	}
	c.DrawPolygon(points, filled)
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := range n {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes written at once. Matches a typical MTU
// for smooth SSH transmission.
const maxChunkSize = 1400

// cell returns the half-block rune for a terminal cell.
func (c *Canvas) cell(col, row int) rune {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes every cell that differs from the previous frame.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		// Consecutive changed cells share one cursor move.
		cursorCol := -1
		for col := 0; col < c.termWidth; col++ {
			ch := c.cell(col, row)
			idx := row*c.termWidth + col
			if c.prev[idx] == ch {
				continue
			}
			c.prev[idx] = ch
			if cursorCol != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			c.renderBuf.WriteRune(ch)
			cursorCol = col + 1
		}
	}

	return WriteChunked(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// WriteChunked writes data to w in chunks of at most maxChunkSize bytes.
func WriteChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box around the canvas when it is offset from the
// terminal edges.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			buf.WriteString(cursor(left, top) + "┌" + line + "┐")
			buf.WriteString(cursor(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursor(left+1, top) + line)
			buf.WriteString(cursor(left+1, bottom) + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf.WriteString(cursor(left, row) + "│" + cursor(right, row) + "│")
		}
	}
	return WriteChunked(w, buf.String())
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row) relative to the canvas origin.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
