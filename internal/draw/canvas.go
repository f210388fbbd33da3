// Package draw renders arena shapes to ANSI terminals.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
//
// Render only emits cells that changed since the previous frame, so callers
// that write text over the canvas must report those cells with MarkTextDirty.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set
	prev           []bool // Pixels as of the last Render
	stale          []bool // Per terminal cell: overwritten by text since the last Render
	fullRedraw     bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the arena coordinate space.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.prev = make([]bool, subPixelHeight*termWidth)
		c.stale = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.fullRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.fullRedraw = true
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

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.fullRedraw = true
}

// MarkTextDirty records that n cells starting at the 1-based canvas position
// (col, row) were overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.stale[r*c.termWidth+x] = true
		}
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at actual terminal coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a logical rectangle. Anything with a positive extent covers
// at least one pixel so small objects never vanish on tiny terminals.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0, x1 := c.pixelSpan(x, w, c.scaleX)
	y0, y1 := c.pixelSpan(y, h, c.scaleY)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py)
		}
	}
}

// pixelSpan converts a logical [start, start+length) span to inclusive pixel bounds.
func (c *Canvas) pixelSpan(start, length, scale float64) (int, int) {
	p0 := int(math.Floor(start * scale))
	p1 := int(math.Ceil((start+length)*scale)) - 1
	if p1 < p0 {
		p1 = p0
	}
	return p0, p1
}

// DashedVLine draws a vertical dashed line at logical column x.
func (c *Canvas) DashedVLine(x, dash, gap float64) {
	if dash <= 0 {
		return
	}
	for y := 0.0; y < c.logicalHeight; y += dash + gap {
		c.FillRect(x, y, 0, dash)
	}
}

// glyph returns the half-block character for a terminal cell in the given buffer.
func (c *Canvas) glyph(buf []bool, col, row int) rune {
	top := buf[row*2*c.termWidth+col]
	bottom := row*2+1 < c.subPixelHeight && buf[(row*2+1)*c.termWidth+col]
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

// Render outputs the cells that changed since the last Render using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		nextCol := -1 // Column the cursor sits on after the last write, -1 if unknown
		for col := 0; col < c.termWidth; col++ {
			ch := c.glyph(c.pixels, col, row)
			if !c.fullRedraw && !c.stale[row*c.termWidth+col] && ch == c.glyph(c.prev, col, row) {
				continue
			}
			if col != nextCol {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			c.renderBuf.WriteRune(ch)
			nextCol = col + 1
		}
	}

	copy(c.prev, c.pixels)
	clear(c.stale)
	c.fullRedraw = false

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			writeAt(&buf, left, top, "┌"+line+"┐")
			writeAt(&buf, left, bottom, "└"+line+"┘")
		} else {
			writeAt(&buf, c.offsetCol+1, top, line)
			writeAt(&buf, c.offsetCol+1, bottom, line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			writeAt(&buf, left, row, "│")
			writeAt(&buf, right, row, "│")
		}
	}

	io.WriteString(w, buf.String())
}

func writeAt(buf *strings.Builder, col, row int, s string) {
	buf.WriteString("\033[")
	buf.WriteString(strconv.Itoa(row))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(col))
	buf.WriteByte('H')
	buf.WriteString(s)
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
