package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"geowatch/internal/geo"
)

// Canvas is a 2D grid of character cells implementing Surface for the
// terminal frontend
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// Cell represents a single character cell with style
type Cell struct {
	Char  rune
	Style tcell.Style
}

// NewCanvas creates a new blank canvas
func NewCanvas(width, height int) *Canvas {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = Cell{Char: ' ', Style: tcell.StyleDefault}
		}
	}

	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// tcellColor maps the backend-independent palette to terminal colors
func tcellColor(c Color) tcell.Color {
	switch c {
	case ColorGray:
		return tcell.ColorDarkGray
	case ColorBlue:
		return tcell.ColorDarkBlue
	case ColorCyan:
		return tcell.ColorDarkCyan
	case ColorYellow:
		return tcell.ColorYellow
	case ColorOrange:
		return tcell.ColorOrange
	case ColorRed:
		return tcell.ColorRed
	case ColorGreen:
		return tcell.ColorGreen
	case ColorMagenta:
		return tcell.ColorPurple
	case ColorWhite:
		return tcell.ColorWhite
	default:
		return tcell.ColorDefault
	}
}

// tcellStyle converts a Style into a tcell style
func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault
	if s.Color != ColorDefault {
		st = st.Foreground(tcellColor(s.Color))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

func round(f float64) int {
	return int(math.Round(f))
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Set sets the character and style at the given position.
// Coordinates outside the canvas are dropped.
func (c *Canvas) Set(x, y int, char rune, style tcell.Style) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y][x] = Cell{Char: char, Style: style}
	}
}

// Get retrieves the cell at the given position
func (c *Canvas) Get(x, y int) Cell {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		return c.cells[y][x]
	}
	return Cell{Char: ' ', Style: tcell.StyleDefault}
}

// Clear resets the entire canvas to spaces with default style
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Char: ' ', Style: tcell.StyleDefault}
		}
	}
}

// DrawPolyline strokes the point sequence with Bresenham segments
func (c *Canvas) DrawPolyline(points []geo.ScreenPoint, style Style) {
	if len(points) < 2 {
		return
	}

	glyph := style.Glyph
	if glyph == 0 {
		glyph = '·'
	}
	st := tcellStyle(style)

	for i := 0; i < len(points)-1; i++ {
		c.drawLine(round(points[i].X), round(points[i].Y),
			round(points[i+1].X), round(points[i+1].Y), glyph, st)
	}
}

// FillPolygon fills a ring by even-odd scanline in cell space.
// Rings with fewer than 3 points are skipped.
func (c *Canvas) FillPolygon(ring []geo.ScreenPoint, style Style) {
	if len(ring) < 3 {
		return
	}

	glyph := style.Glyph
	if glyph == 0 {
		glyph = '░'
	}
	st := tcellStyle(style)

	minY, maxY := ring[0].Y, ring[0].Y
	for _, p := range ring {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	y0 := round(math.Max(minY, 0))
	y1 := round(math.Min(maxY, float64(c.height-1)))

	for y := y0; y <= y1; y++ {
		fy := float64(y)
		xs := make([]float64, 0, 8)

		j := len(ring) - 1
		for i := 0; i < len(ring); i++ {
			yi, yj := ring[i].Y, ring[j].Y
			if (yi > fy) != (yj > fy) {
				x := ring[i].X + (fy-yi)/(yj-yi)*(ring[j].X-ring[i].X)
				xs = append(xs, x)
			}
			j = i
		}

		// Insertion sort; crossing counts are tiny
		for i := 1; i < len(xs); i++ {
			for k := i; k > 0 && xs[k] < xs[k-1]; k-- {
				xs[k], xs[k-1] = xs[k-1], xs[k]
			}
		}

		for i := 0; i+1 < len(xs); i += 2 {
			for x := round(xs[i]); x <= round(xs[i+1]); x++ {
				c.Set(x, y, glyph, st)
			}
		}
	}
}

// DrawCircle strokes a circle using the midpoint algorithm
func (c *Canvas) DrawCircle(center geo.ScreenPoint, radius float64, style Style) {
	glyph := style.Glyph
	if glyph == 0 {
		glyph = '◦'
	}
	st := tcellStyle(style)

	cx, cy := round(center.X), round(center.Y)
	r := round(radius)
	if r <= 0 {
		c.Set(cx, cy, glyph, st)
		return
	}

	x, y := r, 0
	err := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, glyph, st)
		c.Set(cx+y, cy+x, glyph, st)
		c.Set(cx-y, cy+x, glyph, st)
		c.Set(cx-x, cy+y, glyph, st)
		c.Set(cx-x, cy-y, glyph, st)
		c.Set(cx-y, cy-x, glyph, st)
		c.Set(cx+y, cy-x, glyph, st)
		c.Set(cx+x, cy-y, glyph, st)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// DrawMarker places a single point symbol
func (c *Canvas) DrawMarker(p geo.ScreenPoint, style Style) {
	glyph := style.Glyph
	if glyph == 0 {
		glyph = '●'
	}
	c.Set(round(p.X), round(p.Y), glyph, tcellStyle(style))
}

// DrawText draws a string at the given position
func (c *Canvas) DrawText(p geo.ScreenPoint, text string, style Style) {
	st := tcellStyle(style)
	x, y := round(p.X), round(p.Y)
	i := 0
	for _, char := range text {
		c.Set(x+i, y, char, st)
		i++
	}
}

// MeasureText returns the cell footprint of a text run
func (c *Canvas) MeasureText(text string) (float64, float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n), 1
}

// drawLine implements Bresenham's line algorithm on the cell grid
func (c *Canvas) drawLine(x0, y0, x1, y1 int, char rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}

	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy

	for {
		c.Set(x0, y0, char, style)

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err

		if e2 > -dy {
			err -= dy
			x0 += sx
		}

		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DrawTextCell draws a string at a cell position with a raw tcell style.
// Used by the chrome views (list, detail) that bypass the Surface API.
func (c *Canvas) DrawTextCell(x, y int, text string, style tcell.Style) {
	i := 0
	for _, char := range text {
		c.Set(x+i, y, char, style)
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters
func (c *Canvas) DrawBox(x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}

	c.Set(x, y, '┌', style)
	c.Set(x+width-1, y, '┐', style)
	c.Set(x, y+height-1, '└', style)
	c.Set(x+width-1, y+height-1, '┘', style)

	for i := 1; i < width-1; i++ {
		c.Set(x+i, y, '─', style)
		c.Set(x+i, y+height-1, '─', style)
	}

	for i := 1; i < height-1; i++ {
		c.Set(x, y+i, '│', style)
		c.Set(x+width-1, y+i, '│', style)
	}
}

// FillRect fills a rectangle with a character
func (c *Canvas) FillRect(x, y, width, height int, char rune, style tcell.Style) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.Set(x+dx, y+dy, char, style)
		}
	}
}

// Blit renders the canvas to a tcell screen
func (c *Canvas) Blit(screen tcell.Screen, offsetX, offsetY int) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y][x]
			screen.SetContent(offsetX+x, offsetY+y, cell.Char, nil, cell.Style)
		}
	}
}
