package render

import (
	"geowatch/internal/geo"
)

// Color is a backend-independent palette entry. Each Surface maps it to
// whatever its output medium supports.
type Color int

const (
	ColorDefault Color = iota
	ColorGray
	ColorBlue
	ColorCyan
	ColorYellow
	ColorOrange
	ColorRed
	ColorGreen
	ColorMagenta
	ColorWhite
)

// Style describes how an entity is drawn: palette color, emphasis, and
// the glyph used by cell-based surfaces for line/point strokes
type Style struct {
	Color   Color
	Bold    bool
	Reverse bool
	Glyph   rune
}

// Surface is the drawing backend capability consumed by the map renderer.
// Coordinates are viewport units (cells or pixels) already computed by the
// caller; a Surface never projects.
type Surface interface {
	// Size returns the drawable area in viewport units
	Size() (width, height int)

	// DrawPolyline strokes an open point sequence
	DrawPolyline(points []geo.ScreenPoint, style Style)

	// FillPolygon fills a closed ring
	FillPolygon(ring []geo.ScreenPoint, style Style)

	// DrawCircle strokes a circle outline
	DrawCircle(center geo.ScreenPoint, radius float64, style Style)

	// DrawMarker places a single point symbol
	DrawMarker(p geo.ScreenPoint, style Style)

	// DrawText draws a text run with its top-left at p
	DrawText(p geo.ScreenPoint, text string, style Style)

	// MeasureText returns the size the surface will use for a text run
	MeasureText(text string) (width, height float64)
}
