// Package export renders map snapshots to PNG through the same Surface
// interface the terminal canvas implements.
package export

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"geowatch/internal/geo"
	"geowatch/internal/render"
	"geowatch/internal/track"
)

// Cell size in pixels used to scale view units to raster pixels; roughly
// the footprint of a terminal cell
const (
	cellWidth  = 9.0
	cellHeight = 18.0
	fontSize   = 13.0
)

// Raster is a gg-backed drawing surface in view units
type Raster struct {
	dc     *gg.Context
	width  int
	height int
}

// NewRaster creates a raster surface for a viewport of the given size in
// view units
func NewRaster(width, height int) (*Raster, error) {
	dc := gg.NewContext(int(float64(width)*cellWidth), int(float64(height)*cellHeight))

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(fnt, &truetype.Options{Size: fontSize}))

	dc.SetRGB(0.03, 0.05, 0.08)
	dc.Clear()

	return &Raster{dc: dc, width: width, height: height}, nil
}

// rgb maps the shared palette to raster colors
func rgb(c render.Color) (float64, float64, float64) {
	switch c {
	case render.ColorGray:
		return 0.45, 0.45, 0.5
	case render.ColorBlue:
		return 0.25, 0.4, 0.8
	case render.ColorCyan:
		return 0.2, 0.7, 0.75
	case render.ColorYellow:
		return 0.9, 0.85, 0.2
	case render.ColorOrange:
		return 0.95, 0.6, 0.15
	case render.ColorRed:
		return 0.9, 0.25, 0.2
	case render.ColorGreen:
		return 0.3, 0.85, 0.35
	case render.ColorMagenta:
		return 0.75, 0.35, 0.8
	case render.ColorWhite:
		return 0.92, 0.92, 0.92
	default:
		return 0.7, 0.7, 0.7
	}
}

func (r *Raster) setColor(s render.Style) {
	r.dc.SetRGB(rgb(s.Color))
	width := 1.0
	if s.Bold {
		width = 2.0
	}
	r.dc.SetLineWidth(width)
}

func px(p geo.ScreenPoint) (float64, float64) {
	return p.X * cellWidth, p.Y * cellHeight
}

// Size returns the surface dimensions in view units
func (r *Raster) Size() (int, int) {
	return r.width, r.height
}

// DrawPolyline strokes an open point sequence
func (r *Raster) DrawPolyline(points []geo.ScreenPoint, style render.Style) {
	if len(points) < 2 {
		return
	}
	r.setColor(style)
	x, y := px(points[0])
	r.dc.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = px(p)
		r.dc.LineTo(x, y)
	}
	r.dc.Stroke()
}

// FillPolygon fills a closed ring
func (r *Raster) FillPolygon(ring []geo.ScreenPoint, style render.Style) {
	if len(ring) < 3 {
		return
	}
	r.setColor(style)
	x, y := px(ring[0])
	r.dc.MoveTo(x, y)
	for _, p := range ring[1:] {
		x, y = px(p)
		r.dc.LineTo(x, y)
	}
	r.dc.ClosePath()
	r.dc.Fill()
}

// DrawCircle strokes a circle outline
func (r *Raster) DrawCircle(center geo.ScreenPoint, radius float64, style render.Style) {
	r.setColor(style)
	x, y := px(center)
	r.dc.DrawCircle(x, y, radius*cellWidth)
	r.dc.Stroke()
}

// DrawMarker places a filled point symbol
func (r *Raster) DrawMarker(p geo.ScreenPoint, style render.Style) {
	r.setColor(style)
	x, y := px(p)
	r.dc.DrawCircle(x, y, cellWidth*0.45)
	r.dc.Fill()
}

// DrawText draws a text run with its top-left at p
func (r *Raster) DrawText(p geo.ScreenPoint, text string, style render.Style) {
	r.setColor(style)
	x, y := px(p)
	r.dc.DrawString(text, x, y+fontSize)
}

// MeasureText returns the text footprint in view units
func (r *Raster) MeasureText(text string) (float64, float64) {
	w, _ := r.dc.MeasureString(text)
	return w / cellWidth, 1
}

// SavePNG writes the raster to disk
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Snapshot renders the given renderer's datasets for one view state into
// a PNG file
func Snapshot(path string, m *render.MapRenderer, view geo.ViewState, assets []*track.Asset, selectedID string) error {
	raster, err := NewRaster(view.Width, view.Height)
	if err != nil {
		return err
	}

	m.Clone(raster, 0.2).Render(view, assets, selectedID)

	if err := raster.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
