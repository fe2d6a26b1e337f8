package geo

// ScreenPoint is a viewport pixel/cell coordinate, (0,0) at top-left
type ScreenPoint struct {
	X float64
	Y float64
}

// ViewState holds the zoom/pan state of one map view.
// It is a plain value: Project and Unproject are pure functions of it, so
// screen→geo hit testing is the exact inverse of geo→screen drawing.
// Only the ViewportController mutates a view's ViewState.
type ViewState struct {
	Zoom   float64
	PanX   float64
	PanY   float64
	Width  int
	Height int
}

// NewViewState creates an unzoomed, centered view for the given viewport size
func NewViewState(width, height int) ViewState {
	return ViewState{
		Zoom:   1.0,
		Width:  width,
		Height: height,
	}
}

// Project converts a geographic coordinate to viewport coordinates.
// Base mapping is equirectangular across the full world extent; the base
// position is then scaled about the viewport center by Zoom and shifted
// by the pan offsets.
func (v ViewState) Project(p LatLon) ScreenPoint {
	w := float64(v.Width)
	h := float64(v.Height)

	baseX := w * (p.Lon + 180) / 360
	baseY := h * (90 - p.Lat) / 180

	cx := w / 2
	cy := h / 2

	return ScreenPoint{
		X: cx + (baseX-cx)*v.Zoom + v.PanX,
		Y: cy + (baseY-cy)*v.Zoom + v.PanY,
	}
}

// Unproject converts viewport coordinates back to a geographic coordinate.
// Algebraic inverse of Project for the same ViewState.
func (v ViewState) Unproject(s ScreenPoint) LatLon {
	w := float64(v.Width)
	h := float64(v.Height)

	cx := w / 2
	cy := h / 2

	baseX := cx + (s.X-v.PanX-cx)/v.Zoom
	baseY := cy + (s.Y-v.PanY-cy)/v.Zoom

	return LatLon{
		Lat: 90 - baseY*180/h,
		Lon: baseX*360/w - 180,
	}
}

// MaxPan returns the largest pan offsets that keep the scaled map covering
// the viewport. At Zoom 1 both are zero.
func (v ViewState) MaxPan() (maxX, maxY float64) {
	w := float64(v.Width)
	h := float64(v.Height)
	return (w*v.Zoom - w) / 2, (h*v.Zoom - h) / 2
}

// VisibleBounds returns the geographic bounds covered by the viewport,
// expanded on every side by overscan (a fraction of the viewport size).
// Used for cheap culling before projecting an entity.
func (v ViewState) VisibleBounds(overscan float64) Bounds {
	mx := float64(v.Width) * overscan
	my := float64(v.Height) * overscan

	tl := v.Unproject(ScreenPoint{X: -mx, Y: -my})
	br := v.Unproject(ScreenPoint{X: float64(v.Width) + mx, Y: float64(v.Height) + my})

	// Screen y grows downward, so the top-left corner holds the max latitude
	return Bounds{
		MinLat: br.Lat,
		MaxLat: tl.Lat,
		MinLon: tl.Lon,
		MaxLon: br.Lon,
	}
}

// UnwrapRing prepares a ring or polyline for projection across the
// antimeridian. Whenever consecutive points jump more than 180° in
// longitude the later points are shifted by ∓360°, carrying the running
// shift across the rest of the sequence, so the projected line stays
// contiguous instead of wrapping across the whole map. The input is not
// modified; the adjustment is visual-only and the returned longitudes may
// leave [-180,180].
func UnwrapRing(points []LatLon) []LatLon {
	if len(points) < 2 {
		return points
	}

	out := make([]LatLon, len(points))
	out[0] = points[0]

	offset := 0.0
	for i := 1; i < len(points); i++ {
		delta := points[i].Lon - points[i-1].Lon
		if delta > 180 {
			offset -= 360
		} else if delta < -180 {
			offset += 360
		}
		out[i] = LatLon{Lat: points[i].Lat, Lon: points[i].Lon + offset}
	}

	return out
}
