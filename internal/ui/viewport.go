package ui

import (
	"geowatch/internal/geo"
)

// Wheel zoom steps: multiplicative, so repeated zooming feels uniform
const (
	zoomInFactor  = 1.1
	zoomOutFactor = 0.9
)

type dragState int

const (
	stateIdle dragState = iota
	stateDragging
)

// ViewportController owns one view's ViewState and is the only code that
// mutates it. Handlers are synchronous: each runs to completion on the
// event loop before the next input event is processed.
type ViewportController struct {
	view    geo.ViewState
	minZoom float64
	maxZoom float64

	state  dragState
	anchor geo.ScreenPoint // drag start cursor position
	refPan geo.ScreenPoint // pan at drag start
}

// NewViewportController creates a controller for a viewport of the given
// size with zoom clamped to [minZoom, maxZoom]
func NewViewportController(width, height int, minZoom, maxZoom float64) *ViewportController {
	if minZoom <= 0 {
		minZoom = 1
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}

	v := geo.NewViewState(width, height)
	v.Zoom = clamp(v.Zoom, minZoom, maxZoom)

	return &ViewportController{
		view:    v,
		minZoom: minZoom,
		maxZoom: maxZoom,
	}
}

// View returns a snapshot of the current view state
func (c *ViewportController) View() geo.ViewState {
	return c.view
}

// Dragging reports whether a drag is in progress
func (c *ViewportController) Dragging() bool {
	return c.state == stateDragging
}

// Resize updates the viewport dimensions, re-clamping pan for the new size
func (c *ViewportController) Resize(width, height int) {
	c.view.Width = width
	c.view.Height = height
	c.clampPan()
}

// OnWheel applies one wheel step zooming toward the cursor: the geographic
// point under the cursor stays put. deltaY < 0 zooms in. The pan delta is
// solved algebraically from Project(g, v') == cursor.
func (c *ViewportController) OnWheel(deltaY float64, cursor geo.ScreenPoint) {
	factor := zoomOutFactor
	if deltaY < 0 {
		factor = zoomInFactor
	}
	c.zoomAt(c.view.Zoom*factor, cursor)
}

// ZoomIn applies one zoom-in step anchored at the viewport center
func (c *ViewportController) ZoomIn() {
	c.zoomAt(c.view.Zoom*zoomInFactor, c.center())
}

// ZoomOut applies one zoom-out step anchored at the viewport center
func (c *ViewportController) ZoomOut() {
	c.zoomAt(c.view.Zoom*zoomOutFactor, c.center())
}

func (c *ViewportController) center() geo.ScreenPoint {
	return geo.ScreenPoint{
		X: float64(c.view.Width) / 2,
		Y: float64(c.view.Height) / 2,
	}
}

// zoomAt sets the zoom and re-derives pan so that the geo point under
// anchor does not move on screen, then clamps
func (c *ViewportController) zoomAt(newZoom float64, anchor geo.ScreenPoint) {
	newZoom = clamp(newZoom, c.minZoom, c.maxZoom)
	if newZoom == c.view.Zoom {
		return
	}

	g := c.view.Unproject(anchor)

	w := float64(c.view.Width)
	h := float64(c.view.Height)
	cx := w / 2
	cy := h / 2
	baseX := w * (g.Lon + 180) / 360
	baseY := h * (90 - g.Lat) / 180

	c.view.Zoom = newZoom
	c.view.PanX = anchor.X - cx - (baseX-cx)*newZoom
	c.view.PanY = anchor.Y - cy - (baseY-cy)*newZoom

	c.clampPan()
}

// OnMouseDown begins a drag at the given cursor position
func (c *ViewportController) OnMouseDown(p geo.ScreenPoint) {
	c.state = stateDragging
	c.anchor = p
	c.refPan = geo.ScreenPoint{X: c.view.PanX, Y: c.view.PanY}
}

// OnMouseMove pans while dragging and reports whether a redraw is needed.
// When idle it changes nothing; hover detection is layered on top by the
// caller via the renderer's query methods.
func (c *ViewportController) OnMouseMove(p geo.ScreenPoint) bool {
	if c.state != stateDragging {
		return false
	}

	c.view.PanX = c.refPan.X + (p.X - c.anchor.X)
	c.view.PanY = c.refPan.Y + (p.Y - c.anchor.Y)
	c.clampPan()

	return true
}

// OnMouseUp ends a drag
func (c *ViewportController) OnMouseUp() {
	c.state = stateIdle
}

// Reset restores zoom 1 and centered pan unconditionally
func (c *ViewportController) Reset() {
	c.view.Zoom = clamp(1.0, c.minZoom, c.maxZoom)
	c.view.PanX = 0
	c.view.PanY = 0
}

// clampPan keeps the scaled map covering the viewport; at minimum zoom
// this forces pan back to the origin
func (c *ViewportController) clampPan() {
	maxX, maxY := c.view.MaxPan()
	c.view.PanX = clamp(c.view.PanX, -maxX, maxX)
	c.view.PanY = clamp(c.view.PanY, -maxY, maxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
