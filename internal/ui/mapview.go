package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"geowatch/internal/export"
	"geowatch/internal/geo"
	"geowatch/internal/render"
	"geowatch/internal/track"
)

var styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

// MapView displays the world map with overlays and assets and owns the
// zoom/pan interaction
type MapView struct {
	renderer *render.MapRenderer
	canvas   *render.Canvas
	viewport *ViewportController

	width  int
	height int

	hoverCountry *geo.Feature
	hoverLane    *geo.Polyline
}

// NewMapView creates a new map view
func NewMapView(width, height int, minZoom, maxZoom, hoverGain, labelPad float64) *MapView {
	canvas := render.NewCanvas(width, height)
	renderer := render.NewMapRenderer(canvas, labelPad)
	renderer.SetHoverGain(hoverGain)

	return &MapView{
		renderer: renderer,
		canvas:   canvas,
		viewport: NewViewportController(width, height, minZoom, maxZoom),
		width:    width,
		height:   height,
	}
}

// SetOverlays installs the datasets the map draws
func (m *MapView) SetOverlays(countries []*geo.Feature, coastlines, lanes []*geo.Polyline, markers []*geo.Marker) {
	m.renderer.SetCountries(countries)
	m.renderer.SetCoastlines(coastlines)
	m.renderer.SetLanes(lanes)
	m.renderer.SetMarkers(markers)
}

// Draw renders the map view to the screen
func (m *MapView) Draw(screen tcell.Screen, assets []*track.Asset, selectedID string) {
	m.canvas.Clear()

	m.renderer.Render(m.viewport.View(), assets, selectedID)

	m.drawStatusLine()

	m.canvas.Blit(screen, 0, 0)
}

// drawStatusLine writes the zoom level and hover target into the top row
func (m *MapView) drawStatusLine() {
	status := fmt.Sprintf(" zoom %.1fx ", m.viewport.View().Zoom)

	if m.hoverCountry != nil {
		status += "│ " + m.hoverCountry.Name + " "
	}
	if m.hoverLane != nil {
		status += fmt.Sprintf("│ %s: %s (risk %d) ", m.hoverLane.Kind, m.hoverLane.Name, m.hoverLane.Risk)
	}

	m.canvas.DrawTextCell(0, 0, truncate(status, m.width), styleStatus)
}

// HandleMouse routes a mouse event into the viewport controller and hover
// queries. Returns true when a redraw is needed.
func (m *MapView) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	cursor := geo.ScreenPoint{X: float64(x), Y: float64(y)}
	buttons := ev.Buttons()

	redraw := false

	if buttons&tcell.WheelUp != 0 {
		m.viewport.OnWheel(-1, cursor)
		redraw = true
	}
	if buttons&tcell.WheelDown != 0 {
		m.viewport.OnWheel(1, cursor)
		redraw = true
	}

	pressed := buttons&tcell.Button1 != 0
	if pressed && !m.viewport.Dragging() {
		m.viewport.OnMouseDown(cursor)
	} else if !pressed && m.viewport.Dragging() {
		m.viewport.OnMouseUp()
	}

	if m.viewport.OnMouseMove(cursor) {
		redraw = true
	}

	// Hover detection is layered on top of the idle controller: re-run the
	// hit tests against the current view on every pointer move
	if !m.viewport.Dragging() {
		view := m.viewport.View()
		country := m.renderer.CountryAt(cursor, view)
		lane := m.renderer.LaneAt(cursor, view)

		if country != m.hoverCountry || lane != m.hoverLane {
			m.hoverCountry = country
			m.hoverLane = lane
			redraw = true
		}
	}

	return redraw
}

// HoverCountry returns the boundary feature under the cursor, if any
func (m *MapView) HoverCountry() *geo.Feature {
	return m.hoverCountry
}

// HoverLane returns the lane or frontline under the cursor, if any
func (m *MapView) HoverLane() *geo.Polyline {
	return m.hoverLane
}

// ZoomIn zooms one step toward the viewport center
func (m *MapView) ZoomIn() {
	m.viewport.ZoomIn()
}

// ZoomOut zooms one step away from the viewport center
func (m *MapView) ZoomOut() {
	m.viewport.ZoomOut()
}

// ResetView restores the default zoom and pan
func (m *MapView) ResetView() {
	m.viewport.Reset()
}

// UpdateDimensions updates the view when the terminal is resized
func (m *MapView) UpdateDimensions(width, height int) {
	m.width = width
	m.height = height

	m.viewport.Resize(width, height)

	m.canvas = render.NewCanvas(width, height)
	m.renderer.SetSurface(m.canvas)
}

// Snapshot writes the current view to a PNG file
func (m *MapView) Snapshot(path string, assets []*track.Asset, selectedID string) error {
	return export.Snapshot(path, m.renderer, m.viewport.View(), assets, selectedID)
}
