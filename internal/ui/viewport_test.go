package ui

import (
	"math"
	"testing"

	"geowatch/internal/geo"
)

func checkPanClamped(t *testing.T, c *ViewportController) {
	t.Helper()
	v := c.View()
	maxX, maxY := v.MaxPan()
	if math.Abs(v.PanX) > maxX+1e-9 || math.Abs(v.PanY) > maxY+1e-9 {
		t.Errorf("pan (%f, %f) exceeds limits (%f, %f) at zoom %f",
			v.PanX, v.PanY, maxX, maxY, v.Zoom)
	}
}

func TestZoomClampedToRange(t *testing.T) {
	c := NewViewportController(200, 100, 1, 4)

	for i := 0; i < 50; i++ {
		c.ZoomIn()
	}
	if z := c.View().Zoom; z != 4 {
		t.Errorf("zoom = %f, want clamped to 4", z)
	}

	for i := 0; i < 50; i++ {
		c.ZoomOut()
	}
	if z := c.View().Zoom; z != 1 {
		t.Errorf("zoom = %f, want clamped to 1", z)
	}
}

func TestPanForcedToZeroAtMinZoom(t *testing.T) {
	c := NewViewportController(200, 100, 1, 8)

	c.ZoomIn()
	c.ZoomIn()
	c.OnMouseDown(geo.ScreenPoint{X: 100, Y: 50})
	c.OnMouseMove(geo.ScreenPoint{X: 150, Y: 80})
	c.OnMouseUp()

	for i := 0; i < 50; i++ {
		c.ZoomOut()
	}

	v := c.View()
	if v.PanX != 0 || v.PanY != 0 {
		t.Errorf("pan = (%f, %f), want (0, 0) at minimum zoom", v.PanX, v.PanY)
	}
}

func TestPanClampInvariantUnderInputSequence(t *testing.T) {
	c := NewViewportController(160, 50, 1, 16)

	cursor := geo.ScreenPoint{X: 30, Y: 10}
	for i := 0; i < 12; i++ {
		c.OnWheel(-1, cursor)
		checkPanClamped(t, c)
	}

	c.OnMouseDown(geo.ScreenPoint{X: 80, Y: 25})
	for i := 0; i < 30; i++ {
		// Sweep far past any legal pan
		c.OnMouseMove(geo.ScreenPoint{X: float64(80 + i*100), Y: float64(25 + i*40)})
		checkPanClamped(t, c)
	}
	c.OnMouseUp()

	for i := 0; i < 12; i++ {
		c.OnWheel(1, geo.ScreenPoint{X: 150, Y: 45})
		checkPanClamped(t, c)
	}
}

func TestWheelZoomAnchorsCursor(t *testing.T) {
	c := NewViewportController(360, 180, 1, 32)

	// Move somewhere interesting first
	c.OnWheel(-1, geo.ScreenPoint{X: 250, Y: 40})
	c.OnWheel(-1, geo.ScreenPoint{X: 250, Y: 40})

	cursor := geo.ScreenPoint{X: 210, Y: 130}
	before := c.View()
	g := before.Unproject(cursor)

	c.OnWheel(-1, cursor)

	after := c.View()
	got := after.Project(g)
	if math.Abs(got.X-cursor.X) > 1e-6 || math.Abs(got.Y-cursor.Y) > 1e-6 {
		t.Errorf("point under cursor moved: %v -> (%f, %f)", cursor, got.X, got.Y)
	}
}

func TestWheelDirection(t *testing.T) {
	c := NewViewportController(100, 50, 1, 10)
	mid := geo.ScreenPoint{X: 50, Y: 25}

	c.OnWheel(-3, mid)
	if z := c.View().Zoom; math.Abs(z-1.1) > 1e-9 {
		t.Errorf("zoom after wheel-in = %f, want 1.1", z)
	}

	// 1.1 * 0.9 = 0.99, clamped back up to minZoom
	c.OnWheel(5, mid)
	if z := c.View().Zoom; z != 1 {
		t.Errorf("zoom after wheel-out = %f, want clamp to 1", z)
	}
}

func TestDragStateMachine(t *testing.T) {
	c := NewViewportController(100, 50, 1, 10)
	c.ZoomIn()
	c.ZoomIn()
	c.ZoomIn()

	if c.Dragging() {
		t.Fatal("controller should start idle")
	}

	// Moves while idle do nothing and request no redraw
	if c.OnMouseMove(geo.ScreenPoint{X: 10, Y: 10}) {
		t.Error("idle mouse move should not request a redraw")
	}

	start := c.View()
	c.OnMouseDown(geo.ScreenPoint{X: 50, Y: 25})
	if !c.Dragging() {
		t.Fatal("mouse down should enter Dragging")
	}

	if !c.OnMouseMove(geo.ScreenPoint{X: 53, Y: 27}) {
		t.Error("dragging mouse move should request a redraw")
	}

	v := c.View()
	if v.PanX != start.PanX+3 || v.PanY != start.PanY+2 {
		t.Errorf("pan delta = (%f, %f), want (+3, +2)",
			v.PanX-start.PanX, v.PanY-start.PanY)
	}

	c.OnMouseUp()
	if c.Dragging() {
		t.Error("mouse up should return to Idle")
	}
	if c.OnMouseMove(geo.ScreenPoint{X: 90, Y: 40}) {
		t.Error("moves after mouse up should be ignored")
	}
}

func TestReset(t *testing.T) {
	c := NewViewportController(100, 50, 1, 10)
	c.OnWheel(-1, geo.ScreenPoint{X: 10, Y: 10})
	c.OnWheel(-1, geo.ScreenPoint{X: 10, Y: 10})
	c.OnMouseDown(geo.ScreenPoint{X: 50, Y: 25})
	c.OnMouseMove(geo.ScreenPoint{X: 60, Y: 30})
	c.OnMouseUp()

	c.Reset()

	v := c.View()
	if v.Zoom != 1 || v.PanX != 0 || v.PanY != 0 {
		t.Errorf("after Reset: zoom %f pan (%f, %f), want 1 and (0, 0)", v.Zoom, v.PanX, v.PanY)
	}
}
