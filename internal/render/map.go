package render

import (
	"sort"

	"geowatch/internal/debug"
	"geowatch/internal/geo"
	"geowatch/internal/track"
)

// DefaultHoverGain is the numerator of the lane hover threshold; the
// effective threshold in degrees is gain/zoom so the on-screen tolerance
// stays visually constant while zooming
const DefaultHoverGain = 1.5

// DefaultOverscan is the fraction of the viewport added on every side
// before culling, so entities straddling the edge still draw
const DefaultOverscan = 0.15

// forceLabelImportance marks must-show markers: at or above this
// importance a label that found no free slot is placed anyway
const forceLabelImportance = 90

// MapRenderer composes projection, culling, hit testing, and label layout
// into one render pass per frame and issues draw calls to a Surface
type MapRenderer struct {
	surface Surface
	labels  *LabelLayout
	pad     float64

	countries  []*geo.Feature
	coastlines []*geo.Polyline
	lanes      []*geo.Polyline // hover-queryable: shipping lanes, frontlines
	markers    []*geo.Marker   // kept sorted by label priority

	hoverGain float64
	overscan  float64
}

// NewMapRenderer creates a map renderer drawing onto the given surface.
// pad is the label collision padding in viewport units.
func NewMapRenderer(surface Surface, pad float64) *MapRenderer {
	return &MapRenderer{
		surface:   surface,
		labels:    NewLabelLayout(pad),
		pad:       pad,
		hoverGain: DefaultHoverGain,
		overscan:  DefaultOverscan,
	}
}

// SetSurface swaps the drawing backend, e.g. after a terminal resize
func (m *MapRenderer) SetSurface(surface Surface) {
	m.surface = surface
}

// Clone returns a renderer sharing this renderer's datasets but drawing
// to a different surface, e.g. for snapshot export
func (m *MapRenderer) Clone(surface Surface, pad float64) *MapRenderer {
	c := NewMapRenderer(surface, pad)
	c.countries = m.countries
	c.coastlines = m.coastlines
	c.lanes = m.lanes
	c.markers = m.markers
	c.hoverGain = m.hoverGain
	c.overscan = m.overscan
	return c
}

// SetHoverGain overrides the lane hover threshold numerator
func (m *MapRenderer) SetHoverGain(gain float64) {
	if gain > 0 {
		m.hoverGain = gain
	}
}

// SetCountries installs the boundary features used for drawing and for
// CountryAt hit testing
func (m *MapRenderer) SetCountries(features []*geo.Feature) {
	m.countries = features
}

// SetCoastlines installs coastline polylines (drawn, never hover targets)
func (m *MapRenderer) SetCoastlines(lines []*geo.Polyline) {
	m.coastlines = lines
}

// SetLanes installs the hover-queryable polylines: shipping lanes and
// frontlines
func (m *MapRenderer) SetLanes(lines []*geo.Polyline) {
	m.lanes = lines
}

// SetMarkers installs point overlays. Markers are sorted once by
// descending importance then name, which fixes the label placement order:
// high-importance entities claim label space first and two renders of the
// same data always produce the same layout.
func (m *MapRenderer) SetMarkers(markers []*geo.Marker) {
	sorted := make([]*geo.Marker, len(markers))
	copy(sorted, markers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Importance != sorted[j].Importance {
			return sorted[i].Importance > sorted[j].Importance
		}
		return sorted[i].Name < sorted[j].Name
	})
	m.markers = sorted
}

// Render draws one complete frame: features, polylines, markers, assets.
// Within the pass the order is fixed: project, cull, draw geometry, place
// labels; label placement needs the final marker screen positions.
func (m *MapRenderer) Render(view geo.ViewState, assets []*track.Asset, selectedID string) {
	m.labels.Reset()
	bounds := view.VisibleBounds(m.overscan)

	m.renderCountries(view, bounds)
	m.renderPolylines(view, bounds, m.coastlines)
	m.renderPolylines(view, bounds, m.lanes)
	m.renderMarkers(view, bounds)
	m.renderAssets(view, bounds, assets, selectedID)
}

// renderCountries strokes every visible boundary ring
func (m *MapRenderer) renderCountries(view geo.ViewState, bounds geo.Bounds) {
	for _, f := range m.countries {
		if !bounds.IntersectsFeature(f) {
			continue
		}
		for _, part := range f.Parts {
			for _, ring := range part.Rings {
				if len(ring) < 3 {
					continue // degenerate ring, nothing to stroke
				}
				m.surface.DrawPolyline(m.projectRing(view, ring), StyleCountry)
			}
		}
	}
}

// projectRing unwraps a ring across the antimeridian, projects it, and
// closes it back to the first point
func (m *MapRenderer) projectRing(view geo.ViewState, ring []geo.LatLon) []geo.ScreenPoint {
	unwrapped := geo.UnwrapRing(ring)
	pts := make([]geo.ScreenPoint, 0, len(unwrapped)+1)
	for _, p := range unwrapped {
		pts = append(pts, view.Project(p))
	}
	pts = append(pts, pts[0])
	return pts
}

// renderPolylines strokes every polyline with a visible point
func (m *MapRenderer) renderPolylines(view geo.ViewState, bounds geo.Bounds, lines []*geo.Polyline) {
	for _, line := range lines {
		if len(line.Points) < 2 || !bounds.IntersectsPolyline(line) {
			continue
		}

		unwrapped := geo.UnwrapRing(line.Points)
		pts := make([]geo.ScreenPoint, 0, len(unwrapped))
		for _, p := range unwrapped {
			pts = append(pts, view.Project(p))
		}
		m.surface.DrawPolyline(pts, StyleForPolyline(line))
	}
}

// renderMarkers draws visible point overlays and places their labels in
// priority order
func (m *MapRenderer) renderMarkers(view geo.ViewState, bounds geo.Bounds) {
	visible := bounds.FilterMarkers(m.markers)
	if debug.Enabled() {
		debug.Log("rendering %d markers (of %d total)", len(visible), len(m.markers))
	}

	for _, marker := range visible {
		pos := view.Project(marker.Position)
		m.surface.DrawMarker(pos, StyleForMarker(marker))

		if marker.Name == "" {
			continue
		}
		m.placeAndDrawLabel(pos, marker.Name, marker.Importance >= forceLabelImportance)
	}
}

// renderAssets draws moving assets, their trails, and their labels
func (m *MapRenderer) renderAssets(view geo.ViewState, bounds geo.Bounds, assets []*track.Asset, selectedID string) {
	for _, a := range assets {
		if !a.HasPosition() || !bounds.ContainsPoint(*a.Position) {
			continue
		}

		if len(a.Trail) > 1 {
			trail := make([]geo.ScreenPoint, 0, len(a.Trail))
			for _, p := range geo.UnwrapRing(a.Trail) {
				trail = append(trail, view.Project(p))
			}
			m.surface.DrawPolyline(trail, StyleTrail)
		}

		pos := view.Project(*a.Position)
		m.surface.DrawMarker(pos, StyleForAsset(a, a.ID == selectedID))
		m.placeAndDrawLabel(pos, a.Label(), a.ID == selectedID)
	}
}

// placeAndDrawLabel runs the layout engine for one label and draws it when
// a slot is found. Force-placement is the renderer's fallback policy for
// must-show entities, not the engine's.
func (m *MapRenderer) placeAndDrawLabel(pos geo.ScreenPoint, text string, mustShow bool) {
	w, h := m.surface.MeasureText(text)
	size := TextSize{Width: w, Height: h}

	box := m.labels.Place(pos, size, CandidateOffsets(w))
	if box == nil {
		if !mustShow {
			return
		}
		forced := m.labels.Force(pos, size, Offset{DX: 2, DY: 0})
		box = &forced
	}

	m.surface.DrawText(geo.ScreenPoint{X: box.X + m.pad, Y: box.Y + m.pad}, text, StyleLabel)
}

// CountryAt returns the boundary feature under the cursor, or nil.
// Re-run on every pointer move by the UI layer.
func (m *MapRenderer) CountryAt(cursor geo.ScreenPoint, view geo.ViewState) *geo.Feature {
	return geo.FindContainingFeature(view.Unproject(cursor), m.countries)
}

// LaneAt returns the shipping lane or frontline within hover range of the
// cursor, or nil
func (m *MapRenderer) LaneAt(cursor geo.ScreenPoint, view geo.ViewState) *geo.Polyline {
	threshold := m.hoverGain / view.Zoom
	return geo.FindNearestPolyline(view.Unproject(cursor), m.lanes, threshold)
}
