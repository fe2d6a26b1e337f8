package geo

// Bounds represents a geographic bounding box
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains checks if a point is within the bounds
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// ContainsPoint checks if a coordinate is within the bounds
func (b Bounds) ContainsPoint(p LatLon) bool {
	return b.Contains(p.Lat, p.Lon)
}

// IntersectsPolyline reports whether any point of the polyline falls
// inside the bounds. Good enough for culling; no segment clipping.
func (b Bounds) IntersectsPolyline(line *Polyline) bool {
	for _, p := range line.Points {
		if b.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// IntersectsFeature reports whether any ring point of any part falls
// inside the bounds
func (b Bounds) IntersectsFeature(f *Feature) bool {
	for _, part := range f.Parts {
		for _, ring := range part.Rings {
			for _, p := range ring {
				if b.ContainsPoint(p) {
					return true
				}
			}
		}
	}
	return false
}

// FilterMarkers returns the markers whose position lies inside the bounds
func (b Bounds) FilterMarkers(markers []*Marker) []*Marker {
	visible := make([]*Marker, 0, len(markers))
	for _, m := range markers {
		if b.ContainsPoint(m.Position) {
			visible = append(visible, m)
		}
	}
	return visible
}
