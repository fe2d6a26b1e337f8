package geo

import (
	"math"
)

// PointInRing tests containment of p in a single ring using the even-odd
// ray-casting rule. Rings with fewer than 3 points never contain anything.
// Edges are treated half-open ((yi > y) != (yj > y)), so a point level
// with a vertex counts each incident edge at most once and the result is
// deterministic on boundaries.
func PointInRing(p LatLon, ring []LatLon) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		yi, xi := ring[i].Lat, ring[i].Lon
		yj, xj := ring[j].Lat, ring[j].Lon

		if (yi > p.Lat) != (yj > p.Lat) &&
			p.Lon < (xj-xi)*(p.Lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PartContains tests containment in one polygon part with even-odd parity
// across all of its rings: crossing into a hole ring flips the point back
// out, so enclaves are classified correctly.
func PartContains(p LatLon, part Part) bool {
	inside := false
	for _, ring := range part.Rings {
		if PointInRing(p, ring) {
			inside = !inside
		}
	}
	return inside
}

// FeatureContains reports whether any part of the feature contains p
func FeatureContains(p LatLon, f *Feature) bool {
	for _, part := range f.Parts {
		if PartContains(p, part) {
			return true
		}
	}
	return false
}

// FindContainingFeature returns the first feature in list order that
// contains p, or nil. Features are assumed not to overlap, so list order
// is an adequate tie-break.
func FindContainingFeature(p LatLon, features []*Feature) *Feature {
	for _, f := range features {
		if FeatureContains(p, f) {
			return f
		}
	}
	return nil
}

// DistancePointToSegment returns the Euclidean distance in degree space
// from p to the segment a-b: scalar projection clamped to [0,1], then
// point distance to the closest point. Degree-space distance is an
// approximation good enough for hover thresholds, not navigation.
// A degenerate segment (a == b) falls back to point distance.
func DistancePointToSegment(p, a, b LatLon) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}

	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	cx := a.Lon + t*dx
	cy := a.Lat + t*dy

	return math.Hypot(p.Lon-cx, p.Lat-cy)
}

// DistanceToPolyline returns the minimum segment distance from p to the
// polyline, or +Inf for a polyline with fewer than 2 points
func DistanceToPolyline(p LatLon, line *Polyline) float64 {
	if len(line.Points) < 2 {
		return math.Inf(1)
	}

	best := math.Inf(1)
	for i := 0; i < len(line.Points)-1; i++ {
		d := DistancePointToSegment(p, line.Points[i], line.Points[i+1])
		if d < best {
			best = d
		}
	}
	return best
}

// FindNearestPolyline returns the first polyline with a segment within
// threshold degrees of p, or nil. Callers scale threshold inversely with
// zoom so the screen-space hover tolerance stays visually constant.
func FindNearestPolyline(p LatLon, lines []*Polyline, threshold float64) *Polyline {
	for _, line := range lines {
		if DistanceToPolyline(p, line) <= threshold {
			return line
		}
	}
	return nil
}
