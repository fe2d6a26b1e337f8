// Package data converts external datasets (GeoJSON boundaries, shapefile
// coastlines, intel feeds, curated overlay tables) into the typed records
// the map core consumes. All validation happens here; the core never sees
// raw provider shapes.
package data

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geowatch/internal/geo"
)

// LoadCountries reads a GeoJSON FeatureCollection of country boundaries
// and converts it to boundary features. Features without polygonal
// geometry are skipped.
func LoadCountries(path string) ([]*geo.Feature, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read countries file: %w", err)
	}
	return ParseCountries(raw)
}

// ParseCountries converts raw GeoJSON into boundary features
func ParseCountries(raw []byte) ([]*geo.Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse countries GeoJSON: %w", err)
	}

	features := make([]*geo.Feature, 0, len(fc.Features))
	for _, feat := range fc.Features {
		var parts []geo.Part

		switch g := feat.Geometry.(type) {
		case orb.Polygon:
			parts = append(parts, polygonToPart(g))
		case orb.MultiPolygon:
			for _, poly := range g {
				parts = append(parts, polygonToPart(poly))
			}
		default:
			continue
		}

		features = append(features, &geo.Feature{
			Name:  featureName(feat),
			ISO:   feat.Properties.MustString("ISO_A2", ""),
			Parts: parts,
		})
	}

	return features, nil
}

// LoadFrontlines reads a GeoJSON FeatureCollection of frontline segments
// (LineString/MultiLineString features) into polyline overlays
func LoadFrontlines(path string) ([]*geo.Polyline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frontline file: %w", err)
	}
	return ParseFrontlines(raw)
}

// ParseFrontlines converts raw GeoJSON into frontline polylines
func ParseFrontlines(raw []byte) ([]*geo.Polyline, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontline GeoJSON: %w", err)
	}

	lines := make([]*geo.Polyline, 0, len(fc.Features))
	for _, feat := range fc.Features {
		name := featureName(feat)
		risk := int(feat.Properties.MustFloat64("risk", 3))

		switch g := feat.Geometry.(type) {
		case orb.LineString:
			lines = append(lines, frontline(name, risk, g))
		case orb.MultiLineString:
			for _, ls := range g {
				lines = append(lines, frontline(name, risk, ls))
			}
		}
	}

	return lines, nil
}

func frontline(name string, risk int, ls orb.LineString) *geo.Polyline {
	return &geo.Polyline{
		Kind:   geo.LineFrontline,
		Name:   name,
		Risk:   risk,
		Points: lineToPoints(ls),
	}
}

// polygonToPart converts an orb polygon: ring 0 outer, the rest holes.
// GeoJSON rings repeat their first point at the end; our ring semantics
// close implicitly, so the duplicate closing point is dropped.
func polygonToPart(poly orb.Polygon) geo.Part {
	rings := make([][]geo.LatLon, 0, len(poly))
	for _, ring := range poly {
		pts := make([]geo.LatLon, 0, len(ring))
		for _, p := range ring {
			pts = append(pts, geo.LatLon{Lat: p.Lat(), Lon: p.Lon()})
		}
		if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		rings = append(rings, pts)
	}
	return geo.Part{Rings: rings}
}

func lineToPoints(ls orb.LineString) []geo.LatLon {
	pts := make([]geo.LatLon, 0, len(ls))
	for _, p := range ls {
		pts = append(pts, geo.LatLon{Lat: p.Lat(), Lon: p.Lon()})
	}
	return pts
}

// featureName pulls a display name out of the property spellings the
// common boundary datasets use
func featureName(feat *geojson.Feature) string {
	for _, key := range []string{"ADMIN", "name", "NAME", "NAME_EN"} {
		if v := feat.Properties.MustString(key, ""); v != "" {
			return v
		}
	}
	return ""
}
