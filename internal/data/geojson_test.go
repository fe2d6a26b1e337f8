package data

import (
	"testing"

	"geowatch/internal/geo"
)

const countriesFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ADMIN": "Boxland", "ISO_A2": "BX"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [
          [[0,0],[10,0],[10,10],[0,10],[0,0]],
          [[4,4],[6,4],[6,6],[4,6],[4,4]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Twin Isles"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[20,0],[25,0],[25,5],[20,5],[20,0]]],
          [[[30,0],[35,0],[35,5],[30,5],[30,0]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Nowhere"},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestParseCountries(t *testing.T) {
	features, err := ParseCountries([]byte(countriesFixture))
	if err != nil {
		t.Fatalf("ParseCountries: %v", err)
	}

	// The point feature is dropped
	if len(features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(features))
	}

	box := features[0]
	if box.Name != "Boxland" || box.ISO != "BX" {
		t.Errorf("properties not read: %q %q", box.Name, box.ISO)
	}
	if len(box.Parts) != 1 || len(box.Parts[0].Rings) != 2 {
		t.Fatalf("expected 1 part with outer+hole, got %+v", box.Parts)
	}

	// GeoJSON closing points are stripped
	outer := box.Parts[0].Rings[0]
	if len(outer) != 4 {
		t.Errorf("outer ring has %d points, want 4 after dropping the closing point", len(outer))
	}

	// Holes survive into containment testing
	if geo.FeatureContains(geo.LatLon{Lat: 5, Lon: 5}, box) {
		t.Error("point in the hole should not be contained")
	}
	if !geo.FeatureContains(geo.LatLon{Lat: 2, Lon: 2}, box) {
		t.Error("point in the solid area should be contained")
	}

	isles := features[1]
	if len(isles.Parts) != 2 {
		t.Errorf("multipolygon should yield 2 parts, got %d", len(isles.Parts))
	}
	if !geo.FeatureContains(geo.LatLon{Lat: 2, Lon: 32}, isles) {
		t.Error("second part of multipolygon not contained")
	}
}

const frontlineFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Eastern Front", "risk": 3},
      "geometry": {
        "type": "MultiLineString",
        "coordinates": [
          [[37.5,48.0],[37.8,48.4],[38.1,48.9]],
          [[36.2,47.1],[36.6,47.4]]
        ]
      }
    }
  ]
}`

func TestParseFrontlines(t *testing.T) {
	lines, err := ParseFrontlines([]byte(frontlineFixture))
	if err != nil {
		t.Fatalf("ParseFrontlines: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Kind != geo.LineFrontline {
			t.Errorf("kind = %v, want Frontline", l.Kind)
		}
		if l.Name != "Eastern Front" || l.Risk != 3 {
			t.Errorf("metadata lost: %q risk %d", l.Name, l.Risk)
		}
	}

	// GeoJSON order is lon,lat
	first := lines[0].Points[0]
	if first.Lat != 48.0 || first.Lon != 37.5 {
		t.Errorf("coordinate order wrong: %+v", first)
	}
}

func TestParseCountriesRejectsGarbage(t *testing.T) {
	if _, err := ParseCountries([]byte("{not json")); err == nil {
		t.Error("expected error for malformed GeoJSON")
	}
}
