package geo

import (
	"math"
	"testing"
)

func squareRing() []LatLon {
	return []LatLon{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 10},
		{Lat: 10, Lon: 10},
		{Lat: 10, Lon: 0},
	}
}

func TestPointInRing(t *testing.T) {
	ring := squareRing()

	tests := []struct {
		name string
		p    LatLon
		want bool
	}{
		{"center", LatLon{Lat: 5, Lon: 5}, true},
		{"outside", LatLon{Lat: 15, Lon: 15}, false},
		{"outside west", LatLon{Lat: 5, Lon: -1}, false},
		{"near edge inside", LatLon{Lat: 9.999, Lon: 5}, true},
		// Half-open edge rule: the bottom-left vertex is not counted as
		// inside, the result on boundaries is deterministic
		{"on vertex", LatLon{Lat: 0, Lon: 0}, false},
	}

	for _, tt := range tests {
		if got := PointInRing(tt.p, ring); got != tt.want {
			t.Errorf("%s: PointInRing(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestPointInRingDegenerate(t *testing.T) {
	if PointInRing(LatLon{Lat: 1, Lon: 1}, nil) {
		t.Error("empty ring should contain nothing")
	}
	if PointInRing(LatLon{Lat: 1, Lon: 1}, []LatLon{{0, 0}, {2, 2}}) {
		t.Error("two-point ring should contain nothing")
	}
}

func TestPartContainsHonorsHoles(t *testing.T) {
	part := Part{
		Rings: [][]LatLon{
			squareRing(),
			// Hole covering the middle
			{{Lat: 4, Lon: 4}, {Lat: 4, Lon: 6}, {Lat: 6, Lon: 6}, {Lat: 6, Lon: 4}},
		},
	}

	if PartContains(LatLon{Lat: 5, Lon: 5}, part) {
		t.Error("point inside the hole should not be contained")
	}
	if !PartContains(LatLon{Lat: 2, Lon: 2}, part) {
		t.Error("point between outer ring and hole should be contained")
	}
}

func TestFindContainingFeature(t *testing.T) {
	west := &Feature{Name: "West", Parts: []Part{{Rings: [][]LatLon{squareRing()}}}}
	east := &Feature{
		Name: "East",
		Parts: []Part{
			{Rings: [][]LatLon{{
				{Lat: 0, Lon: 20}, {Lat: 0, Lon: 30}, {Lat: 10, Lon: 30}, {Lat: 10, Lon: 20},
			}}},
			// Disjoint second part
			{Rings: [][]LatLon{{
				{Lat: 40, Lon: 40}, {Lat: 40, Lon: 50}, {Lat: 50, Lon: 50}, {Lat: 50, Lon: 40},
			}}},
		},
	}
	features := []*Feature{west, east}

	if got := FindContainingFeature(LatLon{Lat: 5, Lon: 5}, features); got != west {
		t.Errorf("expected West, got %v", got)
	}
	if got := FindContainingFeature(LatLon{Lat: 45, Lon: 45}, features); got != east {
		t.Errorf("multi-part containment failed, got %v", got)
	}
	if got := FindContainingFeature(LatLon{Lat: -5, Lon: -5}, features); got != nil {
		t.Errorf("expected nil for open ocean, got %v", got)
	}
}

func TestDistancePointToSegment(t *testing.T) {
	a := LatLon{Lat: 0, Lon: 0}
	b := LatLon{Lat: 0, Lon: 10}

	tests := []struct {
		name string
		p    LatLon
		a, b LatLon
		want float64
	}{
		{"perpendicular", LatLon{Lat: 5, Lon: 5}, a, b, 5},
		{"clamped to start", LatLon{Lat: 0, Lon: -5}, a, b, 5},
		{"clamped to end", LatLon{Lat: 0, Lon: 14}, a, b, 4},
		{"on segment", LatLon{Lat: 0, Lon: 7}, a, b, 0},
		{"degenerate segment", LatLon{Lat: 7, Lon: 3}, LatLon{Lat: 3, Lon: 3}, LatLon{Lat: 3, Lon: 3}, 4},
	}

	for _, tt := range tests {
		got := DistancePointToSegment(tt.p, tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: distance = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestDistanceToPolyline(t *testing.T) {
	line := &Polyline{Points: []LatLon{
		{Lat: 0, Lon: 0}, {Lat: 0, Lon: 10}, {Lat: 10, Lon: 10},
	}}

	got := DistanceToPolyline(LatLon{Lat: 5, Lon: 11}, line)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("distance = %f, want 1 (second segment)", got)
	}

	if d := DistanceToPolyline(LatLon{Lat: 0, Lon: 0}, &Polyline{Points: []LatLon{{1, 1}}}); !math.IsInf(d, 1) {
		t.Errorf("single-point polyline distance = %f, want +Inf", d)
	}
}

func TestFindNearestPolyline(t *testing.T) {
	near := &Polyline{Name: "near", Points: []LatLon{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 10}}}
	far := &Polyline{Name: "far", Points: []LatLon{{Lat: 50, Lon: 0}, {Lat: 50, Lon: 10}}}
	lines := []*Polyline{far, near}

	if got := FindNearestPolyline(LatLon{Lat: 1, Lon: 5}, lines, 2); got != near {
		t.Errorf("expected near lane, got %v", got)
	}
	if got := FindNearestPolyline(LatLon{Lat: 20, Lon: 5}, lines, 2); got != nil {
		t.Errorf("expected nil outside threshold, got %v", got)
	}
}
