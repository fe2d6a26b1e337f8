package render

import (
	"testing"

	"geowatch/internal/geo"
)

func TestBoxIntersects(t *testing.T) {
	a := Box{X: 0, Y: 0, Width: 10, Height: 2}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlapping", Box{X: 5, Y: 1, Width: 10, Height: 2}, true},
		{"contained", Box{X: 2, Y: 0.5, Width: 2, Height: 1}, true},
		{"disjoint right", Box{X: 20, Y: 0, Width: 5, Height: 2}, false},
		{"touching edge", Box{X: 10, Y: 0, Width: 5, Height: 2}, false},
		{"disjoint below", Box{X: 0, Y: 5, Width: 10, Height: 2}, false},
	}

	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		// Symmetric
		if got := tt.b.Intersects(a); got != tt.want {
			t.Errorf("%s: reverse Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlaceLabelFirstCandidate(t *testing.T) {
	pos := geo.ScreenPoint{X: 10, Y: 5}
	size := TextSize{Width: 6, Height: 1}

	box := PlaceLabel(pos, size, CandidateOffsets(size.Width), nil, 0)
	if box == nil {
		t.Fatal("placement with no existing boxes should succeed")
	}
	if box.X != 12 || box.Y != 4 || box.Width != 6 || box.Height != 1 {
		t.Errorf("box = %+v, want {12 4 6 1}", *box)
	}
}

func TestPlaceLabelAvoidsCollision(t *testing.T) {
	pos := geo.ScreenPoint{X: 10, Y: 5}
	size := TextSize{Width: 6, Height: 1}

	// First marker's label occupies the right-hand slot
	first := PlaceLabel(pos, size, CandidateOffsets(size.Width), nil, 0)
	if first == nil {
		t.Fatal("first placement failed")
	}

	// A second marker one cell away must pick a different candidate and
	// the two boxes must not intersect
	second := PlaceLabel(geo.ScreenPoint{X: 11, Y: 5}, size,
		CandidateOffsets(size.Width), []Box{*first}, 0)
	if second == nil {
		t.Fatal("second placement should fall through to another candidate")
	}
	if second.Intersects(*first) {
		t.Errorf("placed boxes overlap: %+v vs %+v", *second, *first)
	}
}

func TestPlaceLabelReturnsNilWhenFull(t *testing.T) {
	pos := geo.ScreenPoint{X: 10, Y: 5}
	size := TextSize{Width: 4, Height: 1}

	// One huge box covering every candidate slot
	wall := Box{X: -100, Y: -100, Width: 300, Height: 300}

	if got := PlaceLabel(pos, size, CandidateOffsets(size.Width), []Box{wall}, 0); got != nil {
		t.Errorf("expected nil when every candidate collides, got %+v", *got)
	}
}

func TestLabelLayoutDeterminism(t *testing.T) {
	markers := []geo.ScreenPoint{
		{X: 10, Y: 5}, {X: 12, Y: 5}, {X: 14, Y: 5}, {X: 40, Y: 9},
	}
	size := TextSize{Width: 8, Height: 1}

	run := func() []Box {
		layout := NewLabelLayout(0)
		out := make([]Box, 0, len(markers))
		for _, m := range markers {
			if b := layout.Place(m, size, CandidateOffsets(size.Width)); b != nil {
				out = append(out, *b)
			}
		}
		return out
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("runs placed %d vs %d labels", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("box %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}

	// No pair of placed boxes may overlap
	for i := range first {
		for j := i + 1; j < len(first); j++ {
			if first[i].Intersects(first[j]) {
				t.Errorf("boxes %d and %d overlap: %+v vs %+v", i, j, first[i], first[j])
			}
		}
	}
}

func TestLabelLayoutReset(t *testing.T) {
	layout := NewLabelLayout(0)
	size := TextSize{Width: 4, Height: 1}

	layout.Place(geo.ScreenPoint{X: 5, Y: 5}, size, CandidateOffsets(size.Width))
	if len(layout.Boxes()) != 1 {
		t.Fatalf("expected 1 box, got %d", len(layout.Boxes()))
	}

	layout.Reset()
	if len(layout.Boxes()) != 0 {
		t.Errorf("expected empty layout after Reset, got %d boxes", len(layout.Boxes()))
	}
}

func TestForceAlwaysRecords(t *testing.T) {
	layout := NewLabelLayout(0)
	size := TextSize{Width: 4, Height: 1}
	pos := geo.ScreenPoint{X: 5, Y: 5}

	a := layout.Force(pos, size, Offset{DX: 2})
	b := layout.Force(pos, size, Offset{DX: 2})
	if !a.Intersects(b) {
		t.Error("identical forced boxes should overlap, Force must not dodge")
	}
	if len(layout.Boxes()) != 2 {
		t.Errorf("expected 2 recorded boxes, got %d", len(layout.Boxes()))
	}
}
