package render

import (
	"geowatch/internal/geo"
)

// Box is a screen-space axis-aligned label rectangle
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Intersects reports AABB overlap between two boxes
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.Width && b.X+b.Width > o.X &&
		b.Y < o.Y+o.Height && b.Y+b.Height > o.Y
}

// Offset is a candidate label displacement from its marker, in viewport units
type Offset struct {
	DX float64
	DY float64
}

// TextSize is a measured label extent, as reported by the drawing surface
type TextSize struct {
	Width  float64
	Height float64
}

// PlaceLabel tries each candidate offset in order and returns the first
// resulting box that does not collide with any existing box, or nil when
// every candidate collides. The returned box is padded by pad on all
// sides. PlaceLabel never force-places; fallback policy (force, skip)
// belongs to the caller.
//
// The result is greedy and order-dependent: earlier-placed boxes constrain
// later ones, so callers must feed markers in a stable priority order to
// get deterministic layouts.
func PlaceLabel(markerPos geo.ScreenPoint, size TextSize, offsets []Offset, existing []Box, pad float64) *Box {
	for _, off := range offsets {
		candidate := Box{
			X:      markerPos.X + off.DX - pad,
			Y:      markerPos.Y + off.DY - size.Height,
			Width:  size.Width + 2*pad,
			Height: size.Height + 2*pad,
		}

		collides := false
		for _, b := range existing {
			if candidate.Intersects(b) {
				collides = true
				break
			}
		}

		if !collides {
			return &candidate
		}
	}

	return nil
}

// LabelLayout accumulates the boxes placed within one frame so labels from
// different entity passes (cities, zones, assets) cannot overlap each
// other. Create or Reset it at the start of a frame; it is never carried
// across frames.
type LabelLayout struct {
	pad   float64
	boxes []Box
}

// NewLabelLayout creates a per-frame layout with the given label padding
func NewLabelLayout(pad float64) *LabelLayout {
	return &LabelLayout{pad: pad}
}

// Reset drops all boxes, starting a new frame
func (l *LabelLayout) Reset() {
	l.boxes = l.boxes[:0]
}

// Boxes returns the boxes placed so far this frame
func (l *LabelLayout) Boxes() []Box {
	return l.boxes
}

// Place runs PlaceLabel against the frame's boxes and records the result
// on success
func (l *LabelLayout) Place(markerPos geo.ScreenPoint, size TextSize, offsets []Offset) *Box {
	box := PlaceLabel(markerPos, size, offsets, l.boxes, l.pad)
	if box != nil {
		l.boxes = append(l.boxes, *box)
	}
	return box
}

// Force records a box without collision checking. Used by callers whose
// fallback policy is to show an entity's label regardless of overlap.
func (l *LabelLayout) Force(markerPos geo.ScreenPoint, size TextSize, off Offset) Box {
	box := Box{
		X:      markerPos.X + off.DX - l.pad,
		Y:      markerPos.Y + off.DY - size.Height,
		Width:  size.Width + 2*l.pad,
		Height: size.Height + 2*l.pad,
	}
	l.boxes = append(l.boxes, box)
	return box
}

// CandidateOffsets returns the standard candidate order for a label of the
// given width: right of the marker, then upper-right, left, upper-left,
// lower-right
func CandidateOffsets(textWidth float64) []Offset {
	return []Offset{
		{DX: 2, DY: 0},
		{DX: 2, DY: -1},
		{DX: -textWidth - 2, DY: 0},
		{DX: -textWidth - 2, DY: -1},
		{DX: 2, DY: 1},
	}
}
