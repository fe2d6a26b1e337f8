package track

import (
	"time"

	"geowatch/internal/geo"
)

// Kind classifies a moving asset
type Kind int

const (
	KindAircraft Kind = iota
	KindVessel
	KindSubmarine
)

// String returns a string representation of the asset kind
func (k Kind) String() string {
	switch k {
	case KindAircraft:
		return "Aircraft"
	case KindVessel:
		return "Vessel"
	case KindSubmarine:
		return "Submarine"
	default:
		return "Unknown"
	}
}

// Asset represents one tracked moving entity: an aircraft, surface vessel,
// or submarine
type Asset struct {
	ID       string      // Stable identifier (tail number, hull number)
	Name     string      // Display name, may be empty
	Kind     Kind        //
	Position *geo.LatLon // nil until a position report arrives
	Heading  int         // Degrees 0-359
	SpeedKts int         // Ground/surface speed in knots
	Trail    []geo.LatLon // Recent positions, oldest first
	LastSeen time.Time   // Last report timestamp
}

// HasPosition returns true if the asset has reported valid coordinates
func (a *Asset) HasPosition() bool {
	return a.Position != nil
}

// DirectionGlyph returns an 8-direction symbol for the asset's heading.
// N: ^, NE: ┐, E: >, SE: ┘, S: v, SW: └, W: <, NW: ┌
func (a *Asset) DirectionGlyph() rune {
	direction := a.Heading % 360
	if direction < 0 {
		direction += 360
	}

	switch {
	case direction >= 338 || direction < 23:
		return '^'
	case direction < 68:
		return '┐'
	case direction < 113:
		return '>'
	case direction < 158:
		return '┘'
	case direction < 203:
		return 'v'
	case direction < 248:
		return '└'
	case direction < 293:
		return '<'
	default:
		return '┌'
	}
}

// Label returns the text shown next to the asset on the map
func (a *Asset) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
