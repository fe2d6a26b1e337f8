package geo

// LatLon represents a geographic coordinate in decimal degrees
type LatLon struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinate lies in the usual lat/lon ranges
func (p LatLon) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Part is one polygon of a (possibly multi-part) feature.
// Rings[0] is the outer ring; any further rings are holes.
// Ring semantics: the last point implicitly connects back to the first.
type Part struct {
	Rings [][]LatLon
}

// Feature represents a named boundary feature (country, territory, zone)
// made of one or more disjoint polygon parts
type Feature struct {
	Name  string
	ISO   string // ISO A2 code when the data source provides one
	Parts []Part
}

// PolylineKind classifies open polyline overlays
type PolylineKind int

const (
	LineShippingLane PolylineKind = iota
	LineFrontline
	LineCoastline
	LineTrail
)

// String returns a string representation of the polyline kind
func (k PolylineKind) String() string {
	switch k {
	case LineShippingLane:
		return "ShippingLane"
	case LineFrontline:
		return "Frontline"
	case LineCoastline:
		return "Coastline"
	case LineTrail:
		return "Trail"
	default:
		return "Unknown"
	}
}

// Polyline is an open (not closed) ordered point sequence: a shipping
// lane, frontline segment, coastline piece, or movement trail
type Polyline struct {
	Kind   PolylineKind
	Name   string
	Risk   int // 0 none .. 3 severe; meaningful for lanes and frontlines
	Points []LatLon
}

// MarkerKind classifies point overlays
type MarkerKind int

const (
	MarkerCity MarkerKind = iota
	MarkerChokepoint
	MarkerInstallation
	MarkerNuclearFacility
	MarkerIncident
)

// String returns a string representation of the marker kind
func (k MarkerKind) String() string {
	switch k {
	case MarkerCity:
		return "City"
	case MarkerChokepoint:
		return "Chokepoint"
	case MarkerInstallation:
		return "Installation"
	case MarkerNuclearFacility:
		return "NuclearFacility"
	case MarkerIncident:
		return "Incident"
	default:
		return "Unknown"
	}
}

// Marker is a named point entity (city, base, chokepoint, incident).
// Importance orders label placement: higher values are labelled first.
type Marker struct {
	Kind       MarkerKind
	Name       string
	Position   LatLon
	Importance int
}
