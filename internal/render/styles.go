package render

import (
	"geowatch/internal/geo"
	"geowatch/internal/track"
)

// Style definitions for overlay entities
var (
	StyleCountry      = Style{Color: ColorGray, Glyph: '·'}
	StyleCoastline    = Style{Color: ColorBlue, Glyph: '-'}
	StyleLaneLow      = Style{Color: ColorCyan, Glyph: '~'}
	StyleLaneElevated = Style{Color: ColorYellow, Glyph: '~'}
	StyleLaneHigh     = Style{Color: ColorRed, Glyph: '~', Bold: true}
	StyleFrontline    = Style{Color: ColorRed, Glyph: 'x', Bold: true}
	StyleTrail        = Style{Color: ColorGray, Glyph: '.'}
	StyleCity         = Style{Color: ColorWhite, Glyph: '●'}
	StyleChokepoint   = Style{Color: ColorOrange, Glyph: '◆', Bold: true}
	StyleInstallation = Style{Color: ColorRed, Glyph: '▲'}
	StyleNuclear      = Style{Color: ColorMagenta, Glyph: '☢'}
	StyleIncident     = Style{Color: ColorYellow, Glyph: '!', Bold: true}
	StyleAsset        = Style{Color: ColorGreen, Bold: true}
	StyleSelected     = Style{Color: ColorGreen, Bold: true, Reverse: true}
	StyleLabel        = Style{Color: ColorWhite}
	StyleHighlight    = Style{Color: ColorWhite, Bold: true}
)

// StyleForPolyline returns the style for a polyline overlay, shading
// shipping lanes by risk level
func StyleForPolyline(line *geo.Polyline) Style {
	switch line.Kind {
	case geo.LineFrontline:
		return StyleFrontline
	case geo.LineCoastline:
		return StyleCoastline
	case geo.LineTrail:
		return StyleTrail
	case geo.LineShippingLane:
		switch {
		case line.Risk >= 2:
			return StyleLaneHigh
		case line.Risk == 1:
			return StyleLaneElevated
		default:
			return StyleLaneLow
		}
	default:
		return Style{Glyph: '·'}
	}
}

// StyleForMarker returns the style for a point overlay
func StyleForMarker(m *geo.Marker) Style {
	switch m.Kind {
	case geo.MarkerChokepoint:
		return StyleChokepoint
	case geo.MarkerInstallation:
		return StyleInstallation
	case geo.MarkerNuclearFacility:
		return StyleNuclear
	case geo.MarkerIncident:
		return StyleIncident
	default:
		return StyleCity
	}
}

// StyleForAsset returns the style for a moving asset, with its heading
// glyph baked in
func StyleForAsset(a *track.Asset, selected bool) Style {
	st := StyleAsset
	if selected {
		st = StyleSelected
	}
	st.Glyph = a.DirectionGlyph()
	return st
}
