package data

import (
	"github.com/jonas-p/go-shp"

	"geowatch/internal/geo"
)

// LoadCoastlines loads Natural Earth coastline geometry from an ESRI
// shapefile into polyline overlays. Polygons are flattened to their
// outline; coastlines are decoration, never hover targets.
func LoadCoastlines(path string) ([]*geo.Polyline, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	lines := make([]*geo.Polyline, 0)

	for shape.Next() {
		_, p := shape.Shape()

		var raw []shp.Point
		switch geom := p.(type) {
		case *shp.PolyLine:
			raw = geom.Points
		case *shp.Polygon:
			raw = geom.Points
		default:
			continue
		}

		points := make([]geo.LatLon, len(raw))
		for i, point := range raw {
			points[i] = geo.LatLon{Lat: point.Y, Lon: point.X}
		}
		if len(points) > 1 {
			lines = append(lines, &geo.Polyline{
				Kind:   geo.LineCoastline,
				Points: points,
			})
		}
	}

	return lines, nil
}
