package data

import (
	"time"

	"geowatch/internal/geo"
	"geowatch/internal/track"
)

// Curated overlay tables. Risk levels: 0 routine, 1 elevated, 2 high,
// 3 severe.

// ShippingLanes returns the major maritime trade routes
func ShippingLanes() []*geo.Polyline {
	return []*geo.Polyline{
		{
			Kind: geo.LineShippingLane, Name: "Suez / Red Sea", Risk: 2,
			Points: []geo.LatLon{
				{Lat: 36.0, Lon: 14.5}, {Lat: 31.3, Lon: 32.3}, {Lat: 29.9, Lon: 32.6},
				{Lat: 27.0, Lon: 34.5}, {Lat: 15.0, Lon: 42.0}, {Lat: 12.6, Lon: 43.3},
				{Lat: 12.0, Lon: 45.0}, {Lat: 13.0, Lon: 52.0},
			},
		},
		{
			Kind: geo.LineShippingLane, Name: "Hormuz Approach", Risk: 2,
			Points: []geo.LatLon{
				{Lat: 25.0, Lon: 57.0}, {Lat: 26.5, Lon: 56.5}, {Lat: 26.6, Lon: 55.5},
				{Lat: 27.0, Lon: 51.5},
			},
		},
		{
			Kind: geo.LineShippingLane, Name: "Malacca Strait", Risk: 1,
			Points: []geo.LatLon{
				{Lat: 6.0, Lon: 95.0}, {Lat: 4.0, Lon: 98.5}, {Lat: 1.4, Lon: 103.5},
				{Lat: 1.2, Lon: 104.5}, {Lat: 3.0, Lon: 108.0},
			},
		},
		{
			Kind: geo.LineShippingLane, Name: "Gibraltar / Atlantic", Risk: 0,
			Points: []geo.LatLon{
				{Lat: 35.95, Lon: -5.6}, {Lat: 36.5, Lon: -9.5}, {Lat: 43.0, Lon: -12.0},
				{Lat: 49.0, Lon: -8.0},
			},
		},
		{
			Kind: geo.LineShippingLane, Name: "Panama Approach", Risk: 0,
			Points: []geo.LatLon{
				{Lat: 9.4, Lon: -79.9}, {Lat: 13.0, Lon: -78.0}, {Lat: 18.0, Lon: -74.0},
				{Lat: 25.0, Lon: -72.0},
			},
		},
		{
			Kind: geo.LineShippingLane, Name: "Taiwan Strait", Risk: 2,
			Points: []geo.LatLon{
				{Lat: 21.5, Lon: 117.5}, {Lat: 24.0, Lon: 119.0}, {Lat: 25.8, Lon: 120.5},
				{Lat: 28.0, Lon: 122.5},
			},
		},
		{
			Kind: geo.LineShippingLane, Name: "Transpacific", Risk: 0,
			Points: []geo.LatLon{
				{Lat: 34.5, Lon: 140.0}, {Lat: 42.0, Lon: 160.0}, {Lat: 48.0, Lon: -180.0},
				{Lat: 45.0, Lon: -150.0}, {Lat: 37.0, Lon: -123.0},
			},
		},
	}
}

// Chokepoints returns the named maritime chokepoints. They are must-show
// entities: importance above the renderer's force-label threshold.
func Chokepoints() []*geo.Marker {
	points := []struct {
		name     string
		lat, lon float64
	}{
		{"Strait of Hormuz", 26.57, 56.25},
		{"Bab el-Mandeb", 12.58, 43.33},
		{"Suez Canal", 30.45, 32.35},
		{"Strait of Malacca", 2.5, 101.4},
		{"Strait of Gibraltar", 35.95, -5.6},
		{"Panama Canal", 9.08, -79.68},
		{"Bosporus", 41.12, 29.05},
		{"Taiwan Strait", 24.8, 119.8},
	}

	markers := make([]*geo.Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, &geo.Marker{
			Kind:       geo.MarkerChokepoint,
			Name:       p.name,
			Position:   geo.LatLon{Lat: p.lat, Lon: p.lon},
			Importance: 95,
		})
	}
	return markers
}

// Installations returns notable military installations
func Installations() []*geo.Marker {
	points := []struct {
		name     string
		lat, lon float64
	}{
		{"Norfolk NB", 36.95, -76.33},
		{"Pearl Harbor", 21.35, -157.95},
		{"Yokosuka", 35.29, 139.67},
		{"Diego Garcia", -7.31, 72.41},
		{"Ramstein AB", 49.44, 7.6},
		{"Djibouti", 11.55, 43.15},
		{"Guam NB", 13.44, 144.65},
		{"Rota NS", 36.62, -6.35},
		{"Sevastopol", 44.62, 33.53},
		{"Tartus", 34.9, 35.87},
	}

	markers := make([]*geo.Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, &geo.Marker{
			Kind:       geo.MarkerInstallation,
			Name:       p.name,
			Position:   geo.LatLon{Lat: p.lat, Lon: p.lon},
			Importance: 40,
		})
	}
	return markers
}

// NuclearFacilities returns civil nuclear sites of interest
func NuclearFacilities() []*geo.Marker {
	points := []struct {
		name     string
		lat, lon float64
	}{
		{"Zaporizhzhia NPP", 47.51, 34.59},
		{"Natanz", 33.72, 51.73},
		{"Yongbyon", 39.8, 125.75},
		{"Dimona", 31.0, 35.14},
		{"Bushehr NPP", 28.83, 50.89},
	}

	markers := make([]*geo.Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, &geo.Marker{
			Kind:       geo.MarkerNuclearFacility,
			Name:       p.name,
			Position:   geo.LatLon{Lat: p.lat, Lon: p.lon},
			Importance: 50,
		})
	}
	return markers
}

// Cities returns major world cities for base-map orientation
func Cities() []*geo.Marker {
	points := []struct {
		name       string
		lat, lon   float64
		importance int
	}{
		{"Washington", 38.9, -77.04, 30},
		{"London", 51.51, -0.13, 30},
		{"Moscow", 55.76, 37.62, 30},
		{"Beijing", 39.9, 116.4, 30},
		{"Tokyo", 35.68, 139.69, 25},
		{"Delhi", 28.61, 77.21, 25},
		{"Cairo", 30.04, 31.24, 20},
		{"Singapore", 1.35, 103.82, 20},
		{"Istanbul", 41.01, 28.98, 20},
		{"Kyiv", 50.45, 30.52, 25},
		{"Tehran", 35.69, 51.39, 25},
		{"Taipei", 25.03, 121.56, 25},
		{"Sydney", -33.87, 151.21, 15},
		{"São Paulo", -23.55, -46.63, 15},
		{"Lagos", 6.52, 3.38, 15},
	}

	markers := make([]*geo.Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, &geo.Marker{
			Kind:       geo.MarkerCity,
			Name:       p.name,
			Position:   geo.LatLon{Lat: p.lat, Lon: p.lon},
			Importance: p.importance,
		})
	}
	return markers
}

// DemoRoutes returns the scripted patrol loops for the replay position
// source used when no live feed is wired up
func DemoRoutes() []track.Route {
	return []track.Route{
		{
			ID: "RC-135W", Name: "RC-135W", Kind: track.KindAircraft, SpeedKts: 470,
			PeriodPerLeg: 4 * time.Minute,
			Waypoints: []geo.LatLon{
				{Lat: 54.0, Lon: 19.0}, {Lat: 55.5, Lon: 20.5}, {Lat: 56.5, Lon: 19.5},
				{Lat: 55.0, Lon: 17.5},
			},
		},
		{
			ID: "P-8A", Name: "P-8A", Kind: track.KindAircraft, SpeedKts: 440,
			PeriodPerLeg: 5 * time.Minute,
			Waypoints: []geo.LatLon{
				{Lat: 35.0, Lon: 123.0}, {Lat: 33.0, Lon: 125.5}, {Lat: 31.0, Lon: 124.0},
				{Lat: 32.5, Lon: 121.5},
			},
		},
		{
			ID: "CVN-78", Name: "CVN-78", Kind: track.KindVessel, SpeedKts: 22,
			PeriodPerLeg: 12 * time.Minute,
			Waypoints: []geo.LatLon{
				{Lat: 36.0, Lon: 18.0}, {Lat: 34.5, Lon: 22.0}, {Lat: 33.5, Lon: 27.0},
				{Lat: 34.5, Lon: 30.0},
			},
		},
		{
			ID: "SSN-774", Name: "SSN-774", Kind: track.KindSubmarine, SpeedKts: 18,
			PeriodPerLeg: 15 * time.Minute,
			Waypoints: []geo.LatLon{
				{Lat: 68.0, Lon: 5.0}, {Lat: 70.5, Lon: 12.0}, {Lat: 71.5, Lon: 20.0},
				{Lat: 69.5, Lon: 15.0},
			},
		},
	}
}
