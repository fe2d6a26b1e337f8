package track

import (
	"math"
	"time"

	"geowatch/internal/geo"
)

// PositionSource supplies current positions for moving assets. Live feeds,
// simulators, and replays all sit behind this interface; the map core only
// consumes the returned reports.
type PositionSource interface {
	// Poll returns the current state of every asset the source knows about
	Poll(now time.Time) []*Asset
}

// Route is one asset's scripted path for the replay source
type Route struct {
	ID        string
	Name      string
	Kind      Kind
	SpeedKts  int
	Waypoints []geo.LatLon // At least 2; the route loops
	// PeriodPerLeg is the time spent between consecutive waypoints
	PeriodPerLeg time.Duration
}

// ReplaySource walks assets along fixed waypoint loops. It is fully
// deterministic for a given epoch, which keeps demo output reproducible.
type ReplaySource struct {
	epoch  time.Time
	routes []Route
}

// NewReplaySource creates a replay source starting its routes at epoch
func NewReplaySource(epoch time.Time, routes []Route) *ReplaySource {
	return &ReplaySource{epoch: epoch, routes: routes}
}

// Poll returns interpolated positions for every route at the given time
func (s *ReplaySource) Poll(now time.Time) []*Asset {
	assets := make([]*Asset, 0, len(s.routes))

	for _, r := range s.routes {
		if len(r.Waypoints) < 2 {
			continue
		}

		perLeg := r.PeriodPerLeg
		if perLeg <= 0 {
			perLeg = 10 * time.Minute
		}

		elapsed := now.Sub(s.epoch)
		if elapsed < 0 {
			elapsed = 0
		}

		legs := len(r.Waypoints) // closing leg included, the route loops
		cycle := perLeg * time.Duration(legs)
		into := elapsed % cycle

		leg := int(into / perLeg)
		frac := float64(into%perLeg) / float64(perLeg)

		a := r.Waypoints[leg]
		b := r.Waypoints[(leg+1)%len(r.Waypoints)]

		pos := geo.LatLon{
			Lat: a.Lat + (b.Lat-a.Lat)*frac,
			Lon: a.Lon + (b.Lon-a.Lon)*frac,
		}

		assets = append(assets, &Asset{
			ID:       r.ID,
			Name:     r.Name,
			Kind:     r.Kind,
			Position: &pos,
			Heading:  headingDegrees(a, b),
			SpeedKts: r.SpeedKts,
			LastSeen: now,
		})
	}

	return assets
}

// headingDegrees returns the flat-earth bearing from a to b, 0 = north
func headingDegrees(a, b geo.LatLon) int {
	deg := math.Atan2(b.Lon-a.Lon, b.Lat-a.Lat) * 180 / math.Pi
	h := int(math.Round(deg))
	if h < 0 {
		h += 360
	}
	return h % 360
}
