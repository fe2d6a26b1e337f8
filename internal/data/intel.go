package data

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"geowatch/internal/geo"
)

// Severity grades an intel incident
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

// String returns a string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityModerate:
		return "MODERATE"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Incident is one intel card: a dated, located, graded event from an
// external feed snapshot
type Incident struct {
	Title    string
	Time     time.Time
	Position geo.LatLon
	Severity Severity
	Source   string
	Summary  string
}

// Marker converts the incident into a map overlay marker
func (i *Incident) Marker() *geo.Marker {
	return &geo.Marker{
		Kind:       geo.MarkerIncident,
		Name:       i.Title,
		Position:   i.Position,
		Importance: 60 + int(i.Severity),
	}
}

// incidentRecord is the wire shape of one incident in the feed file
type incidentRecord struct {
	Title    string  `json:"title"`
	Time     string  `json:"time"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Severity int     `json:"severity"`
	Source   string  `json:"source"`
	Summary  string  `json:"summary"`
}

// LoadIncidents reads an incident feed snapshot from a JSON file.
// Records with out-of-range coordinates or unparseable timestamps are
// dropped rather than failing the whole file.
func LoadIncidents(path string) ([]*Incident, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read incidents file: %w", err)
	}
	return ParseIncidents(raw)
}

// ParseIncidents decodes and validates an incident feed snapshot,
// returning incidents newest first
func ParseIncidents(raw []byte) ([]*Incident, error) {
	var records []incidentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse incidents: %w", err)
	}

	incidents := make([]*Incident, 0, len(records))
	for _, r := range records {
		pos := geo.LatLon{Lat: r.Lat, Lon: r.Lon}
		if !pos.Valid() || r.Title == "" {
			continue
		}

		ts, err := time.Parse(time.RFC3339, r.Time)
		if err != nil {
			continue
		}

		sev := Severity(r.Severity)
		if sev < SeverityLow || sev > SeverityCritical {
			sev = SeverityLow
		}

		incidents = append(incidents, &Incident{
			Title:    r.Title,
			Time:     ts,
			Position: pos,
			Severity: sev,
			Source:   r.Source,
			Summary:  r.Summary,
		})
	}

	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].Time.After(incidents[j].Time)
	})

	return incidents, nil
}

// RiskByCountry sums severity weights of incidents per containing country.
// Incidents over open water attribute to no country. The weighting is a
// display heuristic, nothing more.
func RiskByCountry(incidents []*Incident, countries []*geo.Feature) map[string]int {
	scores := make(map[string]int)
	for _, inc := range incidents {
		f := geo.FindContainingFeature(inc.Position, countries)
		if f == nil || f.Name == "" {
			continue
		}
		scores[f.Name] += int(inc.Severity) + 1
	}
	return scores
}
