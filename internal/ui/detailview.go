package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"geowatch/internal/data"
)

// DetailView displays detailed information about a selected incident
type DetailView struct {
	incident      *data.Incident
	country       string // Containing country, resolved by the caller
	x, y          int
	width, height int
}

// NewDetailView creates a new detail view
func NewDetailView(x, y, width, height int) *DetailView {
	return &DetailView{
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

// SetIncident sets the incident to display and the country it resolved to
func (d *DetailView) SetIncident(inc *data.Incident, country string) {
	d.incident = inc
	d.country = country
}

// UpdateDimensions moves and resizes the view
func (d *DetailView) UpdateDimensions(x, y, width, height int) {
	d.x = x
	d.y = y
	d.width = width
	d.height = height
}

// Draw renders the detail panel
func (d *DetailView) Draw(screen tcell.Screen) {
	for row := d.y; row < d.y+d.height; row++ {
		for col := d.x; col < d.x+d.width; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}

	drawBorder(screen, d.x, d.y, d.width, d.height, styleListBorder)
	drawString(screen, d.x+2, d.y, " Incident ", styleListTitle)

	if d.incident == nil {
		drawString(screen, d.x+2, d.y+2, "No incident selected", styleListItem)
		return
	}

	inc := d.incident
	region := d.country
	if region == "" {
		region = "International waters"
	}

	lines := []string{
		truncate(inc.Title, d.width-4),
		"",
		fmt.Sprintf("Severity: %s", inc.Severity),
		fmt.Sprintf("Time:     %s", inc.Time.Format("2006-01-02 15:04Z")),
		fmt.Sprintf("Position: %.2f, %.2f", inc.Position.Lat, inc.Position.Lon),
		fmt.Sprintf("Region:   %s", truncate(region, d.width-14)),
		fmt.Sprintf("Source:   %s", inc.Source),
	}

	if inc.Summary != "" {
		lines = append(lines, "", truncate(inc.Summary, d.width-4))
	}

	for i, line := range lines {
		if d.y+1+i >= d.y+d.height-1 {
			break
		}
		drawString(screen, d.x+2, d.y+1+i, line, styleListItem)
	}
}
